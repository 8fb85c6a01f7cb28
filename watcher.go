package cottage

type ZoneState int

const (
	Outside ZoneState = iota
	Inside
)

func (s ZoneState) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

type ZoneTransition int

const (
	TransitionNone ZoneTransition = iota
	TransitionEntered
	TransitionExited
)

// ZoneWatcher tracks whether a point is inside any of its zones and fires
// OnEnter or OnExit once per boundary crossing, never while the state holds.
type ZoneWatcher struct {
	Zones   *ZoneTable
	OnEnter func()
	OnExit  func()

	state ZoneState
}

func (w *ZoneWatcher) State() ZoneState {
	return w.state
}

func (w *ZoneWatcher) Update(p Point2D) ZoneTransition {
	inside := PointInAnyZone(w.Zones, p)

	switch {
	case w.state == Outside && inside:
		w.state = Inside
		if w.OnEnter != nil {
			w.OnEnter()
		}
		return TransitionEntered
	case w.state == Inside && !inside:
		w.state = Outside
		if w.OnExit != nil {
			w.OnExit()
		}
		return TransitionExited
	}
	return TransitionNone
}

// ActorState holds the progression flags the watchers toggle.
type ActorState struct {
	InsideBuilding bool
	ItemAcquired   bool
}

const FloorStep float32 = 0.2

// BuildingWatcher lifts the actor by Step when it walks onto the stairs or
// into the interior, and lowers it again when it leaves both.
type BuildingWatcher struct {
	watcher ZoneWatcher
	Step    float32
}

func NewBuildingWatcher(zones *ZoneTable, ctrl *MovementController, actor *ActorState) *BuildingWatcher {
	w := &BuildingWatcher{Step: FloorStep}
	w.watcher = ZoneWatcher{
		Zones: zones.Filter(ZoneStairs, ZoneInterior),
		OnEnter: func() {
			actor.InsideBuilding = true
			ctrl.MoveVertical(MoveUp, w.Step)
		},
		OnExit: func() {
			actor.InsideBuilding = false
			ctrl.MoveVertical(MoveDown, w.Step)
		},
	}
	return w
}

func (w *BuildingWatcher) Update(p Point2D) ZoneTransition {
	return w.watcher.Update(p)
}

func (w *BuildingWatcher) State() ZoneState {
	return w.watcher.State()
}

// PickupWatcher marks the item acquired the first time the actor stands on a
// pickup zone. There is no way back.
type PickupWatcher struct {
	zones *ZoneTable
	actor *ActorState
}

func NewPickupWatcher(zones *ZoneTable, actor *ActorState) *PickupWatcher {
	return &PickupWatcher{zones: zones.Filter(ZonePickup), actor: actor}
}

// Update reports true on the tick the item is picked up.
func (w *PickupWatcher) Update(p Point2D) bool {
	if w.actor.ItemAcquired {
		return false
	}
	if PointInAnyZone(w.zones, p) {
		w.actor.ItemAcquired = true
		return true
	}
	return false
}
