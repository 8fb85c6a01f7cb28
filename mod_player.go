package cottage

// SimulationModule provides the SimulationState resource. Zones defaults to
// the table named in the config, or the built-in cottage.
type SimulationModule struct {
	Config Config
	Zones  *ZoneTable
}

func (m SimulationModule) Install(app *App, cmd *Commands) {
	zones := m.Zones
	if zones == nil {
		var err error
		zones, err = m.Config.LoadZones()
		if err != nil {
			app.Logger().Errorf("Loading zones: %v", err)
			panic(err)
		}
	}
	app.Logger().Infof("Loaded %d zones (%d walls)", zones.Len(), zones.Filter(ZoneWall).Len())
	cmd.AddResources(NewSimulationState(m.Config, zones))
}

type PlayerModule struct{}

func (m PlayerModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(playerLookSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(playerMoveSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(zoneWatchSystem).
			InStage(PostUpdate),
	)
}

func playerLookSystem(input *Input, sim *SimulationState) {
	if !input.MouseCaptured {
		return
	}
	if input.MouseDeltaX == 0 && input.MouseDeltaY == 0 {
		return
	}
	sim.Look(float32(input.MouseDeltaX), float32(input.MouseDeltaY))
}

var walkKeys = []struct {
	key int
	dir MoveDirection
}{
	{KeyW, MoveForward},
	{KeyS, MoveBackward},
	{KeyA, MoveLeft},
	{KeyD, MoveRight},
}

func playerMoveSystem(input *Input, sim *SimulationState, time *Time, cmd *Commands) {
	dt := time.DeltaSeconds()
	if dt > 0 {
		for _, wk := range walkKeys {
			if input.Pressed[wk.key] {
				sim.Walk(wk.dir, dt)
			}
		}
	}

	if input.JustPressed[KeyZ] {
		pos := sim.Controller.Position()
		cmd.Logger().Infof("Position %f, %f, %f", pos.X(), pos.Y(), pos.Z())
	}
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
	}
}

func zoneWatchSystem(sim *SimulationState, cmd *Commands) {
	transition, picked := sim.WatchZones()
	switch transition {
	case TransitionEntered:
		cmd.Logger().Debugf("Entered the cottage, y=%f", sim.Controller.Position().Y())
	case TransitionExited:
		cmd.Logger().Debugf("Left the cottage, y=%f", sim.Controller.Position().Y())
	}
	if picked {
		cmd.Logger().Infof("Picked up the bow")
	}
}
