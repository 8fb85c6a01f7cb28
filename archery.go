package cottage

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type ArrowEvent int

const (
	ArrowNone ArrowEvent = iota
	ArrowLanded
	ArrowHit
)

func (e ArrowEvent) String() string {
	switch e {
	case ArrowLanded:
		return "landed"
	case ArrowHit:
		return "hit"
	}
	return "none"
}

// Arrow is the single arrow of the mini-game. While not in flight it is drawn
// nocked on the bow.
type Arrow struct {
	InFlight     bool
	GoingUp      bool
	Position     mgl32.Vec3
	VertVelocity float32
	// Tilt is the pitch, in radians, the arrow is drawn with.
	Tilt float32
}

// Target slides along x one slot per hit and wraps back to the first slot.
type Target struct {
	Slot  int
	Slots int
}

const (
	targetSpacing  float32 = 0.5
	targetHeight   float32 = 0.2
	targetDistance float32 = 5.0
)

func (t Target) Position() mgl32.Vec3 {
	return mgl32.Vec3{float32(t.Slot) * targetSpacing, targetHeight, targetDistance}
}

// Hit reports whether p is inside the target's hit box.
func (t Target) Hit(p mgl32.Vec3) bool {
	offset := float32(t.Slot) * targetSpacing
	return p.Z() >= 4.9 && p.Z() <= 5.1 &&
		p.X() > -0.1+offset && p.X() < 0.1+offset &&
		p.Y() > 0.23 && p.Y() < 0.43
}

func (t *Target) Advance() {
	t.Slot++
	if t.Slot >= t.Slots {
		t.Slot = 0
	}
}

// Archery is the bow, its arrow and the moving target.
type Archery struct {
	Params   ArcheryConfig
	BowShown bool
	Arrow    Arrow
	Target   Target
	Hits     int
}

func NewArchery(params ArcheryConfig) *Archery {
	return &Archery{
		Params: params,
		Arrow:  Arrow{GoingUp: true, VertVelocity: params.RestVelocity},
		Target: Target{Slots: params.TargetPositions},
	}
}

// Shoot launches the arrow from origin. The launch speed is the sine of the
// cosine between the view direction and world up, so level shots barely rise.
// A new shot restarts an arrow already in flight.
func (a *Archery) Shoot(origin, front mgl32.Vec3) bool {
	if !a.BowShown {
		return false
	}
	a.Arrow = Arrow{
		InFlight:     true,
		GoingUp:      true,
		Position:     origin,
		VertVelocity: float32(math.Sin(float64(front.Dot(worldUp)))),
	}
	return true
}

func (a *Archery) resetArrow() {
	a.Arrow.InFlight = false
	a.Arrow.GoingUp = true
	a.Arrow.VertVelocity = a.Params.RestVelocity
}

// Step advances the arrow by dt seconds and reports whether it landed or hit
// the target on this tick. The arrow only moves while the bow is shown.
func (a *Archery) Step(dt float32) ArrowEvent {
	arrow := &a.Arrow
	if !arrow.InFlight || !a.BowShown {
		return ArrowNone
	}

	gravity := a.Params.Gravity * a.Params.Mass
	tilt := arrow.VertVelocity

	if arrow.GoingUp {
		acc := -gravity / a.Params.Mass
		arrow.VertVelocity += acc * dt
		if arrow.VertVelocity > 0 {
			arrow.Position[1] += arrow.VertVelocity*dt + acc*dt*dt/2
		} else {
			arrow.GoingUp = false
		}
		tilt = -tilt / 2
	} else {
		acc := gravity / a.Params.Mass
		arrow.VertVelocity += acc * dt
		if arrow.Position.Y() > a.Params.FloorHeight {
			arrow.Position[1] -= arrow.VertVelocity*dt + acc*dt*dt/2
		} else {
			a.resetArrow()
			return ArrowLanded
		}
	}
	arrow.Tilt = tilt

	// Horizontal speed is per tick, not per second.
	arrow.Position[2] += 0.1 * a.Params.HorizontalVelocity

	if a.Target.Hit(arrow.Position) {
		a.Target.Advance()
		a.Hits++
		arrow.InFlight = false
		return ArrowHit
	}
	return ArrowNone
}

// ShowBow puts the bow in hand. It only works once the bow was picked up.
func (a *Archery) ShowBow(acquired bool) bool {
	if !acquired {
		return false
	}
	a.BowShown = true
	return true
}

func (a *Archery) HideBow() {
	a.BowShown = false
}
