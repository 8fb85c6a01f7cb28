package cottage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = float32(1.0 / 60)

func newReadyArchery(t *testing.T) *Archery {
	t.Helper()
	a := NewArchery(DefaultConfig().Archery)
	require.True(t, a.ShowBow(true))
	return a
}

// frontAt is the view direction towards the range, pitched by the given
// degrees.
func frontAt(pitch float32) mgl32.Vec3 {
	c := NewMovementController(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, worldUp, nil)
	c.Rotate(pitch, 90)
	return c.Front()
}

// fly steps the arrow until something happens and returns the event and the
// number of ticks it took.
func fly(a *Archery, maxTicks int) (ArrowEvent, int) {
	for i := 1; i <= maxTicks; i++ {
		if ev := a.Step(tick); ev != ArrowNone {
			return ev, i
		}
	}
	return ArrowNone, maxTicks
}

func TestArchery_ShootNeedsBow(t *testing.T) {
	a := NewArchery(DefaultConfig().Archery)

	assert.False(t, a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(0)))
	assert.False(t, a.Arrow.InFlight)

	assert.False(t, a.ShowBow(false))
	assert.False(t, a.BowShown)

	require.True(t, a.ShowBow(true))
	assert.True(t, a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(0)))
	assert.True(t, a.Arrow.InFlight)

	a.HideBow()
	assert.False(t, a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(0)))
}

func TestArchery_StepIdleArrow(t *testing.T) {
	a := newReadyArchery(t)

	assert.Equal(t, ArrowNone, a.Step(tick))
	assert.Equal(t, mgl32.Vec3{}, a.Arrow.Position)
}

func TestArchery_LaunchSpeed(t *testing.T) {
	a := newReadyArchery(t)

	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(0))
	assert.InDelta(t, 0, a.Arrow.VertVelocity, eps)

	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(90))
	assert.InDelta(t, 0.841471, a.Arrow.VertVelocity, eps)
	assert.True(t, a.Arrow.GoingUp)
}

func TestArchery_LevelShotLands(t *testing.T) {
	a := newReadyArchery(t)
	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(0))

	ev, ticks := fly(a, 1000)

	require.Equal(t, ArrowLanded, ev)
	assert.Equal(t, 148, ticks)
	assert.False(t, a.Arrow.InFlight)
	assert.True(t, a.Arrow.GoingUp)
	assert.Equal(t, float32(0.1), a.Arrow.VertVelocity)
	assert.Equal(t, 0, a.Hits)
	assert.Equal(t, 0, a.Target.Slot)
}

func TestArchery_ArrowRisesThenFalls(t *testing.T) {
	a := newReadyArchery(t)
	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(20))

	// The last rising ticks may dip by g·dt²/2, so only the peak is checked.
	peak := a.Arrow.Position.Y()
	for a.Arrow.GoingUp {
		require.Equal(t, ArrowNone, a.Step(tick))
		peak = max(peak, a.Arrow.Position.Y())
	}
	assert.Greater(t, peak, float32(0.8))
	assert.InDelta(t, peak, a.Arrow.Position.Y(), 1e-3)

	prev := a.Arrow.Position.Y()
	for i := 0; i < 10; i++ {
		a.Step(tick)
		assert.Less(t, a.Arrow.Position.Y(), prev)
		prev = a.Arrow.Position.Y()
	}
}

func TestArchery_AimedShotHitsAndMovesTarget(t *testing.T) {
	a := newReadyArchery(t)
	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(9))

	ev, ticks := fly(a, 1000)

	require.Equal(t, ArrowHit, ev)
	assert.Equal(t, 164, ticks)
	assert.InDelta(t, 4.92, a.Arrow.Position.Z(), 1e-3)
	assert.False(t, a.Arrow.InFlight)
	assert.Equal(t, 1, a.Hits)
	assert.Equal(t, 1, a.Target.Slot)
	assert.Equal(t, mgl32.Vec3{0.5, 0.2, 5}, a.Target.Position())

	// The same shot now passes beside the target.
	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(9))
	ev, _ = fly(a, 1000)
	assert.Equal(t, ArrowLanded, ev)

	a.Shoot(mgl32.Vec3{0.5, 0.3, 0}, frontAt(9))
	ev, _ = fly(a, 1000)
	assert.Equal(t, ArrowHit, ev)
	assert.Equal(t, 2, a.Target.Slot)
}

func TestArchery_TooHighOvershoots(t *testing.T) {
	a := newReadyArchery(t)
	a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(12))

	ev, _ := fly(a, 1000)

	assert.Equal(t, ArrowLanded, ev)
	assert.Greater(t, a.Arrow.Position.Z(), float32(5.1))
}

func TestArchery_HiddenBowFreezesArrow(t *testing.T) {
	a := newReadyArchery(t)
	require.True(t, a.Shoot(mgl32.Vec3{0, 0.3, 0}, frontAt(9)))
	a.HideBow()

	for i := 0; i < 300; i++ {
		require.Equal(t, ArrowNone, a.Step(tick))
	}
	assert.True(t, a.Arrow.InFlight)
	assert.Equal(t, mgl32.Vec3{0, 0.3, 0}, a.Arrow.Position)
	assert.Equal(t, 0, a.Hits)

	// Showing the bow again resumes the same flight.
	require.True(t, a.ShowBow(true))
	ev, ticks := fly(a, 1000)
	assert.Equal(t, ArrowHit, ev)
	assert.Equal(t, 164, ticks)
}

func TestTarget_Hit(t *testing.T) {
	target := Target{Slot: 2, Slots: 6}

	tests := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{"centre", mgl32.Vec3{1, 0.33, 5}, true},
		{"near face", mgl32.Vec3{1, 0.33, 4.9}, true},
		{"too short", mgl32.Vec3{1, 0.33, 4.85}, false},
		{"too long", mgl32.Vec3{1, 0.33, 5.2}, false},
		{"left", mgl32.Vec3{0.85, 0.33, 5}, false},
		{"right", mgl32.Vec3{1.15, 0.33, 5}, false},
		{"low", mgl32.Vec3{1, 0.2, 5}, false},
		{"high", mgl32.Vec3{1, 0.45, 5}, false},
		{"wrong slot", mgl32.Vec3{0, 0.33, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, target.Hit(tt.p))
		})
	}
}

func TestTarget_AdvanceWraps(t *testing.T) {
	target := Target{Slots: 6}

	for i := 1; i < 6; i++ {
		target.Advance()
		assert.Equal(t, i, target.Slot)
	}
	target.Advance()
	assert.Equal(t, 0, target.Slot)
}

func TestArrowEvent_String(t *testing.T) {
	assert.Equal(t, "hit", ArrowHit.String())
	assert.Equal(t, "landed", ArrowLanded.String())
	assert.Equal(t, "none", ArrowNone.String())
}
