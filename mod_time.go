package cottage

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// DeltaSeconds is the last frame delta as the float the movement code scales by.
func (t *Time) DeltaSeconds() float32 {
	return float32(t.Dt.Seconds())
}

// TimeModule measures wall-clock frame deltas. A non-zero Fixed replaces the
// measurement with a constant step, which keeps tests and replays deterministic.
type TimeModule struct {
	Fixed time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	if mod.Fixed > 0 {
		step := mod.Fixed
		cmd.UseSystem(System(func(t *Time) {
			t.Dt = step
			t.Time = t.Time.Add(step)
		}).InStage(Prelude))
		return
	}
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
