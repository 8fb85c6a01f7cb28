package cottage

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	DayLightColor   = mgl32.Vec3{1, 1, 1}
	NightLightColor = mgl32.Vec3{0.05, 0.05, 0.05}
	// DefaultLightDir points towards the light while the cycle is stopped.
	DefaultLightDir = mgl32.Vec3{0, 1, 1}
)

// DayNight moves the sun over the scene. The sun climbs to y=1 and back down
// while it sweeps z from 1 to -1; every full sweep flips between day and night.
type DayNight struct {
	Enabled bool
	Night   bool
	SunY    float32
	SunZ    float32
	Step    float32

	falling   bool
	completed bool
}

func NewDayNight(step float32) *DayNight {
	return &DayNight{SunZ: 1, Step: step}
}

func (d *DayNight) Start() {
	d.Enabled = true
	d.SunY = 0
	d.SunZ = 1
}

// Stop freezes the sun at its default direction and returns to day.
func (d *DayNight) Stop() {
	d.Enabled = false
	d.Night = false
	d.completed = false
}

func (d *DayNight) SetNight(night bool) {
	d.Night = night
}

// Tick advances the sun one step. It reports whether day turned to night or
// back on this tick.
func (d *DayNight) Tick() bool {
	if !d.Enabled {
		return false
	}

	if !d.falling {
		if d.SunY <= 1 {
			d.SunY += d.Step
		} else {
			d.falling = true
		}
	} else {
		if d.SunY >= 0 {
			d.SunY -= d.Step
		} else {
			d.falling = false
		}
	}

	if d.SunZ >= -1 {
		d.SunZ -= d.Step
		return false
	}

	d.SunZ = 1
	d.SunY = 0
	d.completed = !d.completed
	d.Night = d.completed
	return true
}

func (d *DayNight) LightDir() mgl32.Vec3 {
	if !d.Enabled {
		return DefaultLightDir
	}
	return mgl32.Vec3{0, d.SunY, d.SunZ}
}

func (d *DayNight) LightColor() mgl32.Vec3 {
	if d.Night {
		return NightLightColor
	}
	return DayLightColor
}
