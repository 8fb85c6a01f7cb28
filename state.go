package cottage

import (
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch float32 = 89

// SimulationState is the whole game state. A single driver loop owns it and
// hands it to every system by pointer.
type SimulationState struct {
	Zones      *ZoneTable
	Controller *MovementController
	Actor      ActorState
	Building   *BuildingWatcher
	Pickup     *PickupWatcher
	Archery    *Archery
	DayNight   *DayNight
	Render     RenderSettings
	Skybox     SkyboxSet

	// Look angles, in degrees, accumulated from mouse deltas.
	Yaw   float32
	Pitch float32

	Speed       float32
	Sensitivity float32
}

func NewSimulationState(cfg Config, zones *ZoneTable) *SimulationState {
	s := &SimulationState{
		Zones:       zones,
		Archery:     NewArchery(cfg.Archery),
		DayNight:    NewDayNight(cfg.DayNight.SunStep),
		Yaw:         cfg.Camera.Yaw,
		Pitch:       cfg.Camera.Pitch,
		Speed:       cfg.Camera.Speed,
		Sensitivity: cfg.Camera.Sensitivity,
	}
	s.Controller = NewMovementController(cfg.CameraPosition(), cfg.CameraTarget(), worldUp, zones.Filter(ZoneWall))
	s.Controller.NormalizeHorizontal = cfg.Camera.NormalizeHorizontal
	s.Building = NewBuildingWatcher(zones, s.Controller, &s.Actor)
	s.Pickup = NewPickupWatcher(zones, &s.Actor)
	return s
}

// Look turns the camera by a mouse delta. Positive dy looks down, as screen
// coordinates grow downwards.
func (s *SimulationState) Look(dx, dy float32) {
	s.Yaw += dx * s.Sensitivity
	s.Pitch -= dy * s.Sensitivity
	s.Pitch = mgl32.Clamp(s.Pitch, -maxPitch, maxPitch)
	s.Controller.Rotate(s.Pitch, s.Yaw)
}

// Walk applies a horizontal move scaled by the frame delta in seconds.
func (s *SimulationState) Walk(dir MoveDirection, dt float32) bool {
	return s.Controller.MoveHorizontal(dir, s.Speed*dt)
}

// WatchZones runs the building and pickup watchers against the current
// position.
func (s *SimulationState) WatchZones() (ZoneTransition, bool) {
	p := GroundPoint(s.Controller.Position())
	transition := s.Building.Update(p)
	picked := s.Pickup.Update(p)
	return transition, picked
}
