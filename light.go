package cottage

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightType tells the shader how to shade a packed light. Zero is an unset
// slot.
type LightType uint32

const (
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
)

type DirectionalLight struct {
	Type LightType
	// Direction points towards the light.
	Direction mgl32.Vec3
	Color     mgl32.Vec3
}

// SpotLight is the torch carried by the camera.
type SpotLight struct {
	Type      LightType
	Enabled   bool
	Position  mgl32.Vec3
	Direction mgl32.Vec3
}

func TorchFor(pose ActorPose, enabled bool) SpotLight {
	return SpotLight{
		Type:      LightTypeSpot,
		Enabled:   enabled,
		Position:  pose.Position,
		Direction: pose.Front,
	}
}

const shadowExtent float32 = 8

// LightSpaceMatrix maps world space into the shadow map of a directional light
// shining from lightDir towards the origin.
func LightSpaceMatrix(lightDir mgl32.Vec3) mgl32.Mat4 {
	up := worldUp
	if lightDir.Cross(up).Len() < 1e-4 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(lightDir, mgl32.Vec3{}, up)
	projection := mgl32.Ortho(-shadowExtent, shadowExtent, -shadowExtent, shadowExtent, -shadowExtent, shadowExtent)
	return projection.Mul4(view)
}
