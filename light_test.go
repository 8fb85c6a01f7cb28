package cottage

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightSpaceMatrix(t *testing.T) {
	m := LightSpaceMatrix(DefaultLightDir)

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin.X(), eps)
	assert.InDelta(t, 0, origin.Y(), eps)
	assert.InDelta(t, math.Sqrt2/8, origin.Z(), eps)

	edge := m.Mul4x1(mgl32.Vec4{8, 0, 0, 1})
	assert.InDelta(t, 1, edge.X(), eps)
}

func TestLightSpaceMatrix_OverheadSun(t *testing.T) {
	m := LightSpaceMatrix(mgl32.Vec3{0, 1, 0})

	for i := 0; i < 16; i++ {
		assert.False(t, math.IsNaN(float64(m[i])), "element %d", i)
	}
	p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), eps)
	assert.InDelta(t, 0, p.Y(), eps)
}

func TestTorchFor(t *testing.T) {
	pose := ActorPose{Position: mgl32.Vec3{1, 2, 3}, Front: mgl32.Vec3{0, 0, 1}}

	torch := TorchFor(pose, true)
	assert.True(t, torch.Enabled)
	assert.Equal(t, LightTypeSpot, torch.Type)
	assert.Equal(t, pose.Position, torch.Position)
	assert.Equal(t, pose.Front, torch.Direction)

	assert.False(t, TorchFor(pose, false).Enabled)
}
