package cottage

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveRight
	MoveLeft
	MoveUp
	MoveDown
)

func (d MoveDirection) String() string {
	switch d {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	}
	return fmt.Sprintf("MoveDirection(%d)", int(d))
}

var worldUp = mgl32.Vec3{0, 1, 0}

// ActorPose is the position and orientation basis of the controlled camera.
type ActorPose struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
}

// MovementController owns the actor pose. Horizontal moves are rejected when
// the candidate position falls inside one of the wall zones; vertical moves
// and rotations are never checked.
type MovementController struct {
	pose  ActorPose
	walls *ZoneTable

	// NormalizeHorizontal rescales the ground projection of the move vector to
	// unit length. Off by default, so looking up or down slows walking.
	NormalizeHorizontal bool
}

func NewMovementController(position, target, up mgl32.Vec3, walls *ZoneTable) *MovementController {
	front := position.Sub(target).Normalize()
	right := front.Cross(up).Normalize()
	return &MovementController{
		pose: ActorPose{
			Position: position,
			Front:    front,
			Right:    right,
			Up:       right.Cross(front),
		},
		walls: walls,
	}
}

func (c *MovementController) Pose() ActorPose {
	return c.pose
}

func (c *MovementController) Position() mgl32.Vec3 {
	return c.pose.Position
}

func (c *MovementController) Front() mgl32.Vec3 {
	return c.pose.Front
}

func (c *MovementController) Walls() *ZoneTable {
	return c.walls
}

// Move dispatches to MoveHorizontal or MoveVertical. It reports whether the
// position changed.
func (c *MovementController) Move(dir MoveDirection, speed float32) bool {
	switch dir {
	case MoveUp, MoveDown:
		c.MoveVertical(dir, speed)
		return true
	default:
		return c.MoveHorizontal(dir, speed)
	}
}

// MoveHorizontal moves along the ground projection of the front (forward,
// backward) or right (right, left) vector. A candidate inside a wall is
// dropped and the position stays where it was.
func (c *MovementController) MoveHorizontal(dir MoveDirection, speed float32) bool {
	var axis mgl32.Vec3
	var sign float32

	switch dir {
	case MoveForward:
		axis, sign = c.pose.Front, 1
	case MoveBackward:
		axis, sign = c.pose.Front, -1
	case MoveRight:
		c.pose.Right = c.pose.Front.Cross(c.pose.Up).Normalize()
		axis, sign = c.pose.Right, 1
	case MoveLeft:
		c.pose.Right = c.pose.Front.Cross(c.pose.Up).Normalize()
		axis, sign = c.pose.Right, -1
	default:
		return false
	}

	step := mgl32.Vec3{axis.X(), 0, axis.Z()}
	if c.NormalizeHorizontal {
		if step.Len() < 1e-6 {
			return false
		}
		step = step.Normalize()
	}

	candidate := c.pose.Position.Add(step.Mul(sign * speed))
	if PointInAnyZone(c.walls, GroundPoint(candidate)) {
		return false
	}
	c.pose.Position = candidate
	return true
}

// MoveVertical shifts the position up or down by speed. Other directions are
// ignored.
func (c *MovementController) MoveVertical(dir MoveDirection, speed float32) {
	switch dir {
	case MoveUp:
		c.pose.Position[1] += speed
	case MoveDown:
		c.pose.Position[1] -= speed
	}
}

// Rotate points the camera at the given pitch and yaw, in degrees. Pitch is
// expected to be clamped to (-89, 89) by the caller.
func (c *MovementController) Rotate(pitch, yaw float32) {
	pitchRad := float64(mgl32.DegToRad(pitch))
	yawRad := float64(mgl32.DegToRad(yaw))

	c.pose.Front = mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()

	// Straight up or down leaves right undefined; keep the previous basis.
	right := c.pose.Front.Cross(worldUp)
	if right.Len() < 1e-6 {
		return
	}
	c.pose.Right = right.Normalize()
	c.pose.Up = c.pose.Right.Cross(c.pose.Front)
}

func (c *MovementController) ViewTransform() mgl32.Mat4 {
	return mgl32.LookAtV(c.pose.Position, c.pose.Position.Add(c.pose.Front), worldUp)
}
