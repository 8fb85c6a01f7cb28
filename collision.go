package cottage

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Point2D is a position on the ground plane. The vertical axis is dropped.
type Point2D struct {
	X, Z float32
}

func (p Point2D) vec() mgl32.Vec2 {
	return mgl32.Vec2{p.X, p.Z}
}

func (p Point2D) Add(v Point2D) Point2D {
	return Point2D{p.X + v.X, p.Z + v.Z}
}

func (p Point2D) Sub(v Point2D) Point2D {
	return Point2D{p.X - v.X, p.Z - v.Z}
}

// GroundPoint projects a world position onto the ground plane.
func GroundPoint(pos mgl32.Vec3) Point2D {
	return Point2D{X: pos.X(), Z: pos.Z()}
}

// Rectangle is given by three of its corners: A, and its two neighbours B and D.
// The corners must form a right angle at A; this is not checked.
type Rectangle struct {
	A Point2D
	B Point2D
	D Point2D
}

// PointInRectangle reports whether p lies strictly inside rect, using the
// projections of AM onto AB and AD. Points on the border are outside.
func PointInRectangle(rect Rectangle, p Point2D) bool {
	am := p.vec().Sub(rect.A.vec())
	ab := rect.B.vec().Sub(rect.A.vec())
	ad := rect.D.vec().Sub(rect.A.vec())

	amab := am.Dot(ab)
	amad := am.Dot(ad)

	return 0 < amab && amab < ab.Dot(ab) && 0 < amad && amad < ad.Dot(ad)
}

func (r Rectangle) Contains(p Point2D) bool {
	return PointInRectangle(r, p)
}

// C is the corner opposite A.
func (r Rectangle) C() Point2D {
	return r.B.Add(r.D.Sub(r.A))
}

func (r Rectangle) Centroid() Point2D {
	c := r.A.vec().
		Add(r.B.vec().Sub(r.A.vec()).Mul(0.5)).
		Add(r.D.vec().Sub(r.A.vec()).Mul(0.5))
	return Point2D{c.X(), c.Y()}
}

func (r Rectangle) Translate(v Point2D) Rectangle {
	return Rectangle{A: r.A.Add(v), B: r.B.Add(v), D: r.D.Add(v)}
}

// PointInAnyZone reports whether any zone of the table contains p. It stops at
// the first match.
func PointInAnyZone(table *ZoneTable, p Point2D) bool {
	if table == nil {
		return false
	}
	for i := range table.zones {
		if PointInRectangle(table.zones[i].Rect, p) {
			return true
		}
	}
	return false
}
