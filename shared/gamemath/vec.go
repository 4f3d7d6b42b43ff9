package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// FlatYaw returns the yaw (radians around +Y) that turns the local +Z axis of
// an object at from toward to, ignoring height. ok is false when the two
// points share X and Z and no heading can be derived.
func FlatYaw(from, to mgl64.Vec3) (yaw float64, ok bool) {
	dx := to.X() - from.X()
	dz := to.Z() - from.Z()
	if dx == 0 && dz == 0 {
		return 0, false
	}
	return math.Atan2(dx, dz), true
}

// Seek moves from toward to by step along the straight line between them.
// No clamping is applied, so a step longer than the distance overshoots.
func Seek(from, to mgl64.Vec3, step float64) mgl64.Vec3 {
	dir := to.Sub(from)
	if dir.Len() == 0 {
		return from
	}
	return from.Add(dir.Normalize().Mul(step))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ToPlane maps a world position onto the 2D arena plane (X, Z) whose
// origin sits in the middle of a width x depth area.
func ToPlane(p mgl64.Vec3, width, depth int) (x, y float64) {
	return p.X() + float64(width)/2, p.Z() + float64(depth)/2
}

// OnPlane reports whether p lies on the centered width x depth plane with at
// least margin to spare on every side. Height is ignored.
func OnPlane(p mgl64.Vec3, width, depth int, margin float64) bool {
	halfW := float64(width)/2 - margin
	halfD := float64(depth)/2 - margin
	return math.Abs(p.X()) <= halfW && math.Abs(p.Z()) <= halfD
}

// ClampToPlane pulls p back onto the centered width x depth plane, keeping
// margin from its edges. Height is left unchanged.
func ClampToPlane(p mgl64.Vec3, width, depth int, margin float64) mgl64.Vec3 {
	halfW := float64(width)/2 - margin
	halfD := float64(depth)/2 - margin
	return mgl64.Vec3{
		math.Max(-halfW, math.Min(halfW, p.X())),
		p.Y(),
		math.Max(-halfD, math.Min(halfD, p.Z())),
	}
}
