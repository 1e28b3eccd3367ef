package common

import (
	"cmp"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// / Clamps the value to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// VecAt reads the i-th (x, y, z) triple of a flat buffer.
func VecAt(buf []float64, i int) Vec3 {
	v := GetVert3(buf, i)
	return Vec3{v[0], v[1], v[2]}
}

// PutVec writes v as the i-th (x, y, z) triple of a flat buffer.
func PutVec(buf []float64, i int, v Vec3) {
	copy(GetVert3(buf, i), v[:])
}

// TriNormal returns the unit normal of the counter-clockwise triangle
// (v0, v1, v2). ok is false when the triangle has no area.
func TriNormal(v0, v1, v2 Vec3) (n Vec3, ok bool) {
	n = v1.Sub(v0).Cross(v2.Sub(v0))
	l := n.Len()
	if l <= 1e-12 {
		return Vec3{}, false
	}
	return n.Mul(1 / l), true
}

// AngleBetween returns the unsigned angle between two unit vectors.
func AngleBetween(n0, n1 Vec3) float64 {
	return math.Abs(math.Acos(Clamp(n0.Dot(n1), -1, 1)))
}

// PlaneBasis returns two unit vectors u, w spanning the plane orthogonal to
// n, oriented so that u x w == n.
func PlaneBasis(n Vec3) (u, w Vec3) {
	ref := Vec3{1, 0, 0}
	if math.Abs(n.X()) > 0.9 {
		ref = Vec3{0, 1, 0}
	}
	u = ref.Sub(n.Mul(ref.Dot(n))).Normalize()
	w = n.Cross(u)
	return u, w
}

// ProjectToPlane maps p onto the (u, w) coordinates of a plane basis.
func ProjectToPlane(p, u, w Vec3) Vec2 {
	return mgl64.Vec2{p.Dot(u), p.Dot(w)}
}
