package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriNormal(t *testing.T) {
	n, ok := TriNormal(Vec3{0, 0, 0}, Vec3{2, 0, 0}, Vec3{0, 3, 0})
	require.True(t, ok)
	assert.InDelta(t, 1, n.Z(), 1e-12)

	n, ok = TriNormal(Vec3{0, 0, 0}, Vec3{0, 3, 0}, Vec3{2, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, -1, n.Z(), 1e-12)

	_, ok = TriNormal(Vec3{0, 0, 0}, Vec3{1, 1, 1}, Vec3{2, 2, 2})
	assert.False(t, ok)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleBetween(Vec3{1, 0, 0}, Vec3{0, 1, 0}), 1e-12)
	assert.InDelta(t, math.Pi, AngleBetween(Vec3{0, 0, 1}, Vec3{0, 0, -1}), 1e-12)
	// rounding can push the dot product of equal unit vectors past 1
	a := Vec3{1, 1, 1}.Normalize()
	assert.False(t, math.IsNaN(AngleBetween(a, a.Mul(1+1e-15))))
}

func TestPlaneBasis(t *testing.T) {
	for _, n := range []Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, -1, 0},
		Vec3{1, 2, 3}.Normalize(),
	} {
		u, w := PlaneBasis(n)
		assert.InDelta(t, 1, u.Len(), 1e-12, "normal %v", n)
		assert.InDelta(t, 1, w.Len(), 1e-12, "normal %v", n)
		assert.InDelta(t, 0, u.Dot(n), 1e-12, "normal %v", n)
		assert.InDelta(t, 0, w.Dot(n), 1e-12, "normal %v", n)
		assert.True(t, u.Cross(w).ApproxEqualThreshold(n, 1e-12), "normal %v", n)
	}
}

func TestProjectToPlaneKeepsWinding(t *testing.T) {
	n := Vec3{0, 0, -1}
	u, w := PlaneBasis(n)
	a := ProjectToPlane(Vec3{0, 0, 5}, u, w)
	b := ProjectToPlane(Vec3{0, 1, 5}, u, w)
	c := ProjectToPlane(Vec3{1, 0, 5}, u, w)
	// (a, b, c) is counter-clockwise around -z
	assert.Greater(t, Area2(a, b, c), 0.0)
}

func TestVecBuffers(t *testing.T) {
	buf := make([]float64, 6)
	PutVec(buf, 1, Vec3{4, 5, 6})
	assert.Equal(t, []float64{0, 0, 0, 4, 5, 6}, buf)
	assert.Equal(t, Vec3{4, 5, 6}, VecAt(buf, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, -1, 1))
	assert.Equal(t, -1, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}

func TestAssertTrue(t *testing.T) {
	assert.NotPanics(t, func() { AssertTrue(true) })
	assert.PanicsWithValue(t, "boom", func() { AssertTrue(false, "boom") })
	assert.Panics(t, func() { AssertTrue(false) })
}
