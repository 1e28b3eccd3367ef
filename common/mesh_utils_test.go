package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triArea(verts []Vec2, tris []int) float64 {
	area := 0.0
	for i := 0; i < len(tris); i += 3 {
		area += Area2(verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]) / 2
	}
	return area
}

func TestPrevNext(t *testing.T) {
	assert.Equal(t, 3, Prev(0, 4))
	assert.Equal(t, 1, Prev(2, 4))
	assert.Equal(t, 0, Next(3, 4))
	assert.Equal(t, 3, Next(2, 4))
}

func TestSegmentPredicates(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{2, 0}
	assert.True(t, Left(a, b, Vec2{1, 1}))
	assert.False(t, Left(a, b, Vec2{1, 0}))
	assert.True(t, LeftOn(a, b, Vec2{1, 0}))
	assert.True(t, Collinear(a, b, Vec2{5, 0}))
	assert.True(t, Between(a, b, Vec2{1, 0}))
	assert.False(t, Between(a, b, Vec2{3, 0}))

	assert.True(t, IntersectProp(a, b, Vec2{1, -1}, Vec2{1, 1}))
	// touching at an endpoint is not a proper intersection
	assert.False(t, IntersectProp(a, b, Vec2{1, 0}, Vec2{1, 1}))
	assert.True(t, Intersect(a, b, Vec2{1, 0}, Vec2{1, 1}))
	assert.False(t, Intersect(a, b, Vec2{0, 1}, Vec2{2, 1}))
}

func TestDiagonalOfConcavePolygon(t *testing.T) {
	// arrow head with the notch at 3
	verts := []Vec2{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}
	indices := []int{0, 1, 2, 3, 4}
	assert.True(t, Diagonal(1, 3, verts, indices))
	assert.True(t, Diagonal(0, 3, verts, indices))
	// passes outside, over the notch
	assert.False(t, Diagonal(2, 4, verts, indices))
	assert.InDelta(t, 20.0, PolyArea2(verts, indices), 1e-12)
}

func TestTriangulateConvex(t *testing.T) {
	verts := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris, ok := Triangulate(verts, []int{0, 1, 2, 3})
	require.True(t, ok)
	require.Len(t, tris, 6)
	assert.InDelta(t, 1, triArea(verts, tris), 1e-12)
	for i := 0; i < len(tris); i += 3 {
		assert.True(t, Left(verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]))
	}
}

func TestTriangulateConcave(t *testing.T) {
	verts := []Vec2{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}
	tris, ok := Triangulate(verts, []int{0, 1, 2, 3, 4})
	require.True(t, ok)
	require.Len(t, tris, 9)
	assert.InDelta(t, 10, triArea(verts, tris), 1e-12)
}

func TestTriangulateUsesIndexValues(t *testing.T) {
	// only every other vertex belongs to the polygon
	verts := []Vec2{{0, 0}, {9, 9}, {1, 0}, {9, 9}, {0, 1}}
	tris, ok := Triangulate(verts, []int{0, 2, 4})
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4}, tris)
}

func TestTriangulateRejectsDegenerate(t *testing.T) {
	verts := []Vec2{{0, 0}, {1, 0}, {2, 0}}
	_, ok := Triangulate(verts, []int{0, 1})
	assert.False(t, ok)
	_, ok = Triangulate(verts, []int{0, 1, 2})
	assert.False(t, ok)
}
