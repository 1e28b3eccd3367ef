package simplify

import (
	"fmt"
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/gorustyt/meshflat/common"
)

// RemoveFaces drops the listed faces. Surviving faces keep their order.
func (g *Graph) RemoveFaces(faces []int) {
	if len(faces) == 0 {
		return
	}
	drop := make([]bool, len(g.faces))
	for _, f := range faces {
		common.AssertTrue(f >= 0 && f < len(g.faces), fmt.Sprintf("RemoveFaces: face %d of %d", f, len(g.faces)))
		drop[f] = true
	}
	kept := g.faces[:0]
	for i, f := range g.faces {
		if !drop[i] {
			kept = append(kept, f)
		}
	}
	g.faces = kept
	g.invalidate()
}

// RemoveVertices drops the listed vertices and shifts every surviving index
// down by the number of removed vertices below it. The list is sorted and
// walked once from the highest index down.
//
// The caller must already have removed every face using these vertices;
// a face still pointing at one, or an index beyond the vertex count, is a
// bug and panics.
func (g *Graph) RemoveVertices(verts []int) {
	if len(verts) == 0 {
		return
	}
	rem := slices.Clone(verts)
	slices.Sort(rem)
	rem = slices.Compact(rem)
	nv := len(g.verts)
	common.AssertTrue(rem[0] >= 0 && rem[len(rem)-1] < nv,
		fmt.Sprintf("RemoveVertices: index out of range [%d, %d] of %d", rem[0], rem[len(rem)-1], nv))

	// vertex -> face slots (face*3 + corner) referencing it
	slots := make([][]int, nv)
	for fi := range g.faces {
		for k, v := range g.faces[fi].Verts {
			slots[v] = append(slots[v], fi*3+k)
		}
	}

	pending := len(rem)
	for old := nv - 1; old >= 0 && pending > 0; old-- {
		if rem[pending-1] == old {
			common.AssertTrue(len(slots[old]) == 0,
				fmt.Sprintf("RemoveVertices: vertex %d is still used by %d faces", old, len(slots[old])))
			pending--
			continue
		}
		newIndex := old - pending
		for _, s := range slots[old] {
			g.faces[s/3].Verts[s%3] = newIndex
		}
	}

	kept := g.verts[:0]
	r := 0
	for i, v := range g.verts {
		if r < len(rem) && rem[r] == i {
			r++
			continue
		}
		kept = append(kept, v)
	}
	g.verts = kept
	g.invalidate()
}

// triangulateOutline ear-clips loop in the plane with the given normal. The
// triangles keep the loop's winding, use no new vertices and take normal as
// their own so they stay coplanar with the faces they replace.
func (g *Graph) triangulateOutline(loop []int, normal common.Vec3) ([]Face, error) {
	if len(loop) < 3 {
		return nil, errors.Wrapf(ErrTriangulationFailed, "outline has %d vertices", len(loop))
	}
	if normal.Len() == 0 {
		return nil, errors.Wrap(ErrTriangulationFailed, "outline plane has no normal")
	}

	u, w := common.PlaneBasis(normal)
	pts := make([]common.Vec2, len(loop))
	indices := make([]int, len(loop))
	for i, v := range loop {
		pts[i] = common.ProjectToPlane(g.verts[v], u, w)
		indices[i] = i
	}
	area := common.PolyArea2(pts, indices)
	if math.Abs(area) <= common.PolyEpsilon {
		return nil, errors.Wrap(ErrTriangulationFailed, "outline has no area")
	}
	if area < 0 {
		// Wound against the normal: mirror the projection instead of the loop.
		for i := range pts {
			pts[i][1] = -pts[i][1]
		}
	}

	tris, ok := common.Triangulate(pts, indices)
	if !ok {
		return nil, errors.Wrapf(ErrTriangulationFailed, "no ear left after %d triangles", len(tris)/3)
	}
	faces := make([]Face, 0, len(tris)/3)
	for i := 0; i+2 < len(tris); i += 3 {
		t := [3]int{loop[tris[i]], loop[tris[i+1]], loop[tris[i+2]]}
		faces = append(faces, Face{Verts: t, Normal: normal})
	}
	return faces, nil
}

// FillOutline triangulates loop and appends the new faces.
func (g *Graph) FillOutline(loop []int, normal common.Vec3) error {
	faces, err := g.triangulateOutline(loop, normal)
	if err != nil {
		return err
	}
	g.faces = append(g.faces, faces...)
	g.invalidate()
	return nil
}
