package simplify

import (
	"github.com/pkg/errors"

	"github.com/gorustyt/meshflat/common"
)

// Mesh is the flat buffer form handed in by callers and handed back after a
// pass: 3 floats per vertex, 3 indices per face and, optionally, 3 floats of
// unit normal per face.
type Mesh struct {
	Positions []float64
	Indices   []int
	Normals   []float64
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }
func (m *Mesh) FaceCount() int   { return len(m.Indices) / 3 }

// Validate checks buffer shapes and index ranges. It does not look at
// topology; that is the job of the adjacency builder.
func (m *Mesh) Validate() error {
	if m == nil {
		return errors.Wrap(ErrInvalidMesh, "nil mesh")
	}
	if len(m.Positions)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "position buffer length %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Indices) {
		return errors.Wrapf(ErrInvalidMesh, "normal buffer length %d, want %d", len(m.Normals), len(m.Indices))
	}
	nv := m.VertexCount()
	for i := 0; i < m.FaceCount(); i++ {
		t := common.GetVert3(m.Indices, i)
		for _, v := range t {
			if v < 0 || v >= nv {
				return errors.Wrapf(ErrInvalidMesh, "face %d references vertex %d of %d", i, v, nv)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return errors.Wrapf(ErrInvalidMesh, "face %d repeats a vertex: %v", i, t)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: append([]float64(nil), m.Positions...),
		Indices:   append([]int(nil), m.Indices...),
		Normals:   append([]float64(nil), m.Normals...),
	}
}
