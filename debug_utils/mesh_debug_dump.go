package debug_utils

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gorustyt/meshflat/common/rw"
	"github.com/gorustyt/meshflat/simplify"
)

// DumpMeshToObj writes m as a Wavefront OBJ object. Face indices are 1-based.
func DumpMeshToObj(m *simplify.Mesh, name string, w *rw.ReaderWriter) error {
	if w == nil {
		return errors.New("DumpMeshToObj: input IO is null")
	}

	w.WriteString("# meshflat\n")
	w.WriteString(fmt.Sprintf("o %s\n", name))

	w.WriteString("\n")

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Positions[i*3:]
		w.WriteString(fmt.Sprintf("v %f %f %f\n", v[0], v[1], v[2]))
	}

	w.WriteString("\n")

	for i := 0; i < m.FaceCount(); i++ {
		t := m.Indices[i*3:]
		w.WriteString(fmt.Sprintf("f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1))
	}

	return nil
}

const MESH_MAGIC = ('m' << 24) | ('f' << 16) | ('l' << 8) | 't'

const MESH_VERSION = 1

// header: magic, version, vertex count, face count, normals flag
const meshHeaderSize = 4*4 + 1

// DumpMesh writes m in the little-endian binary dump format read back by
// ReadMesh. Positions and normals keep full float64 precision.
func DumpMesh(m *simplify.Mesh, w *rw.ReaderWriter) error {
	if w == nil {
		return errors.New("DumpMesh: input IO is null")
	}
	if err := m.Validate(); err != nil {
		return err
	}

	w.WriteInt32(MESH_MAGIC)
	w.WriteInt32(MESH_VERSION)
	w.WriteInt32(m.VertexCount())
	w.WriteInt32(m.FaceCount())
	w.WriteInt8(len(m.Normals) > 0)

	w.WriteFloat64s(m.Positions)
	w.WriteInt32s(m.Indices)
	if len(m.Normals) > 0 {
		w.WriteFloat64s(m.Normals)
	}
	return nil
}

func ReadMesh(r *rw.ReaderWriter) (*simplify.Mesh, error) {
	if r == nil {
		return nil, errors.New("ReadMesh: input IO is null")
	}
	if r.Size() < meshHeaderSize {
		return nil, errors.Errorf("ReadMesh: %d bytes is too short for a header", r.Size())
	}
	magic := r.ReadInt32()
	version := r.ReadInt32()
	if magic != MESH_MAGIC {
		return nil, errors.New("ReadMesh: Bad voodoo")
	}
	if version != MESH_VERSION {
		return nil, errors.Errorf("ReadMesh: Bad version %d", version)
	}

	nverts := int(r.ReadInt32())
	nfaces := int(r.ReadInt32())
	hasNormals := r.ReadUInt8() != 0
	if nverts < 0 || nfaces < 0 {
		return nil, errors.Errorf("ReadMesh: bad counts %d verts, %d faces", nverts, nfaces)
	}
	want := nverts*3*8 + nfaces*3*4
	if hasNormals {
		want += nfaces * 3 * 8
	}
	if r.Size() != want {
		return nil, errors.Errorf("ReadMesh: body is %d bytes, want %d", r.Size(), want)
	}

	m := &simplify.Mesh{
		Positions: make([]float64, nverts*3),
		Indices:   make([]int, nfaces*3),
	}
	r.ReadFloat64s(m.Positions)
	r.ReadInts(m.Indices)
	if hasNormals {
		m.Normals = make([]float64, nfaces*3)
		r.ReadFloat64s(m.Normals)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LogReports logs the totals over all passes. The passes themselves are
// logged by simplify.Run.
func LogReports(log *zap.Logger, reports []*simplify.Report) {
	total := simplify.Report{}
	for _, r := range reports {
		total.Parts += r.Parts
		total.Simplified += r.Simplified
		total.Rejected += r.Rejected
		total.VerticesRemoved += r.VerticesRemoved
		total.FacesRemoved += r.FacesRemoved
		total.FacesAdded += r.FacesAdded
	}
	log.Info("=== TOTAL",
		zap.Int("passes", len(reports)),
		zap.Int("parts", total.Parts),
		zap.Int("simplified", total.Simplified),
		zap.Int("rejected", total.Rejected),
		zap.Int("vertsRemoved", total.VerticesRemoved),
		zap.Int("facesRemoved", total.FacesRemoved),
		zap.Int("facesAdded", total.FacesAdded))
}
