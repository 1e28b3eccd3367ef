package debug_utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gorustyt/meshflat/common/rw"
	"github.com/gorustyt/meshflat/simplify"
)

func TestDumpMeshToObj(t *testing.T) {
	w := rw.NewMeshBinWriter()
	require.NoError(t, DumpMeshToObj(simplify.FoldMesh(), "fold", w))
	out := string(w.GetWriteBytes())

	assert.True(t, strings.HasPrefix(out, "# meshflat\no fold\n"))
	assert.Equal(t, 4, strings.Count(out, "\nv "))
	assert.Contains(t, out, "v 0.000000 0.000000 1.000000\n")
	assert.Contains(t, out, "f 1 2 3\n")
	assert.Contains(t, out, "f 2 1 4\n")

	assert.Error(t, DumpMeshToObj(simplify.FoldMesh(), "fold", nil))
}

func TestDumpMeshRoundTrip(t *testing.T) {
	g, err := simplify.NewGraph(simplify.BoxMesh(3))
	require.NoError(t, err)
	for _, in := range []*simplify.Mesh{simplify.GridMesh(3, 2, nil), g.Mesh()} {
		w := rw.NewMeshBinWriter()
		require.NoError(t, DumpMesh(in, w))

		out, err := ReadMesh(rw.NewMeshBinReader(w.GetWriteBytes()))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestReadMeshRejectsBadInput(t *testing.T) {
	w := rw.NewMeshBinWriter()
	require.NoError(t, DumpMesh(simplify.FoldMesh(), w))
	data := w.GetWriteBytes()

	_, err := ReadMesh(rw.NewMeshBinReader(data[:10]))
	assert.Error(t, err, "short header")

	_, err = ReadMesh(rw.NewMeshBinReader(data[:len(data)-4]))
	assert.Error(t, err, "short body")

	bad := append([]byte(nil), data...)
	bad[0] ^= 0xff
	_, err = ReadMesh(rw.NewMeshBinReader(bad))
	assert.Error(t, err, "magic")

	bad = append([]byte(nil), data...)
	bad[4] = 9
	_, err = ReadMesh(rw.NewMeshBinReader(bad))
	assert.Error(t, err, "version")

	_, err = ReadMesh(nil)
	assert.Error(t, err)
	assert.Error(t, DumpMesh(&simplify.Mesh{Indices: []int{0, 1, 2}}, rw.NewMeshBinWriter()))
}

func TestLogReports(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogReports(zap.New(core), []*simplify.Report{
		{Pass: 1, Parts: 2, Simplified: 2, VerticesRemoved: 5},
		{Pass: 2},
	})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "=== TOTAL", logs.All()[0].Message)
	total := logs.All()[0].ContextMap()
	assert.Equal(t, int64(2), total["passes"])
	assert.Equal(t, int64(2), total["parts"])
	assert.Equal(t, int64(5), total["vertsRemoved"])
}
