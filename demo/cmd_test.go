package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gorustyt/meshflat/common/message"
	"github.com/gorustyt/meshflat/common/rw"
	"github.com/gorustyt/meshflat/debug_utils"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	return cmd.Execute()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestGenerateThenSimplify(t *testing.T) {
	dir := t.TempDir()
	box := filepath.Join(dir, "box.bin")
	require.NoError(t, execute(t, "generate", "--shape", "box", "--size", "3", "-o", box))

	data, err := os.ReadFile(box)
	require.NoError(t, err)
	in, err := debug_utils.ReadMesh(rw.NewMeshBinReader(data))
	require.NoError(t, err)
	require.Equal(t, 56, in.VertexCount())

	cfgPath := filepath.Join(dir, "meshflat.yaml")
	logPath := filepath.Join(dir, "meshflat.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_passes: 3\nlog:\n  file: "+logPath+"\n"), 0o644))

	out := filepath.Join(dir, "box.pb")
	reports := filepath.Join(dir, "reports.pb")
	require.NoError(t, execute(t, "simplify", "-c", cfgPath, "-i", box, "-o", out, "--report", reports))

	data, err = os.ReadFile(out)
	require.NoError(t, err)
	m, err := message.DecodeMesh(data)
	require.NoError(t, err)
	// every side keeps only its border
	assert.Equal(t, 56-24, m.VertexCount())

	data, err = os.ReadFile(reports)
	require.NoError(t, err)
	var passes []int
	for len(data) > 0 {
		b, n := protowire.ConsumeBytes(data)
		require.Greater(t, n, 0)
		r, err := message.DecodeReport(b)
		require.NoError(t, err)
		passes = append(passes, r.Pass)
		data = data[n:]
	}
	assert.Equal(t, []int{1, 2}, passes)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "mesh simplified")
}

func TestSimplifyDumpToObj(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.pb")
	require.NoError(t, execute(t, "simplify", "--shape", "grid", "--size", "3", "--passes", "2", "-o", out))

	again := filepath.Join(dir, "grid.out")
	require.NoError(t, execute(t, "simplify", "-i", out, "-o", again, "--format", "obj"))
	data, err := os.ReadFile(again)
	require.NoError(t, err)
	obj := string(data)
	assert.Contains(t, obj, "o grid\n")
	assert.Equal(t, 8, strings.Count(obj, "\nv "))
	assert.Equal(t, 6, strings.Count(obj, "\nf "))
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, execute(t, "generate", "--shape", "torus", "-o", filepath.Join(dir, "x.obj")))
	assert.Error(t, execute(t, "generate", "--shape", "grid", "-o", filepath.Join(dir, "x.stl")))
	assert.Error(t, execute(t, "generate", "--shape", "grid"))
	assert.Error(t, execute(t, "simplify", "-i", filepath.Join(dir, "missing.bin")))
	assert.Error(t, execute(t, "simplify", "-i", filepath.Join(dir, "mesh.obj")))
	assert.Error(t, execute(t, "simplify", "--passes", "0"))
}
