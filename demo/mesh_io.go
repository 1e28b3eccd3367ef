package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gorustyt/meshflat/common/message"
	"github.com/gorustyt/meshflat/common/rw"
	"github.com/gorustyt/meshflat/debug_utils"
	"github.com/gorustyt/meshflat/simplify"
)

func sampleMesh(shape string, size int) (*simplify.Mesh, error) {
	if size < 2 && shape != "fold" {
		return nil, errors.Errorf("size %d is too small", size)
	}
	switch shape {
	case "grid":
		return simplify.GridMesh(size, size, nil), nil
	case "ridges":
		return simplify.GridMesh(size, size, func(x, y int) float64 {
			if x%4 == 0 {
				return 1
			}
			return 0
		}), nil
	case "fold":
		return simplify.FoldMesh(), nil
	case "box":
		return simplify.BoxMesh(size), nil
	}
	return nil, errors.Errorf("unknown shape %q", shape)
}

func formatOf(path, format string) string {
	if format != "" {
		return format
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func readMesh(path string) (*simplify.Mesh, error) {
	format := formatOf(path, "")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	switch format {
	case "bin":
		return debug_utils.ReadMesh(rw.NewMeshBinReader(data))
	case "pb":
		return message.DecodeMesh(data)
	}
	return nil, errors.Errorf("%s: unknown mesh format %q", path, format)
}

func encodeMesh(m *simplify.Mesh, format, name string) ([]byte, error) {
	switch format {
	case "obj":
		w := rw.NewMeshBinWriter()
		if err := debug_utils.DumpMeshToObj(m, name, w); err != nil {
			return nil, err
		}
		return w.GetWriteBytes(), nil
	case "bin":
		w := rw.NewMeshBinWriter()
		if err := debug_utils.DumpMesh(m, w); err != nil {
			return nil, err
		}
		return w.GetWriteBytes(), nil
	case "pb":
		return message.EncodeMesh(m), nil
	}
	return nil, errors.Errorf("unknown mesh format %q", format)
}

func writeMesh(m *simplify.Mesh, opts *options) error {
	name := strings.TrimSuffix(filepath.Base(opts.out), filepath.Ext(opts.out))
	data, err := encodeMesh(m, formatOf(opts.out, opts.format), name)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(opts.out, data, 0o644))
}

// encodeReports length-prefixes every encoded report, the framing protobuf
// uses for delimited streams.
func encodeReports(reports []*simplify.Report) []byte {
	var b []byte
	for _, r := range reports {
		b = protowire.AppendBytes(b, message.EncodeReport(r))
	}
	return b
}
