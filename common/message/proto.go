// Package message encodes meshes and pass reports in the protobuf wire
// format, so a host process can decode them with a generated message:
//
//	message Mesh {
//	  repeated double positions = 1;
//	  repeated int64  indices   = 2;
//	  repeated double normals   = 3;
//	}
//	message Report {
//	  int64 pass = 1; int64 parts = 2; int64 simplified = 3; int64 rejected = 4;
//	  int64 vertices_removed = 5; int64 faces_removed = 6; int64 faces_added = 7;
//	}
package message

import (
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gorustyt/meshflat/simplify"
)

const (
	meshPositions protowire.Number = 1
	meshIndices   protowire.Number = 2
	meshNormals   protowire.Number = 3
)

const (
	reportPass protowire.Number = iota + 1
	reportParts
	reportSimplified
	reportRejected
	reportVerticesRemoved
	reportFacesRemoved
	reportFacesAdded
)

func appendDoubles(b []byte, num protowire.Number, vals []float64) []byte {
	if len(vals) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(len(vals)*8))
	for _, v := range vals {
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

func appendInts(b []byte, num protowire.Number, vals []int) []byte {
	if len(vals) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendInt(b []byte, num protowire.Number, v int) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func EncodeMesh(m *simplify.Mesh) []byte {
	var b []byte
	b = appendDoubles(b, meshPositions, m.Positions)
	b = appendInts(b, meshIndices, m.Indices)
	b = appendDoubles(b, meshNormals, m.Normals)
	return b
}

// DecodeMesh accepts packed and unpacked repeated fields and skips unknown
// ones. The result is validated.
func DecodeMesh(data []byte) (*simplify.Mesh, error) {
	m := &simplify.Mesh{}
	err := walk(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case meshPositions:
			return consumeDoubles(typ, b, &m.Positions)
		case meshIndices:
			return consumeInts(typ, b, &m.Indices)
		case meshNormals:
			return consumeDoubles(typ, b, &m.Normals)
		}
		return notMine, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "message: decode mesh")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func EncodeReport(r *simplify.Report) []byte {
	var b []byte
	b = appendInt(b, reportPass, r.Pass)
	b = appendInt(b, reportParts, r.Parts)
	b = appendInt(b, reportSimplified, r.Simplified)
	b = appendInt(b, reportRejected, r.Rejected)
	b = appendInt(b, reportVerticesRemoved, r.VerticesRemoved)
	b = appendInt(b, reportFacesRemoved, r.FacesRemoved)
	b = appendInt(b, reportFacesAdded, r.FacesAdded)
	return b
}

func DecodeReport(data []byte) (*simplify.Report, error) {
	r := &simplify.Report{}
	fields := map[protowire.Number]*int{
		reportPass:            &r.Pass,
		reportParts:           &r.Parts,
		reportSimplified:      &r.Simplified,
		reportRejected:        &r.Rejected,
		reportVerticesRemoved: &r.VerticesRemoved,
		reportFacesRemoved:    &r.FacesRemoved,
		reportFacesAdded:      &r.FacesAdded,
	}
	err := walk(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		dst, ok := fields[num]
		if !ok || typ != protowire.VarintType {
			return notMine, nil
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		*dst = int(int64(v))
		return n, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "message: decode report")
	}
	return r, nil
}

// notMine is returned by a field handler that leaves the field to be skipped.
const notMine = -1

// walk calls fn for every field of data with the bytes following its tag. fn
// returns how many of them it consumed, or notMine.
func walk(data []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		n, err := fn(num, typ, data)
		if err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
		if n == notMine {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
		}
		data = data[n:]
	}
	return nil
}

func consumeDoubles(typ protowire.Type, b []byte, dst *[]float64) (int, error) {
	switch typ {
	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		*dst = append(*dst, math.Float64frombits(v))
		return n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		if len(packed)%8 != 0 {
			return 0, errors.Errorf("packed doubles of %d bytes", len(packed))
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed64(packed)
			*dst = append(*dst, math.Float64frombits(v))
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, errors.Errorf("unexpected wire type %d", typ)
}

func consumeInts(typ protowire.Type, b []byte, dst *[]int) (int, error) {
	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		*dst = append(*dst, int(int64(v)))
		return n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			*dst = append(*dst, int(int64(v)))
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, errors.Errorf("unexpected wire type %d", typ)
}
