package rw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	w := NewMeshBinWriter()
	w.WriteInt32(int32(-7))
	w.WriteInt32(42)
	w.WriteInt32s([]int{1, 2, 3})
	w.WriteFloat64(0.1)
	w.WriteFloat64s([]float64{-1.5, 1e300})
	w.WriteInt8(true)
	require.Equal(t, 4+4+12+8+16+1, w.Size())

	r := NewMeshBinReader(w.GetWriteBytes())
	assert.Equal(t, int32(-7), r.ReadInt32())
	assert.Equal(t, uint32(42), r.ReadUInt32())
	ints := make([]int, 3)
	r.ReadInts(ints)
	assert.Equal(t, []int{1, 2, 3}, ints)
	assert.Equal(t, 0.1, r.ReadFloat64())
	floats := make([]float64, 2)
	r.ReadFloat64s(floats)
	assert.Equal(t, []float64{-1.5, 1e300}, floats)
	assert.Equal(t, uint8(1), r.ReadUInt8())
	assert.Zero(t, r.Size())
}

func TestByteOrder(t *testing.T) {
	w := NewMeshBinWriter()
	w.WriteInt32(uint32(0x01020304))
	assert.Equal(t, []byte{4, 3, 2, 1}, w.GetWriteBytes())

	r := NewMeshBinReader([]byte{4, 3, 2, 1})
	assert.Equal(t, uint32(0x01020304), r.ReadUInt32())
}

func TestShortReadPanics(t *testing.T) {
	r := NewMeshBinReader([]byte{1, 2})
	assert.Panics(t, func() { r.ReadInt32() })
}

func TestUnsupportedTypePanics(t *testing.T) {
	w := NewMeshBinWriter()
	assert.Panics(t, func() { w.WriteInt32("x") })
}
