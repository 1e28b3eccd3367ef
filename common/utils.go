package common

import "github.com/go-gl/mathgl/mgl64"

type Vec3 = mgl64.Vec3
type Vec2 = mgl64.Vec2

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func GetVert3[T IT](verts []T, index int) []T {
	return verts[index*3 : index*3+3]
}

// AssertTrue panics when ok is false. Used for conditions that can only fail
// because of a bug in the caller, never because of input data.
func AssertTrue(ok bool, msg ...string) {
	if ok {
		return
	}
	if len(msg) > 0 {
		panic(msg[0])
	}
	panic("assertion failed")
}
