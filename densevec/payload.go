package densevec

import (
	"unsafe"

	"github.com/hupe1980/simspace"
)

// ElemSize returns the payload size of one element of type T.
func ElemSize[T simspace.Float]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// ToPayload encodes a dense vector into an object payload. The values
// are laid out contiguously in native element order; the payload never
// leaves the process, datasets serialize through text.
func ToPayload[T simspace.Float](vals []T) []byte {
	if len(vals) == 0 {
		return nil
	}

	n := len(vals) * ElemSize[T]()
	buf := make([]byte, n)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), n))

	return buf
}

// FromPayload reinterprets an object payload as a dense vector without
// copying. The result aliases the payload and must be treated as
// read-only.
func FromPayload[T simspace.Float](p []byte) []T {
	if len(p) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&p[0])), len(p)/ElemSize[T]())
}

// ElemCount returns the number of elements stored in a payload.
func ElemCount[T simspace.Float](p []byte) int {
	return len(p) / ElemSize[T]()
}
