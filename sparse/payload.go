package sparse

import (
	"unsafe"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/vmath"
)

// Elem is one (index, value) element of a sparse vector, ordered by
// strictly increasing Index.
type Elem[T simspace.Float] = vmath.SparseElem[T]

func elemSize[T simspace.Float]() int {
	var e Elem[T]
	return int(unsafe.Sizeof(e))
}

func valueBits[T simspace.Float]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// toPayload encodes a validated, sorted element sequence into the
// object payload: the elements' native memory layout, contiguous and
// in order. The payload never leaves the process, datasets serialize
// through text.
func toPayload[T simspace.Float](elems []Elem[T]) []byte {
	if len(elems) == 0 {
		return nil
	}

	n := len(elems) * elemSize[T]()
	buf := make([]byte, n)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), n))

	return buf
}

// FromPayload reinterprets an object payload as a sorted element
// sequence without copying. The result aliases the payload and must
// be treated as read-only.
func FromPayload[T simspace.Float](p []byte) []Elem[T] {
	if len(p) == 0 {
		return nil
	}

	return unsafe.Slice((*Elem[T])(unsafe.Pointer(&p[0])), len(p)/elemSize[T]())
}

// Validate checks the strict-monotonicity invariant: indices must be
// strictly increasing. Violations are reported as *ErrDuplicateIndex
// or *ErrUnsortedIndex naming both offending pairs.
func Validate[T simspace.Float](elems []Elem[T]) error {
	for i := 1; i < len(elems); i++ {
		prev, cur := elems[i-1], elems[i]

		if cur.Index == prev.Index {
			return &ErrDuplicateIndex{
				PrevIndex: prev.Index, PrevValue: float64(prev.Value),
				Index: cur.Index, Value: float64(cur.Value), Pos: i,
			}
		}
		if cur.Index < prev.Index {
			return &ErrUnsortedIndex{
				PrevIndex: prev.Index, PrevValue: float64(prev.Value),
				Index: cur.Index, Value: float64(cur.Value), Pos: i,
			}
		}
	}

	return nil
}
