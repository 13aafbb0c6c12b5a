package sparse

import "fmt"

// ErrDuplicateIndex is a named error type for a sparse vector
// containing the same index twice. It carries both offending
// (index, value) pairs.
type ErrDuplicateIndex struct {
	PrevIndex uint32
	PrevValue float64
	Index     uint32
	Value     float64
	Pos       int // position of the second pair in the sorted sequence
}

func (e *ErrDuplicateIndex) Error() string {
	return fmt.Sprintf("repeating index: prevIndex = %d prev value: %v current index: %d value = %v (i=%d)",
		e.PrevIndex, e.PrevValue, e.Index, e.Value, e.Pos)
}

// ErrUnsortedIndex is a named error type for a sparse vector whose
// indices are not strictly increasing.
type ErrUnsortedIndex struct {
	PrevIndex uint32
	PrevValue float64
	Index     uint32
	Value     float64
	Pos       int
}

func (e *ErrUnsortedIndex) Error() string {
	return fmt.Sprintf("indices are not sorted: prevIndex = %d prev value: %v current index: %d value = %v (i=%d)",
		e.PrevIndex, e.PrevValue, e.Index, e.Value, e.Pos)
}
