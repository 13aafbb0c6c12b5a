package simspace

import (
	"errors"
	"fmt"
)

var (
	// ErrPhaseViolation is returned when IndexTimeDistance is called on
	// a space whose phase flag has been switched to the query phase.
	ErrPhaseViolation = errors.New("index-time distance is accessible only during the indexing phase")

	// ErrUnsupportedDenseExtract is returned when dense extraction is
	// requested from a representation that cannot provide it.
	ErrUnsupportedDenseExtract = errors.New("dense extraction is not supported by this space")
)

// ErrParse is a named error type for a malformed dataset record.
//
// The underlying cause can be accessed via errors.Unwrap.
type ErrParse struct {
	Line    int    // 1-based line number, 0 if unknown
	Content string // the offending record text
	cause   error
}

// NewErrParse wraps cause with the record's line number and content.
func NewErrParse(line int, content string, cause error) *ErrParse {
	return &ErrParse{Line: line, Content: content, cause: cause}
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("failed to parse line #%d %q: %v", e.Line, e.Content, e.cause)
}

func (e *ErrParse) Unwrap() error { return e.cause }

// ErrDimensionMismatch is a named error type for dense operands of
// unequal or zero length presented to a metric.
type ErrDimensionMismatch struct {
	Expected int // Expected element count
	Actual   int // Actual element count
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrElemRange is a named error type for a dense extraction requesting
// more elements than an object holds.
type ErrElemRange struct {
	Requested int
	Count     int
}

func (e *ErrElemRange) Error() string {
	return fmt.Sprintf("element range exceeded: requested %d of %d elements", e.Requested, e.Count)
}
