package simspace

import "sync/atomic"

// Float constrains the value domain of a space. Spaces are
// instantiated for float32 and float64 only.
type Float interface {
	float32 | float64
}

// Record is one raw dataset record as returned by ReadNextRecord,
// before object construction.
type Record struct {
	// Text is the record payload still in textual form.
	Text string
	// Label is the record's label if the representation carries it at
	// the record level, NoLabel otherwise.
	Label Label
	// ExternID is the record's external identifier, empty if the
	// representation has none.
	ExternID string
}

// Space is the capability contract every data representation
// satisfies: object construction from text, text serialization,
// dataset open/read/write and the phase-gated distance function.
//
// Implementations are safe for concurrent distance evaluation over
// immutable objects. Cursors are not: a ReadCursor or WriteCursor must
// be advanced by a single owner at a time.
type Space[T Float] interface {
	// Clone returns an independent copy reset to the index phase. The
	// copy shares no mutable state with the receiver.
	Clone() Space[T]

	// IndexTimeDistance is the distance entry point for
	// index-construction code. It fails with ErrPhaseViolation once the
	// instance has been switched to the query phase.
	IndexTimeDistance(a, b *Object) (T, error)

	// Distance computes the configured metric without a phase check.
	// It is intended for the library's own query-evaluation code;
	// index-construction callers must go through IndexTimeDistance.
	Distance(a, b *Object) (T, error)

	// SetIndexPhase switches the instance to the index phase.
	SetIndexPhase()

	// SetQueryPhase switches the instance to the query phase,
	// disabling IndexTimeDistance.
	SetQueryPhase()

	// String describes the space kind and its configuration.
	String() string

	// CreateObjFromString parses one textual record into an object.
	// When cur is non-nil it may be consulted and updated, e.g. to
	// infer and verify dimensionality across records.
	CreateObjFromString(id ID, label Label, s string, cur *ReadCursor) (*Object, error)

	// CreateStringFromObj is the inverse of CreateObjFromString. It is
	// lossless for the value domain.
	CreateStringFromObj(o *Object, externID string) (string, error)

	// OpenReadHeader opens a dataset source, consumes any header and
	// returns an initialized cursor.
	OpenReadHeader(path string) (*ReadCursor, error)

	// OpenWriteHeader opens a dataset destination and writes any
	// header derived from the dataset.
	OpenWriteHeader(dataset []*Object, path string) (*WriteCursor, error)

	// ReadNextRecord returns the next raw record and advances the
	// cursor's line counter. At end of source it returns io.EOF.
	ReadNextRecord(cur *ReadCursor) (Record, error)

	// WriteNextRecord serializes one object as one record, appending a
	// newline.
	WriteNextRecord(o *Object, externID string, cur *WriteCursor) error

	// ApproxEqual compares two objects by value. Floating-point fields
	// are compared within tolerance where the representation requires
	// it; integer and text fields exactly. Verification only, never on
	// production paths.
	ApproxEqual(a, b *Object) bool

	// DenseElemCount returns the number of elements for dense-like
	// representations and 0 where no fixed element count applies.
	DenseElemCount(o *Object) int

	// DenseVectFromObj extracts the first n elements as a dense
	// sequence. Representations without dense support fail with
	// ErrUnsupportedDenseExtract; n beyond the element count fails
	// with ErrElemRange.
	DenseVectFromObj(o *Object, n int) ([]T, error)
}

// Phase is the per-instance index/query phase flag. The zero value is
// the index phase. Concrete spaces embed it to obtain the phase
// switching half of the Space contract.
//
// The flag is atomic, so flipping it concurrently with distance calls
// is not a data race. The usage discipline still stands: one instance
// per phase, query-time consumers operate on a Clone.
type Phase struct {
	query atomic.Bool
}

// SetIndexPhase switches back to the index phase.
func (p *Phase) SetIndexPhase() { p.query.Store(false) }

// SetQueryPhase switches to the query phase.
func (p *Phase) SetQueryPhase() { p.query.Store(true) }

// IndexPhase reports whether the instance is in the index phase.
func (p *Phase) IndexPhase() bool { return !p.query.Load() }
