// Package wordembed implements the word-embedding space: dense
// numeric vectors with a leading external identifier token per record
// (e.g. GloVe or word2vec text dumps) and a selectable L2 or cosine
// metric.
package wordembed

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/densevec"
	"github.com/hupe1980/simspace/vmath"
)

// ErrMissingExternID is returned when a record contains no whitespace
// and therefore no identifier token.
var ErrMissingExternID = errors.New("no whitespace separator: missing external identifier")

// ErrInvalidExternID is a named error type for an external identifier
// that is not an atomic token.
type ErrInvalidExternID struct {
	ID string
}

func (e *ErrInvalidExternID) Error() string {
	return fmt.Sprintf("external identifier %q contains whitespace", e.ID)
}

// Space is a word-embedding vector space. Payload handling is
// delegated to the generic dense-vector space; this type adds the
// external-identifier record framing.
type Space[T simspace.Float] struct {
	dense *densevec.Space[T]
}

var _ simspace.Space[float32] = (*Space[float32])(nil)

// New creates a word-embedding space with the given metric. The
// metric is fixed for the lifetime of the instance and preserved by
// Clone.
func New[T simspace.Float](metric vmath.Metric) (*Space[T], error) {
	dense, err := densevec.New[T](metric)
	if err != nil {
		return nil, err
	}

	return &Space[T]{dense: dense}, nil
}

// Metric returns the configured metric.
func (s *Space[T]) Metric() vmath.Metric { return s.dense.Metric() }

// Clone returns an independent copy with the same metric, reset to
// the index phase.
func (s *Space[T]) Clone() simspace.Space[T] {
	c, err := New[T](s.dense.Metric())
	if err != nil {
		// Unreachable, the metric was validated at construction.
		panic(err)
	}

	return c
}

func (s *Space[T]) String() string {
	m := s.dense.Metric()
	if !m.Valid() {
		panic(fmt.Sprintf("wordembed: invalid metric code %d", int(m)))
	}

	return fmt.Sprintf("word embeddings, distance type: %s", m)
}

// SetIndexPhase switches the instance to the index phase.
func (s *Space[T]) SetIndexPhase() { s.dense.SetIndexPhase() }

// SetQueryPhase switches the instance to the query phase.
func (s *Space[T]) SetQueryPhase() { s.dense.SetQueryPhase() }

// IndexTimeDistance is the phase-checked distance entry point for
// index-construction code.
func (s *Space[T]) IndexTimeDistance(a, b *simspace.Object) (T, error) {
	if !s.dense.IndexPhase() {
		return 0, simspace.ErrPhaseViolation
	}

	return s.Distance(a, b)
}

// Distance computes the configured metric over the dense payloads.
// Both operands must carry equal, non-zero element counts.
func (s *Space[T]) Distance(a, b *simspace.Object) (T, error) {
	return s.dense.Distance(a, b)
}

// CreateObjFromString parses the dense numeric payload of a record.
// The external identifier has already been split off by
// ReadNextRecord.
func (s *Space[T]) CreateObjFromString(id simspace.ID, label simspace.Label, str string, cur *simspace.ReadCursor) (*simspace.Object, error) {
	return s.dense.CreateObjFromString(id, label, str, cur)
}

// CreateStringFromObj serializes an object as
// "<externID> <dense payload>". The identifier must be an atomic
// token; an identifier containing whitespace fails with
// *ErrInvalidExternID. An empty identifier emits the payload alone.
func (s *Space[T]) CreateStringFromObj(o *simspace.Object, externID string) (string, error) {
	if simspace.HasWhitespace(externID) {
		return "", &ErrInvalidExternID{ID: externID}
	}

	str, err := s.dense.CreateStringFromObj(o, "")
	if err != nil {
		return "", err
	}
	if externID != "" {
		str = externID + " " + str
	}

	return str, nil
}

// OpenReadHeader opens a source. Word-embedding text dumps carry no
// header line.
func (s *Space[T]) OpenReadHeader(path string) (*simspace.ReadCursor, error) {
	return s.dense.OpenReadHeader(path)
}

// OpenWriteHeader opens a destination.
func (s *Space[T]) OpenWriteHeader(dataset []*simspace.Object, path string) (*simspace.WriteCursor, error) {
	return s.dense.OpenWriteHeader(dataset, path)
}

// ReadNextRecord splits the next line at its first whitespace into
// the external identifier and the numeric payload. A line without
// whitespace is malformed and fails with an *ErrParse wrapping
// ErrMissingExternID.
func (s *Space[T]) ReadNextRecord(cur *simspace.ReadCursor) (simspace.Record, error) {
	line, err := cur.ReadLine()
	if err != nil {
		return simspace.Record{}, err
	}

	pos := strings.IndexFunc(line, unicode.IsSpace)
	if pos < 0 {
		return simspace.Record{}, simspace.NewErrParse(cur.Line(), line, ErrMissingExternID)
	}

	return simspace.Record{
		Text:     line[pos+1:],
		Label:    simspace.NoLabel,
		ExternID: line[:pos],
	}, nil
}

// WriteNextRecord appends one serialized object as one line.
func (s *Space[T]) WriteNextRecord(o *simspace.Object, externID string, cur *simspace.WriteCursor) error {
	str, err := s.CreateStringFromObj(o, externID)
	if err != nil {
		return err
	}

	return cur.WriteLine(str)
}

// ApproxEqual compares the dense payloads within tolerance.
func (s *Space[T]) ApproxEqual(a, b *simspace.Object) bool {
	return s.dense.ApproxEqual(a, b)
}

// DenseElemCount returns the number of vector elements.
func (s *Space[T]) DenseElemCount(o *simspace.Object) int {
	return s.dense.DenseElemCount(o)
}

// DenseVectFromObj copies the first n elements out of the object.
func (s *Space[T]) DenseVectFromObj(o *simspace.Object, n int) ([]T, error) {
	return s.dense.DenseVectFromObj(o, n)
}
