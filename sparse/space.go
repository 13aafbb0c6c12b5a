// Package sparse implements the sparse-vector space: each object is a
// sequence of (index, value) pairs sorted by strictly increasing
// index. Duplicate or out-of-order indices are a parse failure, never
// silently repaired.
package sparse

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/vmath"
)

// Space is a sparse numeric vector space.
type Space[T simspace.Float] struct {
	simspace.Phase
	metric vmath.Metric
	dist   func(a, b []Elem[T]) T
}

var _ simspace.Space[float32] = (*Space[float32])(nil)

// New creates a sparse vector space with the given metric.
func New[T simspace.Float](metric vmath.Metric) (*Space[T], error) {
	var dist func(a, b []Elem[T]) T

	switch metric {
	case vmath.MetricL2:
		dist = vmath.SparseL2[T]
	case vmath.MetricCosine:
		dist = vmath.SparseCosineDistance[T]
	default:
		return nil, fmt.Errorf("unsupported metric: %s", metric)
	}

	return &Space[T]{metric: metric, dist: dist}, nil
}

// Metric returns the configured metric.
func (s *Space[T]) Metric() vmath.Metric { return s.metric }

// Clone returns an independent copy reset to the index phase.
func (s *Space[T]) Clone() simspace.Space[T] {
	c, err := New[T](s.metric)
	if err != nil {
		// Unreachable, the metric was validated at construction.
		panic(err)
	}

	return c
}

func (s *Space[T]) String() string {
	return fmt.Sprintf("sparse vector space, distance type: %s", s.metric)
}

// IndexTimeDistance is the phase-checked distance entry point for
// index-construction code.
func (s *Space[T]) IndexTimeDistance(a, b *simspace.Object) (T, error) {
	if !s.IndexPhase() {
		return 0, simspace.ErrPhaseViolation
	}

	return s.Distance(a, b)
}

// Distance computes the configured metric by merging the two sorted
// element sequences. No length restriction applies; sparse vectors of
// any support may be compared.
func (s *Space[T]) Distance(a, b *simspace.Object) (T, error) {
	return s.dist(FromPayload[T](a.Data()), FromPayload[T](b.Data())), nil
}

// NewObjFromElems builds an object directly from an element sequence,
// validating the strict-ordering invariant without sorting. Callers
// constructing vectors programmatically go through here.
func NewObjFromElems[T simspace.Float](id simspace.ID, label simspace.Label, elems []Elem[T]) (*simspace.Object, error) {
	if err := Validate(elems); err != nil {
		return nil, err
	}

	return simspace.NewObject(id, label, toPayload(elems)), nil
}

// CreateObjFromString parses one sparse-vector record:
//
//  1. extract an optional "label:<int>" token,
//  2. normalize "," and ":" to whitespace,
//  3. tokenize alternating (index, value) pairs,
//  4. sort by index,
//  5. reject duplicate indices.
//
// Any failure is reported as an *ErrParse carrying the line number and
// the offending record.
func (s *Space[T]) CreateObjFromString(id simspace.ID, label simspace.Label, str string, cur *simspace.ReadCursor) (*simspace.Object, error) {
	line := 0
	if cur != nil {
		line = cur.Line()
	}

	inlineLabel, rest, err := simspace.ExtractLabel(str)
	if err != nil {
		return nil, simspace.NewErrParse(line, str, err)
	}
	if inlineLabel != simspace.NoLabel {
		label = inlineLabel
	}

	elems, err := parseElems[T](rest)
	if err != nil {
		return nil, simspace.NewErrParse(line, str, err)
	}

	slices.SortFunc(elems, func(a, b Elem[T]) int {
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})

	if err := Validate(elems); err != nil {
		return nil, simspace.NewErrParse(line, str, err)
	}

	return simspace.NewObject(id, label, toPayload(elems)), nil
}

// CreateStringFromObj emits space-separated "index value" pairs with
// full round-trip precision. The external identifier is ignored; this
// representation does not carry one.
func (s *Space[T]) CreateStringFromObj(o *simspace.Object, _ string) (string, error) {
	bitSize := valueBits[T]()

	var sb strings.Builder
	for i, e := range FromPayload[T](o.Data()) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(e.Index), 10))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(float64(e.Value), 'g', -1, bitSize))
	}

	return sb.String(), nil
}

// OpenReadHeader opens a source. Sparse datasets carry no header.
func (s *Space[T]) OpenReadHeader(path string) (*simspace.ReadCursor, error) {
	return simspace.OpenReadCursor(path)
}

// OpenWriteHeader opens a destination. Sparse datasets carry no
// header.
func (s *Space[T]) OpenWriteHeader(_ []*simspace.Object, path string) (*simspace.WriteCursor, error) {
	return simspace.OpenWriteCursor(path)
}

// ReadNextRecord returns the next line verbatim; labels are extracted
// later during object construction.
func (s *Space[T]) ReadNextRecord(cur *simspace.ReadCursor) (simspace.Record, error) {
	line, err := cur.ReadLine()
	if err != nil {
		return simspace.Record{}, err
	}

	return simspace.Record{Text: line, Label: simspace.NoLabel}, nil
}

// WriteNextRecord appends one serialized object as one line.
func (s *Space[T]) WriteNextRecord(o *simspace.Object, externID string, cur *simspace.WriteCursor) error {
	str, err := s.CreateStringFromObj(o, externID)
	if err != nil {
		return err
	}

	return cur.WriteLine(str)
}

// ApproxEqual decodes both objects and compares the element sequences
// for exact equality. Sparse indices and values round-trip exactly, so
// no tolerance applies.
func (s *Space[T]) ApproxEqual(a, b *simspace.Object) bool {
	return slices.Equal(FromPayload[T](a.Data()), FromPayload[T](b.Data()))
}

// DenseElemCount returns 0: a sparse vector has no fixed element
// count.
func (s *Space[T]) DenseElemCount(o *simspace.Object) int { return 0 }

// DenseVectFromObj folds the sparse vector into n dense buckets by
// summing each element's value into bucket index % n. n must be
// positive.
func (s *Space[T]) DenseVectFromObj(o *simspace.Object, n int) ([]T, error) {
	if n <= 0 {
		return nil, &simspace.ErrElemRange{Requested: n, Count: 0}
	}

	out := make([]T, n)
	for _, e := range FromPayload[T](o.Data()) {
		out[int(e.Index)%n] += e.Value
	}

	return out, nil
}

// replaceSomePunct normalizes the punctuation a sparse record may
// legally contain ("," and ":") to whitespace before tokenization.
func replaceSomePunct(str string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == ':' {
			return ' '
		}
		return r
	}, str)
}

func parseElems[T simspace.Float](str string) ([]Elem[T], error) {
	fields := strings.Fields(replaceSomePunct(str))
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of tokens (%d): records are alternating index/value pairs", len(fields))
	}

	bitSize := valueBits[T]()

	elems := make([]Elem[T], 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		idx, err := strconv.ParseUint(fields[i], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid index token %q: %w", fields[i], err)
		}

		val, err := strconv.ParseFloat(fields[i+1], bitSize)
		if err != nil {
			return nil, fmt.Errorf("invalid value token %q: %w", fields[i+1], err)
		}

		elems = append(elems, Elem[T]{Index: uint32(idx), Value: T(val)})
	}

	return elems, nil
}
