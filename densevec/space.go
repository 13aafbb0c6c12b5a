// Package densevec implements the generic dense-vector space: a fixed
// dimensionality per dataset, inferred from the first record, and an
// L2 or cosine metric. The word-embedding space builds on it.
package densevec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/vmath"
)

// approxTolerance is the relative tolerance ApproxEqual allows per
// element, scaled to the element type's precision.
func approxTolerance[T simspace.Float]() T {
	if ElemSize[T]() == 4 {
		return T(1e-5)
	}

	return T(1e-10)
}

// Space is a dense numeric vector space.
type Space[T simspace.Float] struct {
	simspace.Phase
	metric vmath.Metric
	dist   func(a, b []T) T
}

var _ simspace.Space[float32] = (*Space[float32])(nil)

// New creates a dense vector space with the given metric.
func New[T simspace.Float](metric vmath.Metric) (*Space[T], error) {
	var dist func(a, b []T) T

	switch metric {
	case vmath.MetricL2:
		dist = vmath.L2[T]
	case vmath.MetricCosine:
		dist = vmath.CosineDistance[T]
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
	return fmt.Sprintf("dense vector space, distance type: %s", s.metric)
}

// IndexTimeDistance is the phase-checked distance entry point for
// index-construction code.
func (s *Space[T]) IndexTimeDistance(a, b *simspace.Object) (T, error) {
	if !s.IndexPhase() {
		return 0, simspace.ErrPhaseViolation
	}

	return s.Distance(a, b)
}

// Distance computes the configured metric. Both operands must carry
// equal, non-zero element counts.
func (s *Space[T]) Distance(a, b *simspace.Object) (T, error) {
	na := ElemCount[T](a.Data())
	nb := ElemCount[T](b.Data())
	if na == 0 || na != nb {
		return 0, &simspace.ErrDimensionMismatch{Expected: na, Actual: nb}
	}

	return s.dist(FromPayload[T](a.Data()), FromPayload[T](b.Data())), nil
}

// CreateObjFromString parses a whitespace-separated dense vector,
// extracting an optional "label:<int>" token first. When cur is
// non-nil the vector's dimensionality is checked against (or recorded
// into) the cursor's inferred dimension.
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

	vec, err := parseDense[T](rest)
	if err != nil {
		return nil, simspace.NewErrParse(line, str, err)
	}
	if len(vec) == 0 {
		return nil, simspace.NewErrParse(line, str, fmt.Errorf("empty vector record"))
	}

	if cur != nil {
		if cur.Dim() == 0 {
			cur.SetDim(len(vec))
		} else if cur.Dim() != len(vec) {
			return nil, simspace.NewErrParse(line, str,
				&simspace.ErrDimensionMismatch{Expected: cur.Dim(), Actual: len(vec)})
		}
	}

	return simspace.NewObject(id, label, ToPayload(vec)), nil
}

// CreateStringFromObj serializes the dense payload with full
// round-trip precision. The external identifier is ignored; this
// representation does not carry one.
func (s *Space[T]) CreateStringFromObj(o *simspace.Object, _ string) (string, error) {
	return formatDense(FromPayload[T](o.Data())), nil
}

// OpenReadHeader opens a source. Dense datasets carry no header; the
// dimensionality is inferred from the first record.
func (s *Space[T]) OpenReadHeader(path string) (*simspace.ReadCursor, error) {
	return simspace.OpenReadCursor(path)
}

// OpenWriteHeader opens a destination. Dense datasets carry no header.
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

// ApproxEqual compares two dense objects element-wise within a
// relative tolerance.
func (s *Space[T]) ApproxEqual(a, b *simspace.Object) bool {
	va := FromPayload[T](a.Data())
	vb := FromPayload[T](b.Data())
	if len(va) != len(vb) {
		return false
	}

	eps := approxTolerance[T]()
	for i := range va {
		diff := va[i] - vb[i]
		if diff < 0 {
			diff = -diff
		}

		scale := T(1)
		if x := va[i]; x > scale {
			scale = x
		} else if x := -va[i]; x > scale {
			scale = x
		}

		if diff > eps*scale {
			return false
		}
	}

	return true
}

// DenseElemCount returns the number of vector elements.
func (s *Space[T]) DenseElemCount(o *simspace.Object) int {
	return ElemCount[T](o.Data())
}

// DenseVectFromObj copies the first n elements out of the object.
func (s *Space[T]) DenseVectFromObj(o *simspace.Object, n int) ([]T, error) {
	count := ElemCount[T](o.Data())
	if n < 0 || n > count {
		return nil, &simspace.ErrElemRange{Requested: n, Count: count}
	}

	out := make([]T, n)
	copy(out, FromPayload[T](o.Data())[:n])

	return out, nil
}

func parseDense[T simspace.Float](str string) ([]T, error) {
	fields := strings.Fields(str)
	if len(fields) == 0 {
		return nil, nil
	}

	bitSize := ElemSize[T]() * 8

	vec := make([]T, 0, len(fields))
	for _, tok := range fields {
		f, err := strconv.ParseFloat(tok, bitSize)
		if err != nil {
			return nil, fmt.Errorf("invalid vector element %q: %w", tok, err)
		}
		vec = append(vec, T(f))
	}

	return vec, nil
}

func formatDense[T simspace.Float](vec []T) string {
	bitSize := ElemSize[T]() * 8

	var sb strings.Builder
	for i, v := range vec {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bitSize))
	}

	return sb.String()
}
