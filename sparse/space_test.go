package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/vmath"
)

func newSpace(t *testing.T, m vmath.Metric) *Space[float32] {
	t.Helper()

	s, err := New[float32](m)
	require.NoError(t, err)

	return s
}

func TestNewRejectsUnknownMetric(t *testing.T) {
	_, err := New[float32](vmath.Metric(42))
	require.Error(t, err)
}

func TestCreateObjFromString(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	obj, err := s.CreateObjFromString(0, simspace.NoLabel, "label:3 10 1.5 5 2.0", nil)
	require.NoError(t, err)

	assert.Equal(t, simspace.Label(3), obj.Label())
	assert.Equal(t, []Elem[float32]{{Index: 5, Value: 2.0}, {Index: 10, Value: 1.5}}, FromPayload[float32](obj.Data()))
}

func TestCreateObjFromStringPunctuation(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	obj, err := s.CreateObjFromString(0, simspace.NoLabel, "1:0.5,3:2.5", nil)
	require.NoError(t, err)

	assert.Equal(t, []Elem[float32]{{Index: 1, Value: 0.5}, {Index: 3, Value: 2.5}}, FromPayload[float32](obj.Data()))
}

func TestCreateObjFromStringDuplicateIndex(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	_, err := s.CreateObjFromString(0, simspace.NoLabel, "5 1.0 5 2.0", nil)
	require.Error(t, err)

	var pe *simspace.ErrParse
	require.ErrorAs(t, err, &pe)

	var dup *ErrDuplicateIndex
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, uint32(5), dup.PrevIndex)
	assert.Equal(t, uint32(5), dup.Index)
	assert.InDelta(t, 1.0, dup.PrevValue, 1e-6)
	assert.InDelta(t, 2.0, dup.Value, 1e-6)

	// Both offending pairs are named in the message.
	assert.Contains(t, err.Error(), "prevIndex = 5")
	assert.Contains(t, err.Error(), "value = 2")
}

func TestCreateObjFromStringMalformed(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	tests := []struct {
		name string
		line string
	}{
		{"OddTokens", "1 0.5 3"},
		{"BadIndex", "x 0.5"},
		{"BadValue", "1 y"},
		{"NegativeIndex", "-1 0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateObjFromString(0, simspace.NoLabel, tt.line, nil)
			require.Error(t, err)

			var pe *simspace.ErrParse
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestNewObjFromElemsUnsorted(t *testing.T) {
	elems := []Elem[float32]{{Index: 10, Value: 1.5}, {Index: 5, Value: 2.0}}

	_, err := NewObjFromElems[float32](0, simspace.NoLabel, elems)
	require.Error(t, err)

	var unsorted *ErrUnsortedIndex
	require.ErrorAs(t, err, &unsorted)
	assert.Equal(t, uint32(10), unsorted.PrevIndex)
	assert.Equal(t, uint32(5), unsorted.Index)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]Elem[float32]{{Index: 1, Value: 1}, {Index: 2, Value: 2}}))
	require.NoError(t, Validate[float32](nil))

	var dup *ErrDuplicateIndex
	assert.ErrorAs(t, Validate([]Elem[float32]{{Index: 1, Value: 1}, {Index: 1, Value: 2}}), &dup)

	var unsorted *ErrUnsortedIndex
	assert.ErrorAs(t, Validate([]Elem[float32]{{Index: 2, Value: 1}, {Index: 1, Value: 2}}), &unsorted)
}

func TestRoundTrip(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	obj, err := s.CreateObjFromString(0, simspace.NoLabel, "1 0.100000001 7 -2.5 42 3.25e-7", nil)
	require.NoError(t, err)

	str, err := s.CreateStringFromObj(obj, "")
	require.NoError(t, err)

	back, err := s.CreateObjFromString(1, simspace.NoLabel, str, nil)
	require.NoError(t, err)

	assert.True(t, s.ApproxEqual(obj, back))
}

func TestApproxEqual(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	a, err := s.CreateObjFromString(0, simspace.NoLabel, "1 0.5 3 2.5", nil)
	require.NoError(t, err)
	b, err := s.CreateObjFromString(1, simspace.NoLabel, "1 0.5 3 2.5", nil)
	require.NoError(t, err)
	c, err := s.CreateObjFromString(2, simspace.NoLabel, "1 0.5 3 2.5000005", nil)
	require.NoError(t, err)

	assert.True(t, s.ApproxEqual(a, b))

	// Sparse equality is exact, not tolerance-based.
	assert.False(t, s.ApproxEqual(a, c))
}

func TestDistance(t *testing.T) {
	s := newSpace(t, vmath.MetricCosine)

	a, err := s.CreateObjFromString(0, simspace.NoLabel, "1 1.0 3 2.0", nil)
	require.NoError(t, err)
	b, err := s.CreateObjFromString(1, simspace.NoLabel, "3 4.0 5 1.0", nil)
	require.NoError(t, err)

	dab, err := s.Distance(a, b)
	require.NoError(t, err)
	dba, err := s.Distance(b, a)
	require.NoError(t, err)

	assert.InDelta(t, dab, dba, 1e-6)

	daa, err := s.Distance(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 0, daa, 1e-6)
}

func TestPhaseGate(t *testing.T) {
	s := newSpace(t, vmath.MetricL2)

	a, err := s.CreateObjFromString(0, simspace.NoLabel, "1 1.0", nil)
	require.NoError(t, err)
	b, err := s.CreateObjFromString(1, simspace.NoLabel, "1 2.0", nil)
	require.NoError(t, err)

	// Index phase is the default.
	_, err = s.IndexTimeDistance(a, b)
	require.NoError(t, err)

	s.SetQueryPhase()

	_, err = s.IndexTimeDistance(a, b)
	require.ErrorIs(t, err, simspace.ErrPhaseViolation)

	// The unchecked path stays available to query evaluation.
	_, err = s.Distance(a, b)
	require.NoError(t, err)

	// A clone starts over in the index phase.
	c := s.Clone()
	_, err = c.IndexTimeDistance(a, b)
	require.NoError(t, err)

	// And the original is unaffected by the clone's phase.
	_, err = s.IndexTimeDistance(a, b)
	require.ErrorIs(t, err, simspace.ErrPhaseViolation)

	s.SetIndexPhase()
	_, err = s.IndexTimeDistance(a, b)
	require.NoError(t, err)
}

func TestDenseVectFromObj(t *testing.T) {
	s := newSpace(t, vmath.MetricL2)

	obj, err := s.CreateObjFromString(0, simspace.NoLabel, "1 1.0 5 2.0", nil)
	require.NoError(t, err)

	// Values fold into buckets by index modulo n.
	vec, err := s.DenseVectFromObj(obj, 4)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 3, 0, 0}, vec)

	_, err = s.DenseVectFromObj(obj, 0)
	require.Error(t, err)

	assert.Equal(t, 0, s.DenseElemCount(obj))
}

func TestString(t *testing.T) {
	assert.Equal(t, "sparse vector space, distance type: Cosine", newSpace(t, vmath.MetricCosine).String())
	assert.Equal(t, "sparse vector space, distance type: L2", newSpace(t, vmath.MetricL2).String())
}
