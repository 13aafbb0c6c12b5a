package vmath

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Float constrains kernel inputs to the two supported element types.
type Float interface {
	float32 | float64
}

// L2 returns the Euclidean distance between two equal-length dense
// vectors. Length equality is the caller's responsibility.
func L2[T Float](a, b []T) T {
	switch x := any(a).(type) {
	case []float32:
		return T(vek32.Distance(x, any(b).([]float32)))
	case []float64:
		return T(vek.Distance(x, any(b).([]float64)))
	default:
		panic("vmath: unsupported element type")
	}
}

// Dot returns the dot product of two equal-length dense vectors.
func Dot[T Float](a, b []T) T {
	switch x := any(a).(type) {
	case []float32:
		return T(vek32.Dot(x, any(b).([]float32)))
	case []float64:
		return T(vek.Dot(x, any(b).([]float64)))
	default:
		panic("vmath: unsupported element type")
	}
}

// CosineSimilarity returns cos(a, b) for two equal-length dense
// vectors. Zero-norm operands yield 0.
func CosineSimilarity[T Float](a, b []T) T {
	switch x := any(a).(type) {
	case []float32:
		y := any(b).([]float32)
		if vek32.Dot(x, x) == 0 || vek32.Dot(y, y) == 0 {
			return 0
		}
		return T(vek32.CosineSimilarity(x, y))
	case []float64:
		y := any(b).([]float64)
		if vek.Dot(x, x) == 0 || vek.Dot(y, y) == 0 {
			return 0
		}
		return T(vek.CosineSimilarity(x, y))
	default:
		panic("vmath: unsupported element type")
	}
}

// CosineDistance returns 1 - cos(a, b), clamped to [0, 2].
func CosineDistance[T Float](a, b []T) T {
	d := 1 - CosineSimilarity(a, b)
	if d < 0 {
		// Rounding can push cos slightly past 1.
		return 0
	}
	if d > 2 {
		return 2
	}

	return d
}

// Sqrt returns the square root of x in the precision of T.
func Sqrt[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	default:
		panic("vmath: unsupported element type")
	}
}
