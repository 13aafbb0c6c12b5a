package vmath

import (
	"fmt"
	"strings"
)

// Metric selects the distance function of a space.
type Metric int

const (
	// MetricL2 is the Euclidean distance.
	MetricL2 Metric = iota
	// MetricCosine is the cosine distance, 1 - cos(a, b).
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Valid reports whether m is a recognized metric.
func (m Metric) Valid() bool {
	return m == MetricL2 || m == MetricCosine
}

// ParseMetric maps a configuration string ("l2" or "cosine", case
// insensitive) to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "l2":
		return MetricL2, nil
	case "cosine":
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("unsupported metric: %q", s)
	}
}
