// Package vmath provides the numeric kernels spaces compute distances
// with: dense L2/cosine/dot over contiguous buffers, backed by the
// SIMD-accelerated vek library, and merge-style kernels over sorted
// sparse (index, value) sequences.
package vmath
