package vmath

// SparseElem is one (index, value) element of a sparse vector.
// Sequences passed to the sparse kernels must be sorted by strictly
// increasing Index.
type SparseElem[T Float] struct {
	Index uint32
	Value T
}

// SparseDot returns the dot product of two sorted sparse vectors by
// merging the two index sequences.
func SparseDot[T Float](a, b []SparseElem[T]) T {
	var sum T

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			sum += a[i].Value * b[j].Value
			i++
			j++
		case a[i].Index < b[j].Index:
			i++
		default:
			j++
		}
	}

	return sum
}

// SparseNormSquared returns the squared L2 norm of a sparse vector.
func SparseNormSquared[T Float](a []SparseElem[T]) T {
	var sum T
	for _, e := range a {
		sum += e.Value * e.Value
	}

	return sum
}

// SparseL2 returns the Euclidean distance between two sorted sparse
// vectors. Indices present on one side only contribute their full
// value.
func SparseL2[T Float](a, b []SparseElem[T]) T {
	var sum T

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			d := a[i].Value - b[j].Value
			sum += d * d
			i++
			j++
		case a[i].Index < b[j].Index:
			sum += a[i].Value * a[i].Value
			i++
		default:
			sum += b[j].Value * b[j].Value
			j++
		}
	}
	for ; i < len(a); i++ {
		sum += a[i].Value * a[i].Value
	}
	for ; j < len(b); j++ {
		sum += b[j].Value * b[j].Value
	}

	return Sqrt(sum)
}

// SparseCosineDistance returns 1 - cos(a, b) for two sorted sparse
// vectors, clamped to [0, 2]. If either operand has zero norm the
// distance is 1.
func SparseCosineDistance[T Float](a, b []SparseElem[T]) T {
	na := SparseNormSquared(a)
	nb := SparseNormSquared(b)
	if na == 0 || nb == 0 {
		return 1
	}

	d := 1 - SparseDot(a, b)/(Sqrt(na)*Sqrt(nb))
	if d < 0 {
		return 0
	}
	if d > 2 {
		return 2
	}

	return d
}
