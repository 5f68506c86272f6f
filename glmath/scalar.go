// Package glmath provides small fixed-size vector, quaternion and matrix
// types generic over any numeric element type.
package glmath

// Scalar is the element type set accepted by every type in this package.
// All members are ordered, copied by value and printable with fmt verbs.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps v to the interval [lo, hi]. Assumes lo <= hi.
func Clamp[T Scalar](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by t.
func Lerp[T Scalar](a, b, t T) T {
	return a + (b-a)*t
}
