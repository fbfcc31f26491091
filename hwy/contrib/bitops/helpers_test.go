package bitops

import "math"

func negZero() float64 {
	return math.Copysign(0, -1)
}
