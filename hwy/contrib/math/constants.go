package math

import "math/big"

// sinh1Digits is sinh(1) to 60 significant digits.
const sinh1Digits = "1.17520119364380145688238185059560081515571798133409587022956"

// sinh1Exact holds sinh1Digits at a precision well beyond float64, so
// comparisons against it decide the rounding direction of any float lane.
var sinh1Exact = func() *big.Float {
	f, _, err := big.ParseFloat(sinh1Digits, 10, 256, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}()
