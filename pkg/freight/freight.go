// Package freight holds the freight derivation rule shared by the store and
// the presentation edges.
package freight

// Compute returns the freight charge for an invoice value at the given
// percentage rate. No rounding is applied; stored values keep full precision
// and display layers format as needed. Inputs are assumed finite and
// non-negative; the input boundary rejects everything else.
func Compute(value, ratePercent float64) float64 {
	return value * (ratePercent / 100)
}
