// Package money provides fixed-point monetary amounts in currency minor units.
//
// All settlement arithmetic happens on Amount (an int64 count of minor units,
// e.g. cents) so that splits sum exactly. Conversion to and from decimal
// happens only at the boundaries.
package money

import "github.com/shopspring/decimal"

// Amount is a monetary value in currency minor units.
// Positive means owed to; negative means owing.
type Amount int64

// FromFloat converts a decimal currency value (e.g. 19.99) to minor units,
// rounding half away from zero to the nearest unit.
func FromFloat(v float64) Amount {
	return Amount(decimal.NewFromFloat(v).Shift(2).Round(0).IntPart())
}

// Decimal returns the amount as a two-place decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Float returns the amount as a decimal currency value (e.g. 19.99).
func (a Amount) Float() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// Scale multiplies the amount by factor, rounding half away from zero
// to the nearest minor unit.
func (a Amount) Scale(factor decimal.Decimal) Amount {
	return Amount(decimal.NewFromInt(int64(a)).Mul(factor).Round(0).IntPart())
}

// Abs returns the absolute value.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
