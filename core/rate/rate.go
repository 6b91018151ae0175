// Package rate - canonical data-rate representation and parsing
package rate

import (
	"github.com/shopspring/decimal"

	"datarate/core/units"
)

// Rate is the canonical bytes-per-second value. Every displayed row is
// derived from it, never recomputed from the original input, so the rows
// cannot drift apart.
type Rate struct {
	bytesPerSecond decimal.Decimal
}

// New computes the canonical rate from a parsed (amount, unit, period) triple:
// amount * unit.Multiplier() / period.Seconds()
func New(amount decimal.Decimal, unit units.ByteUnit, period units.Period) Rate {
	return Rate{
		bytesPerSecond: amount.Mul(unit.Multiplier()).Div(period.Seconds()),
	}
}

// BytesPerSecond returns the canonical base rate
func (r Rate) BytesPerSecond() decimal.Decimal {
	return r.bytesPerSecond
}

// Over returns how many bytes pass in one period at this rate
func (r Rate) Over(p units.Period) decimal.Decimal {
	return r.bytesPerSecond.Mul(p.Seconds())
}

// Scale picks the largest byte unit in which the byte count is at least 1,
// falling back to B for sub-byte values. Values of 1000 YB or more stay in
// YB unscaled, there is no larger unit.
func Scale(bytes decimal.Decimal) (decimal.Decimal, units.ByteUnit) {
	chosen := units.Byte
	for _, u := range units.ByteUnits {
		if bytes.Cmp(u.Multiplier()) >= 0 {
			chosen = u
		}
	}
	return bytes.Div(chosen.Multiplier()), chosen
}
