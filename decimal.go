package fracdex

import "github.com/shopspring/decimal"

var decimalBase = decimal.NewFromInt(int64(len(base62Digits)))

// DecimalApprox decodes key the same way as Float64Approx but without
// float64 rounding. The integer part is exact; the fractional part is
// rounded to places decimal places.
func DecimalApprox(key string, places int32) (decimal.Decimal, error) {
	d, err := decodeKey(key)
	if err != nil {
		return decimal.Zero, err
	}

	rv := decimal.Zero
	for _, p := range d.intDigits {
		rv = rv.Mul(decimalBase).Add(decimal.NewFromInt(int64(p)))
	}

	offset, pow := decimal.Zero, decimal.NewFromInt(1)
	for k := 1; k <= d.offsetPowers(); k++ {
		pow = pow.Mul(decimalBase)
		offset = offset.Add(pow)
	}
	if d.negative {
		rv = rv.Sub(offset)
	} else {
		rv = rv.Add(offset)
	}

	if len(d.fracDigits) == 0 {
		return rv, nil
	}
	num, den := decimal.Zero, decimal.NewFromInt(1)
	for _, p := range d.fracDigits {
		num = num.Mul(decimalBase).Add(decimal.NewFromInt(int64(p)))
		den = den.Mul(decimalBase)
	}
	return rv.Add(num.DivRound(den, places)), nil
}
