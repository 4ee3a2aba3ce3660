package bigdecimal

import (
	"fmt"
	"sync"
)

const (
	// maxExpDigits is the maximum number of digits in the integer part of
	// an argument of exponential functions.
	maxExpDigits = 9

	// maxExpResultDigits is the maximum number of digits in the integer part of
	// a result of exponential functions.
	maxExpResultDigits = 10000

	// maxExactPower is the largest absolute integer exponent for which
	// [Context.PowDecimal] computes an exact power.
	maxExactPower = 4096
)

// ln10Ceil is slightly greater than ln(10).
// e^d truncates to 0 at prec digits after the decimal point
// if d < -(prec + 1) * ln10Ceil.
var ln10Ceil = MustParse("2.3026")

// sqrt10 is an approximation of the square root of 10.
// Logarithm arguments are reduced to the range (sqrt10 / 10, sqrt10].
var sqrt10 = MustParse("3.1622776601683793")

// Pow returns d raised to the given non-negative integer power.
// The result is exact, and its scale is the scale of d multiplied by power.
// 0 raised to the power of 0 is 1.
// Also see method [Context.Pow].
func (d Decimal) Pow(power uint) Decimal {
	return DefaultContext.Pow(d, power)
}

// Pow returns d raised to the given non-negative integer power using
// exponentiation by squaring.
func (c Context) Pow(d Decimal, power uint) Decimal {
	f := one
	for power > 0 {
		if power&1 == 1 {
			f = c.Mul(f, d)
		}
		power >>= 1
		if power > 0 {
			d = c.Mul(d, d)
		}
	}
	return f
}

// Exp returns e raised to the power of d, truncated to prec digits after
// the decimal point.
// Also see method [Context.Exp].
//
// Exp returns an error if:
//   - prec is less than 1;
//   - the integer part of the result would have more than 10000 digits.
func (d Decimal) Exp(prec int) (Decimal, error) {
	return DefaultContext.Exp(d, prec)
}

// Exp returns e raised to the power of d, truncated to prec digits after
// the decimal point.
func (c Context) Exp(d Decimal, prec int) (Decimal, error) {
	switch {
	case prec < 1:
		return Decimal{}, fmt.Errorf("computing exp(%v) with precision %v: %w", d, prec, ErrPrecisionRange)
	case expOverflow(d):
		return Decimal{}, fmt.Errorf("computing exp(%v): %w", d, ErrExponentRange)
	}
	return c.exp(d, prec).Trunc(prec), nil
}

// exp calculates e^d with at least prec correct digits after the decimal point.
// The argument is halved k times until |r| < 1, so that e^d = (e^r)^(2^k),
// and e^r is computed by the Taylor series.
// For negative d the result is computed as 1 / e^|d|, unless it
// truncates to 0.
// The caller must ensure that expOverflow(d) is false.
func (c Context) exp(d Decimal, prec int) Decimal {
	// Special cases
	switch {
	case d.IsZero():
		return one
	case expUnderflow(d, prec):
		return Decimal{}
	}

	var (
		r  Decimal
		f  Decimal
		n  int
		k  int
		wp int
	)

	// Reduction
	r = d.Abs()
	n = r.intPart()
	for r.Cmp(one) >= 0 {
		r = c.Mul(r, half)
		k++
	}

	// Working precision covers the integer digits of the result,
	// which are about n * log10(e), and the error amplified by squaring.
	wp = prec + guardDigits + k + n*434/1000 + 1
	r = r.Trunc(wp)

	// Series
	f = c.expTaylor(r, wp)

	// Squaring
	for range k {
		f = c.Mul(f, f).Trunc(wp)
	}

	// Reciprocal
	if d.IsNeg() {
		f = quoTrunc(one, f, wp)
	}

	return f
}

// expOverflow reports whether the integer part of e^d has more than
// maxExpResultDigits digits.
func expOverflow(d Decimal) bool {
	switch {
	case !d.IsPos():
		return false
	case d.Prec()-d.Scale() > maxExpDigits:
		return true
	}
	return d.intPart()*434/1000 > maxExpResultDigits
}

// expUnderflow reports whether e^d is less than 10^-(prec+1).
func expUnderflow(d Decimal, prec int) bool {
	if !d.IsNeg() {
		return false
	}
	return d.CmpAbs(newDecimalFromInt(prec+1).Mul(ln10Ceil)) > 0
}

// expTaylor calculates e^r for |r| < 1 using the Taylor series
//
//	e^r = 1 + r + r^2 / 2! + r^3 / 3! + ...
//
// Each term is obtained from the previous one as term * r / i.
// Summation stops when a term truncates to zero at prec digits after
// the decimal point, or after TaylorFactor * prec terms.
func (c Context) expTaylor(r Decimal, prec int) Decimal {
	sum, term := one, one
	for i := 1; i <= c.taylorFactor()*prec; i++ {
		term = quoTrunc(c.Mul(term, r), newDecimalFromInt(i), prec)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// Log returns the natural logarithm of d, truncated to prec digits after
// the decimal point.
// Also see method [Context.Log].
//
// Log returns an error if:
//   - d is zero or negative;
//   - prec is less than 1.
func (d Decimal) Log(prec int) (Decimal, error) {
	return DefaultContext.Log(d, prec)
}

// Log returns the natural logarithm of d, truncated to prec digits after
// the decimal point.
// The number of Newton's method iterations is limited by NewtonIterations.
func (c Context) Log(d Decimal, prec int) (Decimal, error) {
	switch {
	case prec < 1:
		return Decimal{}, fmt.Errorf("computing ln(%v) with precision %v: %w", d, prec, ErrPrecisionRange)
	case !d.IsPos():
		return Decimal{}, fmt.Errorf("computing ln(%v): %w", d, ErrDomain)
	}
	return c.log(d, prec).Trunc(prec), nil
}

// log calculates ln(d) for positive d with about prec correct digits after
// the decimal point.
// The argument is reduced to d = m * 10^k, where m is close to 1,
// then ln(m) is found by Newton's method applied to f(y) = e^y - m:
//
//	y = y - (e^y - m) / e^y = y - 1 + m / e^y
//
// and the result is ln(m) + k * ln(10).
func (c Context) log(d Decimal, prec int) Decimal {
	var (
		coef  dint
		m     Decimal
		y     Decimal
		k     int
		wp    int
		delta Decimal
	)

	// Reduction
	coef = d.mag()
	k = len(coef) - 1 - d.scale
	m = newDecimal(false, coef, len(coef)-1)
	if m.Cmp(sqrt10) > 0 {
		m = newDecimal(false, coef, len(coef))
		k++
	}
	wp = prec + guardDigits + newDintFromInt(max(k, -k)).prec()

	// Newton's method
	for range c.newtonIterations() {
		delta = one.Sub(quoTrunc(m, c.exp(y, wp), wp))
		if delta.IsZero() {
			break
		}
		y = y.Sub(delta).Trunc(wp)
	}

	// Restoration
	if k != 0 {
		y = y.Add(c.Mul(ln10(wp), newDecimalFromInt(k)))
	}

	return y
}

// ln10Cache holds ln(10) computed with the largest precision requested so far.
var ln10Cache struct {
	sync.Mutex
	prec  int
	value Decimal
}

// ln10 returns ln(10) truncated to prec digits after the decimal point.
// It is computed as 3 * ln(2) + ln(1.25) using [lnSeries].
func ln10(prec int) Decimal {
	ln10Cache.Lock()
	defer ln10Cache.Unlock()
	if ln10Cache.prec < prec {
		wp := prec + guardDigits + newDintFromInt(prec).prec()
		ln2 := lnSeries(quoTrunc(one, newDecimalFromInt(3), wp), wp)
		ln125 := lnSeries(quoTrunc(one, newDecimalFromInt(9), wp), wp)
		ln10Cache.value = ln2.Add(ln2).Add(ln2).Add(ln125).Trunc(prec)
		ln10Cache.prec = prec
	}
	return ln10Cache.value.Trunc(prec)
}

// lnSeries calculates ln((1 + z) / (1 - z)) for 0 < z < 1 using the series
//
//	ln((1 + z) / (1 - z)) = 2 * (z + z^3 / 3 + z^5 / 5 + ...)
//
// truncating every term to prec digits after the decimal point.
func lnSeries(z Decimal, prec int) Decimal {
	z2 := DefaultContext.Mul(z, z).Trunc(prec)
	sum, pow := z, z
	for i := 3; ; i += 2 {
		pow = DefaultContext.Mul(pow, z2).Trunc(prec)
		term := quoTrunc(pow, newDecimalFromInt(i), prec)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	return sum.Add(sum)
}

// PowDecimal returns d raised to the power of e, truncated to prec digits
// after the decimal point.
// Also see method [Context.PowDecimal].
//
// PowDecimal returns an error if:
//   - prec is less than 1;
//   - d is negative and e is not an integer;
//   - d is 0 and e is negative;
//   - the integer part of the result would have more than 10000 digits.
func (d Decimal) PowDecimal(e Decimal, prec int) (Decimal, error) {
	return DefaultContext.PowDecimal(d, e, prec)
}

// PowDecimal returns d raised to the power of e, truncated to prec digits
// after the decimal point.
// Integer exponents up to 4096 in absolute value are computed exactly with
// [Context.Pow].
// All other powers are computed as exp(e * ln(|d|)), negated when d is
// negative and e is an odd integer.
func (c Context) PowDecimal(d, e Decimal, prec int) (Decimal, error) {
	if prec < 1 {
		return Decimal{}, fmt.Errorf("computing [%v^%v] with precision %v: %w", d, e, prec, ErrPrecisionRange)
	}

	// Integer exponent
	if e.IsInt() && e.CmpAbs(newDecimalFromInt(maxExactPower)) <= 0 {
		f := c.Pow(d, uint(e.Abs().intPart()))
		switch {
		case !e.IsNeg():
			return f.Trunc(prec), nil
		case f.IsZero():
			return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", d, e, ErrDivisionByZero)
		}
		return quoTrunc(one, f, prec), nil
	}

	// Special cases
	switch {
	case d.IsZero() && e.IsPos():
		return Decimal{}, nil
	case d.IsZero():
		return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", d, e, ErrDivisionByZero)
	case d.IsNeg() && !e.IsInt():
		return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", d, e, ErrDomain)
	}

	// Sign
	neg := d.IsNeg() && isOdd(e)
	a := d.Abs()

	// Magnitude estimate
	x := c.Mul(e, c.log(a, guardDigits)).Trunc(0)
	if expOverflow(x) {
		return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", d, e, ErrExponentRange)
	}

	// General case
	wp := prec + guardDigits + max(e.Prec()-e.Scale(), 0)
	if x.IsPos() {
		wp += x.intPart()*434/1000 + 1
	}
	x = c.Mul(e, c.log(a, wp))
	f := c.exp(x, prec).Trunc(prec)
	if neg {
		f = f.Neg()
	}
	return f, nil
}

// isOdd reports whether the integer part of d is odd.
func isOdd(d Decimal) bool {
	coef := d.mag().rshDown(d.scale)
	return (coef[len(coef)-1]-'0')%2 == 1
}
