package bigdecimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, prec int) Decimal {
	f, err := d.Quo(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", e, prec, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustExp is like [Decimal.Exp] but panics if computing error.
func (d Decimal) MustExp(prec int) Decimal {
	f, err := d.Exp(prec)
	if err != nil {
		panic(fmt.Sprintf("MustExp(%v) failed: %v", prec, err))
	}
	return f
}

// MustLog is like [Decimal.Log] but panics if computing error.
func (d Decimal) MustLog(prec int) Decimal {
	f, err := d.Log(prec)
	if err != nil {
		panic(fmt.Sprintf("MustLog(%v) failed: %v", prec, err))
	}
	return f
}

// MustPowDecimal is like [Decimal.PowDecimal] but panics if computing error.
func (d Decimal) MustPowDecimal(e Decimal, prec int) Decimal {
	f, err := d.PowDecimal(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustPowDecimal(%v, %v) failed: %v", e, prec, err))
	}
	return f
}
