package bigdecimal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decimal type is a representation of a signed decimal number with an
// unbounded number of digits.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: a non-negative integer indicating the position of the decimal point.
//   - Coefficient: a string of decimal digits without the decimal point.
//
// The scale field determines the position of the decimal point in the coefficient.
// For example, a decimal with a coefficient of 12345 and a scale of 2 represents
// the value 123.45.
// The scale may exceed the number of digits in the coefficient, in which case
// leading zeros are implied: a coefficient of 5 and a scale of 3 represents 0.005.
//
// Non-zero values keep their scale, so 1.5 and 1.50 have different
// representations but the same value.
// Zero has exactly one representation: positive, with a scale of 0.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative
	scale int  // the position of the floating decimal point
	coef  dint // the coefficient of the decimal, empty for zero
}

var (
	// ErrInvalidDecimal is returned when a string is not a valid decimal literal.
	ErrInvalidDecimal = errors.New("invalid decimal")
	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrModuloByZero is returned when computing a remainder modulo zero.
	ErrModuloByZero = errors.New("modulo by zero")
	// ErrDomain is returned when an argument is outside of the domain of a function,
	// such as the logarithm of a non-positive number.
	ErrDomain = errors.New("argument out of domain")
	// ErrInvalidOperand is returned when subtracting a larger magnitude from a smaller one.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrPrecisionRange is returned when a precision argument is out of range.
	ErrPrecisionRange = errors.New("precision out of range")
	// ErrExponentRange is returned when the result of an exponential function
	// would be too large to represent.
	ErrExponentRange = errors.New("exponent out of range")

	errScaleRange = errors.New("scale out of range")
)

var (
	one  = Decimal{coef: dintOne}
	half = Decimal{coef: "5", scale: 1}
)

func newDecimal(neg bool, coef dint, scale int) Decimal {
	if coef.isZero() {
		return Decimal{}
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

func newDecimalFromInt(n int) Decimal {
	if n < 0 {
		return newDecimal(true, newDintFromInt(-n), 0)
	}
	return newDecimal(false, newDintFromInt(n), 0)
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is negative.
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("creating decimal with scale %v: %w", scale, errScaleRange)
	}
	mag := uint64(coef)
	if coef < 0 {
		mag = -mag
	}
	return newDecimal(coef < 0, newDint(strconv.FormatUint(mag, 10)), scale), nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	--12.5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= { sign } significand
//
// A run of leading signs is folded into one, each '-' flipping the sign.
// Parse removes leading zeros from the integer part of the input string,
// but maintains trailing zeros in the fractional part to preserve scale.
// Any literal equal to zero, such as "-0" or "0.00", yields the canonical zero.
//
// Parse returns an error wrapping [ErrInvalidDecimal] if the string contains
// a character other than a sign, a digit or a decimal point, contains more than
// one decimal point, or has a decimal point without digits on both sides.
func Parse(s string) (Decimal, error) {
	var (
		pos   int
		width int
		start int
		dot   int
		neg   bool
		scale int
	)

	width = len(s)
	dot = -1

	// Sign
	for pos < width && (s[pos] == '+' || s[pos] == '-') {
		if s[pos] == '-' {
			neg = !neg
		}
		pos++
	}
	if pos == width {
		return Decimal{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidDecimal)
	}

	// Digits
	for start = pos; pos < width; pos++ {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			// skip
		case c == '.' && dot < 0:
			dot = pos
		case c == '.':
			return Decimal{}, fmt.Errorf("parsing %q: multiple decimal points: %w", s, ErrInvalidDecimal)
		default:
			return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, c, ErrInvalidDecimal)
		}
	}

	// Decimal point
	digits := s[start:]
	if dot >= 0 {
		switch {
		case width-start == 1:
			return Decimal{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidDecimal)
		case dot == start:
			return Decimal{}, fmt.Errorf("parsing %q: leading decimal point: %w", s, ErrInvalidDecimal)
		case dot == width-1:
			return Decimal{}, fmt.Errorf("parsing %q: trailing decimal point: %w", s, ErrInvalidDecimal)
		}
		scale = width - dot - 1
		digits = s[start:dot] + s[dot+1:]
	}

	return newDecimal(neg, newDint(digits), scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the shortest string representation of a decimal value.
// Trailing zeros of the fractional part are removed, together with the decimal
// point if no fractional digits remain.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var (
		buf   strings.Builder
		coef  string
		scale int
	)

	coef = string(d.mag())
	scale = d.scale

	// Trailing zeros
	for scale > 0 && coef[len(coef)-1] == '0' {
		coef = coef[:len(coef)-1]
		scale--
	}

	buf.Grow(len(coef) + scale + 3)

	// Sign
	if d.IsNeg() {
		buf.WriteByte('-')
	}

	// Coefficient
	switch {
	case scale == 0:
		buf.WriteString(coef)
	case scale >= len(coef):
		buf.WriteString("0.")
		buf.WriteString(strings.Repeat("0", scale-len(coef)))
		buf.WriteString(coef)
	default:
		buf.WriteString(coef[:len(coef)-scale])
		buf.WriteByte('.')
		buf.WriteString(coef[len(coef)-scale:])
	}

	return buf.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// mag returns the coefficient of d as a dint.
func (d Decimal) mag() dint {
	if d.coef == "" {
		return dintZero
	}
	return d.coef
}

// Coef returns the coefficient of the decimal as a string of decimal digits.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() string {
	return string(d.mag())
}

// Prec returns the number of digits in the coefficient.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	return d.mag().prec()
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// MinScale returns the smallest scale that d can be truncated to without
// losing significant digits.
// Also see method [Decimal.Reduce].
func (d Decimal) MinScale() int {
	coef := d.mag()
	n := 0
	for n < d.scale && n < len(coef)-1 && coef[len(coef)-1-n] == '0' {
		n++
	}
	return d.scale - n
}

// IsInt returns true if the fractional part of d is equal to 0.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// intPart returns the integer part of d as an int.
// The caller must ensure that the integer part has at most 18 digits.
func (d Decimal) intPart() int {
	n := 0
	coef := d.mag().rshDown(d.scale)
	for i := 0; i < len(coef); i++ {
		n = n*10 + int(coef[i]-'0')
	}
	if d.IsNeg() {
		return -n
	}
	return n
}

// Trunc returns d that is truncated towards zero to the specified number of
// digits after the decimal point.
// If the scale of d is less than or equal to the specified scale, d is returned
// unchanged, and a negative scale is treated as 0.
// Also see method [Decimal.Reduce].
func (d Decimal) Trunc(scale int) Decimal {
	scale = max(scale, 0)
	if scale >= d.scale {
		return d
	}
	coef := d.mag().rshDown(d.scale - scale)
	return newDecimal(d.IsNeg(), coef, scale)
}

// Reduce returns d with all trailing zeros removed.
func (d Decimal) Reduce() Decimal {
	return d.Trunc(d.MinScale())
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.mag(), d.scale)
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.mag(), d.scale)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.IsZero() && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// align returns the coefficients of d and e brought to a common scale,
// together with that scale.
func align(d, e Decimal) (dcoef, ecoef dint, scale int) {
	dcoef = d.mag()
	ecoef = e.mag()
	switch {
	case d.scale == e.scale:
		scale = d.scale
	case e.scale < d.scale:
		scale = d.scale
		ecoef = ecoef.lsh(d.scale - e.scale)
	case d.scale < e.scale:
		scale = e.scale
		dcoef = dcoef.lsh(e.scale - d.scale)
	}
	return dcoef, ecoef, scale
}

// Add returns the exact sum of d and e.
// The scale of the sum is the larger of the scales of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	var (
		dcoef dint
		ecoef dint
		neg   bool
		scale int
	)

	// Alignment and scale
	dcoef, ecoef, scale = align(d, e)

	// Sign
	if ecoef.cmp(dcoef) < 0 {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef = dcoef.dist(ecoef)
	} else {
		dcoef = dcoef.add(ecoef)
	}

	return newDecimal(neg, dcoef, scale)
}

// Sub returns the exact difference of d and e.
// The scale of the difference is the larger of the scales of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the scales of d and e.
// Also see method [Context.Mul].
func (d Decimal) Mul(e Decimal) Decimal {
	return DefaultContext.Mul(d, e)
}

// Quo returns the quotient of d and e truncated towards zero to prec digits
// after the decimal point.
// For example, 22 / 7 with a precision of 10 is 3.1428571428.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - prec is negative.
func (d Decimal) Quo(e Decimal, prec int) (Decimal, error) {
	switch {
	case prec < 0:
		return Decimal{}, fmt.Errorf("computing [%v / %v] with precision %v: %w", d, e, prec, ErrPrecisionRange)
	case e.IsZero():
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	return quoTrunc(d, e, prec), nil
}

// quoTrunc calculates d / e truncated to prec digits after the decimal point.
// The caller must ensure that e is not 0 and prec is not negative.
func quoTrunc(d, e Decimal, prec int) Decimal {
	var (
		dcoef dint
		ecoef dint
		neg   bool
	)

	dcoef = d.mag()
	ecoef = e.mag()

	// Dividend alignment
	if shift := prec + e.scale - d.scale; shift >= 0 {
		dcoef = dcoef.lsh(shift)
	} else {
		dcoef = dcoef.rshDown(-shift)
	}

	// Coefficient
	dcoef, err := dcoef.quo(ecoef, 0)
	if err != nil {
		panic(fmt.Sprintf("computing [%v / %v] failed: %v", d, e, err))
	}

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	return newDecimal(neg, dcoef, prec)
}

// Rem returns the remainder of d and e, such that d = q * e + r,
// where q is the quotient of d and e truncated to an integer.
// The remainder has the sign of d and the larger of the scales of d and e.
// For example, 22.5 mod 7 is 1.5 and -22.5 mod 7 is -1.5.
//
// Rem returns an error if the divisor is 0.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, ErrModuloByZero)
	}

	// Alignment and scale
	dcoef, ecoef, scale := align(d, e)

	// Coefficient
	dcoef, err := dcoef.rem(ecoef)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, err)
	}

	return newDecimal(d.IsNeg(), dcoef, scale), nil
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, where q is an integer truncated towards zero and r has the
// sign of d.
//
// QuoRem returns an error if the divisor is 0.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	q, err = d.Quo(e, 0)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r = d.Sub(e.Mul(q))
	return q, r, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	dcoef, ecoef, _ := align(d, e)
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}

// CmpAbs compares absolute values of d and e.
func (d Decimal) CmpAbs(e Decimal) int {
	return d.Abs().Cmp(e.Abs())
}
