package bigdecimal

import (
	"fmt"
	"strings"
)

// dint (Digit INTeger) is an unsigned integer of unbounded length stored as
// a string of ASCII decimal digits, most significant digit first.
// A dint never has leading zeros, except for "0" itself.
// Being a string, a dint is immutable and may be shared freely.
type dint string

const (
	dintZero dint = "0"
	dintOne  dint = "1"
)

// newDint returns a dint for a string of ASCII digits, removing leading zeros.
// The caller must ensure that s contains only digits.
func newDint(s string) dint {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return dint(s[i:])
		}
	}
	return dintZero
}

// newDintFromBytes is like [newDint] but takes ownership of buf.
func newDintFromBytes(buf []byte) dint {
	for i := 0; i < len(buf); i++ {
		if buf[i] != '0' {
			return dint(buf[i:])
		}
	}
	return dintZero
}

// newDintFromInt returns a dint for a non-negative machine integer.
func newDintFromInt(n int) dint {
	if n <= 0 {
		return dintZero
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte(n%10) + '0'
		n /= 10
	}
	return dint(buf[pos:])
}

// isZero returns true if x == 0.
// The empty string is treated as 0.
func (x dint) isZero() bool {
	return x == "" || x == dintZero
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x dint) prec() int {
	if x.isZero() {
		return 0
	}
	return len(x)
}

// cmp compares x and y and returns -1, 0 or +1.
// Since neither operand has leading zeros, a longer dint is always greater,
// and dints of equal length compare in lexicographic order.
func (x dint) cmp(y dint) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return strings.Compare(string(x), string(y))
}

// add calculates x + y.
func (x dint) add(y dint) dint {
	if len(x) < len(y) {
		x, y = y, x
	}
	buf := make([]byte, len(x)+1)
	carry := byte(0)
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		s := carry + x[i] - '0'
		if j >= 0 {
			s += y[j] - '0'
			j--
		}
		carry = s / 10
		buf[i+1] = s%10 + '0'
	}
	buf[0] = carry + '0'
	return newDintFromBytes(buf)
}

// sub calculates x - y and returns an error if x < y.
func (x dint) sub(y dint) (dint, error) {
	if x.cmp(y) < 0 {
		return "", fmt.Errorf("%v - %v: %w", x, y, ErrInvalidOperand)
	}
	return x.subUnchecked(y), nil
}

// subUnchecked calculates x - y, assuming that x >= y.
func (x dint) subUnchecked(y dint) dint {
	buf := make([]byte, len(x))
	borrow := 0
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		d := int(x[i]-'0') - borrow
		if j >= 0 {
			d -= int(y[j] - '0')
			j--
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		buf[i] = byte(d) + '0'
	}
	return newDintFromBytes(buf)
}

// dist calculates abs(x - y).
func (x dint) dist(y dint) dint {
	if x.cmp(y) < 0 {
		return y.subUnchecked(x)
	}
	return x.subUnchecked(y)
}

// lsh (Left Shift) calculates x * 10^shift.
func (x dint) lsh(shift int) dint {
	if shift <= 0 || x.isZero() {
		return x
	}
	return x + dint(strings.Repeat("0", shift))
}

// rshDown (Right Shift) calculates x / 10^shift and rounds result towards zero.
func (x dint) rshDown(shift int) dint {
	switch {
	case shift <= 0:
		return x
	case shift >= len(x):
		return dintZero
	}
	return x[:len(x)-shift]
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b.
func (x dint) fsa(shift int, b byte) dint {
	switch {
	case shift == 1 && x.isZero(): // to speed up common case
		return dint([]byte{'0' + b})
	case shift == 1:
		return x + dint([]byte{'0' + b})
	}
	return x.lsh(shift).add(dint([]byte{'0' + b}))
}

// pad returns x with leading zeros added up to the given length.
// The result is a raw digit string and may violate the dint invariant.
func (x dint) pad(length int) string {
	if len(x) >= length {
		return string(x)
	}
	return strings.Repeat("0", length-len(x)) + string(x)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q using long division.
// Each quotient digit is the number of times y can be subtracted from the
// running remainder after the next digit of x is brought down.
func (x dint) quoRem(y dint) (q, r dint, err error) {
	if y.isZero() {
		return "", "", ErrDivisionByZero
	}
	if x.cmp(y) < 0 {
		return dintZero, x, nil
	}
	buf := make([]byte, len(x))
	r = dintZero
	for i := 0; i < len(x); i++ {
		r = r.fsa(1, x[i]-'0')
		c := byte(0)
		for r.cmp(y) >= 0 {
			r = r.subUnchecked(y)
			c++
		}
		buf[i] = c + '0'
	}
	return newDintFromBytes(buf), r, nil
}

// quo calculates ⌊x * 10^prec / y⌋, which is the quotient of x and y
// truncated to prec digits after the decimal point.
func (x dint) quo(y dint, prec int) (dint, error) {
	q, _, err := x.lsh(prec).quoRem(y)
	return q, err
}

// rem calculates x mod y.
func (x dint) rem(y dint) (dint, error) {
	_, r, err := x.quoRem(y)
	return r, err
}
