package bigdecimal

// minKaratsubaCutoff is the smallest cutoff for which the Karatsuba
// recursion is guaranteed to reach the schoolbook base case.
const minKaratsubaCutoff = 4

// mul calculates x * y.
// Operands that are not longer than cutoff digits are multiplied using
// schoolbook multiplication, larger ones using Karatsuba multiplication.
func (x dint) mul(y dint, cutoff int) dint {
	if cutoff < minKaratsubaCutoff {
		cutoff = minKaratsubaCutoff
	}
	return x.mulKaratsuba(y, cutoff)
}

// mulSchool calculates x * y using schoolbook multiplication.
// Products of digit pairs are accumulated by the sum of their positions,
// and carries are propagated once at the end.
func (x dint) mulSchool(y dint) dint {
	if x.isZero() || y.isZero() {
		return dintZero
	}
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		xi := int(x[i] - '0')
		if xi == 0 {
			continue
		}
		for j := len(y) - 1; j >= 0; j-- {
			acc[i+j+1] += xi * int(y[j]-'0')
		}
	}
	buf := make([]byte, len(acc))
	carry := 0
	for k := len(acc) - 1; k >= 0; k-- {
		s := acc[k] + carry
		buf[k] = byte(s%10) + '0'
		carry = s / 10
	}
	return newDintFromBytes(buf)
}

// mulKaratsuba calculates x * y using Karatsuba multiplication.
// Both operands are padded with leading zeros to a common even length n
// and split into halves:
//
//	x = xh * 10^(n/2) + xl
//	y = yh * 10^(n/2) + yl
//
// and then
//
//	x * y = z2 * 10^n + z1 * 10^(n/2) + z0
//
// where z2 = xh * yh, z0 = xl * yl and z1 = (xh + xl) * (yh + yl) - z2 - z0.
func (x dint) mulKaratsuba(y dint, cutoff int) dint {
	n := max(len(x), len(y))

	// Special cases
	switch {
	case x.isZero() || y.isZero():
		return dintZero
	case n <= cutoff:
		return x.mulSchool(y)
	}

	// Splitting
	if n%2 != 0 {
		n++
	}
	h := n / 2
	xs, ys := x.pad(n), y.pad(n)
	xh, xl := newDint(xs[:h]), newDint(xs[h:])
	yh, yl := newDint(ys[:h]), newDint(ys[h:])

	// Partial products
	z2 := xh.mulKaratsuba(yh, cutoff)
	z0 := xl.mulKaratsuba(yl, cutoff)
	p := xh.add(xl).mulKaratsuba(yh.add(yl), cutoff)
	z1 := p.subUnchecked(z2).subUnchecked(z0)

	// Assembly
	return z2.lsh(n).add(z1.lsh(h)).add(z0)
}
