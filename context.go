package bigdecimal

// Default values of [Context] parameters.
const (
	// DefaultKaratsubaCutoff is the length in digits up to which operands are
	// multiplied using schoolbook multiplication.
	// Longer operands are multiplied using Karatsuba multiplication.
	DefaultKaratsubaCutoff = 32

	// DefaultNewtonIterations is the maximum number of Newton's method
	// iterations performed by [Context.Log].
	DefaultNewtonIterations = 20

	// DefaultTaylorFactor limits the number of Taylor series terms evaluated
	// by [Context.Exp] to DefaultTaylorFactor times the working precision.
	DefaultTaylorFactor = 4
)

// guardDigits is the number of extra digits carried by iterative
// computations beyond the requested precision.
const guardDigits = 5

// Context holds the tuning parameters of the arithmetic algorithms.
// A zero parameter selects its default value, so the zero Context is equivalent
// to [DefaultContext].
//
// Context is a value type and is safe for concurrent use.
// The parameters affect only the speed and the convergence of computations.
// Exact operations return the same result for any Context.
type Context struct {
	// KaratsubaCutoff is the length in digits up to which operands are
	// multiplied using schoolbook multiplication.
	// Values below 4 are treated as 4.
	KaratsubaCutoff int

	// NewtonIterations is the maximum number of iterations of Newton's method
	// used to compute logarithms.
	NewtonIterations int

	// TaylorFactor limits the number of terms of the Taylor series used to
	// compute exponents to TaylorFactor times the working precision.
	// Arguments are reduced below 1 before the series is summed, so the series
	// normally ends on a zero term well before the limit.
	// The limit only takes effect for factors close to 1 at small precisions.
	TaylorFactor int
}

// DefaultContext is the context used by the methods of [Decimal].
var DefaultContext = Context{
	KaratsubaCutoff:  DefaultKaratsubaCutoff,
	NewtonIterations: DefaultNewtonIterations,
	TaylorFactor:     DefaultTaylorFactor,
}

func (c Context) karatsubaCutoff() int {
	if c.KaratsubaCutoff <= 0 {
		return DefaultKaratsubaCutoff
	}
	return max(c.KaratsubaCutoff, minKaratsubaCutoff)
}

func (c Context) newtonIterations() int {
	if c.NewtonIterations <= 0 {
		return DefaultNewtonIterations
	}
	return c.NewtonIterations
}

func (c Context) taylorFactor() int {
	if c.TaylorFactor <= 0 {
		return DefaultTaylorFactor
	}
	return c.TaylorFactor
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the scales of d and e.
func (c Context) Mul(d, e Decimal) Decimal {
	var (
		coef  dint
		neg   bool
		scale int
	)

	// Coefficient
	coef = d.mag().mul(e.mag(), c.karatsubaCutoff())

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Scale
	scale = d.scale + e.scale

	return newDecimal(neg, coef, scale)
}
