/*
Package bigdecimal implements immutable decimal numbers of arbitrary precision.
Numbers are stored as strings of decimal digits, so every value that can be
written as a finite decimal literal is represented exactly, without
binary-decimal conversion error.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: a string of decimal digits representing the numeric value of
    the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    The scale may exceed the number of digits in the coefficient: a decimal with
    a coefficient of 5 and a scale of 3 represents the value 0.005.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

Non-zero values keep the scale they were created with, so 1.5 and 1.50 have
different representations but equal values.
Zero has a single representation: it is never negative and its scale is 0.
[Decimal.String] always returns the shortest form, without trailing zeros.

Special values such as NaN, Infinity, or negative zeros are not supported.

# Operations

Addition, subtraction and multiplication are exact and never fail:
[Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Pow].

Division takes the number of digits after the decimal point as an argument,
and the quotient is truncated towards zero:
[Decimal.Quo], [Decimal.QuoRem].
The remainder [Decimal.Rem] has the sign of the dividend, so that
d = q * e + r holds for the truncated quotient q.

Multiplication uses schoolbook multiplication for short operands and
Karatsuba multiplication for operands longer than
[DefaultKaratsubaCutoff] digits.
Division is performed digit by digit, counting subtractions of the divisor.

Transcendental functions take the number of digits after the decimal point as
an argument, and the result is truncated to that precision:
[Decimal.Exp], [Decimal.Log], [Decimal.PowDecimal].

# Context

The package-level methods use [DefaultContext].
A [Context] exposes the parameters of the algorithms: the Karatsuba cutoff,
the number of Newton's method iterations for logarithms, and the limit on
the number of Taylor series terms for exponents.
These parameters affect speed and convergence, but not the results of exact
operations.

	| Parameter        | Default |
	| ---------------- | ------- |
	| KaratsubaCutoff  | 32      |
	| NewtonIterations | 20      |
	| TaylorFactor     | 4       |

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Invalid literal.
    [Parse] returns an error wrapping [ErrInvalidDecimal].

  - Division by Zero.
    [Decimal.Quo] and [Decimal.QuoRem] return [ErrDivisionByZero],
    and [Decimal.Rem] returns [ErrModuloByZero].

  - Domain error.
    [Decimal.Log] returns [ErrDomain] for zero and negative arguments.

  - Precision out of range.
    Negative precision, or precision below 1 for transcendental functions,
    results in [ErrPrecisionRange].

Errors are never replaced with a default value, so a computed zero can always
be told apart from a failure.
Use [errors.Is] to check the kind of an error.
*/
package bigdecimal
