package bigdecimal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/bigdecimal"
)

func evaluate(input string) (bigdecimal.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bigdecimal.Decimal{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return bigdecimal.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return bigdecimal.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]bigdecimal.Decimal, error) {
	stack := make([]bigdecimal.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "%":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []bigdecimal.Decimal, token string) ([]bigdecimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigdecimal.Decimal
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right, 10)
	case "%":
		result, err = left.Rem(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []bigdecimal.Decimal, token string) ([]bigdecimal.Decimal, error) {
	d, err := bigdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix (or Polish) notation.
// The calculator can handle addition, subtraction, multiplication,
// division and remainder.
func Example_prefixCalculator() {
	d, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = evaluate("/ 1 - 2 2")
	fmt.Println(err)
	// Output:
	// 57.9
	// processing tokens: processing token "/": evaluating "1 / 0": computing [1 / 0]: division by zero
}

func ExampleNew() {
	fmt.Println(bigdecimal.New(-123, 2))
	fmt.Println(bigdecimal.New(5, 3))
	fmt.Println(bigdecimal.New(5, -1))
	// Output:
	// -1.23 <nil>
	// 0.005 <nil>
	// 0 creating decimal with scale -1: scale out of range
}

func ExampleParse() {
	fmt.Println(bigdecimal.Parse("+007.50"))
	fmt.Println(bigdecimal.Parse("--1.5"))
	fmt.Println(bigdecimal.Parse("1.2.3"))
	// Output:
	// 7.5 <nil>
	// 1.5 <nil>
	// 0 parsing "1.2.3": multiple decimal points: invalid decimal
}

func ExampleMustParse() {
	fmt.Println(bigdecimal.MustParse("-0.00"))
	// Output: 0
}

func ExampleDecimal_String() {
	d := bigdecimal.MustParse("-0.00100")
	fmt.Println(d.String())
	// Output: -0.001
}

func ExampleDecimal_MarshalText() {
	type Payment struct {
		Amount bigdecimal.Decimal `json:"amount"`
	}
	b, err := json.Marshal(Payment{Amount: bigdecimal.MustParse("12.50")})
	fmt.Println(string(b), err)
	// Output: {"amount":"12.5"} <nil>
}

func ExampleDecimal_UnmarshalText() {
	var p struct {
		Amount bigdecimal.Decimal `json:"amount"`
	}
	err := json.Unmarshal([]byte(`{"amount":"99.999"}`), &p)
	fmt.Println(p.Amount, err)
	// Output: 99.999 <nil>
}

func ExampleDecimal_Coef() {
	d := bigdecimal.MustParse("-0.0120")
	fmt.Println(d.Coef(), d.Scale(), d.Prec())
	// Output: 120 4 3
}

func ExampleDecimal_Add() {
	d := bigdecimal.MustParse("123.45")
	e := bigdecimal.MustParse("76.6")
	fmt.Println(d.Add(e))
	// Output: 200.05
}

func ExampleDecimal_Sub() {
	d := bigdecimal.MustParse("100")
	e := bigdecimal.MustParse("1")
	fmt.Println(d.Sub(e))
	// Output: 99
}

func ExampleDecimal_Mul() {
	d := bigdecimal.MustParse("1.5")
	e := bigdecimal.MustParse("-2.25")
	fmt.Println(d.Mul(e))
	// Output: -3.375
}

func ExampleDecimal_Quo() {
	d := bigdecimal.MustParse("22")
	e := bigdecimal.MustParse("7")
	fmt.Println(d.Quo(e, 10))
	fmt.Println(d.Quo(e, 0))
	fmt.Println(d.Quo(bigdecimal.Decimal{}, 10))
	// Output:
	// 3.1428571428 <nil>
	// 3 <nil>
	// 0 computing [22 / 0]: division by zero
}

func ExampleDecimal_Rem() {
	d := bigdecimal.MustParse("22.5")
	e := bigdecimal.MustParse("7")
	fmt.Println(d.Rem(e))
	fmt.Println(d.Neg().Rem(e))
	fmt.Println(d.Rem(bigdecimal.Decimal{}))
	// Output:
	// 1.5 <nil>
	// -1.5 <nil>
	// 0 computing [22.5 mod 0]: modulo by zero
}

func ExampleDecimal_QuoRem() {
	d := bigdecimal.MustParse("-22.5")
	e := bigdecimal.MustParse("7")
	fmt.Println(d.QuoRem(e))
	// Output: -3 -1.5 <nil>
}

func ExampleDecimal_Cmp() {
	d := bigdecimal.MustParse("-23")
	e := bigdecimal.MustParse("5.67")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleDecimal_Trunc() {
	d := bigdecimal.MustParse("-5.6789")
	fmt.Println(d.Trunc(0))
	fmt.Println(d.Trunc(2))
	fmt.Println(d.Trunc(6))
	// Output:
	// -5
	// -5.67
	// -5.6789
}

func ExampleDecimal_Reduce() {
	d := bigdecimal.MustParse("20.00")
	fmt.Println(d.Scale(), d.Reduce().Scale())
	// Output: 2 0
}

func ExampleDecimal_Pow() {
	d := bigdecimal.MustParse("1.5")
	fmt.Println(d.Pow(3))
	fmt.Println(d.Pow(0))
	// Output:
	// 3.375
	// 1
}

func ExampleDecimal_Exp() {
	d := bigdecimal.MustParse("1")
	fmt.Println(d.Exp(10))
	// Output: 2.7182818284 <nil>
}

func ExampleDecimal_Log() {
	d := bigdecimal.MustParse("2")
	fmt.Println(d.Log(10))
	_, err := bigdecimal.MustParse("-1").Log(10)
	fmt.Println(errors.Is(err, bigdecimal.ErrDomain), err)
	// Output:
	// 0.6931471805 <nil>
	// true computing ln(-1): argument out of domain
}

func ExampleDecimal_PowDecimal() {
	d := bigdecimal.MustParse("2")
	e := bigdecimal.MustParse("0.5")
	fmt.Println(d.PowDecimal(e, 10))
	fmt.Println(d.PowDecimal(bigdecimal.MustParse("-2"), 10))
	// Output:
	// 1.4142135623 <nil>
	// 0.25 <nil>
}

func ExampleContext_Mul() {
	c := bigdecimal.Context{KaratsubaCutoff: 4}
	d := bigdecimal.MustParse("123456789")
	e := bigdecimal.MustParse("987654321")
	fmt.Println(c.Mul(d, e))
	// Output: 121932631112635269
}
