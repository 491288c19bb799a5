package decimal_test

import (
	"fmt"

	"github.com/numforge/decimal"
)

func ExampleNew() {
	fmt.Println(decimal.New(123456, -3))
	fmt.Println(decimal.New(1, 30))
	fmt.Println(decimal.New(-5, 0))
	// Output:
	// 123.456
	// 1e30
	// -5
}

func ExampleNewRat() {
	fmt.Println(decimal.NewRat(1, 3, 0))
	fmt.Println(decimal.NewRat(1, 2, 0))
	fmt.Println(decimal.NewRat(2, 6, 0))
	// Output:
	// 1/3
	// 0.5
	// 1/3
}

func ExampleParse() {
	d, err := decimal.Parse("1/3")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1/3
}

func ExampleDecimal_Quo() {
	one := decimal.New(1, 0)
	three := decimal.New(3, 0)
	third := one.Quo(three)
	fmt.Println(third)
	fmt.Println(third.Mul(three))
	fmt.Println(one.Quo(decimal.New(0, 0)))
	// Output:
	// 1/3
	// 1
	// Infinity
}

func ExampleDecimal_Add() {
	// Decimal addition does not suffer from binary float drift.
	a := decimal.MustParse("0.1")
	b := decimal.MustParse("0.2")
	fmt.Println(a.Add(b))
	// Output: 0.3
}

func ExampleDecimal_Pow() {
	two := decimal.New(2, 0)
	fmt.Println(two.Pow(decimal.New(10, 0)))
	fmt.Println(decimal.New(-2, 0).Pow(decimal.MustParse("0.5")))
	// Output:
	// 1024
	// NaN
}

func ExampleDecimal_Log() {
	fmt.Println(decimal.New(1, 0).Log())
	fmt.Println(decimal.New(0, 0).Log())
	fmt.Println(decimal.New(-1, 0).Log())
	// Output:
	// 0
	// Infinity
	// NaN
}

func ExampleDecimal_Cmp() {
	third := decimal.NewRat(1, 3, 0)
	approx := decimal.MustParse("0.333333333333333333")
	fmt.Println(third.Cmp(approx))
	fmt.Println(decimal.NaN().Cmp(decimal.Inf(-1)))
	// Output:
	// 1
	// -1
}
