// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_parse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse01. evaluation of parsed formulas")

	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x/2", 5, 2.5},
		{"x/2 + 5", 10, 10},
		{"2*x**2", 3, 18},
		{"-x^2", 3, -9},
		{"2**-1", 0, 0.5},
		{"2**3**2", 0, 512},
		{"pow(x, 3)", 2, 8},
		{"sqrt(x) + ln(E)", 4, 3},
		{"Abs(x)", -2, 2},
		{"1.5e-3*x", 1000, 1.5},
		{"(x - 1)*(x + 1)", 3, 8},
		{"+x - -x", 2, 4},
		{"2*pi", 0, 2 * math.Pi},
		{"exp(0) + cos(0)", 7, 2},
	}
	for _, c := range cases {
		e, err := Parse(c.src, "x")
		require.NoError(tst, err, c.src)
		io.Pforan("%-18s => %v\n", c.src, e)
		require.InDelta(tst, c.want, e.Eval(c.x), 1e-14, c.src)
		f := Compile(e)
		require.InDelta(tst, c.want, f(c.x), 1e-14, c.src)
	}
}

func Test_parse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse02. invalid formulas")

	bad := []string{
		"",
		"   ",
		"x +",
		"y*2",
		"foo(x)",
		"pow(x)",
		"sin(x, 2)",
		"(x",
		"x)",
		"x $ 2",
		"x * * 2",
		"2 x",
		"x//2",
		"x/*2*/",
		"x/2 // 5",
		"e*x",
	}
	for _, src := range bad {
		_, err := Parse(src, "x")
		require.Error(tst, err, "formula %q should fail", src)
		io.Pforan("%-10q => %v\n", src, err)
	}
}

func Test_parse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse03. other variable names and round trip")

	e, err := Parse("s/E", "s")
	require.NoError(tst, err)
	require.InDelta(tst, 1.0, e.Eval(math.E), 1e-15)

	e, err = Parse("2*e + 1", "e")
	require.NoError(tst, err)
	require.InDelta(tst, 7.0, e.Eval(3), 1e-15)

	srcs := []string{"x/2 + 5", "-x**2 + 3*x - 1", "sin(x)*exp(-x)", "x^x", "1/(1 + x)"}
	for _, src := range srcs {
		a := MustParse(src, "x")
		b, err := Parse(a.String(), "x")
		require.NoError(tst, err, a.String())
		for _, x := range []float64{0.5, 1.5, 2.5} {
			require.InDelta(tst, a.Eval(x), b.Eval(x), 1e-14, src)
		}
	}
}

func Test_diff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diff01. derivatives are simplified")

	cases := []struct {
		src  string
		want string
	}{
		{"x/2", "0.5"},
		{"x/2 + 5", "0.5"},
		{"3*x", "3"},
		{"x - 7", "1"},
		{"-x", "(-1)"},
		{"5", "0"},
		{"pi*2", "0"},
	}
	for _, c := range cases {
		d := MustParse(c.src, "x").Diff()
		io.Pforan("d(%s)/dx = %v\n", c.src, d)
		require.Equal(tst, c.want, d.String(), c.src)
	}
}

func Test_diff02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diff02. derivatives versus finite differences")

	srcs := []string{
		"x/2 + 5",
		"x**3 - 2*x",
		"sin(x)*exp(-x)",
		"log(x)/x",
		"sqrt(1 + x^2)",
		"x^x",
		"2^x",
		"tanh(x/10)",
		"atan(x)",
		"asin(x/10)",
		"acos(x/10)",
		"cosh(x) - sinh(x)",
		"tan(x/4)",
		"abs(x - 10)",
		"pow(x, 0.5)*cos(x)",
		"1/(1 + x)**2",
	}
	h := 1e-6
	for _, src := range srcs {
		e := MustParse(src, "x")
		f := Compile(e)
		df := Compile(e.Diff())
		for _, x := range []float64{0.5, 1.3, 2.7} {
			num := (f(x+h) - f(x-h)) / (2 * h)
			chk.AnaNum(tst, io.Sf("d(%s)/dx @ %g", src, x), 1e-6, df(x), num, chk.Verbose)
		}
	}
}
