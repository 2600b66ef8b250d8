// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import "math"

// function holds a numeric function and the derivative of f(u) with respect to u
type function struct {
	f  func(u float64) float64
	df func(u Expr) Expr
}

// functions holds all known functions. aliases are resolved by the parser
var functions map[string]function

func init() {
	functions = map[string]function{
		"sin":  {math.Sin, func(u Expr) Expr { return call("cos", u) }},
		"cos":  {math.Cos, func(u Expr) Expr { return neg(call("sin", u)) }},
		"tan":  {math.Tan, func(u Expr) Expr { return div(Num(1), pow(call("cos", u), Num(2))) }},
		"asin": {math.Asin, func(u Expr) Expr { return div(Num(1), call("sqrt", sub(Num(1), pow(u, Num(2))))) }},
		"acos": {math.Acos, func(u Expr) Expr { return neg(div(Num(1), call("sqrt", sub(Num(1), pow(u, Num(2)))))) }},
		"atan": {math.Atan, func(u Expr) Expr { return div(Num(1), add(Num(1), pow(u, Num(2)))) }},
		"sinh": {math.Sinh, func(u Expr) Expr { return call("cosh", u) }},
		"cosh": {math.Cosh, func(u Expr) Expr { return call("sinh", u) }},
		"tanh": {math.Tanh, func(u Expr) Expr { return sub(Num(1), pow(call("tanh", u), Num(2))) }},
		"exp":  {math.Exp, func(u Expr) Expr { return call("exp", u) }},
		"log":  {math.Log, func(u Expr) Expr { return div(Num(1), u) }},
		"sqrt": {math.Sqrt, func(u Expr) Expr { return div(Num(1), mul(Num(2), call("sqrt", u))) }},
		"abs":  {math.Abs, func(u Expr) Expr { return call("sign", u) }},
		"sign": {sign, func(u Expr) Expr { return Num(0) }},
	}
}

// aliases maps alternative names to known functions
var aliases = map[string]string{
	"ln":  "log",
	"Abs": "abs",
}

func sign(u float64) float64 {
	switch {
	case u > 0:
		return 1
	case u < 0:
		return -1
	case u == 0:
		return 0
	}
	return math.NaN()
}

// Diff /////////////////////////////////////////////////////////////////////////////////////////

func (o Num) Diff() Expr  { return Num(0) }
func (o *Var) Diff() Expr { return Num(1) }
func (o *Neg) Diff() Expr { return neg(o.X.Diff()) }

func (o *Binary) Diff() Expr {
	u, v := o.X, o.Y
	du, dv := u.Diff(), v.Diff()
	switch o.Op {
	case '+':
		return add(du, dv)
	case '-':
		return sub(du, dv)
	case '*':
		return add(mul(du, v), mul(u, dv))
	case '/':
		return div(sub(mul(du, v), mul(u, dv)), pow(v, Num(2)))
	}

	// power with constant exponent: v u^(v-1) u'
	if !hasVar(v) {
		return mul(mul(v, pow(u, sub(v, Num(1)))), du)
	}

	// constant base: u^v ln(u) v'
	if !hasVar(u) {
		return mul(mul(o, call("log", u)), dv)
	}

	// general case: u^v (v' ln(u) + v u'/u)
	return mul(o, add(mul(dv, call("log", u)), div(mul(v, du), u)))
}

func (o *Call) Diff() Expr {
	return mul(functions[o.Fn].df(o.Arg), o.Arg.Diff())
}
