// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements symbolic expressions of one variable, their analytic
// derivatives and their compilation into numeric functions
package sym

import (
	"math"
	"strconv"
)

// Expr defines a symbolic expression of a single variable
type Expr interface {
	Eval(x float64) float64 // evaluates expression at x
	Diff() Expr             // analytic first derivative with respect to the variable
	String() string         // parseable representation
}

// Func is a compiled numeric function of one variable
type Func func(x float64) float64

// Compile returns a pure numeric function evaluating e
func Compile(e Expr) Func {
	return func(x float64) float64 { return e.Eval(x) }
}

// Num is a numeric constant
type Num float64

// Var is the independent variable
type Var struct {
	Name string
}

// Neg is the negation of X
type Neg struct {
	X Expr
}

// Binary holds X op Y where op is one of + - * / ^
type Binary struct {
	Op byte
	X  Expr
	Y  Expr
}

// Call holds fn(Arg) for one of the known functions
type Call struct {
	Fn  string
	Arg Expr
}

// Eval ///////////////////////////////////////////////////////////////////////////////////////////

func (o Num) Eval(x float64) float64  { return float64(o) }
func (o *Var) Eval(x float64) float64 { return x }
func (o *Neg) Eval(x float64) float64 { return -o.X.Eval(x) }

func (o *Binary) Eval(x float64) float64 {
	a, b := o.X.Eval(x), o.Y.Eval(x)
	switch o.Op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	}
	return math.Pow(a, b)
}

func (o *Call) Eval(x float64) float64 {
	return functions[o.Fn].f(o.Arg.Eval(x))
}

// String /////////////////////////////////////////////////////////////////////////////////////////

func (o Num) String() string {
	s := strconv.FormatFloat(float64(o), 'g', -1, 64)
	if o < 0 {
		return "(" + s + ")"
	}
	return s
}

func (o *Var) String() string { return o.Name }
func (o *Neg) String() string { return "(-" + o.X.String() + ")" }

func (o *Binary) String() string {
	return "(" + o.X.String() + " " + string(o.Op) + " " + o.Y.String() + ")"
}

func (o *Call) String() string { return o.Fn + "(" + o.Arg.String() + ")" }

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// hasVar tells whether e depends on the variable
func hasVar(e Expr) bool {
	switch o := e.(type) {
	case *Var:
		return true
	case *Neg:
		return hasVar(o.X)
	case *Binary:
		return hasVar(o.X) || hasVar(o.Y)
	case *Call:
		return hasVar(o.Arg)
	}
	return false
}

// isNum tells whether e is the constant v
func isNum(e Expr, v float64) bool {
	n, ok := e.(Num)
	return ok && float64(n) == v
}

// builders with constant folding. they are used by Diff to keep derivatives small

func add(a, b Expr) Expr {
	p, okp := a.(Num)
	q, okq := b.(Num)
	switch {
	case okp && okq:
		return p + q
	case isNum(a, 0):
		return b
	case isNum(b, 0):
		return a
	}
	return &Binary{'+', a, b}
}

func sub(a, b Expr) Expr {
	p, okp := a.(Num)
	q, okq := b.(Num)
	switch {
	case okp && okq:
		return p - q
	case isNum(b, 0):
		return a
	case isNum(a, 0):
		return neg(b)
	}
	return &Binary{'-', a, b}
}

func mul(a, b Expr) Expr {
	p, okp := a.(Num)
	q, okq := b.(Num)
	switch {
	case okp && okq:
		return p * q
	case isNum(a, 0) || isNum(b, 0):
		return Num(0)
	case isNum(a, 1):
		return b
	case isNum(b, 1):
		return a
	case isNum(a, -1):
		return neg(b)
	case isNum(b, -1):
		return neg(a)
	}
	return &Binary{'*', a, b}
}

func div(a, b Expr) Expr {
	p, okp := a.(Num)
	q, okq := b.(Num)
	switch {
	case okp && okq && q != 0:
		return p / q
	case isNum(a, 0):
		return Num(0)
	case isNum(b, 1):
		return a
	}
	return &Binary{'/', a, b}
}

func pow(a, b Expr) Expr {
	p, okp := a.(Num)
	q, okq := b.(Num)
	switch {
	case okp && okq:
		return Num(math.Pow(float64(p), float64(q)))
	case isNum(b, 0):
		return Num(1)
	case isNum(b, 1):
		return a
	}
	return &Binary{'^', a, b}
}

func neg(a Expr) Expr {
	switch o := a.(type) {
	case Num:
		return -o
	case *Neg:
		return o.X
	}
	return &Neg{a}
}

func call(fn string, arg Expr) Expr {
	if n, ok := arg.(Num); ok {
		return Num(functions[fn].f(float64(n)))
	}
	return &Call{fn, arg}
}
