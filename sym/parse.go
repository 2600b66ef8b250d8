// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"go/scanner"
	"go/token"
	"math"
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// item holds one token of a formula
type item struct {
	tok token.Token
	lit string
	pos int
}

// parser implements a recursive-descent parser with the usual precedence rules:
//
//	expr  := term {("+"|"-") term}
//	term  := unary {("*"|"/") unary}
//	unary := ("+"|"-") unary | power
//	power := primary [("**"|"^") unary]
//	primary := number | name | name "(" expr {"," expr} ")" | "(" expr ")"
type parser struct {
	src   string
	vname string
	items []item
	k     int
}

// Parse parses a formula of one variable named vname; e.g. Parse("x/2 + 5", "x")
//
//	Notes:
//	  1) "**" and "^" both denote the power operator
//	  2) pi and E are constants unless they are the variable name
//	  3) comments are not allowed; e.g. "x//2" is an error
func Parse(src, vname string) (e Expr, err error) {
	o := &parser{src: src, vname: vname}
	err = o.tokenize()
	if err != nil {
		return
	}
	if len(o.items) == 1 {
		return nil, chk.Err("formula %q is empty", src)
	}
	e, err = o.expr()
	if err != nil {
		return
	}
	if t := o.peek(); t.tok != token.EOF {
		return nil, o.unexpected(t)
	}
	return
}

// MustParse parses formula and panics on errors
func MustParse(src, vname string) Expr {
	e, err := Parse(src, vname)
	if err != nil {
		chk.Panic("%v", err)
	}
	return e
}

// tokenize splits src into items. Adjacent "**" are merged into one power token
func (o *parser) tokenize() (err error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(o.src))
	var s scanner.Scanner
	s.Init(file, []byte(o.src), func(pos token.Position, msg string) {
		if err == nil {
			err = chk.Err("formula %q: column %d: %s", o.src, pos.Column, msg)
		}
	}, scanner.ScanComments)
	for {
		p, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		pos := file.Offset(p)
		if tok == token.COMMENT {
			if err == nil {
				err = chk.Err("formula %q: column %d: unexpected %s", o.src, pos+1, lit)
			}
			break
		}
		n := len(o.items)
		if tok == token.MUL && n > 0 && o.items[n-1].tok == token.MUL && o.items[n-1].pos == pos-1 {
			o.items[n-1].tok = token.XOR
			continue
		}
		o.items = append(o.items, item{tok, lit, pos})
		if tok == token.EOF {
			break
		}
	}
	return
}

func (o *parser) peek() item { return o.items[o.k] }

func (o *parser) next() item {
	t := o.items[o.k]
	if t.tok != token.EOF {
		o.k++
	}
	return t
}

func (o *parser) unexpected(t item) error {
	if t.tok == token.EOF {
		return chk.Err("formula %q: unexpected end of formula", o.src)
	}
	s := t.lit
	if s == "" {
		s = t.tok.String()
	}
	if t.tok == token.XOR {
		s = "power operator"
	}
	return chk.Err("formula %q: column %d: unexpected %s", o.src, t.pos+1, s)
}

func (o *parser) expr() (e Expr, err error) {
	e, err = o.term()
	if err != nil {
		return
	}
	for {
		t := o.peek()
		if t.tok != token.ADD && t.tok != token.SUB {
			return
		}
		o.next()
		var r Expr
		r, err = o.term()
		if err != nil {
			return
		}
		if t.tok == token.ADD {
			e = &Binary{'+', e, r}
		} else {
			e = &Binary{'-', e, r}
		}
	}
}

func (o *parser) term() (e Expr, err error) {
	e, err = o.unary()
	if err != nil {
		return
	}
	for {
		t := o.peek()
		if t.tok != token.MUL && t.tok != token.QUO {
			return
		}
		o.next()
		var r Expr
		r, err = o.unary()
		if err != nil {
			return
		}
		if t.tok == token.MUL {
			e = &Binary{'*', e, r}
		} else {
			e = &Binary{'/', e, r}
		}
	}
}

func (o *parser) unary() (e Expr, err error) {
	switch o.peek().tok {
	case token.SUB:
		o.next()
		e, err = o.unary()
		if err != nil {
			return
		}
		return &Neg{e}, nil
	case token.ADD:
		o.next()
		return o.unary()
	}
	return o.power()
}

func (o *parser) power() (e Expr, err error) {
	e, err = o.primary()
	if err != nil {
		return
	}
	if o.peek().tok != token.XOR {
		return
	}
	o.next()
	var r Expr
	r, err = o.unary()
	if err != nil {
		return
	}
	return &Binary{'^', e, r}, nil
}

func (o *parser) primary() (e Expr, err error) {
	t := o.next()
	switch t.tok {

	case token.INT, token.FLOAT:
		v, perr := strconv.ParseFloat(t.lit, 64)
		if perr != nil {
			return nil, chk.Err("formula %q: column %d: invalid number %q", o.src, t.pos+1, t.lit)
		}
		return Num(v), nil

	case token.LPAREN:
		e, err = o.expr()
		if err != nil {
			return
		}
		if c := o.next(); c.tok != token.RPAREN {
			return nil, o.unexpected(c)
		}
		return

	case token.IDENT:
		if o.peek().tok == token.LPAREN {
			return o.call(t)
		}
		switch {
		case t.lit == o.vname:
			return &Var{t.lit}, nil
		case t.lit == "pi":
			return Num(math.Pi), nil
		case t.lit == "E":
			return Num(math.E), nil
		}
		return nil, chk.Err("formula %q: column %d: unknown symbol %q; the variable is %q", o.src, t.pos+1, t.lit, o.vname)
	}
	return nil, o.unexpected(t)
}

// call parses the arguments of function t
func (o *parser) call(t item) (e Expr, err error) {
	o.next() // (
	var args []Expr
	for {
		var a Expr
		a, err = o.expr()
		if err != nil {
			return
		}
		args = append(args, a)
		c := o.next()
		if c.tok == token.RPAREN {
			break
		}
		if c.tok != token.COMMA {
			return nil, o.unexpected(c)
		}
	}

	// power function
	if t.lit == "pow" {
		if len(args) != 2 {
			return nil, chk.Err("formula %q: column %d: pow requires 2 arguments; %d given", o.src, t.pos+1, len(args))
		}
		return &Binary{'^', args[0], args[1]}, nil
	}

	// other functions
	name := t.lit
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if _, ok := functions[name]; !ok {
		return nil, chk.Err("formula %q: column %d: unknown function %q", o.src, t.pos+1, t.lit)
	}
	if len(args) != 1 {
		return nil, chk.Err("formula %q: column %d: %s requires 1 argument; %d given", o.src, t.pos+1, t.lit, len(args))
	}
	return &Call{name, args[0]}, nil
}
