// Package symcalc represents mathematical expressions as trees and provides
// numeric evaluation, symbolic differentiation and algebraic simplification
// over them.
//
// Expressions are built programmatically, either from raw nodes (NewSum,
// NewPower, ...) or through the Expression facade (Var("x").Pow(Num(2))).
// Nodes are immutable: every operation returns a new tree.
package symcalc

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

// Kind identifies the variant of a Node.
type Kind string

const (
	KindValue    Kind = "value"
	KindVariable Kind = "variable"
	KindConstant Kind = "constant"
	KindSum      Kind = "sum"
	KindNegate   Kind = "negate"
	KindMult     Kind = "mult"
	KindDiv      Kind = "div"
	KindPower    Kind = "power"
	KindLog      Kind = "log"
	KindLn       Kind = "ln"
	KindExp      Kind = "exp"
	KindAbs      Kind = "abs"
	KindSin      Kind = "sin"
	KindCos      Kind = "cos"
)

// Node is one element of an expression tree. The set of implementations is
// closed; the text form of every node is fixed when it is constructed.
type Node interface {
	String() string
	Kind() Kind
	node()
}

// ============================================================
// Leaves
// ============================================================

// Value is a numeric literal.
type Value struct {
	x    float64
	text string
}

func NewValue(x float64) *Value { return &Value{x: x, text: formatValue(x)} }

func (v *Value) Float64() float64 { return v.x }
func (v *Value) String() string   { return v.text }
func (v *Value) Kind() Kind       { return KindValue }
func (*Value) node()              {}

// formatValue prints x with six decimals and trims trailing zeros and the
// trailing decimal point: 2 -> "2", 0.5 -> "0.5", 1e-7 -> "0".
func formatValue(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Variable is a free symbol.
type Variable struct{ name string }

func NewVariable(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Name() string   { return v.name }
func (v *Variable) String() string { return v.name }
func (v *Variable) Kind() Kind     { return KindVariable }
func (*Variable) node()            {}

// Constant evaluates and differentiates like a Value but prints its name.
type Constant struct {
	name string
	x    float64
}

func NewConstant(name string, x float64) *Constant { return &Constant{name: name, x: x} }

func (c *Constant) Name() string     { return c.name }
func (c *Constant) Float64() float64 { return c.x }
func (c *Constant) String() string   { return c.name }
func (c *Constant) Kind() Kind       { return KindConstant }
func (*Constant) node()              {}

// ============================================================
// Sum / Mult: n-ary, flattened at construction
// ============================================================

// Sum is an n-ary addition. A Sum never directly contains another Sum.
type Sum struct {
	terms []Node
	text  string
}

// NewSum splices the terms of any Sum argument into the new node.
func NewSum(terms ...Node) *Sum {
	flat := flatten(terms, func(n Node) ([]Node, bool) {
		s, ok := n.(*Sum)
		if !ok {
			return nil, false
		}
		return s.terms, true
	})
	return &Sum{terms: flat, text: joinText(flat, " + ", "0")}
}

// Terms returns a copy of the term list.
func (s *Sum) Terms() []Node  { return append([]Node(nil), s.terms...) }
func (s *Sum) Len() int       { return len(s.terms) }
func (s *Sum) String() string { return s.text }
func (s *Sum) Kind() Kind     { return KindSum }
func (*Sum) node()            {}

// Mult is an n-ary product. A Mult never directly contains another Mult.
type Mult struct {
	factors []Node
	text    string
}

// NewMult splices the factors of any Mult argument into the new node.
func NewMult(factors ...Node) *Mult {
	flat := flatten(factors, func(n Node) ([]Node, bool) {
		m, ok := n.(*Mult)
		if !ok {
			return nil, false
		}
		return m.factors, true
	})
	return &Mult{factors: flat, text: joinText(flat, " * ", "1")}
}

// Factors returns a copy of the factor list.
func (m *Mult) Factors() []Node { return append([]Node(nil), m.factors...) }
func (m *Mult) Len() int        { return len(m.factors) }
func (m *Mult) String() string  { return m.text }
func (m *Mult) Kind() Kind      { return KindMult }
func (*Mult) node()             {}

func flatten(nodes []Node, children func(Node) ([]Node, bool)) []Node {
	flat := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if inner, ok := children(n); ok {
			flat = append(flat, inner...)
			continue
		}
		flat = append(flat, n)
	}
	return flat
}

func joinText(nodes []Node, sep, empty string) string {
	if len(nodes) == 0 {
		return empty
	}
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString("(")
		sb.WriteString(n.String())
		sb.WriteString(")")
	}
	return sb.String()
}

// ============================================================
// Negate / Div / Power / Log
// ============================================================

type Negate struct {
	arg  Node
	text string
}

func NewNegate(arg Node) *Negate { return &Negate{arg: arg, text: "-(" + arg.String() + ")"} }

func (n *Negate) Arg() Node      { return n.arg }
func (n *Negate) String() string { return n.text }
func (n *Negate) Kind() Kind     { return KindNegate }
func (*Negate) node()            {}

type Div struct {
	num, den Node
	text     string
}

func NewDiv(num, den Node) *Div {
	return &Div{num: num, den: den, text: "(" + num.String() + ") / (" + den.String() + ")"}
}

func (d *Div) Numerator() Node   { return d.num }
func (d *Div) Denominator() Node { return d.den }
func (d *Div) String() string    { return d.text }
func (d *Div) Kind() Kind        { return KindDiv }
func (*Div) node()               {}

type Power struct {
	base, exp Node
	text      string
}

func NewPower(base, exp Node) *Power {
	return &Power{base: base, exp: exp, text: "(" + base.String() + ") ^ (" + exp.String() + ")"}
}

func (p *Power) Base() Node     { return p.base }
func (p *Power) Exponent() Node { return p.exp }
func (p *Power) String() string { return p.text }
func (p *Power) Kind() Kind     { return KindPower }
func (*Power) node()            {}

// Log is the logarithm of arg in the given base.
type Log struct {
	arg, base Node
	text      string
}

func NewLog(arg, base Node) *Log {
	return &Log{arg: arg, base: base, text: "log_(" + base.String() + ")(" + arg.String() + ")"}
}

func (l *Log) Arg() Node      { return l.arg }
func (l *Log) Base() Node     { return l.base }
func (l *Log) String() string { return l.text }
func (l *Log) Kind() Kind     { return KindLog }
func (*Log) node()            {}

// ============================================================
// Single-argument functions
// ============================================================

type unary struct {
	arg  Node
	text string
}

func (u *unary) Arg() Node      { return u.arg }
func (u *unary) String() string { return u.text }

type Ln struct{ unary }

func NewLn(arg Node) *Ln { return &Ln{unary{arg: arg, text: "ln(" + arg.String() + ")"}} }

func (*Ln) Kind() Kind { return KindLn }
func (*Ln) node()      {}

type Exp struct{ unary }

func NewExp(arg Node) *Exp { return &Exp{unary{arg: arg, text: "exp(" + arg.String() + ")"}} }

func (*Exp) Kind() Kind { return KindExp }
func (*Exp) node()      {}

type Abs struct{ unary }

func NewAbs(arg Node) *Abs { return &Abs{unary{arg: arg, text: "|" + arg.String() + "|"}} }

func (*Abs) Kind() Kind { return KindAbs }
func (*Abs) node()      {}

type Sin struct{ unary }

func NewSin(arg Node) *Sin { return &Sin{unary{arg: arg, text: "sin(" + arg.String() + ")"}} }

func (*Sin) Kind() Kind { return KindSin }
func (*Sin) node()      {}

type Cos struct{ unary }

func NewCos(arg Node) *Cos { return &Cos{unary{arg: arg, text: "cos(" + arg.String() + ")"}} }

func (*Cos) Kind() Kind { return KindCos }
func (*Cos) node()      {}
