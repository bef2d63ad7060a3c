package symcalc

import "math"

// ============================================================
// Simplification
// ============================================================

// Simplify applies the rewrite rules once, bottom-up. It does not iterate to
// a fixed point, so the result may still contain reducible forms such as
// x/1. Only plain Value literals take part in numeric folding; named
// constants are left alone.
func Simplify(n Node) Node {
	switch v := n.(type) {
	case *Value, *Variable, *Constant:
		return Clone(v)

	case *Sum:
		terms := make([]Node, 0, len(v.terms))
		for _, t := range v.terms {
			s := Simplify(t)
			if isLiteral(s, 0) {
				continue
			}
			terms = append(terms, s)
		}
		switch len(terms) {
		case 0:
			return NewValue(0)
		case 1:
			return terms[0]
		}
		return NewSum(terms...)

	case *Negate:
		inner := Simplify(v.arg)
		if _, double := v.arg.(*Negate); double {
			if neg, ok := inner.(*Negate); ok {
				return neg.arg
			}
		}
		return NewNegate(inner)

	case *Mult:
		return simplifyMult(v)

	case *Div:
		return NewDiv(Simplify(v.num), Simplify(v.den))

	case *Power:
		base := Simplify(v.base)
		exp := Simplify(v.exp)
		switch {
		case isLiteral(base, 0):
			return NewValue(0)
		case isLiteral(base, 1):
			return NewValue(1)
		case isLiteral(exp, 0):
			return NewValue(1)
		case isLiteral(exp, 1):
			return base
		}
		return NewPower(base, exp)

	case *Log:
		return NewLog(Simplify(v.arg), Simplify(v.base))

	case *Ln:
		inner := Simplify(v.arg)
		switch in := inner.(type) {
		case *Exp:
			return in.arg
		case *Constant:
			if in.name == "e" {
				return NewValue(1)
			}
		}
		return NewLn(inner)

	case *Exp:
		inner := Simplify(v.arg)
		if ln, ok := inner.(*Ln); ok {
			return ln.arg
		}
		return NewExp(inner)

	case *Abs:
		inner := Simplify(v.arg)
		switch in := inner.(type) {
		case *Abs:
			return in
		case *Power:
			// |g^k| = g^k for even k
			if k, ok := in.exp.(*Value); ok && math.Mod(k.x, 2) == 0 {
				return in
			}
		}
		return NewAbs(inner)

	case *Sin, *Cos:
		// The argument is not simplified.
		return Clone(v)
	}
	return n
}

func simplifyMult(m *Mult) Node {
	if len(m.factors) == 1 {
		return Simplify(m.factors[0])
	}
	coeff := 1.0
	factors := make([]Node, 0, len(m.factors))
	for _, f := range m.factors {
		s := Simplify(f)
		lit, ok := s.(*Value)
		if !ok {
			factors = append(factors, s)
			continue
		}
		if lit.x == 0 {
			return NewValue(0)
		}
		coeff *= lit.x
	}
	if coeff != 1 || len(factors) == 0 {
		factors = append([]Node{NewValue(coeff)}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return NewMult(factors...)
}

func isLiteral(n Node, x float64) bool {
	v, ok := n.(*Value)
	return ok && v.x == x
}
