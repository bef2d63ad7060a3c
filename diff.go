package symcalc

// ============================================================
// Differentiation
// ============================================================

// Differentiate returns the derivative of n with respect to the variable
// named wrt. The result is not simplified.
func Differentiate(n Node, wrt string) Node {
	switch v := n.(type) {
	case *Value, *Constant:
		return NewValue(0)

	case *Variable:
		if v.name == wrt {
			return NewValue(1)
		}
		return NewValue(0)

	case *Sum:
		terms := make([]Node, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Differentiate(t, wrt)
		}
		return NewSum(terms...)

	case *Negate:
		return NewNegate(Differentiate(v.arg, wrt))

	case *Mult:
		// (f1*...*fn)' = sum over i of fi' * (all other factors)
		products := make([]Node, len(v.factors))
		for i, fi := range v.factors {
			factors := make([]Node, 0, len(v.factors))
			factors = append(factors, Differentiate(fi, wrt))
			for j, fj := range v.factors {
				if j != i {
					factors = append(factors, Clone(fj))
				}
			}
			products[i] = NewMult(factors...)
		}
		return NewSum(products...)

	case *Div:
		// (f/g)' = (f'*g - f*g') / g^2
		top := NewSum(
			NewMult(Differentiate(v.num, wrt), Clone(v.den)),
			NewNegate(NewMult(Clone(v.num), Differentiate(v.den, wrt))),
		)
		return NewDiv(top, NewPower(Clone(v.den), NewValue(2)))

	case *Power:
		return differentiatePower(v, wrt)

	case *Log:
		// Exact only when the base does not depend on wrt.
		return NewMult(
			NewDiv(Differentiate(v.arg, wrt), Clone(v.arg)),
			NewLn(Clone(v.base)),
		)

	case *Ln:
		return NewDiv(Differentiate(v.arg, wrt), Clone(v.arg))

	case *Exp:
		return NewMult(Clone(v), Differentiate(v.arg, wrt))

	case *Abs:
		// (|f|)' = f/|f| * f'
		return NewMult(
			NewDiv(Clone(v.arg), NewAbs(Clone(v.arg))),
			Differentiate(v.arg, wrt),
		)

	case *Sin:
		return NewMult(NewCos(Clone(v.arg)), Differentiate(v.arg, wrt))

	case *Cos:
		return NewMult(NewNegate(NewSin(Clone(v.arg))), Differentiate(v.arg, wrt))
	}
	return NewValue(0)
}

func differentiatePower(p *Power, wrt string) Node {
	if c, ok := numericLeaf(p.exp); ok {
		// (g^C)' = C * g^(C-1) * g'
		return NewMult(
			Clone(p.exp),
			NewPower(Clone(p.base), NewValue(c-1)),
			Differentiate(p.base, wrt),
		)
	}
	// (f^g)' = f^g * (g'*ln(f) + f'*g/f)
	return NewMult(
		NewPower(Clone(p.base), Clone(p.exp)),
		NewSum(
			NewMult(Differentiate(p.exp, wrt), NewLn(Clone(p.base))),
			NewDiv(NewMult(Differentiate(p.base, wrt), Clone(p.exp)), Clone(p.base)),
		),
	)
}

// numericLeaf reports the value of a Value or Constant node.
func numericLeaf(n Node) (float64, bool) {
	switch v := n.(type) {
	case *Value:
		return v.x, true
	case *Constant:
		return v.x, true
	}
	return 0, false
}
