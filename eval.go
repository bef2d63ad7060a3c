package symcalc

import "math"

// ============================================================
// Evaluation
// ============================================================

// Bindings maps variable names to values during evaluation. A name that is
// not bound evaluates to 0.
type Bindings map[string]float64

// Evaluate computes the value of n under b. It never fails: division by zero
// and domain errors surface as IEEE-754 infinities and NaNs. b is not
// modified and may be nil.
func Evaluate(n Node, b Bindings) float64 {
	switch v := n.(type) {
	case *Value:
		return v.x
	case *Constant:
		return v.x
	case *Variable:
		return b[v.name]
	case *Sum:
		acc := 0.0
		for _, t := range v.terms {
			acc += Evaluate(t, b)
		}
		return acc
	case *Negate:
		return -Evaluate(v.arg, b)
	case *Mult:
		acc := 1.0
		for _, f := range v.factors {
			acc *= Evaluate(f, b)
		}
		return acc
	case *Div:
		return Evaluate(v.num, b) / Evaluate(v.den, b)
	case *Power:
		return math.Pow(Evaluate(v.base, b), Evaluate(v.exp, b))
	case *Log:
		return math.Log(Evaluate(v.arg, b)) / math.Log(Evaluate(v.base, b))
	case *Ln:
		return math.Log(Evaluate(v.arg, b))
	case *Exp:
		return math.Exp(Evaluate(v.arg, b))
	case *Abs:
		return math.Abs(Evaluate(v.arg, b))
	case *Sin:
		return math.Sin(Evaluate(v.arg, b))
	case *Cos:
		return math.Cos(Evaluate(v.arg, b))
	}
	return math.NaN()
}

// ============================================================
// Free variables
// ============================================================

// FreeVariables lists the variable names in n, deduplicated, in the order
// they are first met walking the tree depth-first in argument order.
func FreeVariables(n Node) []string {
	var names []string
	collectVariables(n, &names, map[string]struct{}{})
	return names
}

func collectVariables(n Node, names *[]string, seen map[string]struct{}) {
	if v, ok := n.(*Variable); ok {
		if _, dup := seen[v.name]; !dup {
			seen[v.name] = struct{}{}
			*names = append(*names, v.name)
		}
		return
	}
	for _, c := range children(n) {
		collectVariables(c, names, seen)
	}
}
