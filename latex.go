package symcalc

import "strings"

// ============================================================
// LaTeX
// ============================================================

// LaTeX renders n as LaTeX math.
func LaTeX(n Node) string {
	switch v := n.(type) {
	case *Value:
		return v.text
	case *Variable:
		return v.name
	case *Constant:
		switch v.name {
		case "pi":
			return "\\pi"
		case "e":
			return "e"
		}
		return v.name
	case *Sum:
		return latexJoin(v.terms, " + ", "0", false)
	case *Mult:
		return latexJoin(v.factors, " \\cdot ", "1", true)
	case *Negate:
		return "-" + latexGroup(v.arg)
	case *Div:
		return "\\frac{" + LaTeX(v.num) + "}{" + LaTeX(v.den) + "}"
	case *Power:
		return latexGroup(v.base) + "^{" + LaTeX(v.exp) + "}"
	case *Log:
		return "\\log_{" + LaTeX(v.base) + "}\\left(" + LaTeX(v.arg) + "\\right)"
	case *Ln:
		return "\\ln\\left(" + LaTeX(v.arg) + "\\right)"
	case *Exp:
		return "e^{" + LaTeX(v.arg) + "}"
	case *Abs:
		return "\\left|" + LaTeX(v.arg) + "\\right|"
	case *Sin:
		return "\\sin\\left(" + LaTeX(v.arg) + "\\right)"
	case *Cos:
		return "\\cos\\left(" + LaTeX(v.arg) + "\\right)"
	}
	return n.String()
}

func latexJoin(nodes []Node, sep, empty string, group bool) string {
	if len(nodes) == 0 {
		return empty
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		if group {
			parts[i] = latexGroup(n)
		} else {
			parts[i] = LaTeX(n)
		}
	}
	return strings.Join(parts, sep)
}

// latexGroup wraps compound operands in \left( \right).
func latexGroup(n Node) string {
	switch n.(type) {
	case *Sum, *Mult, *Negate, *Div, *Power:
		return "\\left(" + LaTeX(n) + "\\right)"
	}
	return LaTeX(n)
}
