package symcalc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/symcalc"
)

func TestSimplify(t *testing.T) {
	pi := symcalc.NewConstant("pi", math.Pi)
	e := symcalc.NewConstant("e", math.E)

	cases := []struct {
		name string
		in   symcalc.Node
		want string
	}{
		{"leaf value", num(3), "3"},
		{"leaf variable", x, "x"},
		{"sum drops zero", symcalc.NewSum(num(0), x), "x"},
		{"sum of zeros", symcalc.NewSum(num(0), num(0)), "0"},
		{"sum keeps order", symcalc.NewSum(x, num(0), y), "(x) + (y)"},
		{"sum does not fold", symcalc.NewSum(num(2), num(3)), "(2) + (3)"},
		{"mult zero collapses", symcalc.NewMult(num(0), x, symcalc.NewSin(y)), "0"},
		{"mult folds literals", symcalc.NewMult(num(2), x, num(3)), "(6) * (x)"},
		{"mult drops one", symcalc.NewMult(num(1), x), "x"},
		{"mult all literals", symcalc.NewMult(num(2), num(0.5)), "1"},
		{"mult single factor", symcalc.NewMult(symcalc.NewSum(x, num(0))), "x"},
		{"mult keeps constants", symcalc.NewMult(pi, num(2)), "(2) * (pi)"},
		{"double negation", symcalc.NewNegate(symcalc.NewNegate(x)), "x"},
		{"single negation", symcalc.NewNegate(x), "-(x)"},
		{"triple negation", symcalc.NewNegate(symcalc.NewNegate(symcalc.NewNegate(x))), "-(x)"},
		{"div not reduced", symcalc.NewDiv(x, num(1)), "(x) / (1)"},
		{"power zero base", symcalc.NewPower(num(0), x), "0"},
		{"power zero to zero", symcalc.NewPower(num(0), num(0)), "0"},
		{"power one base", symcalc.NewPower(num(1), x), "1"},
		{"power zero exponent", symcalc.NewPower(x, num(0)), "1"},
		{"power one exponent", symcalc.NewPower(x, num(1)), "x"},
		{"power kept", symcalc.NewPower(x, num(2)), "(x) ^ (2)"},
		{"log children", symcalc.NewLog(symcalc.NewSum(x, num(0)), num(2)), "log_(2)(x)"},
		{"ln of exp", symcalc.NewLn(symcalc.NewExp(x)), "x"},
		{"ln of e", symcalc.NewLn(e), "1"},
		{"ln of literal e", symcalc.NewLn(num(math.E)), "ln(2.718282)"},
		{"exp of ln", symcalc.NewExp(symcalc.NewLn(x)), "x"},
		{"abs of abs", symcalc.NewAbs(symcalc.NewAbs(x)), "|x|"},
		{"abs of even power", symcalc.NewAbs(symcalc.NewPower(x, num(2))), "(x) ^ (2)"},
		{"abs of negative even power", symcalc.NewAbs(symcalc.NewPower(x, num(-2))), "(x) ^ (-2)"},
		{"abs of odd power", symcalc.NewAbs(symcalc.NewPower(x, num(3))), "|(x) ^ (3)|"},
		{"sin argument untouched", symcalc.NewSin(symcalc.NewSum(x, num(0))), "sin((x) + (0))"},
		{"cos argument untouched", symcalc.NewCos(symcalc.NewMult(num(1), x)), "cos((1) * (x))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, symcalc.Simplify(c.in).String())
		})
	}
}

func TestSimplify_ZeroCollapseEvaluatesToZero(t *testing.T) {
	s := symcalc.Simplify(symcalc.NewMult(num(0), x, symcalc.NewSin(y)))
	for _, b := range []symcalc.Bindings{nil, {"x": 3, "y": 1}, {"x": -7.5}} {
		assert.Equal(t, 0.0, symcalc.Evaluate(s, b))
	}
}

func TestSimplify_LeavesInputUntouched(t *testing.T) {
	in := symcalc.NewSum(num(0), symcalc.NewMult(num(1), x))
	symcalc.Simplify(in)
	assert.Equal(t, "(0) + ((1) * (x))", in.String())
	assert.Equal(t, 2, in.Len())
}

func TestSimplify_PreservesValue(t *testing.T) {
	in := symcalc.NewSum(
		symcalc.NewMult(num(2), x, num(3)),
		symcalc.NewNegate(symcalc.NewNegate(y)),
		symcalc.NewPower(x, num(1)),
		num(0),
	)
	b := symcalc.Bindings{"x": 1.5, "y": -2}
	assert.InDelta(t, symcalc.Evaluate(in, b), symcalc.Evaluate(symcalc.Simplify(in), b), 1e-12)
}
