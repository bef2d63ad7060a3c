package symcalc

import (
	"fmt"
	"math"
)

// ============================================================
// Configuration
// ============================================================

// Config controls how expressions built from raw nodes are finished.
type Config struct {
	// AutoSimplify runs Simplify on every expression produced by an operator,
	// a function call or a derivative.
	AutoSimplify bool
}

// DefaultConfig returns the configuration used by the package-level
// constructors: auto-simplification enabled.
func DefaultConfig() Config {
	return Config{AutoSimplify: true}
}

// Builder creates expressions that share one Config. Expressions remember
// the Config they were built with and pass it on to everything derived from
// them, so builders with different settings can be used side by side.
type Builder struct{ cfg Config }

func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

func (b *Builder) Config() Config { return b.cfg }

// Num returns a numeric literal.
func (b *Builder) Num(x float64) Expression { return Expression{node: NewValue(x), cfg: b.cfg} }

// Var returns a free variable.
func (b *Builder) Var(name string) Expression { return Expression{node: NewVariable(name), cfg: b.cfg} }

// Const returns a named constant such as pi.
func (b *Builder) Const(name string, x float64) Expression {
	return Expression{node: NewConstant(name, x), cfg: b.cfg}
}

// Wrap takes ownership of n, simplifying it first when AutoSimplify is set.
func (b *Builder) Wrap(n Node) Expression { return wrap(n, b.cfg) }

func wrap(n Node, cfg Config) Expression {
	if cfg.AutoSimplify {
		n = Simplify(n)
	}
	return Expression{node: n, cfg: cfg}
}

var defaultBuilder = NewBuilder(DefaultConfig())

func Num(x float64) Expression                { return defaultBuilder.Num(x) }
func Var(name string) Expression              { return defaultBuilder.Var(name) }
func Const(name string, x float64) Expression { return defaultBuilder.Const(name, x) }
func Wrap(n Node) Expression                  { return defaultBuilder.Wrap(n) }

// Named constants.
var (
	Pi = Const("pi", math.Pi)
	E  = Const("e", math.E)
)

// ============================================================
// Expression
// ============================================================

// Expression is the value type wrapping a node tree. Operators never modify
// their operands; they build a new tree from copies of both.
type Expression struct {
	node Node
	cfg  Config
}

// root returns the wrapped node; the zero Expression reads as 0.
func (e Expression) root() Node {
	if e.node == nil {
		return NewValue(0)
	}
	return e.node
}

// Node returns a deep copy of the wrapped tree.
func (e Expression) Node() Node     { return Clone(e.root()) }
func (e Expression) Config() Config { return e.cfg }
func (e Expression) Kind() Kind     { return e.root().Kind() }
func (e Expression) String() string { return e.root().String() }
func (e Expression) LaTeX() string  { return LaTeX(e.root()) }

// IsVariable reports whether e wraps a single Variable.
func (e Expression) IsVariable() bool {
	_, ok := e.root().(*Variable)
	return ok
}

// Copy returns an Expression with its own copy of the tree.
func (e Expression) Copy() Expression { return Expression{node: e.Node(), cfg: e.cfg} }

// Equal reports structural equality of the two trees.
func (e Expression) Equal(other Expression) bool { return Equal(e.root(), other.root()) }

// Simplify runs the simplifier on the tree. With AutoSimplify set the result
// passes through the simplifier a second time, as every new tree does.
func (e Expression) Simplify() Expression { return wrap(Simplify(e.root()), e.cfg) }

func (e Expression) Add(other Expression) Expression {
	return wrap(NewSum(e.Node(), other.Node()), e.cfg)
}

// Sub builds e + -(other).
func (e Expression) Sub(other Expression) Expression {
	return wrap(NewSum(e.Node(), NewNegate(other.Node())), e.cfg)
}

func (e Expression) Mul(other Expression) Expression {
	return wrap(NewMult(e.Node(), other.Node()), e.cfg)
}

func (e Expression) Div(other Expression) Expression {
	return wrap(NewDiv(e.Node(), other.Node()), e.cfg)
}

func (e Expression) Neg() Expression { return wrap(NewNegate(e.Node()), e.cfg) }

func (e Expression) Pow(exponent Expression) Expression {
	return wrap(NewPower(e.Node(), exponent.Node()), e.cfg)
}

// ============================================================
// Functions
// ============================================================

// The function constructors follow the configuration of their first
// argument.
func PowOf(base, exponent Expression) Expression { return base.Pow(exponent) }
func ExpOf(e Expression) Expression              { return wrap(NewExp(e.Node()), e.cfg) }
func LnOf(e Expression) Expression               { return wrap(NewLn(e.Node()), e.cfg) }
func AbsOf(e Expression) Expression              { return wrap(NewAbs(e.Node()), e.cfg) }
func SinOf(e Expression) Expression              { return wrap(NewSin(e.Node()), e.cfg) }
func CosOf(e Expression) Expression              { return wrap(NewCos(e.Node()), e.cfg) }

// LogOf is the logarithm of e in the given base.
func LogOf(e, base Expression) Expression { return wrap(NewLog(e.Node(), base.Node()), e.cfg) }

// ============================================================
// Evaluation
// ============================================================

// Binding assigns a value to a variable expression.
type Binding struct {
	Var   Expression
	Value float64
}

func Bind(v Expression, x float64) Binding { return Binding{Var: v, Value: x} }

// Eval evaluates with no bindings; every variable reads as 0.
func (e Expression) Eval() float64 { return Evaluate(e.root(), nil) }

func (e Expression) EvalWith(b Bindings) float64 { return Evaluate(e.root(), b) }

// EvalAt evaluates with bindings keyed by variable expressions. It fails
// with ErrInvalidArgument if a key is not a Variable.
func (e Expression) EvalAt(bindings ...Binding) (float64, error) {
	b := make(Bindings, len(bindings))
	for _, bd := range bindings {
		name, err := variableName(bd.Var)
		if err != nil {
			return 0, err
		}
		b[name] = bd.Value
	}
	return Evaluate(e.root(), b), nil
}

func variableName(v Expression) (string, error) {
	vn, ok := v.root().(*Variable)
	if !ok {
		return "", fmt.Errorf("%w: %s is a %s, not a variable", ErrInvalidArgument, v.String(), v.Kind())
	}
	return vn.name, nil
}

// ============================================================
// Derivatives
// ============================================================

// Diff is the first derivative with respect to wrt, which must wrap a
// Variable.
func (e Expression) Diff(wrt Expression) (Expression, error) { return e.DiffN(wrt, 1) }

// DiffN differentiates order times. The intermediate derivatives are raw
// trees; only the final one is subject to auto-simplification. An order
// below one returns the expression itself.
func (e Expression) DiffN(wrt Expression, order int) (Expression, error) {
	name, err := variableName(wrt)
	if err != nil {
		return Expression{}, err
	}
	return e.diffByName(name, order), nil
}

func (e Expression) diffByName(name string, order int) Expression {
	d := e.root()
	for i := 0; i < order; i++ {
		d = Differentiate(d, name)
	}
	if order < 1 {
		d = Clone(d)
	}
	return wrap(d, e.cfg)
}

// DiffSingle differentiates with respect to the only free variable of e.
func (e Expression) DiffSingle() (Expression, error) { return e.DiffSingleN(1) }

func (e Expression) DiffSingleN(order int) (Expression, error) {
	names := FreeVariables(e.root())
	if len(names) != 1 {
		return Expression{}, fmt.Errorf("%w: %s has %d free variables %v", ErrAmbiguousTarget, e.String(), len(names), names)
	}
	return e.diffByName(names[0], order), nil
}

// ============================================================
// Variables, gradient, jacobian
// ============================================================

// VariableNames lists the free variables of e in first-occurrence order.
func (e Expression) VariableNames() []string { return FreeVariables(e.root()) }

// Variables returns the free variables of e as Variable expressions.
func (e Expression) Variables() []Expression { return namesToVars(e.VariableNames(), e.cfg) }

// VariableNames is the ordered union of the free variables of exprs.
func VariableNames(exprs []Expression) []string {
	var names []string
	seen := map[string]struct{}{}
	for _, e := range exprs {
		collectVariables(e.root(), &names, seen)
	}
	return names
}

func Variables(exprs []Expression) []Expression {
	cfg := DefaultConfig()
	if len(exprs) > 0 {
		cfg = exprs[0].cfg
	}
	return namesToVars(VariableNames(exprs), cfg)
}

func namesToVars(names []string, cfg Config) []Expression {
	vars := make([]Expression, len(names))
	for i, n := range names {
		vars[i] = Expression{node: NewVariable(n), cfg: cfg}
	}
	return vars
}

// Gradient differentiates e with respect to each of its free variables.
func (e Expression) Gradient() []Expression {
	names := e.VariableNames()
	grad := make([]Expression, len(names))
	for i, n := range names {
		grad[i] = e.diffByName(n, 1)
	}
	return grad
}

// GradientAlong differentiates e with respect to each variable of order, in
// that order.
func (e Expression) GradientAlong(order []Expression) ([]Expression, error) {
	grad := make([]Expression, len(order))
	for i, v := range order {
		d, err := e.Diff(v)
		if err != nil {
			return nil, err
		}
		grad[i] = d
	}
	return grad, nil
}

// Jacobian returns one row per expression and one column per variable of
// VariableNames(exprs). Cell [i][j] is the derivative of exprs[i] with
// respect to variable j.
func Jacobian(exprs []Expression) [][]Expression {
	names := VariableNames(exprs)
	matrix := make([][]Expression, len(exprs))
	for i, e := range exprs {
		row := make([]Expression, len(names))
		for j, n := range names {
			row[j] = e.diffByName(n, 1)
		}
		matrix[i] = row
	}
	return matrix
}
