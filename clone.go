package symcalc

// ============================================================
// Deep copy and structural helpers
// ============================================================

// Clone returns a structural copy of n that shares no node with it.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Value:
		return &Value{x: v.x, text: v.text}
	case *Variable:
		return &Variable{name: v.name}
	case *Constant:
		return &Constant{name: v.name, x: v.x}
	case *Sum:
		return &Sum{terms: cloneAll(v.terms), text: v.text}
	case *Negate:
		return &Negate{arg: Clone(v.arg), text: v.text}
	case *Mult:
		return &Mult{factors: cloneAll(v.factors), text: v.text}
	case *Div:
		return &Div{num: Clone(v.num), den: Clone(v.den), text: v.text}
	case *Power:
		return &Power{base: Clone(v.base), exp: Clone(v.exp), text: v.text}
	case *Log:
		return &Log{arg: Clone(v.arg), base: Clone(v.base), text: v.text}
	case *Ln:
		return &Ln{unary{arg: Clone(v.arg), text: v.text}}
	case *Exp:
		return &Exp{unary{arg: Clone(v.arg), text: v.text}}
	case *Abs:
		return &Abs{unary{arg: Clone(v.arg), text: v.text}}
	case *Sin:
		return &Sin{unary{arg: Clone(v.arg), text: v.text}}
	case *Cos:
		return &Cos{unary{arg: Clone(v.arg), text: v.text}}
	}
	return n
}

func cloneAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(n)
	}
	return out
}

// Equal reports whether a and b have the same shape, names and literal
// values. Constants compare by name and value.
func Equal(a, b Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch v := a.(type) {
	case *Value:
		return v.x == b.(*Value).x
	case *Variable:
		return v.name == b.(*Variable).name
	case *Constant:
		o := b.(*Constant)
		return v.name == o.name && v.x == o.x
	case *Sum:
		return equalAll(v.terms, b.(*Sum).terms)
	case *Mult:
		return equalAll(v.factors, b.(*Mult).factors)
	case *Div:
		o := b.(*Div)
		return Equal(v.num, o.num) && Equal(v.den, o.den)
	case *Power:
		o := b.(*Power)
		return Equal(v.base, o.base) && Equal(v.exp, o.exp)
	case *Log:
		o := b.(*Log)
		return Equal(v.arg, o.arg) && Equal(v.base, o.base)
	}
	ca, cb := children(a), children(b)
	return equalAll(ca, cb)
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// children lists the direct sub-expressions of n in argument order.
func children(n Node) []Node {
	switch v := n.(type) {
	case *Sum:
		return v.terms
	case *Mult:
		return v.factors
	case *Negate:
		return []Node{v.arg}
	case *Div:
		return []Node{v.num, v.den}
	case *Power:
		return []Node{v.base, v.exp}
	case *Log:
		return []Node{v.arg, v.base}
	case *Ln:
		return []Node{v.arg}
	case *Exp:
		return []Node{v.arg}
	case *Abs:
		return []Node{v.arg}
	case *Sin:
		return []Node{v.arg}
	case *Cos:
		return []Node{v.arg}
	}
	return nil
}

func NodeCount(n Node) int {
	count := 1
	for _, c := range children(n) {
		count += NodeCount(c)
	}
	return count
}

func Depth(n Node) int {
	deepest := 0
	for _, c := range children(n) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}
