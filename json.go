package symcalc

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON encodes n as a JSON object tree: {"type": "<kind>", ...}.
func ToJSON(n Node) (string, error) {
	b, err := json.Marshal(toJSON(n))
	return string(b), err
}

func toJSON(n Node) map[string]interface{} {
	obj := map[string]interface{}{"type": string(n.Kind())}
	switch v := n.(type) {
	case *Value:
		obj["value"] = jsonNumber(v.x)
	case *Variable:
		obj["name"] = v.name
	case *Constant:
		obj["name"] = v.name
		obj["value"] = jsonNumber(v.x)
	case *Sum:
		obj["terms"] = toJSONAll(v.terms)
	case *Mult:
		obj["factors"] = toJSONAll(v.factors)
	case *Div:
		obj["num"] = toJSON(v.num)
		obj["den"] = toJSON(v.den)
	case *Power:
		obj["base"] = toJSON(v.base)
		obj["exp"] = toJSON(v.exp)
	case *Log:
		obj["arg"] = toJSON(v.arg)
		obj["base"] = toJSON(v.base)
	default:
		obj["arg"] = toJSON(children(n)[0])
	}
	return obj
}

func toJSONAll(nodes []Node) []map[string]interface{} {
	out := make([]map[string]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = toJSON(n)
	}
	return out
}

// jsonNumber keeps non-finite values encodable.
func jsonNumber(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return formatValue(x)
	}
	return x
}

// FromJSON decodes the object form produced by ToJSON. Sums and products
// are rebuilt through their constructors, so nested ones are flattened.
func FromJSON(data map[string]interface{}) (Node, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	sub := func(field string) (Node, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		n, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return n, nil
	}

	subList := func(field string) ([]Node, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]Node, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			n, err := FromJSON(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", typ, field, i, err)
			}
			out[i] = n
		}
		return out, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	subNumber := func(field string) (float64, error) {
		v, ok := data[field]
		if !ok {
			return 0, fmt.Errorf("%s: missing %q", typ, field)
		}
		switch x := v.(type) {
		case float64:
			return x, nil
		case string:
			switch x {
			case "nan":
				return math.NaN(), nil
			case "inf":
				return math.Inf(1), nil
			case "-inf":
				return math.Inf(-1), nil
			}
		}
		return 0, fmt.Errorf("%s: %q must be a number", typ, field)
	}

	unaryArg := func(build func(Node) Node) (Node, error) {
		arg, err := sub("arg")
		if err != nil {
			return nil, err
		}
		return build(arg), nil
	}

	switch Kind(typ) {
	case KindValue:
		x, err := subNumber("value")
		if err != nil {
			return nil, err
		}
		return NewValue(x), nil

	case KindVariable:
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		return NewVariable(name), nil

	case KindConstant:
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		x, err := subNumber("value")
		if err != nil {
			return nil, err
		}
		return NewConstant(name, x), nil

	case KindSum:
		terms, err := subList("terms")
		if err != nil {
			return nil, err
		}
		return NewSum(terms...), nil

	case KindMult:
		factors, err := subList("factors")
		if err != nil {
			return nil, err
		}
		return NewMult(factors...), nil

	case KindDiv:
		num, err := sub("num")
		if err != nil {
			return nil, err
		}
		den, err := sub("den")
		if err != nil {
			return nil, err
		}
		return NewDiv(num, den), nil

	case KindPower:
		base, err := sub("base")
		if err != nil {
			return nil, err
		}
		exp, err := sub("exp")
		if err != nil {
			return nil, err
		}
		return NewPower(base, exp), nil

	case KindLog:
		arg, err := sub("arg")
		if err != nil {
			return nil, err
		}
		base, err := sub("base")
		if err != nil {
			return nil, err
		}
		return NewLog(arg, base), nil

	case KindNegate:
		return unaryArg(func(a Node) Node { return NewNegate(a) })
	case KindLn:
		return unaryArg(func(a Node) Node { return NewLn(a) })
	case KindExp:
		return unaryArg(func(a Node) Node { return NewExp(a) })
	case KindAbs:
		return unaryArg(func(a Node) Node { return NewAbs(a) })
	case KindSin:
		return unaryArg(func(a Node) Node { return NewSin(a) })
	case KindCos:
		return unaryArg(func(a Node) Node { return NewCos(a) })
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

// MarshalJSON encodes the wrapped tree in the ToJSON object form.
func (e Expression) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(e.root()))
}

// UnmarshalJSON decodes a tree as it was written, without simplifying it.
// The decoded expression uses DefaultConfig.
func (e *Expression) UnmarshalJSON(b []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	n, err := FromJSON(data)
	if err != nil {
		return err
	}
	*e = Expression{node: n, cfg: DefaultConfig()}
	return nil
}
