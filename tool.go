package symcalc

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// DefaultMaxOrder is the highest derivative order a tool call accepts unless
// WithMaxOrder says otherwise. Intermediate derivatives are not simplified,
// so each extra order multiplies the size of the tree.
const DefaultMaxOrder = 8

type toolOptions struct {
	maxOrder int
}

// ToolOption adjusts how HandleToolCall treats a request.
type ToolOption func(*toolOptions)

// WithMaxOrder sets the highest derivative order accepted by diff and
// diff_single. Values below one leave the default in place.
func WithMaxOrder(n int) ToolOption {
	return func(o *toolOptions) {
		if n >= 1 {
			o.maxOrder = n
		}
	}
}

// HandleToolCall runs one tool call. Failures are reported in
// ToolResponse.Error. Expressions in the request are used as written;
// derived results follow the request's "auto_simplify" flag (default true).
func HandleToolCall(req ToolRequest, opts ...ToolOption) ToolResponse {
	o := toolOptions{maxOrder: DefaultMaxOrder}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := DefaultConfig()
	if v, ok := req.Params["auto_simplify"]; ok {
		b, ok := v.(bool)
		if !ok {
			return ToolResponse{Error: "param auto_simplify must be a boolean"}
		}
		cfg.AutoSimplify = b
	}

	decode := func(v interface{}, what string) (Expression, error) {
		m, ok := v.(map[string]interface{})
		if !ok {
			return Expression{}, fmt.Errorf("invalid type for param %s", what)
		}
		n, err := FromJSON(m)
		if err != nil {
			return Expression{}, fmt.Errorf("param %s: %w", what, err)
		}
		return Expression{node: n, cfg: cfg}, nil
	}
	getExpr := func(key string) (Expression, error) {
		v, ok := req.Params[key]
		if !ok {
			return Expression{}, fmt.Errorf("missing param: %s", key)
		}
		return decode(v, key)
	}
	getExprList := func(key string) ([]Expression, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]Expression, len(raw))
		for i, r := range raw {
			e, err := decode(r, fmt.Sprintf("%s[%d]", key, i))
			if err != nil {
				return nil, err
			}
			result[i] = e
		}
		return result, nil
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getStrings := func(key string) ([]string, bool, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, false, nil
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, true, fmt.Errorf("param %s must be array", key)
		}
		result := make([]string, len(raw))
		for i, r := range raw {
			s, ok := r.(string)
			if !ok {
				return nil, true, fmt.Errorf("param %s[%d] must be string", key, i)
			}
			result[i] = s
		}
		return result, true, nil
	}
	getOrder := func() (int, error) {
		v, ok := req.Params["order"]
		if !ok {
			return 1, nil
		}
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return 0, fmt.Errorf("param order must be an integer")
		}
		if f > float64(o.maxOrder) {
			return 0, fmt.Errorf("param order %v exceeds the limit of %d", f, o.maxOrder)
		}
		return int(f), nil
	}
	getBindings := func() (Bindings, error) {
		b := Bindings{}
		v, ok := req.Params["bindings"]
		if !ok {
			return b, nil
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param bindings must be an object")
		}
		for name, x := range raw {
			f, ok := x.(float64)
			if !ok {
				return nil, fmt.Errorf("binding %s must be a number", name)
			}
			b[name] = f
		}
		return b, nil
	}

	respond := func(e Expression) ToolResponse {
		return ToolResponse{Result: toJSON(e.root()), LaTeX: e.LaTeX(), String: e.String()}
	}
	respondList := func(list []Expression) ToolResponse {
		objs := make([]map[string]interface{}, len(list))
		strs := make([]string, len(list))
		latex := make([]string, len(list))
		for i, e := range list {
			objs[i] = toJSON(e.root())
			strs[i] = e.String()
			latex[i] = e.LaTeX()
		}
		return ToolResponse{
			Result: objs,
			LaTeX:  "\\left[" + strings.Join(latex, ", ") + "\\right]",
			String: "[" + strings.Join(strs, ", ") + "]",
		}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "simplify":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		return respond(Expression{node: Simplify(e.root()), cfg: cfg})

	case "eval":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		b, err := getBindings()
		if err != nil {
			return fail(err)
		}
		x := e.EvalWith(b)
		return ToolResponse{Result: jsonNumber(x), String: formatValue(x)}

	case "diff":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		name, err := getString("var")
		if err != nil {
			return fail(err)
		}
		order, err := getOrder()
		if err != nil {
			return fail(err)
		}
		d, err := e.DiffN(Expression{node: NewVariable(name), cfg: cfg}, order)
		if err != nil {
			return fail(err)
		}
		return respond(d)

	case "diff_single":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		order, err := getOrder()
		if err != nil {
			return fail(err)
		}
		d, err := e.DiffSingleN(order)
		if err != nil {
			return fail(err)
		}
		return respond(d)

	case "free_variables":
		var names []string
		if _, ok := req.Params["exprs"]; ok {
			list, err := getExprList("exprs")
			if err != nil {
				return fail(err)
			}
			names = VariableNames(list)
		} else {
			e, err := getExpr("expr")
			if err != nil {
				return fail(err)
			}
			names = e.VariableNames()
		}
		if names == nil {
			names = []string{}
		}
		return ToolResponse{Result: names, String: strings.Join(names, ", ")}

	case "gradient":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		vars, given, err := getStrings("vars")
		if err != nil {
			return fail(err)
		}
		if !given {
			return respondList(e.Gradient())
		}
		grad, err := e.GradientAlong(namesToVars(vars, cfg))
		if err != nil {
			return fail(err)
		}
		return respondList(grad)

	case "jacobian":
		exprs, err := getExprList("exprs")
		if err != nil {
			return fail(err)
		}
		matrix := Jacobian(exprs)
		rows := make([]interface{}, len(matrix))
		strs := make([]string, len(matrix))
		latex := make([]string, len(matrix))
		for i, row := range matrix {
			r := respondList(row)
			rows[i] = r.Result
			strs[i] = r.String
			cells := make([]string, len(row))
			for j, c := range row {
				cells[j] = c.LaTeX()
			}
			latex[i] = strings.Join(cells, " & ")
		}
		return ToolResponse{
			Result: map[string]interface{}{"variables": VariableNames(exprs), "rows": rows},
			LaTeX:  "\\begin{pmatrix}" + strings.Join(latex, " \\\\ ") + "\\end{pmatrix}",
			String: "[" + strings.Join(strs, ", ") + "]",
		}

	case "to_latex":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: e.LaTeX(), LaTeX: e.LaTeX(), String: e.String()}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec()}
	}
	return ToolResponse{Error: "unknown tool: " + req.Tool}
}

// MCPToolSpec returns the JSON schema of every tool HandleToolCall accepts.
func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("simplify", "Apply one bottom-up simplification pass", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("eval", "Evaluate numerically. Unbound variables read as 0", []string{"expr"}, map[string]string{"expr": "object", "bindings": "object"}),
		ts("diff", "Derivative with respect to var. Optional order (int, bounded by the server)", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string", "order": "integer"}),
		ts("diff_single", "Derivative with respect to the only free variable", []string{"expr"}, map[string]string{"expr": "object", "order": "integer"}),
		ts("free_variables", "Free variable names in first-occurrence order. Pass expr or exprs", []string{}, map[string]string{"expr": "object", "exprs": "array"}),
		ts("gradient", "Gradient vector. Optional vars (string[]) fixes the order", []string{"expr"}, map[string]string{"expr": "object", "vars": "array"}),
		ts("jacobian", "Jacobian matrix over the union of free variables", []string{"exprs"}, map[string]string{"exprs": "array"}),
		ts("to_latex", "Convert to LaTeX", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	properties["auto_simplify"] = map[string]interface{}{"type": "boolean"}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
