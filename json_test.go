package symcalc_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symcalc"
)

func decodeObject(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestJSON_RoundTrip(t *testing.T) {
	n := symcalc.NewSum(
		symcalc.NewMult(num(2), symcalc.NewPower(x, num(3))),
		symcalc.NewNegate(symcalc.NewLog(y, num(10))),
		symcalc.NewDiv(symcalc.NewSin(x), symcalc.NewAbs(symcalc.NewCos(y))),
		symcalc.NewExp(symcalc.NewLn(symcalc.NewConstant("pi", math.Pi))),
	)
	s, err := symcalc.ToJSON(n)
	require.NoError(t, err)

	back, err := symcalc.FromJSON(decodeObject(t, s))
	require.NoError(t, err)
	assert.True(t, symcalc.Equal(n, back))
	assert.Equal(t, n.String(), back.String())
}

func TestJSON_Shape(t *testing.T) {
	s, err := symcalc.ToJSON(symcalc.NewPower(x, num(2)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"power","base":{"type":"variable","name":"x"},"exp":{"type":"value","value":2}}`, s)
}

func TestJSON_NonFinite(t *testing.T) {
	s, err := symcalc.ToJSON(symcalc.NewSum(num(math.Inf(-1)), num(math.NaN())))
	require.NoError(t, err)
	assert.Contains(t, s, `"-inf"`)

	back, err := symcalc.FromJSON(decodeObject(t, s))
	require.NoError(t, err)
	assert.Equal(t, "(-inf) + (nan)", back.String())
}

func TestFromJSON_FlattensSums(t *testing.T) {
	n, err := symcalc.FromJSON(decodeObject(t, `{"type":"sum","terms":[
		{"type":"sum","terms":[{"type":"variable","name":"a"},{"type":"variable","name":"b"}]},
		{"type":"value","value":1}]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, n.(*symcalc.Sum).Len())
}

func TestFromJSON_Errors(t *testing.T) {
	cases := []struct{ in, want string }{
		{`{}`, "missing 'type'"},
		{`{"type":"nope"}`, "unknown expression type: nope"},
		{`{"type":"sin"}`, `sin: missing "arg"`},
		{`{"type":"value","value":"x"}`, `"value" must be a number`},
		{`{"type":"variable","name":""}`, "non-empty string"},
		{`{"type":"sum","terms":{}}`, "must be an array"},
		{`{"type":"div","num":{"type":"value","value":1}}`, `div: missing "den"`},
		{`{"type":"ln","arg":{"type":"bogus"}}`, "ln: arg: unknown expression type: bogus"},
	}
	for _, c := range cases {
		_, err := symcalc.FromJSON(decodeObject(t, c.in))
		if assert.Error(t, err, c.in) {
			assert.Contains(t, err.Error(), c.want, c.in)
		}
	}
}

func TestExpression_JSON(t *testing.T) {
	e := symcalc.SinOf(symcalc.Var("x")).Add(symcalc.Pi)
	b, err := json.Marshal(e)
	require.NoError(t, err)

	var back symcalc.Expression
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(e))
	assert.True(t, back.Config().AutoSimplify)

	var raw symcalc.Expression
	require.NoError(t, json.Unmarshal([]byte(`{"type":"sum","terms":[{"type":"variable","name":"x"},{"type":"value","value":0}]}`), &raw))
	assert.Equal(t, "(x) + (0)", raw.String())

	assert.Error(t, json.Unmarshal([]byte(`{"type":"mystery"}`), &raw))
}
