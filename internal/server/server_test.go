package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symcalc"
	"github.com/njchilds90/symcalc/internal/config"
)

const squareJSON = `{"type":"power","base":{"type":"variable","name":"x"},"exp":{"type":"value","value":2}}`

func newTestServer(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	conf := config.Default()
	if mutate != nil {
		mutate(&conf)
	}
	return New(conf).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["time"])
}

func TestSchema(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/schema", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, symcalc.MCPToolSpec(), w.Body.String())
}

func TestTool_Diff(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodPost, "/tool",
		`{"tool":"diff","params":{"expr":`+squareJSON+`,"var":"x"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp symcalc.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "(2) * (x)", resp.String)
}

func TestTool_ServerDefaultAutoSimplify(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) { c.AutoSimplify = false })
	body := `{"tool":"diff","params":{"expr":` + squareJSON + `,"var":"x"}}`

	var resp symcalc.ToolResponse
	w := do(t, h, http.MethodPost, "/tool", body)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "(2) * ((x) ^ (1)) * (1)", resp.String)

	// An explicit request flag beats the server default.
	body = `{"tool":"diff","params":{"expr":` + squareJSON + `,"var":"x","auto_simplify":true}}`
	w = do(t, h, http.MethodPost, "/tool", body)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "(2) * (x)", resp.String)
}

func TestTool_OrderLimit(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) { c.MaxDiffOrder = 4 })

	var resp symcalc.ToolResponse
	w := do(t, h, http.MethodPost, "/tool", `{"tool":"diff","params":{"expr":`+squareJSON+`,"var":"x","order":20}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "param order 20 exceeds the limit of 4", resp.Error)

	resp = symcalc.ToolResponse{}
	w = do(t, h, http.MethodPost, "/tool", `{"tool":"diff_single","params":{"expr":`+squareJSON+`,"order":2}}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "2", resp.String)
}

func TestTool_ToolErrorIsOK(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodPost, "/tool", `{"tool":"integrate","params":{}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp symcalc.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unknown tool: integrate", resp.Error)
}

func TestTool_BadRequests(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 64 })
	cases := []string{
		`not json`,
		`{"tool":"eval","unexpected":1}`,
		`{"tool":"mcp_spec"} {"tool":"mcp_spec"}`,
		`{"tool":"diff","params":{"expr":` + squareJSON + `,"var":"x"}}`,
	}
	for _, body := range cases {
		w := do(t, h, http.MethodPost, "/tool", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), `"error"`, body)
	}
}

func TestTool_MethodNotAllowed(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/tool", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
