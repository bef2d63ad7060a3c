package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, "8080", conf.Port)
	assert.True(t, conf.AutoSimplify)
	assert.Equal(t, int64(1<<20), conf.MaxBodyBytes)
	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, 8, conf.MaxDiffOrder)
}

func TestParse(t *testing.T) {
	conf := Default()
	err := Parse([]byte(`
port: "9090"
auto_simplify: false
logging:
  level: debug
  filename: /tmp/symcalc.log
`), &conf)
	require.NoError(t, err)
	assert.Equal(t, "9090", conf.Port)
	assert.False(t, conf.AutoSimplify)
	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "/tmp/symcalc.log", conf.Logging.Filename)
	assert.Equal(t, 100, conf.Logging.MaxSize)
}

func TestParse_UnknownKey(t *testing.T) {
	conf := Default()
	err := Parse([]byte("port: \"9090\"\nsimplify_everything: true\n"), &conf)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\nmax_body_bytes: 2048\n"), 0o600))

	t.Setenv(ENV_CONFIG_FILE, path)
	t.Setenv(ENV_PORT, "7100")
	t.Setenv(ENV_AUTO_SIMPLIFY, "false")
	t.Setenv(ENV_LOG_LEVEL, "warn")
	t.Setenv(ENV_MAX_DIFF_ORDER, "3")

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7100", conf.Port)
	assert.Equal(t, int64(2048), conf.MaxBodyBytes)
	assert.False(t, conf.AutoSimplify)
	assert.Equal(t, "warn", conf.Logging.Level)
	assert.Equal(t, 3, conf.MaxDiffOrder)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SYMCALC_GIN_DEBUG=true\n"), 0o600))

	// godotenv does not override variables that are already set.
	t.Setenv(ENV_GIN_DEBUG, "")
	os.Unsetenv(ENV_GIN_DEBUG)
	t.Setenv(ENV_CONFIG_FILE, "")

	conf, err := Load(envFile)
	require.NoError(t, err)
	assert.True(t, conf.GinDebugMode)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv(ENV_CONFIG_FILE, "")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv(ENV_CONFIG_FILE, "")

	t.Setenv(ENV_MAX_BODY_BYTES, "-1")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv(ENV_MAX_BODY_BYTES, "")
	t.Setenv(ENV_MAX_DIFF_ORDER, "0")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv(ENV_MAX_DIFF_ORDER, "")
	t.Setenv(ENV_AUTO_SIMPLIFY, "maybe")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv(ENV_AUTO_SIMPLIFY, "")
	t.Setenv(ENV_CONFIG_FILE, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load("")
	assert.Error(t, err)
}
