package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/born-ml/nx/internal/tensor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dt, err := cfg.DataType()
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, dt)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
dtype: int32
shape: [3, 4, 5]
names: [a, b, c]
vectorized:
  - name: batch
    size: 2
index: "[b: 1..2]"
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "int32", cfg.DType)
	assert.Equal(t, []int{3, 4, 5}, cfg.Shape)
	assert.Equal(t, "[b: 1..2]", cfg.Index)
	assert.Equal(t, tensor.Shape{2, 3, 4, 5}, cfg.PhysicalShape())
	assert.Equal(t, tensor.Names{"a", "b", "c"}, cfg.AxisNames())
	assert.Equal(t, []tensor.VectorizedAxis{{Name: "batch", Size: 2}}, cfg.VectorizedAxes())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "shape: [2, 2]\nindex: \"0\"\n")
	t.Setenv(EnvIndex, "[1, 0]")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0]", cfg.Index)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, tensor.Names{"", ""}, cfg.AxisNames())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "load config file")

	_, err = Load(writeConfig(t, "shape: [1, 2\n"))
	require.ErrorContains(t, err, "parse config file")

	_, err = Load(writeConfig(t, "dtype: complex64\n"))
	require.ErrorContains(t, err, "invalid config")
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := TensorConfig{
		DType:      "int16",
		Shape:      []int{2, -1},
		Names:      []string{"a", "a", "b"},
		Vectorized: []VectorizedAxis{{Name: "", Size: 1}, {Name: "v", Size: -2}},
		Index:      "[0,",
		LogLevel:   "loud",
	}
	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 8)
	msg := err.Error()
	for _, want := range []string{
		`unknown data type "int16"`,
		"invalid dimension at index 1",
		"got 3 names for a rank 2 shape",
		`axis name "a" used by axes 0 and 1`,
		"vectorized axis 0 has no name",
		`vectorized axis "v" has negative size -2`,
		"parse index",
		`invalid log level "loud"`,
	} {
		assert.Contains(t, msg, want)
	}
}
