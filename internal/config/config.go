// Package config describes a tensor and an index expression for the nx CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/nx/internal/index"
	"github.com/born-ml/nx/internal/tensor"
)

// Environment overrides applied after the config file.
const (
	EnvIndex    = "NX_INDEX"
	EnvLogLevel = "NX_LOG_LEVEL"
)

// VectorizedAxis is a hidden leading axis of the described tensor.
type VectorizedAxis struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// TensorConfig describes an iota tensor and the index applied to it.
//
// Example file:
//
//	dtype: int32
//	shape: [3, 4, 5]
//	names: [a, b, c]
//	vectorized:
//	  - name: batch
//	    size: 2
//	index: "[b: 1..2]"
type TensorConfig struct {
	DType      string           `yaml:"dtype"`
	Shape      []int            `yaml:"shape"`
	Names      []string         `yaml:"names"`
	Vectorized []VectorizedAxis `yaml:"vectorized"`
	Index      string           `yaml:"index"`
	LogLevel   string           `yaml:"log_level"`
}

// Default returns the configuration used when nothing is specified.
func Default() TensorConfig {
	return TensorConfig{
		DType:    "float32",
		Index:    "[]",
		LogLevel: "info",
	}
}

// Load starts from Default, overlays the YAML file at path (if path is
// not empty), applies environment overrides and validates the result.
func Load(path string) (TensorConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *TensorConfig) applyEnv() {
	if v := os.Getenv(EnvIndex); v != "" {
		c.Index = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate reports every problem with the configuration at once.
func (c TensorConfig) Validate() error {
	var errs error
	if _, err := tensor.ParseDataType(c.DType); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := tensor.Shape(c.Shape).Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if len(c.Names) != 0 && len(c.Names) != len(c.Shape) {
		errs = multierr.Append(errs, fmt.Errorf("got %d names for a rank %d shape", len(c.Names), len(c.Shape)))
	}
	errs = multierr.Append(errs, tensor.Names(c.Names).Validate())

	seen := make(map[string]bool, len(c.Vectorized))
	for i, v := range c.Vectorized {
		switch {
		case v.Name == "":
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis %d has no name", i))
		case seen[v.Name]:
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis name %q is repeated", v.Name))
		}
		seen[v.Name] = true
		if v.Size < 0 {
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis %q has negative size %d", v.Name, v.Size))
		}
	}

	if _, err := index.Parse(c.Index); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// DataType returns the parsed element type.
func (c TensorConfig) DataType() (tensor.DataType, error) {
	return tensor.ParseDataType(c.DType)
}

// PhysicalShape returns the vectorized sizes followed by the logical shape.
func (c TensorConfig) PhysicalShape() tensor.Shape {
	shape := make(tensor.Shape, 0, len(c.Vectorized)+len(c.Shape))
	for _, v := range c.Vectorized {
		shape = append(shape, v.Size)
	}
	return append(shape, c.Shape...)
}

// AxisNames returns the logical names, unnamed when none were configured.
func (c TensorConfig) AxisNames() tensor.Names {
	if len(c.Names) == 0 {
		return tensor.Unnamed(len(c.Shape))
	}
	return tensor.Names(c.Names).Clone()
}

// VectorizedAxes returns the vectorized axes, outermost first.
// Their names live apart from AxisNames, so the two may overlap.
func (c TensorConfig) VectorizedAxes() []tensor.VectorizedAxis {
	axes := make([]tensor.VectorizedAxis, len(c.Vectorized))
	for i, v := range c.Vectorized {
		axes[i] = tensor.VectorizedAxis{Name: v.Name, Size: v.Size}
	}
	return axes
}

// Level parses LogLevel.
func (c TensorConfig) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
