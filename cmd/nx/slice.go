package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/nx/backend/cpu"
	"github.com/born-ml/nx/index"
	"github.com/born-ml/nx/internal/config"
	"github.com/born-ml/nx/tensor"
)

type sliceFlags struct {
	config     string
	dtype      string
	shape      []int
	names      []string
	vectorized []string
	index      string
	logLevel   string
}

func newSliceCmd() *cobra.Command {
	var f sliceFlags
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Index an iota tensor and print the result",
		Long: `Builds a tensor counting up from zero, applies an index expression
and prints the shape, names and elements of the resulting view.

Example:
  nx slice --shape 3,4,5 --names a,b,c --index "[b: 1..2]"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			index.SetLogger(logger)
			defer index.SetLogger(nil)
			return runSlice(cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "YAML file describing the tensor and index")
	flags.StringVar(&f.dtype, "dtype", "", "element type (float32, float64, int32, int64, uint8, bool)")
	flags.IntSliceVar(&f.shape, "shape", nil, "logical shape, e.g. 3,4,5")
	flags.StringSliceVar(&f.names, "names", nil, "axis names, one per logical axis")
	flags.StringSliceVar(&f.vectorized, "vectorized", nil, "vectorized axes as name=size, outermost first")
	flags.StringVar(&f.index, "index", "", `index expression, e.g. "[b: 1..2, 0: -1]"`)
	flags.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

// resolve loads the config file and overlays the flags that were set.
func (f *sliceFlags) resolve(cmd *cobra.Command) (config.TensorConfig, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("dtype") {
		cfg.DType = f.dtype
	}
	if flags.Changed("shape") {
		cfg.Shape = f.shape
	}
	if flags.Changed("names") {
		cfg.Names = f.names
	}
	if flags.Changed("vectorized") {
		axes, err := parseVectorized(f.vectorized)
		if err != nil {
			return cfg, err
		}
		cfg.Vectorized = axes
	}
	if flags.Changed("index") {
		cfg.Index = f.index
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func parseVectorized(specs []string) ([]config.VectorizedAxis, error) {
	axes := make([]config.VectorizedAxis, 0, len(specs))
	for _, s := range specs {
		name, size, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("vectorized axis %q must be written as name=size", s)
		}
		n, err := strconv.Atoi(size)
		if err != nil {
			return nil, fmt.Errorf("vectorized axis %q: %w", s, err)
		}
		axes = append(axes, config.VectorizedAxis{Name: name, Size: n})
	}
	return axes, nil
}

// runSlice builds the configured tensor, indexes it and prints the result.
func runSlice(w io.Writer, cfg config.TensorConfig, logger *slog.Logger) error {
	dtype, err := cfg.DataType()
	if err != nil {
		return err
	}
	spec, err := index.Parse(cfg.Index)
	if err != nil {
		return err
	}
	logger.Info("indexing tensor", "dtype", dtype.String(), "shape", cfg.PhysicalShape().String(), "index", spec.String())

	backend := cpu.New()
	switch dtype {
	case tensor.Float32:
		return sliceIota[float32](w, cfg, spec, backend)
	case tensor.Float64:
		return sliceIota[float64](w, cfg, spec, backend)
	case tensor.Int32:
		return sliceIota[int32](w, cfg, spec, backend)
	case tensor.Int64:
		return sliceIota[int64](w, cfg, spec, backend)
	case tensor.Uint8:
		return sliceIota[uint8](w, cfg, spec, backend)
	case tensor.Bool:
		return sliceIota[bool](w, cfg, spec, backend)
	default:
		return fmt.Errorf("unsupported dtype %s", dtype)
	}
}

func sliceIota[T tensor.DType](w io.Writer, cfg config.TensorConfig, spec index.Spec, backend *cpu.Backend) error {
	base, err := tensor.Iota[T](cfg.PhysicalShape(), backend)
	if err != nil {
		return err
	}
	x, err := tensor.Wrap[T](base.Raw(), backend, cfg.AxisNames(), cfg.VectorizedAxes())
	if err != nil {
		return err
	}

	y, err := index.Get(x, spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, y.String())
	fmt.Fprintln(w, y.Data())
	return nil
}
