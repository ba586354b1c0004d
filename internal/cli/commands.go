// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tmatrix/matrix"
)

type (
	unaryFn[T matrix.Number]  func(a *matrix.Dense[T]) (*matrix.Dense[T], error)
	binaryFn[T matrix.Number] func(a, b *matrix.Dense[T]) (*matrix.Dense[T], error)
	scalarFn[T matrix.Number] func(a *matrix.Dense[T]) (T, error)
)

// unaryDef describes a FILE -> matrix command. lu, when set, replaces
// floats under --method lu.
type unaryDef struct {
	use     string
	aliases []string
	short   string
	ints    unaryFn[int64]
	floats  unaryFn[float64]
	lu      unaryFn[float64]
}

func (c *calculator) float() bool { return c.cfg.Type == typeFloat }
func (c *calculator) lu() bool { return c.float() && c.cfg.Method == methodLU }

func (c *calculator) unaryCommand(d unaryDef) *cobra.Command {
	return &cobra.Command{
		Use:     d.use,
		Aliases: d.aliases,
		Short:   d.short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case c.lu() && d.lu != nil:
				return runUnary(c, cmd.Name(), args[0], d.lu)
			case c.float():
				return runUnary(c, cmd.Name(), args[0], d.floats)
			default:
				return runUnary(c, cmd.Name(), args[0], d.ints)
			}
		},
	}
}

func (c *calculator) binaryCommand(use, short string, ints binaryFn[int64], floats binaryFn[float64]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ".\nFILE must hold both matrices a and b.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.float() {
				return runBinary(c, cmd.Name(), args[0], floats)
			}
			return runBinary(c, cmd.Name(), args[0], ints)
		},
	}
}

func (c *calculator) determinantCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "det FILE",
		Aliases: []string{"determinant"},
		Short:   "Print the determinant of matrix a",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case c.lu():
				return runScalar(c, cmd.Name(), args[0], matrix.DeterminantLU)
			case c.float():
				return runScalar(c, cmd.Name(), args[0], matrix.Determinant[float64])
			default:
				return runScalar(c, cmd.Name(), args[0], matrix.Determinant[int64])
			}
		},
	}
}

func (c *calculator) minorCommand() *cobra.Command {
	var (
		row, col int
		det      bool
	)
	cmd := &cobra.Command{
		Use:   "minor FILE",
		Short: "Print matrix a without row --row and column --col",
		Long: "Print matrix a without row --row and column --col (0-based).\n" +
			"With --det, print the determinant of that submatrix instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case det && c.float():
				return runScalar(c, cmd.Name(), args[0], minorValue[float64](row, col))
			case det:
				return runScalar(c, cmd.Name(), args[0], minorValue[int64](row, col))
			case c.float():
				return runUnary(c, cmd.Name(), args[0], withoutRowAndCol[float64](row, col))
			default:
				return runUnary(c, cmd.Name(), args[0], withoutRowAndCol[int64](row, col))
			}
		},
	}
	f := cmd.Flags()
	f.IntVar(&row, "row", 0, "row to remove (0-based)")
	f.IntVar(&col, "col", 0, "column to remove (0-based)")
	f.BoolVar(&det, "det", false, "print the determinant of the submatrix")
	_ = cmd.MarkFlagRequired("row")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

func (c *calculator) randomCommand() *cobra.Command {
	var (
		rows, cols int
		low, high  float64
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a rows x cols matrix of uniform values in [low, high]",
		Long: "Print a rows x cols matrix of uniform values in [low, high].\n" +
			"With -o yaml the output can be piped into any command reading FILE \"-\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []matrix.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, matrix.WithSeed(seed))
			}
			c.logger.Debug("random fill",
				zap.Int("rows", rows), zap.Int("cols", cols),
				zap.Float64("low", low), zap.Float64("high", high),
				zap.Bool("seeded", len(opts) > 0),
			)

			if c.float() {
				m, err := matrix.NewRandom(rows, cols, low, high, opts...)
				if err != nil {
					return err
				}
				return writeMatrix(c.stdout, c.cfg.Output, m)
			}

			if !isWhole(low) || !isWhole(high) {
				return fmt.Errorf("%w: --low %v and --high %v must be whole numbers for --%s %s",
					ErrBadConfig, low, high, keyType, typeInt)
			}
			m, err := matrix.NewRandom(rows, cols, int64(low), int64(high), opts...)
			if err != nil {
				return err
			}

			return writeMatrix(c.stdout, c.cfg.Output, m)
		},
	}
	f := cmd.Flags()
	f.IntVar(&rows, "rows", 3, "number of rows")
	f.IntVar(&cols, "cols", 3, "number of columns")
	f.Float64Var(&low, "low", 0, "lower bound (inclusive)")
	f.Float64Var(&high, "high", 9, "upper bound (inclusive for int)")
	f.Uint64Var(&seed, "seed", 0, "PCG seed for a reproducible matrix")

	return cmd
}

// isWhole reports whether x is an integer that fits int64 without loss.
func isWhole(x float64) bool {
	return x == math.Trunc(x) && math.Abs(x) <= 1<<53
}

func transposeOf[T matrix.Number](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return a.Transpose(), nil
}

func withoutRowAndCol[T matrix.Number](row, col int) unaryFn[T] {
	return func(a *matrix.Dense[T]) (*matrix.Dense[T], error) { return a.WithoutRowAndCol(row, col) }
}

func minorValue[T matrix.Number](row, col int) scalarFn[T] {
	return func(a *matrix.Dense[T]) (T, error) { return matrix.Minor(a, row, col) }
}

func loadOperands[T matrix.Number](c *calculator, op, path string, binary bool) (a, b *matrix.Dense[T], err error) {
	doc, err := readDocument[T](path, c.stdin)
	if err != nil {
		return nil, nil, err
	}
	if a, err = operand("a", doc.A); err != nil {
		return nil, nil, err
	}
	fields := []zap.Field{
		zap.String("op", op), zap.String("file", path),
		zap.Int("a_rows", a.Rows()), zap.Int("a_cols", a.Cols()),
	}
	if binary {
		if b, err = operand("b", doc.B); err != nil {
			return nil, nil, err
		}
		fields = append(fields, zap.Int("b_rows", b.Rows()), zap.Int("b_cols", b.Cols()))
	}
	c.logger.Debug("operands loaded", fields...)

	return a, b, nil
}

// failed records err at debug level and returns it unchanged.
func (c *calculator) failed(op string, err error) error {
	c.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))

	return err
}

func runUnary[T matrix.Number](c *calculator, op, path string, fn unaryFn[T]) error {
	a, _, err := loadOperands[T](c, op, path, false)
	if err != nil {
		return c.failed(op, err)
	}
	res, err := fn(a)
	if err != nil {
		return c.failed(op, err)
	}

	return writeMatrix(c.stdout, c.cfg.Output, res)
}

func runBinary[T matrix.Number](c *calculator, op, path string, fn binaryFn[T]) error {
	a, b, err := loadOperands[T](c, op, path, true)
	if err != nil {
		return c.failed(op, err)
	}
	res, err := fn(a, b)
	if err != nil {
		return c.failed(op, err)
	}

	return writeMatrix(c.stdout, c.cfg.Output, res)
}

func runScalar[T matrix.Number](c *calculator, op, path string, fn scalarFn[T]) error {
	a, _, err := loadOperands[T](c, op, path, false)
	if err != nil {
		return c.failed(op, err)
	}
	v, err := fn(a)
	if err != nil {
		return c.failed(op, err)
	}

	return writeScalar(c.stdout, c.cfg.Output, v)
}
