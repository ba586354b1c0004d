// SPDX-License-Identifier: MIT

// Package cli implements the matrixcalc command tree.
//
// Every matrix command reads a YAML document (see document) from FILE, or
// from stdin when FILE is "-", and prints its result in the configured
// --output format. Element type and algorithm are chosen globally through
// --type and --method, which may also come from MATRIXCALC_* variables or
// a --config file.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/tmatrix/internal/logging"
	"github.com/katalvlaran/tmatrix/matrix"
)

const appName = "matrixcalc"

// calculator carries state shared by all subcommands of one invocation.
type calculator struct {
	v      *viper.Viper
	cfg    Config
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the matrixcalc command tree bound to the given streams.
// Logs go to stderr; results go to stdout.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &calculator{v: newViper(), stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Exact determinant, adjugate and inverse of small matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Binding only fails on a nil flag set.
	_ = registerFlags(root.PersistentFlags(), c.v)

	root.AddCommand(
		c.determinantCommand(),
		c.unaryCommand(unaryDef{
			use:     "adjugate FILE",
			aliases: []string{"alliance", "adj"},
			short:   "Print the adjugate (classical adjoint) of matrix a",
			ints:    matrix.Adjugate[int64],
			floats:  matrix.Adjugate[float64],
		}),
		c.unaryCommand(unaryDef{
			use:     "inverse FILE",
			aliases: []string{"reverse", "inv"},
			short:   "Print the inverse of matrix a (integer division truncates for --type int)",
			ints:    matrix.Inverse[int64],
			floats:  matrix.Inverse[float64],
			lu:      matrix.InverseLU,
		}),
		c.unaryCommand(unaryDef{
			use:     "transpose FILE",
			aliases: []string{"t"},
			short:   "Print the transpose of matrix a",
			ints:    transposeOf[int64],
			floats:  transposeOf[float64],
		}),
		c.minorCommand(),
		c.binaryCommand("add FILE", "Print a + b", matrix.Add[int64], matrix.Add[float64]),
		c.binaryCommand("sub FILE", "Print a - b", matrix.Sub[int64], matrix.Sub[float64]),
		c.binaryCommand("mul FILE", "Print the matrix product a * b", matrix.Mul[int64], matrix.Mul[float64]),
		c.randomCommand(),
	)

	return root
}

// setup resolves configuration and builds the logger; it runs before every subcommand.
func (c *calculator) setup() error {
	cfg, err := loadConfig(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.logger, err = logging.NewTo(cfg.LogLevel, c.stderr); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	c.logger.Debug("configuration resolved",
		zap.String(keyType, cfg.Type),
		zap.String(keyMethod, cfg.Method),
		zap.String(keyOutput, cfg.Output),
		zap.String("config_file", c.v.ConfigFileUsed()),
	)

	return nil
}

// Execute runs matrixcalc with args (without the program name) and returns
// the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	return 0
}
