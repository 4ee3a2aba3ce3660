// Package cmd implements the specter command line calculator.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/config"
	"github.com/govalues/bigdecimal/internal/operands"
)

// options holds the state shared by the root command and its subcommands.
type options struct {
	cfgFile string
	verbose bool
	file    string
	plain   bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "specter",
		Short: "Arbitrary-precision decimal calculator",
		Long: `specter computes with decimal numbers of unlimited length.

Operations:
  add, sub, mul  - exact sum, difference and product
  div, mod       - truncated quotient and remainder
  pow            - integer or real power
  exp, ln        - exponent and natural logarithm

Operands of binary operations can be read from a file holding
two literals separated by a colon, such as "1.5:2.25".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "read both operands from a file")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "print the bare result")

	cmd.AddCommand(
		newAddCmd(opts),
		newSubCmd(opts),
		newMulCmd(opts),
		newDivCmd(opts),
		newModCmd(opts),
		newPowCmd(opts),
		newExpCmd(opts),
		newLnCmd(opts),
	)

	return cmd
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// setup configures logging and loads the configuration file.
func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.cfgFile == "" {
		o.cfg = config.Default()
	} else {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
		o.logger.Debug("config loaded", "path", o.cfgFile)
	}
	if o.cfg.Output.Plain {
		o.plain = true
	}

	o.logger.Debug("engine",
		"precision", o.cfg.Engine.Precision,
		"karatsuba_cutoff", o.cfg.Engine.KaratsubaCutoff,
		"newton_iterations", o.cfg.Engine.NewtonIterations,
		"taylor_factor", o.cfg.Engine.TaylorFactor,
	)
	return nil
}

// context returns the engine parameters from the configuration.
func (o *options) context() bigdecimal.Context {
	return o.cfg.Context()
}

// precision returns the value of the --precision flag if it was set,
// and the configured default otherwise.
func (o *options) precision(cmd *cobra.Command, prec int) int {
	if cmd.Flags().Changed("precision") {
		return prec
	}
	return o.cfg.Engine.Precision
}

// operands returns the two operands of a binary operation, either from
// the arguments or from the operand file.
func (o *options) operands(args []string) (d, e bigdecimal.Decimal, err error) {
	var a, b string
	switch {
	case o.file != "" && len(args) != 0:
		return d, e, fmt.Errorf("operands are given both as arguments and in %s", o.file)
	case o.file != "":
		a, b, err = operands.ReadFile(o.file)
		if err != nil {
			return d, e, err
		}
		o.logger.Debug("operands loaded", "path", o.file)
	case len(args) != 2:
		return d, e, fmt.Errorf("accepts 2 operands, received %d", len(args))
	default:
		a, b = args[0], args[1]
	}
	d, err = bigdecimal.Parse(a)
	if err != nil {
		return d, e, err
	}
	e, err = bigdecimal.Parse(b)
	if err != nil {
		return d, e, err
	}
	return d, e, nil
}

// run evaluates f, then prints its result together with the elapsed time.
func (o *options) run(cmd *cobra.Command, name string, f func() (bigdecimal.Decimal, error)) error {
	start := time.Now()
	d, err := f()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	o.logger.Debug("computed", "operation", name, "elapsed", elapsed)
	newPrinter(cmd.OutOrStdout(), o.plain).print(d, elapsed)
	return nil
}
