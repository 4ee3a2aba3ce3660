package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/config"
)

func newPowCmd(opts *options) *cobra.Command {
	var (
		prec    int
		realExp bool
	)

	cmd := &cobra.Command{
		Use:   "pow A N",
		Short: "Prints A raised to the power of N",
		Long: `Prints A raised to the power of N.

Without --real, N must be a non-negative integer and the result is exact.
With --real, N may be any decimal and the result is truncated to the
given precision.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			if realExp {
				p := opts.precision(cmd, prec)
				return opts.run(cmd, "pow", func() (bigdecimal.Decimal, error) {
					return opts.context().PowDecimal(d, e, p)
				})
			}
			if !e.IsInt() || e.IsNeg() {
				return fmt.Errorf("exponent %v is not a non-negative integer, use --real", e)
			}
			power, err := strconv.ParseUint(e.String(), 10, 0)
			if err != nil {
				return fmt.Errorf("exponent %v: %w", e, err)
			}
			return opts.run(cmd, "pow", func() (bigdecimal.Decimal, error) {
				return opts.context().Pow(d, uint(power)), nil
			})
		},
	}

	cmd.Flags().IntVarP(&prec, "precision", "p", config.DefaultPrecision, "digits after the decimal point, with --real")
	cmd.Flags().BoolVar(&realExp, "real", false, "allow a fractional or negative exponent")

	return cmd
}

func newExpCmd(opts *options) *cobra.Command {
	var prec int

	cmd := &cobra.Command{
		Use:   "exp X",
		Short: "Prints e raised to the power of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.operand(args)
			if err != nil {
				return err
			}
			p := opts.precision(cmd, prec)
			return opts.run(cmd, "exp", func() (bigdecimal.Decimal, error) {
				return opts.context().Exp(d, p)
			})
		},
	}

	cmd.Flags().IntVarP(&prec, "precision", "p", config.DefaultPrecision, "digits after the decimal point")

	return cmd
}

func newLnCmd(opts *options) *cobra.Command {
	var prec int

	cmd := &cobra.Command{
		Use:   "ln X",
		Short: "Prints the natural logarithm of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.operand(args)
			if err != nil {
				return err
			}
			p := opts.precision(cmd, prec)
			return opts.run(cmd, "ln", func() (bigdecimal.Decimal, error) {
				return opts.context().Log(d, p)
			})
		},
	}

	cmd.Flags().IntVarP(&prec, "precision", "p", config.DefaultPrecision, "digits after the decimal point")

	return cmd
}

// operand returns the single operand of a unary operation.
func (o *options) operand(args []string) (bigdecimal.Decimal, error) {
	if o.file != "" {
		return bigdecimal.Decimal{}, fmt.Errorf("unary operations do not read operand files")
	}
	return bigdecimal.Parse(args[0])
}
