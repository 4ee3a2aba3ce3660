package cmd

import (
	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/config"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Prints the exact sum A + B",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, "add", func() (bigdecimal.Decimal, error) {
				return d.Add(e), nil
			})
		},
	}
}

func newSubCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "Prints the exact difference A - B",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, "sub", func() (bigdecimal.Decimal, error) {
				return d.Sub(e), nil
			})
		},
	}
}

func newMulCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B",
		Short: "Prints the exact product A * B",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, "mul", func() (bigdecimal.Decimal, error) {
				return opts.context().Mul(d, e), nil
			})
		},
	}
}

func newDivCmd(opts *options) *cobra.Command {
	var prec int

	cmd := &cobra.Command{
		Use:   "div A B",
		Short: "Prints the quotient A / B truncated to the given precision",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			p := opts.precision(cmd, prec)
			return opts.run(cmd, "div", func() (bigdecimal.Decimal, error) {
				return d.Quo(e, p)
			})
		},
	}

	cmd.Flags().IntVarP(&prec, "precision", "p", config.DefaultPrecision, "digits after the decimal point")

	return cmd
}

func newModCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mod A B",
		Short: "Prints the remainder of A / B with the sign of A",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, e, err := opts.operands(args)
			if err != nil {
				return err
			}
			return opts.run(cmd, "mod", func() (bigdecimal.Decimal, error) {
				return d.Rem(e)
			})
		},
	}
}
