package main

// Command-line evaluator for the apgamma special functions.
//
// Usage:
//   apgamma ei <x>                 exponential integral Ei(x)
//   apgamma incgamma <n> <x>       upper incomplete gamma Γ(n,x), integer n
//   apgamma incgamma-half <n> <x>  Γ(n+1/2, x), integer n
//   apgamma pochhammer <a> <k>     rising factorial a(a+1)...(a+k-1)
//
// Global flags pick the working precision in bits, the number of printed
// digits (auto-derived from precision when negative) and the output form.
//
// SPDX-License-Identifier: MIT

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	ap "github.com/lukaszgryglicki/apgamma"
)

// rootOptions holds global flags for all subcommands.
type rootOptions struct {
	Prec    uint
	Digits  int
	Out     string // "sci" | "fixed"
	Verbose int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "apgamma",
		Short: "Arbitrary-precision incomplete gamma and exponential integral",
		Long: `Evaluates the upper incomplete gamma function for integer and
half-integer orders, the exponential integral and the Pochhammer symbol
at an arbitrary precision in bits, backed by GNU MPFR.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Out != "sci" && opts.Out != "fixed" {
				return fmt.Errorf("invalid output mode %q: must be sci or fixed", opts.Out)
			}
			if opts.Prec == 0 {
				return fmt.Errorf("precision must be positive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().UintVar(&opts.Prec, "prec", 256, "precision in bits")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", -1, "digits for output; -1 = auto from precision")
	cmd.PersistentFlags().StringVar(&opts.Out, "out", "sci", "output mode: sci|fixed")
	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "diagnostic trace output (repeat for more)")

	cmd.AddCommand(newEiCommand(opts))
	cmd.AddCommand(newIncGammaCommand(opts))
	cmd.AddCommand(newIncGammaHalfCommand(opts))
	cmd.AddCommand(newPochhammerCommand(opts))

	return cmd
}

func newEiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ei <x>",
		Short: "Exponential integral Ei(x)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := ap.Parse(args[0], opts.Prec)
			if err != nil {
				return err
			}
			res, err := ap.Ei(x, evalOptions(opts)...)
			if err != nil {
				return err
			}
			printResult(cmd, opts, res)
			return nil
		},
	}
}

func newIncGammaCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "incgamma <n> <x>",
		Short: "Upper incomplete gamma Γ(n,x) for integer n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order %q: need an integer", args[0])
			}
			x, err := ap.Parse(args[1], opts.Prec)
			if err != nil {
				return err
			}
			res, err := ap.IncGammaInt(n, x, evalOptions(opts)...)
			if err != nil {
				return err
			}
			printResult(cmd, opts, res)
			return nil
		},
	}
}

func newIncGammaHalfCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "incgamma-half <n> <x>",
		Short: "Upper incomplete gamma Γ(n+1/2,x) for integer n, x > 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order %q: need an integer", args[0])
			}
			x, err := ap.Parse(args[1], opts.Prec)
			if err != nil {
				return err
			}
			res, err := ap.IncGammaHalfInt(n, x, evalOptions(opts)...)
			if err != nil {
				return err
			}
			printResult(cmd, opts, res)
			return nil
		},
	}
}

func newPochhammerCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pochhammer <a> <k>",
		Short: "Rising factorial a(a+1)...(a+k-1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ap.Parse(args[0], opts.Prec)
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: need an integer", args[1])
			}
			res, err := ap.Pochhammer(a, k, evalOptions(opts)...)
			if err != nil {
				return err
			}
			printResult(cmd, opts, res)
			return nil
		},
	}
}

// evalOptions maps CLI verbosity onto library options; traces go to stderr
// to keep stdout clean for the numeric result.
func evalOptions(opts *rootOptions) []ap.Option {
	if opts.Verbose == 0 {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return []ap.Option{ap.WithVerbose(opts.Verbose), ap.WithLogger(logger)}
}

func printResult(cmd *cobra.Command, opts *rootOptions, res *ap.Real) {
	d := opts.Digits
	if d < 0 {
		d = int(float64(opts.Prec)*math.Log10(2)) - 5 // ~significant digits; small safety margin
		if d < 1 {
			d = 1
		}
		if d > 1<<20 {
			d = 1 << 20 // sanity cap
		}
	}
	switch opts.Out {
	case "fixed":
		fmt.Fprintln(cmd.OutOrStdout(), res.StringFixed(d))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), res.StringScientific(d))
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "apgamma:", err)
		os.Exit(1)
	}
}
