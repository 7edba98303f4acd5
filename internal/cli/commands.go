package cli

import (
	"github.com/spf13/cobra"

	"github.com/muliwe/go-textmath/internal/runner"
)

func newCountWordsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count-words TEXT...",
		Short: "Count case-insensitive word frequencies",
		Long: `Count how often each whitespace-separated word occurs, ignoring case.
Punctuation is part of the word.

Examples:
  textmath count-words "Hello hello HELLO"
  textmath count-words the quick brown fox jumps over the lazy dog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, runner.OpCountWords, args)
		},
	}
}

func newReverseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse TEXT...",
		Short: "Reverse word order",
		Long: `Reverse the order of words, leaving each word intact.
Runs of whitespace collapse to a single space.

Example:
  textmath reverse "the quick brown fox"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, runner.OpReverse, args)
		},
	}
}

func newPascalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pascal N",
		Short: "Print row N of Pascal's triangle",
		Long: `Print the binomial coefficients C(N,0)..C(N,N).
Coefficients are exact for any N.

Example:
  textmath pascal 5`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, runner.OpPascal, args)
		},
	}
}

func newCalcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc A OP B",
		Short: "Apply one of + - * / to two numbers",
		Long: `Apply a single binary operator to two numbers.
Quote * to keep the shell from expanding it.

Examples:
  textmath calc 10 / 4
  textmath calc 6 '*' 7
  textmath calc -- -3 + 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, runner.OpCalc, args)
		},
	}
}

func newFactorialCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Print N! with arbitrary precision",
		Long: `Print the factorial of a non-negative integer.
Use -- before negative numbers so they are not read as flags.

Examples:
  textmath factorial 20
  textmath factorial -- -1`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, runner.OpFactorial, args)
		},
	}
}
