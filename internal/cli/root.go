// Package cli provides the command-line interface for textmath.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/muliwe/go-textmath/internal/logger"
	"github.com/muliwe/go-textmath/internal/runner"
	"github.com/muliwe/go-textmath/internal/version"
)

// ReadyMessage is printed when textmath runs without a subcommand
const ReadyMessage = "textmath functions loaded. Run your tests to verify."

// Environment variables that override flag defaults
const (
	EnvLogLevel  = "TEXTMATH_LOG_LEVEL"
	EnvLogFormat = "TEXTMATH_LOG_FORMAT"
	EnvPrecision = "TEXTMATH_PRECISION"
)

// options holds the persistent flag values shared by all subcommands
type options struct {
	logLevel  string
	logFormat string
	verbose   bool
	precision int
	jsonOut   bool

	precisionErr error

	log    *logger.Logger
	runner *runner.Runner
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "textmath",
		Short: "Text and math utility functions",
		Long: `textmath ` + version.Version + ` - Built: ` + version.BuildTime + `
Word counting, word-order reversal, Pascal's triangle rows,
a four-operator calculator and arbitrary-precision factorials.`,
		Version:       version.Version + " (" + version.BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ReadyMessage)
			return err
		},
	}

	precision := runner.DefaultConfig().Precision
	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			opts.precisionErr = fmt.Errorf("invalid %s %q: %w", EnvPrecision, v, err)
		} else {
			precision = p
		}
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", envOr(EnvLogLevel, logger.DefaultConfig().Level), "Log level (debug, info, warn, error, disabled)")
	flags.StringVar(&opts.logFormat, "log-format", envOr(EnvLogFormat, logger.DefaultConfig().Format), "Log format (console or json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (same as --log-level debug)")
	flags.IntVar(&opts.precision, "precision", precision, "Digits after the decimal point for calc output (-1 = shortest)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(
		newCountWordsCmd(opts),
		newReverseCmd(opts),
		newPascalCmd(opts),
		newCalcCmd(opts),
		newFactorialCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) init(cmd *cobra.Command) error {
	if o.precisionErr != nil && !cmd.Flags().Changed("precision") {
		return o.precisionErr
	}

	level := o.logLevel
	if o.verbose {
		level = "debug"
	}

	l, err := logger.New(logger.Config{
		Level:  level,
		Format: o.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	o.log = l
	o.runner = runner.New(runner.Config{Precision: o.precision})
	return nil
}

// run executes an operation, logs it and prints the result
func (o *options) run(cmd *cobra.Command, op string, args []string) error {
	start := time.Now()
	result := o.runner.Run(op, args)
	o.log.LogResult(result, time.Since(start))

	if o.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return result.Err
	}

	if result.Err != nil {
		return result.Err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
