// Package runner dispatches named operations on string arguments.
package runner

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muliwe/go-textmath/internal/mathutil"
	"github.com/muliwe/go-textmath/internal/textutil"
)

const (
	OpCountWords = "count-words"
	OpPascal     = "pascal"
	OpCalc       = "calc"
	OpReverse    = "reverse"
	OpFactorial  = "factorial"
)

var (
	// ErrUnknownOperation is returned for operation names that are not registered
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrBadArguments is returned when arguments cannot be decoded for an operation
	ErrBadArguments = errors.New("bad arguments")
)

// Runner decodes arguments and invokes the matching operation
type Runner struct {
	precision int
}

// Config holds runner configuration
type Config struct {
	// Precision is the number of digits after the decimal point for calc
	// output. -1 uses the smallest number of digits that round-trips.
	Precision int
}

// DefaultConfig returns default runner configuration
func DefaultConfig() Config {
	return Config{
		Precision: -1,
	}
}

// New creates a new runner
func New(cfg Config) *Runner {
	return &Runner{
		precision: cfg.Precision,
	}
}

// Operations returns the registered operation names
func Operations() []string {
	return []string{OpCountWords, OpPascal, OpCalc, OpReverse, OpFactorial}
}

// Run executes op with args and returns the result
func (r *Runner) Run(op string, args []string) Result {
	result := Result{
		RequestID: uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Operation: op,
		Args:      args,
	}

	value, output, err := r.dispatch(op, args)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	result.Value = value
	result.Output = output
	return result
}

func (r *Runner) dispatch(op string, args []string) (any, string, error) {
	switch op {
	case OpCountWords:
		counts := textutil.CountWords(strings.Join(args, " "))
		return counts, formatCounts(counts), nil

	case OpReverse:
		reversed := textutil.ReverseWords(strings.Join(args, " "))
		return reversed, reversed, nil

	case OpPascal:
		n, err := intArg(op, args)
		if err != nil {
			return nil, "", err
		}
		row, err := mathutil.PascalsTriangleRow(n)
		if err != nil {
			return nil, "", err
		}
		return row, formatRow(row), nil

	case OpFactorial:
		n, err := intArg(op, args)
		if err != nil {
			return nil, "", err
		}
		f, err := mathutil.Factorial(n)
		if err != nil {
			return nil, "", err
		}
		return f, f.String(), nil

	case OpCalc:
		v, err := r.calc(args)
		if err != nil {
			return nil, "", err
		}
		return v, strconv.FormatFloat(v, 'f', r.precision, 64), nil

	default:
		return nil, "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownOperation, op, strings.Join(Operations(), ", "))
	}
}

// calc expects "A OP B"
func (r *Runner) calc(args []string) (float64, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("%w: %s takes 3 arguments (A OP B), got %d", ErrBadArguments, OpCalc, len(args))
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q is not a number", ErrBadArguments, args[0])
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q is not a number", ErrBadArguments, args[2])
	}
	return mathutil.Calculator(a, b, args[1])
}

func intArg(op string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrBadArguments, op, len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadArguments, args[0])
	}
	return n, nil
}

// formatCounts renders one "word: count" line per word, sorted by word
func formatCounts(counts map[string]int) string {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	slices.Sort(words)

	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = w + ": " + strconv.Itoa(counts[w])
	}
	return strings.Join(lines, "\n")
}

func formatRow(row []*big.Int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
