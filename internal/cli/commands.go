package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/internal/output"
	"github.com/AndreyAkinshin/lre/internal/suite"
	"github.com/AndreyAkinshin/lre/pkg/lre"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	widthCommand       = 22 // Width for commands like "round <value> <digits>"
	widthFlagShort     = 10 // Width for short flags like "-h, --help"
	widthFlagWithValue = 16 // Width for flags like "--format=<fmt>"
)

// numericArgs holds the positional arguments and --type of a numeric command.
type numericArgs struct {
	typ        string
	positional []string
}

// parseNumericArgs separates --type from positional values. Values that look
// like flags but parse as numbers, such as -1.5, are positional.
func parseNumericArgs(cmd string, args []string) (*numericArgs, error) {
	na := &numericArgs{typ: suite.TypeFloat64}

	args = stripSeparator(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--type":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s: --type requires a value", cmd)
			}
			na.typ = args[i+1]
			i++
		case strings.HasPrefix(arg, "--type="):
			na.typ = strings.TrimPrefix(arg, "--type=")
		case strings.HasPrefix(arg, "-") && !isNumber(arg):
			return nil, fmt.Errorf("%s: unknown flag: %s", cmd, arg)
		default:
			na.positional = append(na.positional, arg)
		}
	}

	if na.typ != suite.TypeFloat32 && na.typ != suite.TypeFloat64 {
		return nil, fmt.Errorf("%s: invalid --type value %q\n  valid values: %s, %s", cmd, na.typ, suite.TypeFloat32, suite.TypeFloat64)
	}
	return na, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// cmdDigits prints the number of significant digits each literal specifies.
func cmdDigits(args []string) int {
	if wantsHelp(args) {
		printDigitsUsage()
		return 0
	}
	args = stripSeparator(args)
	if len(args) == 0 {
		out.ErrorPrefix("digits: at least one literal required")
		return errors.ExitConfigError
	}

	for _, literal := range args {
		out.Println("%s\t%d", literal, lre.CountDigits(literal))
	}
	return 0
}

// cmdLRE prints the log relative error between a candidate and a reference.
func cmdLRE(args []string) int {
	if wantsHelp(args) {
		printLREUsage()
		return 0
	}
	na, err := parseNumericArgs("lre", args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if len(na.positional) != 2 {
		out.ErrorPrefix("lre: expected <candidate> <reference>, got %d argument(s)", len(na.positional))
		return errors.ExitConfigError
	}

	var result string
	switch na.typ {
	case suite.TypeFloat32:
		result, err = evalLRE[float32](na.positional[0], na.positional[1])
	default:
		result, err = evalLRE[float64](na.positional[0], na.positional[1])
	}
	if err != nil {
		out.ErrorPrefix("lre: %v", err)
		return errors.ExitConfigError
	}
	out.Println("%s", result)
	return 0
}

func evalLRE[T lre.Float](candidate, reference string) (string, error) {
	x, err := lre.ParseLiteral[T](candidate)
	if err != nil {
		return "", fmt.Errorf("candidate %q: %w", candidate, err)
	}
	c, err := lre.ParseLiteral[T](reference)
	if err != nil {
		return "", fmt.Errorf("reference %q: %w", reference, err)
	}
	return strconv.FormatFloat(float64(lre.LRE(x, c)), 'f', 2, 64), nil
}

// cmdRound prints a value rounded to a number of significant decimal digits.
func cmdRound(args []string) int {
	if wantsHelp(args) {
		printRoundUsage()
		return 0
	}
	na, err := parseNumericArgs("round", args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if len(na.positional) != 2 {
		out.ErrorPrefix("round: expected <value> <digits>, got %d argument(s)", len(na.positional))
		return errors.ExitConfigError
	}
	digits, err := strconv.Atoi(na.positional[1])
	if err != nil || digits < 1 {
		out.ErrorPrefix("round: digits must be a positive integer (got %q)", na.positional[1])
		return errors.ExitConfigError
	}

	var result string
	switch na.typ {
	case suite.TypeFloat32:
		result, err = evalRound[float32](na.positional[0], digits, 32)
	default:
		result, err = evalRound[float64](na.positional[0], digits, 64)
	}
	if err != nil {
		out.ErrorPrefix("round: %v", err)
		return errors.ExitConfigError
	}
	out.Println("%s", result)
	return 0
}

func evalRound[T lre.Float](value string, digits, bitSize int) (string, error) {
	x, err := lre.ParseLiteral[T](value)
	if err != nil {
		return "", fmt.Errorf("value %q: %w", value, err)
	}
	return strconv.FormatFloat(float64(lre.RoundSignificant(x, digits)), 'g', -1, bitSize), nil
}

func printDigitsUsage() {
	w := out

	w.HelpTitle("lre digits - count specified digits")

	w.HelpSection("Usage:")
	w.HelpUsage("lre digits <literal>...")

	w.HelpSection("Description:")
	w.Println("  Prints how many significant digits each decimal literal specifies.")
	w.Println("  Leading zeros do not count; trailing zeros do.")

	w.HelpSection("Examples:")
	w.HelpExample("lre digits 1.2345", "5")
	w.HelpExample("lre digits 0.00120", "3")
	w.Println("")
}

func printLREUsage() {
	w := out

	w.HelpTitle("lre lre - log relative error")

	w.HelpSection("Usage:")
	w.HelpUsage("lre lre [--type=<type>] <candidate> <reference>")

	w.HelpSection("Options:")
	w.HelpFlag("--type=<type>", "Evaluate as float32 or float64 (default float64)", widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)

	w.HelpSection("Examples:")
	w.HelpExample("lre lre 1.2340 1.2345", "3.39")
	w.HelpExample("lre lre 1e-10 0", "Absolute error when the reference is zero")
	w.Println("")
}

func printRoundUsage() {
	w := out

	w.HelpTitle("lre round - round to significant digits")

	w.HelpSection("Usage:")
	w.HelpUsage("lre round [--type=<type>] <value> <digits>")

	w.HelpSection("Options:")
	w.HelpFlag("--type=<type>", "Evaluate as float32 or float64 (default float64)", widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)

	w.HelpSection("Examples:")
	w.HelpExample("lre round 123.456 4", "123.5")
	w.HelpExample("lre round -- -0.000123456 3", "-0.000123")
	w.Println("")
}
