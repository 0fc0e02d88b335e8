// Package cli provides command-line interface functionality for lre.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/lre/internal/config"
	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/internal/output"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		out.Println("lre %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "digits":
		return cmdDigits(cmdArgs)
	case "lre":
		return cmdLRE(cmdArgs)
	case "round":
		return cmdRound(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs, opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	case "completion":
		return cmdCompletion(cmdArgs)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Errorln("  run 'lre help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	Verbose    bool
	ConfigPath string // Empty means the optional default lre.json
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Global flags may appear anywhere in the argument list. Arguments after --
// are passed to the command verbatim, so negative numbers can follow it.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			if opts.ConfigPath == "" {
				return nil, nil, fmt.Errorf("--config requires a non-empty path")
			}
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return nil, nil, fmt.Errorf("--config requires a non-empty path")
			}
			i++
		case arg == "--":
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	out.SetQuiet(opts.Quiet)

	return opts, remaining, nil
}

// stripSeparator drops the first -- from args, keeping what follows it.
func stripSeparator(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			result := append([]string(nil), args[:i]...)
			return append(result, args[i+1:]...)
		}
	}
	return args
}

func printUsage() {
	w := out

	w.HelpTitle("lre - digit agreement between computed values and references")

	w.HelpSection("Usage:")
	w.HelpUsage("lre <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("digits <literal>...", "Count the significant digits a literal specifies", widthCommand)
	w.HelpCommand("lre <candidate> <ref>", "Log relative error between two values", widthCommand)
	w.HelpCommand("round <value> <digits>", "Round to significant decimal digits", widthCommand)
	w.HelpCommand("check [suite...]", "Judge reference suites and render LRE tables", widthCommand)
	w.HelpCommand("config validate", "Validate the configuration file", widthCommand)
	w.HelpCommand("completion <shell>", "Generate shell completion (bash, zsh, fish)", widthCommand)
	w.HelpCommand("version", "Show version information", widthCommand)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample("lre digits 1.2345 0.00120", "Print 5 and 3")
	w.HelpExample("lre lre --type=float32 3.1415927 3.14159265358979", "Agreement in single precision")
	w.HelpExample("lre check", "Judge every suite under "+config.DefaultSuitesDirectory)
	w.HelpExample("lre check norris.yaml --format=json --out=norris.json", "Export one suite's results")
	w.Println("")
}

func printGlobalFlags(w *output.Writer) {
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", widthFlagWithValue)
	w.HelpFlag("-v, --verbose", "Debug logging", widthFlagWithValue)
	w.HelpFlag("--config=<path>", fmt.Sprintf("Configuration file (default %s)", config.DefaultConfigFile), widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)
	w.HelpFlag("--version", "Show version", widthFlagWithValue)
}
