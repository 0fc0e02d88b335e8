package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/lre/internal/errors"
)

// commandInfo describes a command for help-aware completion.
type commandInfo struct {
	name        string
	description string
}

// builtinCommands returns the CLI commands in help order.
func builtinCommands() []commandInfo {
	return []commandInfo{
		{"digits", "Count specified digits"},
		{"lre", "Log relative error"},
		{"round", "Round to significant digits"},
		{"check", "Judge reference suites"},
		{"config", "Configuration utilities"},
		{"completion", "Generate shell completion"},
		{"version", "Show version information"},
		{"help", "Show help"},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	return []string{"--quiet", "--verbose", "--config", "--help", "--version"}
}

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	shell := ""
	alias := ""

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case strings.HasPrefix(arg, "-"):
			out.ErrorPrefix("completion: unknown flag: %s", arg)
			return errors.ExitConfigError
		default:
			if shell != "" {
				out.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		out.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		return errors.ExitConfigError
	}

	cmdName := "lre"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		out.Print("%s", generateBashCompletion(cmdName))
	case "zsh":
		out.Print("%s", generateZshCompletion(cmdName))
	case "fish":
		out.Print("%s", generateFishCompletion(cmdName))
	default:
		out.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}
	return 0
}

func commandNames() []string {
	var names []string
	for _, c := range builtinCommands() {
		names = append(names, c.name)
	}
	return names
}

func generateBashCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	return fmt.Sprintf(`# lre bash completion
# Add to ~/.bashrc: eval "$(lre completion bash)"

%s() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    local commands="%s"
    local flags="%s"

    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
            return
            ;;
        config)
            COMPREPLY=($(compgen -W "validate" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        --type)
            COMPREPLY=($(compgen -W "float32 float64" -- "${cur}"))
            return
            ;;
        --format)
            COMPREPLY=($(compgen -W "markdown json yaml" -- "${cur}"))
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags} --type --format --out --parallel" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -f -- "${cur}"))
}

complete -F %s %s
`, funcName, strings.Join(commandNames(), " "), strings.Join(globalFlags(), " "), cmdName, funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var entries []string
	for _, c := range builtinCommands() {
		entries = append(entries, fmt.Sprintf("        '%s:%s'", c.name, c.description))
	}

	return fmt.Sprintf(`#compdef %s
# lre zsh completion
# Add to ~/.zshrc: eval "$(lre completion zsh)"

%s() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '(-q --quiet)'{-q,--quiet}'[Minimal output]' \
        '(-v --verbose)'{-v,--verbose}'[Debug logging]' \
        '--config=[Configuration file]:file:_files' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                config) _values 'subcommand' validate ;;
                completion) _values 'shell' bash zsh fish ;;
                check) _files ;;
            esac
            ;;
    esac
}

compdef %s %s
`, cmdName, funcName, strings.Join(entries, "\n"), funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder
	sb.WriteString("# lre fish completion\n")
	sb.WriteString("# Add to config.fish: lre completion fish | source\n\n")
	for _, c := range builtinCommands() {
		fmt.Fprintf(&sb, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, c.name, c.description)
	}
	fmt.Fprintf(&sb, "complete -c %s -s q -l quiet -d 'Minimal output'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -s v -l verbose -d 'Debug logging'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -l config -r -d 'Configuration file'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from config' -a 'validate'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from lre round' -l type -x -a 'float32 float64'\n", cmdName)
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from check' -l format -x -a 'markdown json yaml'\n", cmdName)
	return sb.String()
}

func printCompletionUsage() {
	w := out

	w.HelpTitle("lre completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("lre completion <shell> [--alias=<name>]")

	w.HelpSection("Options:")
	w.HelpFlag("--alias=<name>", "Generate completion for a command alias", widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)

	w.HelpSection("Installation:")
	w.Println("  Bash:  eval \"$(lre completion bash)\"")
	w.Println("  Zsh:   eval \"$(lre completion zsh)\"")
	w.Println("  Fish:  lre completion fish | source")
	w.Println("")
}
