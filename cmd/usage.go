package cmd

import (
	"fmt"
	"strings"

	"EnvKit/internal/version"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Println(GetUsage(target))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: %s [<Flags>] [<Command>] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("%s [%s]", appName, version.Version))
		printStr(fmt.Sprintf("%s parses, edits and finds .env files.", appName))
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given. Any flags included only apply to the following command, and get")
		printStr("reset before the next command.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""
	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-v", "--verbose") {
		printStr("-v --verbose")
		printStr("	Show more output.")
	}
	if match("-x", "--debug") {
		printStr("-x --debug")
		printStr("	Show debug output.")
	}
	if match("--no-color") {
		printStr("--no-color")
		printStr("	Disable colored output.")
	}

	if showAll {
		printStr("")
		printStr("Commands:")
		printStr("")
	}

	if match("-p", "--parse") {
		printStr("-p --parse <File>")
		printStr("	Parse an env file and print its variables.")
	}
	if match("-e", "--export") {
		printStr("-e --export <File> [<Format>]")
		printStr("	Parse an env file and write it in the given format")
		printStr("	(dotenv, json, yaml, toml). The default format comes from the config file.")
	}
	if match("-g", "--get") {
		printStr("-g --get <File> <Var>")
		printStr("	Print the value of a variable.")
	}
	if match("-s", "--set") {
		printStr("-s --set <File> <Var> <Value>")
		printStr("	Set the value of a variable, creating the file if needed.")
		printStr("	The file is rewritten from its parsed form with sorted keys.")
	}
	if match("-u", "--unset") {
		printStr("-u --unset <File> <Var>")
		printStr("	Remove a variable from the file.")
	}
	if match("-m", "--merge") {
		printStr("-m --merge <Target> <Source>")
		printStr("	Copy variables from Source into Target, adding only ones Target is missing.")
	}
	if match("-f", "--find") {
		printStr("-f --find [<Dir>]")
		printStr("	Find the nearest env file, searching the directory and then its parents.")
		printStr("	Prints the path of the first match.")
	}
	if match("-w", "--watch") {
		printStr("-w --watch <File>")
		printStr("	Watch an env file, re-parsing it on every change and reporting the")
		printStr("	added, changed and removed variables. Stop with Ctrl-C.")
	}
	if match("--config-show") {
		printStr("--config-show")
		printStr("	Show the active configuration and where it was loaded from.")
	}
	if match("-V", "--version") {
		printStr("-V --version")
		printStr("	Show the application version.")
	}
	if match("-h", "--help") {
		printStr("-h --help [<Command>]")
		printStr("	Show this help, or help for one command.")
	}

	out := sb.String()
	if out == "" {
		out = fmt.Sprintf("No help available for '%s'.", target)
	}
	return strings.TrimRight(out, "\n")
}
