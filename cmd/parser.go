package cmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/pflag"

	"EnvKit/internal/version"
)

var ErrHelp = errors.New("help shown")

var (
	styleCommand     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleCommandBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleErrorMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ParseError wraps argument parsing errors to provide rich output with
// the failing option highlighted and a caret pointing at it.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--get")
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build the command line with the failing option highlighted
	cmdLineParts := []string{styleCommand.Render(version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = styleCommandBad.Render(str)
		} else {
			str = styleCommand.Render(str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// Caret under the failing option
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + styleErrorMarker.Render("^")

	// %o in the message stands for the failing option
	failingOpt := ""
	if e.Index >= 0 && e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", "'"+styleCommand.Render(e.FailingCommand)+"'",
		"%o", "'"+styleCommand.Render(failingOpt)+"'",
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	}
	return out
}

// CommandGroup is one command with its modifier flags and arguments.
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// Parse parses the raw command line arguments into groups of command
// operations. Modifier flags apply to the command group they precede.
func Parse(args []string) ([]CommandGroup, error) {
	// Initialize flags to make sure help text is available
	InitFlags()

	modifiers := map[string]bool{
		"-v": true, "--verbose": true,
		"-x": true, "--debug": true,
		"--no-color": true,
	}

	// Pre-process args to expand combined short flags (e.g. -vp -> -v -p)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: fmt.Sprintf("invalid option '%s'", arg), FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// Not a modifier, so it must be a known command flag
		cmdName := strings.TrimLeft(arg, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++

		// Consume this command's arguments
		minArgs, maxArgs := argCounts(cmd)
		taken := 0
		for taken < maxArgs && i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
			currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
			taken++
			i++
		}
		if taken < minArgs {
			return nil, &ParseError{
				Args:           expandedArgs,
				Index:          i - 1,
				FailingCommand: cmd,
				Message:        fmt.Sprintf("Command %%c requires %d argument(s).", minArgs),
			}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers with no command form their own group
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}

// argCounts returns the minimum and maximum argument counts a command
// consumes.
func argCounts(cmd string) (min, max int) {
	switch cmd {
	case "-p", "--parse", "-w", "--watch":
		return 1, 1
	case "-g", "--get", "-u", "--unset":
		return 2, 2 // FILE KEY
	case "-s", "--set":
		return 3, 3 // FILE KEY VALUE
	case "-m", "--merge":
		return 2, 2 // TARGET SOURCE
	case "-f", "--find":
		return 0, 1 // [DIR]
	case "-e", "--export":
		return 1, 2 // FILE [FORMAT]
	case "-h", "--help":
		return 0, 1 // [command]
	default:
		return 0, 0
	}
}
