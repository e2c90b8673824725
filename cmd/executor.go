package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"EnvKit/internal/config"
	"EnvKit/internal/constants"
	"EnvKit/internal/envfile"
	"EnvKit/internal/format"
	"EnvKit/internal/logger"
	"EnvKit/internal/paths"
	"EnvKit/internal/strutil"
	"EnvKit/internal/version"
	"EnvKit/internal/watch"
)

var (
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	stylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// maxValueWidth limits value display in tables; full values are always
// available via --get or --export.
const maxValueWidth = 80

// disableStyles strips color from all styled output, for --no-color and
// for config files with color disabled.
func disableStyles() {
	plain := lipgloss.NewStyle()
	styleKey, styleValue, stylePath = plain, plain, plain
	styleCommand, styleCommandBad, styleErrorMarker = plain, plain, plain
}

// Execute runs the logic for a sequence of command groups.
// It handles flag application, command dispatch, and state resetting.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf := config.LoadAppConfig()
	if !conf.Output.Color {
		logger.NoColor = true
	}
	exitCode := 0
	ranCommand := false

	for _, group := range groups {
		// Apply modifier flags before the command executes
		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "--no-color":
				logger.NoColor = true
			}
		}
		if logger.NoColor {
			disableStyles()
		}

		cmdStr := version.CommandName + " " + strings.Join(group.FullSlice(), " ")
		logger.Info(ctx, "%s command: '%s'", version.ApplicationName, strings.TrimSpace(cmdStr))

		var err error
		switch group.Command {
		case "-h", "--help":
			target := ""
			if len(group.Args) > 0 {
				target = group.Args[0]
			}
			PrintHelp(target)
			ranCommand = true
		case "-V", "--version":
			handleVersion(ctx)
			ranCommand = true
		case "-p", "--parse":
			err = handleParse(ctx, group.Args[0])
			ranCommand = true
		case "-e", "--export":
			name := conf.Output.Format
			if len(group.Args) > 1 {
				name = group.Args[1]
			}
			err = handleExport(ctx, group.Args[0], name)
			ranCommand = true
		case "-g", "--get":
			err = handleGet(ctx, group.Args[0], group.Args[1])
			ranCommand = true
		case "-s", "--set":
			err = handleSet(ctx, group.Args[0], group.Args[1], group.Args[2])
			ranCommand = true
		case "-u", "--unset":
			err = handleUnset(ctx, group.Args[0], group.Args[1])
			ranCommand = true
		case "-m", "--merge":
			err = handleMerge(ctx, group.Args[0], group.Args[1])
			ranCommand = true
		case "-f", "--find":
			startDir := conf.Search.StartDir
			if len(group.Args) > 0 {
				startDir = group.Args[0]
			}
			err = handleFind(ctx, startDir, conf.Search.Suffix, conf.Search.MaxHops)
			ranCommand = true
		case "-w", "--watch":
			err = watch.Run(ctx, group.Args[0])
			if err == context.Canceled {
				err = nil
			}
			ranCommand = true
		case "--config-show":
			handleConfigShow(ctx, &conf)
			ranCommand = true
		default:
			// Modifier-only group; nothing to run
		}

		if err != nil {
			logger.Error(ctx, err.Error())
			exitCode = 1
		}

		// Reset per-group state
		logger.SetLevel(logger.LevelNotice)
	}

	if !ranCommand {
		PrintHelp("")
	}
	return exitCode
}

func handleVersion(ctx context.Context) {
	fmt.Printf("%s %s (commit %s, built %s)\n",
		version.ApplicationName, version.Version, version.Commit, version.BuildDate)
}

func handleParse(ctx context.Context, path string) error {
	mapping, err := envfile.Load(path)
	if err != nil {
		return err
	}
	logger.Notice(ctx, "Parsed '%s': %d variable(s)", path, len(mapping))
	printMapping(mapping)
	return nil
}

func handleExport(ctx context.Context, path, formatName string) error {
	mapping, err := envfile.Load(path)
	if err != nil {
		return err
	}
	out, err := format.Export(mapping, formatName)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func handleGet(ctx context.Context, path, key string) error {
	value, ok, err := envfile.Get(path, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("variable '%s' not found in %s", key, path)
	}
	fmt.Println(value)
	return nil
}

func handleSet(ctx context.Context, path, key, value string) error {
	if err := envfile.Set(path, key, value); err != nil {
		return err
	}
	logger.Notice(ctx, "Set %s in '%s'", key, path)
	return nil
}

func handleUnset(ctx context.Context, path, key string) error {
	if err := envfile.Unset(path, key); err != nil {
		return err
	}
	logger.Notice(ctx, "Removed %s from '%s'", key, path)
	return nil
}

func handleMerge(ctx context.Context, target, source string) error {
	added, err := envfile.MergeNewOnly(ctx, target, source)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		logger.Notice(ctx, "No new variables to merge into '%s'", target)
	}
	return nil
}

func handleFind(ctx context.Context, startDir, suffix string, maxHops int) error {
	mapping, path, err := envfile.Discover(startDir, suffix, maxHops)
	if err != nil {
		return err
	}
	fmt.Println(stylePath.Render(path))
	logger.Info(ctx, "Found '%s': %d variable(s)", path, len(mapping))
	return nil
}

func handleConfigShow(ctx context.Context, conf *config.AppConfig) {
	fmt.Printf("config file:    %s\n", stylePath.Render(paths.GetConfigFilePath()))
	fmt.Printf("search suffix:  %s\n", conf.Search.Suffix)
	fmt.Printf("search hops:    %s\n", hopsForDisplay(conf.Search.MaxHops))
	fmt.Printf("export format:  %s\n", conf.Output.Format)
	fmt.Printf("color:          %v\n", conf.Output.Color)
}

func hopsForDisplay(maxHops int) string {
	if maxHops == constants.DefaultMaxHops {
		return "unbounded"
	}
	return fmt.Sprintf("%d", maxHops)
}

// printMapping writes the variables as an aligned, styled table with
// sorted keys.
func printMapping(mapping map[string]string) {
	keys := make([]string, 0, len(mapping))
	keyWidth := 0
	for k := range mapping {
		keys = append(keys, k)
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		pad := strutil.Repeat(" ", keyWidth-len(k))
		value := strutil.Limit(strutil.Escape(mapping[k]), maxValueWidth)
		fmt.Printf("%s%s = %s\n", styleKey.Render(k), pad, styleValue.Render(value))
	}
}
