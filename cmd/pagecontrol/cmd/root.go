// Package cmd implements the pagecontrol CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, inspect, preview).
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pcerrors "github.com/go-drift/pagecontrol/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long        string
	Usage       string
	SubCommands []*Command
}{
	Long: `pagecontrol lays out and draws page indicators: a row of dots, one per
page, with the current page highlighted and the two dots around the scroll
position morphing while a paged view scrolls.

Use "pagecontrol <command> --help" for more information about a command.`,
	Usage: "pagecontrol <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	envFile := ".env"

	if len(args) == 0 {
		printHelp()
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("pagecontrol version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			pcerrors.SetHandler(&pcerrors.LogHandler{Verbose: true})
		case "--env":
			if i+1 >= len(args) {
				return fmt.Errorf("--env requires a file path")
			}
			envFile = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--env=") {
				envFile = strings.TrimPrefix(arg, "--env=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if err := loadEnv(envFile); err != nil {
		return err
	}

	if len(args) == 0 {
		printHelp()
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	if err := cmd.Run(cmdArgs); err != nil {
		report(cmdName, err)
		return err
	}
	return nil
}

// loadEnv reads KEY=VALUE defaults from path. Variables already set in
// the environment win. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// report routes a command failure through the global error handler.
func report(op string, err error) {
	var pcErr *pcerrors.Error
	if errors.As(err, &pcErr) {
		pcerrors.Report(pcErr)
		return
	}
	pcerrors.Report(&pcerrors.Error{Op: op, Kind: pcerrors.KindUnknown, Err: err})
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range rootCmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Log errors with kind, path and stack traces")
	fmt.Println("  --env FILE           Load environment defaults from FILE (default: .env)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  PAGECONTROL_STYLE    Style file used when --style is not given")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pagecontrol render --style dots.yaml --out dots.png")
	fmt.Println("  pagecontrol inspect --offset 480")
	fmt.Println("  pagecontrol preview --style dots.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
