package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"xatsw/internal/config"
	"xatsw/internal/transfer"
	"xatsw/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a failed command.
	ExitCodeError = 1
	// ExitCodeUsage indicates invalid arguments or flags.
	ExitCodeUsage = 2
)

// version is injected from main at build time.
var version = "dev"

// SetVersion sets the version reported by the CLI.
func SetVersion(v string) {
	version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return version
}

// Streams are the standard streams a command runs against.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute runs the CLI against the process arguments and exits.
// This function is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}

// Run executes one command and returns its exit code. The configuration is
// saved after the command finishes, whether or not it succeeded.
func Run(ctx context.Context, args []string, streams Streams) int {
	return execute(ctx, newApp(streams), args)
}

func execute(ctx context.Context, a *app, args []string) (code int) {
	defer func() {
		if err := a.close(); err != nil {
			logging.Error("CLI", err, "Failed to persist configuration")
			fmt.Fprintf(a.streams.Err, "Error: %v\n", err)
			if code == ExitCodeSuccess {
				code = ExitCodeError
			}
		}
	}()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.streams.In)
	root.SetOut(a.streams.Out)
	root.SetErr(a.streams.Err)

	if err := root.ExecuteContext(ctx); err != nil {
		return getExitCode(err)
	}
	return ExitCodeSuccess
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var usage *usageError
	if errors.As(err, &usage) {
		return ExitCodeUsage
	}
	return ExitCodeError
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs tags argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// newRootCmd builds the command tree bound to a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "xatsw",
		Short: "Switch between saved chat.sol profiles",
		Long: `xatsw keeps named backups ("profiles") of a single save file.

The live save is ` + transfer.TargetFileName + ` inside a target directory. Profiles are kept
in storage directories, which can be registered under short names; one of
them can be made the default so --storage may be omitted.

Examples:
  xatsw add-storage main ./saves
  xatsw set-storage main
  xatsw extract -n before-boss -t ./game
  xatsw load -n before-boss -t ./game`,
		Version: version,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			// Completion requests arrive with unparsed flags and must not
			// load or persist a configuration.
			if cmd.Name() == cobra.ShellCompRequestCmd {
				return nil
			}
			a.loadConfig()
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "xatsw version %s\n" .Version}}`)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "Configuration file (env: "+config.EnvConfigPath+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress progress and informational output")

	root.AddCommand(
		newExtractCmd(a),
		newLoadCmd(a),
		newListStorageCmd(a),
		newSetStorageCmd(a),
		newAddStorageCmd(a),
		newRemoveStorageCmd(a),
		newVersionCmd(),
		newSelfUpdateCmd(),
	)
	return root
}
