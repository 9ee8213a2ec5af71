package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"xatsw/internal/profile"
	"xatsw/internal/transfer"
	"xatsw/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// EnvTarget provides the default for --target.
const EnvTarget = "XATSW_TARGET"

// transferOptions holds the flags shared by extract and load.
type transferOptions struct {
	name         string
	storage      string
	target       string
	nameTemplate string
}

func newExtractCmd(a *app) *cobra.Command {
	return newTransferCmd(a, transfer.Extract, &cobra.Command{
		Use:   "extract",
		Short: "Back up the live save into a storage",
		Long: `Copy <target>/` + transfer.TargetFileName + ` into the storage directory as profile <name>.

Without --name you are asked for one; the name must not contain a path
separator and must not exist in the storage yet. Pressing enter accepts the
suggestion rendered from --name-template.

Examples:
  xatsw extract -n before-boss -s ./saves -t ./game
  xatsw extract -t ./game             # default storage, prompted name`,
	})
}

func newLoadCmd(a *app) *cobra.Command {
	return newTransferCmd(a, transfer.Load, &cobra.Command{
		Use:   "load",
		Short: "Restore a stored profile as the live save",
		Long: `Copy profile <name> from the storage directory over <target>/` + transfer.TargetFileName + `.

The live save is overwritten without confirmation.

Examples:
  xatsw load -n before-boss -s ./saves -t ./game
  xatsw load -n before-boss -s main -t ./game`,
	})
}

func newTransferCmd(a *app, dir transfer.Direction, cmd *cobra.Command) *cobra.Command {
	opts := &transferOptions{}

	cmd.Args = usageArgs(cobra.NoArgs)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.runTransfer(cmd.Context(), dir, opts)
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Profile name inside the storage (prompted when omitted)")
	cmd.Flags().StringVarP(&opts.storage, "storage", "s", "", "Storage directory or registered storage name (default: the default storage)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", os.Getenv(EnvTarget), "Directory holding "+transfer.TargetFileName+" (env: "+EnvTarget+")")
	if dir == transfer.Extract {
		cmd.Flags().StringVar(&opts.nameTemplate, "name-template", profile.DefaultSuggestionTemplate, "Template for the suggested profile name (sprig functions available)")
	}
	_ = cmd.RegisterFlagCompletionFunc("storage", a.completeStorageNames)
	_ = cmd.MarkFlagDirname("target")

	return cmd
}

// resolveStorage turns the --storage value into a storage name and directory.
// A registered name takes precedence over a directory of the same name.
func (a *app) resolveStorage(value string) (string, string, error) {
	cfg := a.loadConfig()
	if value == "" {
		name, dir, err := cfg.Current()
		if err != nil {
			return "", "", fmt.Errorf("%w. Pass --storage or run 'xatsw set-storage <name>'", err)
		}
		return name, dir, nil
	}
	if dir, ok := cfg.Lookup(value); ok {
		return value, dir, nil
	}
	return "", value, nil
}

func (a *app) runTransfer(ctx context.Context, dir transfer.Direction, opts *transferOptions) error {
	storageName, storageDir, err := a.resolveStorage(opts.storage)
	if err != nil {
		return err
	}
	if opts.target == "" {
		return &usageError{err: errors.New("no target directory given. Pass --target or set " + EnvTarget)}
	}

	namer := profile.NewNamer(nil)
	if opts.name == "" {
		p, err := a.prompt()
		if err != nil {
			return err
		}
		namer = profile.NewNamer(p)
		namer.Suggestion, err = profile.RenderSuggestion(opts.nameTemplate, profile.SuggestionData{
			Storage:    storageName,
			StorageDir: storageDir,
		})
		if err != nil {
			return err
		}
	}

	name, err := namer.Resolve(opts.name, storageDir)
	if err != nil {
		return err
	}

	plan := transfer.NewPlan(storageDir, name, opts.target)
	logging.Debug("Transfer", "%s: storage=%s target=%s", dir, plan.InStorage, plan.InTarget)

	res, err := a.copyWithProgress(ctx, plan, dir)
	if err != nil {
		return fmt.Errorf("%s failed: %w", dir, err)
	}

	switch dir {
	case transfer.Extract:
		a.infof("Extracted %s to profile %q (%d bytes)", res.Source, name, res.Bytes)
	case transfer.Load:
		a.infof("Loaded profile %q into %s (%d bytes)", name, res.Destination, res.Bytes)
	}
	return nil
}

// copyWithProgress runs the transfer, showing a spinner on an interactive
// standard error.
func (a *app) copyWithProgress(ctx context.Context, plan transfer.Plan, dir transfer.Direction) (transfer.Result, error) {
	errFile, isFile := a.streams.Err.(*os.File)
	if a.quiet || !isFile {
		return transfer.Run(ctx, plan, dir)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(errFile))
	s.Suffix = fmt.Sprintf(" Copying %s...", transfer.TargetFileName)
	s.Start()
	defer s.Stop()

	res, err := transfer.Run(ctx, plan, dir)
	if err != nil {
		s.FinalMSG = text.FgRed.Sprint("Copy failed") + "\n"
	}
	return res, err
}
