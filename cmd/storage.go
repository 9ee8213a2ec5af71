package cmd

import (
	"errors"
	"fmt"

	"xatsw/internal/cli"
	"xatsw/internal/config"
	"xatsw/pkg/logging"

	"github.com/spf13/cobra"
)

func newListStorageCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list-storage",
		Aliases: []string{"ls"},
		Short:   "List registered storages",
		Long: `List every registered storage as "name -> path", one per line.

The default storage is marked with "(default)". Nothing is printed when no
storage is registered.

Examples:
  xatsw list-storage
  xatsw list-storage -o table
  xatsw list-storage -o json`,
		Args: usageArgs(cobra.NoArgs),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(output); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RenderStorages(a.streams.Out, a.loadConfig(), cli.OutputFormat(output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputFormatText), "Output format (text, table, json, yaml)")
	return cmd
}

func newSetStorageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-storage <name>",
		Short: "Make a registered storage the default",
		Long: `Set the default storage used when --storage is omitted.

The storage must already be registered with 'xatsw add-storage'.

Examples:
  xatsw set-storage main`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: a.completeStorageNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.loadConfig().SetDefault(name); err != nil {
				var notFound *config.StorageNotFoundError
				if errors.As(err, &notFound) {
					return fmt.Errorf("%w. Use 'xatsw list-storage' to see registered storages", err)
				}
				return err
			}
			logging.Debug("Registry", "Default storage set to %q", name)
			a.infof("Default storage is now %q", name)
			return nil
		},
	}
}

func newAddStorageCmd(a *app) *cobra.Command {
	var setDefault bool

	cmd := &cobra.Command{
		Use:   "add-storage <name> <path>",
		Short: "Register a storage directory",
		Long: `Register an existing directory as a storage under a short name.

If the name is already registered you are asked whether to rewrite it.

Examples:
  xatsw add-storage main ./saves
  xatsw add-storage usb /mnt/usb/saves --use`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			cfg := a.loadConfig()

			confirm := func(name string) (bool, error) {
				p, err := a.prompt()
				if err != nil {
					return false, err
				}
				return p.Confirm(fmt.Sprintf("Storage %q already exists. Rewrite?", name))
			}

			added, err := cfg.Add(name, path, confirm)
			if err != nil {
				return fmt.Errorf("failed to add storage: %w", err)
			}
			if !added {
				a.infof("Aborted.")
				return nil
			}
			logging.Debug("Registry", "Registered storage %q at %s", name, path)
			a.infof("Storage %q added.", name)

			if setDefault {
				if err := cfg.SetDefault(name); err != nil {
					return err
				}
				a.infof("Default storage is now %q", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&setDefault, "use", false, "Also make the storage the default")
	return cmd
}

func newRemoveStorageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-storage <name>",
		Aliases: []string{"rm-storage"},
		Short:   "Unregister a storage",
		Long: `Remove a storage from the registry. Profiles inside the directory are
left untouched. Removing an unknown name does nothing.

If the removed storage was the default, no default is set afterwards.

Examples:
  xatsw remove-storage usb`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: a.completeStorageNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cfg := a.loadConfig()
			wasDefault := cfg.CurrentStorage == name

			if !cfg.Remove(name) {
				logging.Debug("Registry", "Storage %q is not registered, nothing to remove", name)
				return nil
			}
			logging.Debug("Registry", "Removed storage %q", name)
			a.infof("Storage %q removed.", name)
			if wasDefault {
				a.infof("Note: this was the default storage. No default storage is set now.")
			}
			return nil
		},
	}
}

// completeStorageNames provides shell completion for storage names. It reads
// the configuration through its own store so nothing is saved afterwards.
func (a *app) completeStorageNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		path = a.configPath
	}
	return config.NewStore(path).Load().Names(), cobra.ShellCompDirectiveNoFileComp
}
