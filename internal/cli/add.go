package cli

import (
	"errors"
	"fmt"

	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/spf13/cobra"
)

func (a *App) newAddServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-server <type>",
		Short: "Add a new server type (e.g. vanilla, spigot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAddServer(args[0])
		},
	}
}

func (a *App) runAddServer(serverType string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	a.output.Info("Adding new server type: %s...", serverType)
	err = store.AddServerType(serverType)
	switch {
	case errors.Is(err, locker.ErrServerTypeExists):
		a.output.Warning("Server type %s already exists.", serverType)
		return nil
	case err != nil:
		return storeError(err)
	}

	a.output.Success("Server type %s added.", serverType)
	return nil
}

const versionArgsUsage = " <type> <version> <%s> <supports_plugins> <supports_mods> <third_party_warning> [configs...]"

func (a *App) newAddDownloadableVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-downloadable-version" + fmt.Sprintf(versionArgsUsage, "url"),
		Short: "Add a downloadable version for a server type",
		Long: "Adds a version fetched directly from a download URL.\n" +
			"Boolean arguments accept true/false, yes/no, on/off or 1/0.\n" +
			"Any remaining arguments name the config files the version needs.",
		Args: cobra.MinimumNArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAddVersion(args[0], newVersionFromArgs(locker.Download(args[2]), args))
		},
	}
}

func (a *App) newAddBuildToolsVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-buildtools-version" + fmt.Sprintf(versionArgsUsage, "target"),
		Short: "Add a version that must be built with BuildTools",
		Long: "Adds a version produced by running BuildTools against the given target.\n" +
			"Boolean arguments accept true/false, yes/no, on/off or 1/0.\n" +
			"Any remaining arguments name the config files the version needs.",
		Args: cobra.MinimumNArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAddVersion(args[0], newVersionFromArgs(locker.BuildTarget(args[2]), args))
		},
	}
}

// newVersionFromArgs maps the positional arguments shared by both add-*-version commands.
func newVersionFromArgs(source locker.Source, args []string) locker.NewVersion {
	return locker.NewVersion{
		Version:           args[1],
		Source:            source,
		SupportsPlugins:   args[3],
		SupportsMods:      args[4],
		ThirdPartyWarning: args[5],
		Configs:           args[6:],
	}
}

func (a *App) runAddVersion(serverType string, nv locker.NewVersion) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	a.output.Info("Adding version %s for %s...", nv.Version, serverType)
	a.debugf("source: %s %s", nv.Source.Method, nv.Source.Location)

	err = store.AddVersion(serverType, nv)
	switch {
	case errors.Is(err, locker.ErrServerTypeNotFound):
		return &ExitError{
			Code:    exitcodes.NotFound,
			Message: fmt.Sprintf("Server type %s does not exist. Please add it first.", serverType),
		}
	case errors.Is(err, locker.ErrVersionExists):
		a.output.Warning("Version %s already exists for %s.", nv.Version, serverType)
		return nil
	case err != nil:
		return storeError(err)
	}

	a.output.Success("Version %s added to %s.", nv.Version, serverType)
	return nil
}
