package cli

import (
	"errors"
	"fmt"

	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/spf13/cobra"
)

func (a *App) newRemoveVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-version <type> <version>",
		Short: "Remove a version from a server type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemoveVersion(args[0], args[1])
		},
	}
}

func (a *App) runRemoveVersion(serverType, version string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	a.output.Info("Removing version %s for %s...", version, serverType)
	removed, err := store.RemoveVersion(serverType, version)
	switch {
	case errors.Is(err, locker.ErrServerTypeNotFound):
		return &ExitError{Code: exitcodes.NotFound, Message: fmt.Sprintf("Server type %s does not exist.", serverType)}
	case err != nil:
		return storeError(err)
	}

	if !removed {
		a.output.Info("Version %s was not listed for %s, nothing to remove.", version, serverType)
		return nil
	}
	a.output.Success("Version %s removed from %s.", version, serverType)
	return nil
}
