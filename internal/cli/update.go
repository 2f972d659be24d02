package cli

import (
	"errors"
	"fmt"

	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/spf13/cobra"
)

func (a *App) newUpdateVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-version <type> <version> <url>",
		Short: "Update the URL (or BuildTools target) of an existing version",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdateVersion(args[0], args[1], args[2])
		},
	}
}

func (a *App) runUpdateVersion(serverType, version, location string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	a.output.Info("Updating version %s for %s...", version, serverType)
	err = store.UpdateVersion(serverType, version, location)
	switch {
	case errors.Is(err, locker.ErrServerTypeNotFound):
		return &ExitError{Code: exitcodes.NotFound, Message: fmt.Sprintf("Server type %s does not exist.", serverType)}
	case errors.Is(err, locker.ErrVersionNotFound):
		return &ExitError{Code: exitcodes.NotFound, Message: fmt.Sprintf("Version %s not found for %s.", version, serverType)}
	case err != nil:
		return storeError(err)
	}

	a.output.Success("Version %s URL updated for %s.", version, serverType)
	return nil
}
