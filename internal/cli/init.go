package cli

import (
	"github.com/company/mcup-locker/internal/locker"
	"github.com/company/mcup-locker/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the locker file",
		Long:  "Creates an empty locker file, replacing any existing one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing locker without asking")
	return cmd
}

func (a *App) runInit(force bool) error {
	store := locker.NewStore(a.lockerPath())

	if store.Exists() && !force && ui.CanPrompt() {
		a.output.Warning("A locker file already exists at %s", store.Path())
		confirmed, err := ui.Confirm("Replace it with an empty locker?")
		if err != nil {
			return err
		}
		if !confirmed {
			a.output.Info("Aborted, locker left unchanged.")
			return nil
		}
	}

	a.output.Info("Creating a new locker file at %s...", store.Path())
	if err := store.Initialize(); err != nil {
		return storeError(err)
	}

	a.output.Success("Locker initialized.")
	return nil
}
