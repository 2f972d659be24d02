package cli

import (
	"fmt"

	"github.com/company/mcup-locker/internal/config"
	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with the locker file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor()
		},
	}
}

func (a *App) runDoctor() error {
	allOK := true

	// 1. Settings file
	if config.SettingsExists(a.projectDir) {
		a.output.Success("%s found", config.SettingsFile)
	} else {
		a.output.Info("No %s, using defaults", config.SettingsFile)
	}

	// 2. Locker file
	path := a.lockerPath()
	store := locker.NewStore(path)
	if !store.Exists() {
		a.output.Error("%s not found, run: mcup-locker init", path)
		return &ExitError{Code: exitcodes.ConfigError, Message: "doctor: no locker file"}
	}
	a.output.Success("%s found", path)

	// 3. Parses and matches the locker format
	if err := store.Load(); err != nil {
		a.output.Error("Locker file invalid: %v", err)
		return &ExitError{Code: exitcodes.ConfigError, Message: "doctor: locker file is invalid"}
	}

	entries := store.Registry().Entries()
	versionCount := 0
	warned := 0
	for _, e := range entries {
		versionCount += len(e.Versions)
		for _, v := range e.Versions {
			if v.ThirdPartyWarning {
				warned++
			}
		}
	}
	a.output.Success("%d server types, %d versions (%d with a 3rd party warning)", len(entries), versionCount, warned)

	if sum, err := store.Checksum(); err == nil {
		a.output.Info("  checksum: %s", sum)
	}

	// 4. Entry consistency
	issues := store.Registry().Check()
	for _, issue := range issues {
		a.output.Error("%s", issue)
		allOK = false
	}
	if len(issues) == 0 {
		a.output.Success("All entries are consistent")
	}

	// 5. Server types nothing can be installed from
	for _, e := range entries {
		if len(e.Versions) == 0 {
			a.output.Warning("Server type %s has no versions", e.Name)
		}
	}

	if allOK {
		fmt.Fprintln(a.output)
		a.output.Success("Everything looks good!")
	}

	return nil
}
