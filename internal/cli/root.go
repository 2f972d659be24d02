package cli

import (
	"errors"
	"os"

	"github.com/company/mcup-locker/internal/boolval"
	"github.com/company/mcup-locker/internal/config"
	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/company/mcup-locker/internal/ui"
	"github.com/spf13/cobra"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd    *cobra.Command
	version    string
	commit     string
	date       string
	settings   *config.Settings
	output     *ui.Output
	projectDir string
	lockerFile string
	debug      bool
}

// NewApp creates the root command and registers all subcommands.
func NewApp(version, commit, date string) *App {
	app := &App{
		version:  version,
		commit:   commit,
		date:     date,
		output:   ui.NewOutput(),
		settings: config.Default(),
	}

	root := &cobra.Command{
		Use:   "mcup-locker",
		Short: "Manage the mcup locker file",
		Long:  "Maintains the locker file (locker.json) listing server types and the versions that can be downloaded or built for them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("MCUP_LOCKER_DEBUG") != "" {
				app.debug = true
			}
			if os.Getenv("MCUP_LOCKER_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}
			return app.loadSettings()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&app.lockerFile, "file", "f", "", "locker file (overrides MCUP_LOCKER_FILE and "+config.SettingsFile+")")
	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&app.projectDir, "dir", ".", "working directory for the locker and settings files")

	root.AddCommand(
		app.newInitCmd(),
		app.newAddServerCmd(),
		app.newAddDownloadableVersionCmd(),
		app.newAddBuildToolsVersionCmd(),
		app.newUpdateVersionCmd(),
		app.newRemoveVersionCmd(),
		app.newListCmd(),
		app.newDoctorCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// loadSettings reads mcup-locker.yml when present. Defaults apply otherwise.
func (a *App) loadSettings() error {
	if !config.SettingsExists(a.projectDir) {
		a.settings = config.Default()
		return nil
	}

	s, err := config.LoadSettings(a.projectDir)
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}
	a.settings = s
	if s.NoColor {
		a.output.SetNoColor(true)
	}
	a.debugf("loaded %s", config.SettingsFile)
	return nil
}

// lockerPath returns the effective locker file location.
func (a *App) lockerPath() string {
	return config.LockerPath(a.projectDir, a.lockerFile, os.Getenv("MCUP_LOCKER_FILE"), a.settings)
}

// openStore loads the locker file. A missing file yields an empty locker.
func (a *App) openStore() (*locker.Store, error) {
	path := a.lockerPath()
	a.debugf("loading locker from %s", path)

	store, err := locker.Open(path)
	if err != nil {
		return nil, storeError(err)
	}
	return store, nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("mcup-locker %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// storeError converts failures shared by every locker command into exit errors.
func storeError(err error) error {
	switch {
	case errors.Is(err, boolval.ErrInvalidBoolean):
		return &ExitError{Code: exitcodes.UsageError, Message: err.Error()}
	case errors.Is(err, locker.ErrCorruptStore):
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	case errors.Is(err, locker.ErrPersistence):
		return &ExitError{Code: exitcodes.IOError, Message: err.Error()}
	}
	return err
}

// debugf prints a debug message if debug mode is enabled.
func (a *App) debugf(format string, args ...interface{}) {
	if a.debug {
		a.output.Debug(format, args...)
	}
}
