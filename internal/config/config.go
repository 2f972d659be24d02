package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/company/mcup-locker/internal/locker"
)

// SettingsFile is the optional per-directory settings file.
const SettingsFile = "mcup-locker.yml"

// Settings represents the mcup-locker.yml file.
type Settings struct {
	LockerFile string `yaml:"locker_file,omitempty"`
	NoColor    bool   `yaml:"no_color,omitempty"`
}

// SettingsExists checks whether the settings file exists in the given directory.
func SettingsExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, SettingsFile))
	return err == nil
}

// LoadSettings reads and parses the settings file from the given directory.
func LoadSettings(dir string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("settings file not found: %s", SettingsFile)
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	applyDefaults(&s)

	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Default returns the settings used when no settings file exists.
func Default() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

func applyDefaults(s *Settings) {
	if s.LockerFile == "" {
		s.LockerFile = locker.DefaultFile
	}
}

// ValidateSettings checks that a Settings struct is usable.
func ValidateSettings(s *Settings) error {
	if strings.TrimSpace(s.LockerFile) == "" {
		return fmt.Errorf("locker_file is required")
	}
	if strings.HasSuffix(s.LockerFile, "/") || strings.HasSuffix(s.LockerFile, string(filepath.Separator)) {
		return fmt.Errorf("locker_file must name a file, got directory %q", s.LockerFile)
	}
	return nil
}

// LockerPath picks the locker file: the flag wins over the environment,
// which wins over the settings file. Relative paths are taken from dir.
func LockerPath(dir, flagValue, envValue string, s *Settings) string {
	file := flagValue
	if file == "" {
		file = envValue
	}
	if file == "" && s != nil {
		file = s.LockerFile
	}
	if file == "" {
		file = locker.DefaultFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
