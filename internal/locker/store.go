package locker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/company/mcup-locker/internal/boolval"
)

// DefaultFile is the locker file name used when none is configured.
const DefaultFile = "locker.json"

// Store holds the registry loaded from a locker file.
type Store struct {
	path     string
	registry *Registry
}

// NewStore returns a store for path with an empty, unsaved registry.
func NewStore(path string) *Store {
	return &Store{path: path, registry: NewRegistry()}
}

// Open creates a store for path and loads it.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the locker file location.
func (s *Store) Path() string {
	return s.path
}

// Registry returns the in-memory registry. Callers must not modify it.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Exists reports whether the locker file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the locker file. A missing file yields an empty registry.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.registry = NewRegistry()
			return nil
		}
		return fmt.Errorf("%w: reading %s: %w", ErrCorruptStore, s.path, err)
	}

	if err := validateDocument(data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptStore, s.path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptStore, s.path, err)
	}
	reg.normalize()

	s.registry = &reg
	return nil
}

// Save rewrites the whole locker file from the in-memory registry.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := s.registry.WriteJSON(&buf); err != nil {
		return fmt.Errorf("%w: encoding locker: %w", ErrPersistence, err)
	}
	data := buf.Bytes()

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrPersistence, s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %w", ErrPersistence, s.path, err)
	}
	return nil
}

// Initialize replaces the registry with an empty one and saves it,
// overwriting any existing locker file.
func (s *Store) Initialize() error {
	s.registry = NewRegistry()
	return s.Save()
}

// AddServerType registers a server type with no versions.
func (s *Store) AddServerType(name string) error {
	if _, ok := s.registry.Servers.Get(name); ok {
		return fmt.Errorf("server type %q: %w", name, ErrServerTypeExists)
	}
	s.registry.Servers.Set(name, []VersionRecord{})
	return s.Save()
}

// NewVersion describes a version to add. The flag fields hold raw text
// that is interpreted with boolval.Parse.
type NewVersion struct {
	Version           string
	Source            Source
	SupportsPlugins   string
	SupportsMods      string
	ThirdPartyWarning string
	Configs           []string
}

// AddVersion appends a version to a server type.
func (s *Store) AddVersion(serverType string, nv NewVersion) error {
	versions, ok := s.registry.Servers.Get(serverType)
	if !ok {
		return fmt.Errorf("server type %q: %w", serverType, ErrServerTypeNotFound)
	}
	if indexOf(versions, nv.Version) >= 0 {
		return fmt.Errorf("version %s of %q: %w", nv.Version, serverType, ErrVersionExists)
	}

	plugins, err := parseFlag("supports_plugins", nv.SupportsPlugins)
	if err != nil {
		return err
	}
	mods, err := parseFlag("supports_mods", nv.SupportsMods)
	if err != nil {
		return err
	}
	warning, err := parseFlag("third_party_warning", nv.ThirdPartyWarning)
	if err != nil {
		return err
	}

	record := VersionRecord{
		Version:           nv.Version,
		Source:            nv.Source,
		SupportsPlugins:   plugins,
		SupportsMods:      mods,
		ThirdPartyWarning: warning,
		Configs:           append([]string{}, nv.Configs...),
	}
	if record.Source.Method == "" {
		record.Source.Method = MethodDownload
	}

	s.registry.Servers.Set(serverType, append(versions, record))
	return s.Save()
}

// UpdateVersion replaces the location of the first matching version.
// The acquisition method is kept.
func (s *Store) UpdateVersion(serverType, version, location string) error {
	versions, ok := s.registry.Servers.Get(serverType)
	if !ok {
		return fmt.Errorf("server type %q: %w", serverType, ErrServerTypeNotFound)
	}

	i := indexOf(versions, version)
	if i < 0 {
		return fmt.Errorf("version %s of %q: %w", version, serverType, ErrVersionNotFound)
	}
	versions[i].Source.Location = location
	return s.Save()
}

// RemoveVersion deletes every record of version from a server type and
// reports whether anything was removed. Removing an absent version is not
// an error, and the file is only rewritten when the list changed.
func (s *Store) RemoveVersion(serverType, version string) (bool, error) {
	versions, ok := s.registry.Servers.Get(serverType)
	if !ok {
		return false, fmt.Errorf("server type %q: %w", serverType, ErrServerTypeNotFound)
	}

	kept := make([]VersionRecord, 0, len(versions))
	for _, v := range versions {
		if v.Version != version {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(versions) {
		return false, nil
	}

	s.registry.Servers.Set(serverType, kept)
	return true, s.Save()
}

func indexOf(versions []VersionRecord, version string) int {
	for i, v := range versions {
		if v.Version == version {
			return i
		}
	}
	return -1
}

func parseFlag(name, text string) (bool, error) {
	b, err := boolval.Parse(text)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
