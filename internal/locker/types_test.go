package locker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestLoadLegacyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	legacy := `{
    "servers": {
        "vanilla": [
            {
                "version": "1.20.4",
                "url": "https://example.com/server.jar",
                "supports_plugins": false
            }
        ],
        "spigot": []
    }
}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatalf("writing locker: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	want := []ServerEntry{
		{Name: "vanilla", Versions: []VersionRecord{{
			Version: "1.20.4",
			Source:  Download("https://example.com/server.jar"),
			Configs: []string{},
		}}},
		{Name: "spigot", Versions: []VersionRecord{}},
	}
	if diff := cmp.Diff(want, s.Registry().Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	// Saving upgrades legacy records to the current shape.
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading locker: %v", err)
	}
	for _, key := range []string{`"supports_mods": false`, `"3rd_party_warning": false`, `"configs": []`, `"method": "DOWNLOAD"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved locker should contain %s, got:\n%s", key, data)
		}
	}
}

func TestVersionRecordJSONKeys(t *testing.T) {
	rec := VersionRecord{
		Version:           "1.20.4",
		Source:            BuildTarget("1.20.4"),
		SupportsPlugins:   true,
		ThirdPartyWarning: true,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	want := map[string]any{
		"version":           "1.20.4",
		"method":            "BUILDTOOLS",
		"url":               "1.20.4",
		"supports_plugins":  true,
		"supports_mods":     false,
		"3rd_party_warning": true,
		"configs":           []any{},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("JSON fields mismatch (-want +got):\n%s", diff)
	}
}

func TestServerOrderSurvivesReload(t *testing.T) {
	s := newTestStore(t)
	names := []string{"zeta", "alpha", "mohist", "bungeecord"}
	for _, name := range names {
		if err := s.AddServerType(name); err != nil {
			t.Fatalf("AddServerType(%s) error: %v", name, err)
		}
	}

	loaded, err := Open(s.Path())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	var got []string
	for _, e := range loaded.Registry().Entries() {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("server order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryYAML(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"vanilla", "paper"} {
		if err := s.AddServerType(name); err != nil {
			t.Fatalf("AddServerType(%s) error: %v", name, err)
		}
	}
	if err := s.AddVersion("vanilla", vanilla("1.20.4")); err != nil {
		t.Fatalf("AddVersion() error: %v", err)
	}

	out, err := yaml.Marshal(s.Registry())
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}
	text := string(out)

	if strings.Index(text, "vanilla:") > strings.Index(text, "paper:") {
		t.Errorf("YAML should keep insertion order, got:\n%s", text)
	}
	for _, want := range []string{"servers:", "version: 1.20.4", "method: DOWNLOAD", "paper: []"} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML should contain %q, got:\n%s", want, text)
		}
	}
}
