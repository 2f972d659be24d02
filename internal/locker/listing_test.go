package locker

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListingEmpty(t *testing.T) {
	s := newTestStore(t)
	got := slices.Collect(s.Listing())
	if diff := cmp.Diff([]string{NoServerTypesLine}, got); diff != "" {
		t.Errorf("Listing() mismatch (-want +got):\n%s", diff)
	}
}

func TestListingScenario(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddServerType("vanilla"); err != nil {
		t.Fatalf("AddServerType() error: %v", err)
	}
	err := s.AddVersion("vanilla", NewVersion{
		Version:           "1.20.4",
		Source:            Download("https://x"),
		SupportsPlugins:   "true",
		SupportsMods:      "false",
		ThirdPartyWarning: "no",
		Configs:           []string{},
	})
	if err != nil {
		t.Fatalf("AddVersion() error: %v", err)
	}

	want := []string{
		"Server Type: vanilla",
		"  - Version: 1.20.4",
		"    URL: https://x",
		"    Supports Plugins: Yes",
		"    Supports Mods: No",
		"    3rd Party Warning: No",
		"    Configs: []",
	}
	got := slices.Collect(s.Listing())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Listing() mismatch (-want +got):\n%s", diff)
	}
}

func TestListingAfterUpdate(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddServerType("spigot"); err != nil {
		t.Fatalf("AddServerType() error: %v", err)
	}
	if err := s.AddServerType("forge"); err != nil {
		t.Fatalf("AddServerType() error: %v", err)
	}
	err := s.AddVersion("spigot", NewVersion{
		Version:           "1.8.8",
		Source:            BuildTarget("1.8.8"),
		SupportsPlugins:   "yes",
		SupportsMods:      "no",
		ThirdPartyWarning: "yes",
		Configs:           []string{"bukkit.yml", "spigot.yml"},
	})
	if err != nil {
		t.Fatalf("AddVersion() error: %v", err)
	}
	if err := s.UpdateVersion("spigot", "1.8.8", "1.8.8-R0.1"); err != nil {
		t.Fatalf("UpdateVersion() error: %v", err)
	}

	reloaded, err := Open(s.Path())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	want := []string{
		"Server Type: spigot",
		"  - Version: 1.8.8",
		"    BuildTools Target: 1.8.8-R0.1",
		"    Supports Plugins: Yes",
		"    Supports Mods: No",
		"    3rd Party Warning: Yes",
		`    Configs: ["bukkit.yml" "spigot.yml"]`,
		"Server Type: forge",
		NoVersionsLine,
	}
	got := slices.Collect(reloaded.Listing())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Listing() mismatch (-want +got):\n%s", diff)
	}
}

func TestListingStopsEarly(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"vanilla", "paper", "purpur"} {
		if err := s.AddServerType(name); err != nil {
			t.Fatalf("AddServerType(%s) error: %v", name, err)
		}
	}

	var got []string
	for line := range s.Listing() {
		got = append(got, line)
		if len(got) == 3 {
			break
		}
	}
	want := []string{"Server Type: vanilla", NoVersionsLine, "Server Type: paper"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("partial Listing() mismatch (-want +got):\n%s", diff)
	}
}

func TestListingQuotesConfigNames(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddServerType("paper"); err != nil {
		t.Fatalf("AddServerType() error: %v", err)
	}
	nv := vanilla("1.20.4")
	nv.Configs = []string{"my config.yml", "b"}
	if err := s.AddVersion("paper", nv); err != nil {
		t.Fatalf("AddVersion() error: %v", err)
	}

	got := slices.Collect(s.Listing())
	if got[0] != ServerTypePrefix+"paper" {
		t.Errorf("header = %q, want %q", got[0], ServerTypePrefix+"paper")
	}
	want := `    Configs: ["my config.yml" "b"]`
	if last := got[len(got)-1]; last != want {
		t.Errorf("configs line = %q, want %q", last, want)
	}
}
