package locker

import (
	"fmt"
	"iter"

	"github.com/company/mcup-locker/internal/boolval"
)

const (
	// ServerTypePrefix starts every server type header line.
	ServerTypePrefix  = "Server Type: "
	NoServerTypesLine = "No server types found."
	NoVersionsLine    = "  No versions available."
)

// Listing yields a human-readable description of every server type and
// version in insertion order. Lines are produced as the caller ranges.
func (s *Store) Listing() iter.Seq[string] {
	return func(yield func(string) bool) {
		servers := s.registry.Servers
		if servers.Len() == 0 {
			yield(NoServerTypesLine)
			return
		}

		for pair := servers.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(ServerTypePrefix + pair.Key) {
				return
			}
			if len(pair.Value) == 0 {
				if !yield(NoVersionsLine) {
					return
				}
				continue
			}
			for _, v := range pair.Value {
				for _, line := range versionLines(v) {
					if !yield(line) {
						return
					}
				}
			}
		}
	}
}

func versionLines(v VersionRecord) []string {
	return []string{
		"  - Version: " + v.Version,
		fmt.Sprintf("    %s: %s", v.Source.Label(), v.Source.Location),
		"    Supports Plugins: " + boolval.Format(v.SupportsPlugins),
		"    Supports Mods: " + boolval.Format(v.SupportsMods),
		"    3rd Party Warning: " + boolval.Format(v.ThirdPartyWarning),
		fmt.Sprintf("    Configs: %q", v.Configs),
	}
}
