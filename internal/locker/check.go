package locker

import "fmt"

// Issue is a problem found in a loaded registry. The file still parses,
// but the entry breaks an expectation the CLI relies on.
type Issue struct {
	ServerType string
	Version    string
	Problem    string
}

func (i Issue) String() string {
	if i.Version == "" {
		return fmt.Sprintf("%s: %s", i.ServerType, i.Problem)
	}
	return fmt.Sprintf("%s %s: %s", i.ServerType, i.Version, i.Problem)
}

// Check inspects the registry for entries that could only come from
// hand-editing the locker file.
func (r *Registry) Check() []Issue {
	var issues []Issue
	for pair := r.Servers.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "" {
			issues = append(issues, Issue{ServerType: `""`, Problem: "empty server type name"})
		}

		seen := make(map[string]bool, len(pair.Value))
		for _, v := range pair.Value {
			switch {
			case v.Version == "":
				issues = append(issues, Issue{ServerType: pair.Key, Problem: "version with empty identifier"})
			case seen[v.Version]:
				issues = append(issues, Issue{ServerType: pair.Key, Version: v.Version, Problem: "duplicate version"})
			}
			seen[v.Version] = true

			if v.Source.Location == "" {
				issues = append(issues, Issue{ServerType: pair.Key, Version: v.Version, Problem: "empty " + v.Source.Label()})
			}
			for _, c := range v.Configs {
				if c == "" {
					issues = append(issues, Issue{ServerType: pair.Key, Version: v.Version, Problem: "empty config file name"})
					break
				}
			}
		}
	}
	return issues
}
