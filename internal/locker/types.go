package locker

import (
	"bytes"
	"encoding/json"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// AcquisitionMethod says how a server version is obtained.
type AcquisitionMethod string

const (
	MethodDownload   AcquisitionMethod = "DOWNLOAD"
	MethodBuildTools AcquisitionMethod = "BUILDTOOLS"
)

// Source is where a version comes from: a download URL or a BuildTools target.
type Source struct {
	Method   AcquisitionMethod
	Location string
}

// Download returns a Source fetched directly from url.
func Download(url string) Source {
	return Source{Method: MethodDownload, Location: url}
}

// BuildTarget returns a Source built by BuildTools from the named target.
func BuildTarget(name string) Source {
	return Source{Method: MethodBuildTools, Location: name}
}

// Label is the listing caption for the location.
func (s Source) Label() string {
	if s.Method == MethodBuildTools {
		return "BuildTools Target"
	}
	return "URL"
}

// VersionRecord is one obtainable version of a server type.
type VersionRecord struct {
	Version           string
	Source            Source
	SupportsPlugins   bool
	SupportsMods      bool
	ThirdPartyWarning bool
	Configs           []string
}

// recordDoc is the on-disk shape of a VersionRecord.
// Records written before mods, warnings, configs and methods were tracked
// decode with zero values for the missing fields.
type recordDoc struct {
	Version           string            `json:"version" yaml:"version"`
	Method            AcquisitionMethod `json:"method,omitempty" yaml:"method"`
	URL               string            `json:"url" yaml:"url"`
	SupportsPlugins   bool              `json:"supports_plugins" yaml:"supports_plugins"`
	SupportsMods      bool              `json:"supports_mods" yaml:"supports_mods"`
	ThirdPartyWarning bool              `json:"3rd_party_warning" yaml:"3rd_party_warning"`
	Configs           []string          `json:"configs" yaml:"configs"`
}

func (v VersionRecord) doc() recordDoc {
	configs := v.Configs
	if configs == nil {
		configs = []string{}
	}
	method := v.Source.Method
	if method == "" {
		method = MethodDownload
	}
	return recordDoc{
		Version:           v.Version,
		Method:            method,
		URL:               v.Source.Location,
		SupportsPlugins:   v.SupportsPlugins,
		SupportsMods:      v.SupportsMods,
		ThirdPartyWarning: v.ThirdPartyWarning,
		Configs:           configs,
	}
}

// MarshalJSON implements json.Marshaler.
func (v VersionRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.doc())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VersionRecord) UnmarshalJSON(data []byte) error {
	var d recordDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.Method == "" {
		d.Method = MethodDownload
	}
	if d.Configs == nil {
		d.Configs = []string{}
	}
	*v = VersionRecord{
		Version:           d.Version,
		Source:            Source{Method: d.Method, Location: d.URL},
		SupportsPlugins:   d.SupportsPlugins,
		SupportsMods:      d.SupportsMods,
		ThirdPartyWarning: d.ThirdPartyWarning,
		Configs:           d.Configs,
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v VersionRecord) MarshalYAML() (any, error) {
	return v.doc(), nil
}

// Registry is the root of the locker file.
// Server types keep their insertion order.
type Registry struct {
	Servers *orderedmap.OrderedMap[string, []VersionRecord] `json:"servers"`
}

// NewRegistry returns a registry with no server types.
func NewRegistry() *Registry {
	return &Registry{Servers: orderedmap.New[string, []VersionRecord]()}
}

// WriteJSON writes the registry in the locker file format: four-space
// indentation, a trailing newline and no HTML escaping, so URLs stay
// readable in diffs.
func (r *Registry) WriteJSON(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(`{"servers":{`)
	for pair := r.Servers.Oldest(); pair != nil; pair = pair.Next() {
		if pair != r.Servers.Oldest() {
			buf.WriteByte(',')
		}
		docs := make([]recordDoc, 0, len(pair.Value))
		for _, v := range pair.Value {
			docs = append(docs, v.doc())
		}
		if err := encodeUnescaped(&buf, pair.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeUnescaped(&buf, docs); err != nil {
			return err
		}
	}
	buf.WriteString("}}")

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func encodeUnescaped(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ServerEntry is a server type and its versions.
type ServerEntry struct {
	Name     string
	Versions []VersionRecord
}

// Entries returns the server types in insertion order.
func (r *Registry) Entries() []ServerEntry {
	entries := make([]ServerEntry, 0, r.Servers.Len())
	for pair := r.Servers.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, ServerEntry{Name: pair.Key, Versions: pair.Value})
	}
	return entries
}

// Versions returns the versions of a server type.
func (r *Registry) Versions(serverType string) ([]VersionRecord, bool) {
	return r.Servers.Get(serverType)
}

// normalize restores the invariants JSON null can break: the mapping exists
// and every server type has a (possibly empty) version list.
func (r *Registry) normalize() {
	if r.Servers == nil {
		r.Servers = orderedmap.New[string, []VersionRecord]()
		return
	}
	for pair := r.Servers.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = []VersionRecord{}
		}
	}
}

// MarshalYAML renders the registry as a YAML mapping in insertion order.
func (r *Registry) MarshalYAML() (any, error) {
	servers := &yaml.Node{Kind: yaml.MappingNode}
	for pair := r.Servers.Oldest(); pair != nil; pair = pair.Next() {
		versions := &yaml.Node{}
		if err := versions.Encode(pair.Value); err != nil {
			return nil, err
		}
		servers.Content = append(servers.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
			versions,
		)
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "servers"},
			servers,
		},
	}, nil
}
