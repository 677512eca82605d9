package routes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest binds route files to registry handlers and overrides their
// auth policy.
//
//	routes:
//	  "~users~:id~GET.js":
//	    handler: users.get
//	    audience: users
//	  "~internal~jobs~POST.js":
//	    private: true
type Manifest struct {
	Routes map[string]ManifestEntry `yaml:"routes"`
}

// ManifestEntry is one route of a manifest. Unset fields keep the policy
// the handler was added with.
type ManifestEntry struct {
	Handler  string  `yaml:"handler"`
	Auth     *bool   `yaml:"auth"`
	Private  *bool   `yaml:"private"`
	Bypass   *bool   `yaml:"bypass"`
	Audience *string `yaml:"audience"`
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	for name := range m.Routes {
		if _, err := Parse(name, suffixOf(name)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
	}

	return m, nil
}

func (m *Manifest) lookup(rawName string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}
	entry, ok := m.Routes[rawName]
	return entry, ok
}

func (e ManifestEntry) apply(p Policy) Policy {
	if e.Auth != nil {
		p.Auth = *e.Auth
	}
	if e.Private != nil {
		p.Private = *e.Private
	}
	if e.Bypass != nil {
		p.Bypass = *e.Bypass
	}
	if e.Audience != nil {
		p.Audience = *e.Audience
	}
	return p
}

// suffixOf returns the extension of a route file name, dot included.
func suffixOf(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '~'; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return DefaultSuffix
}
