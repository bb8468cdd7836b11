// Package seed holds the sample datasets inserted into an empty store.
package seed

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"eventbooking/internal/domain"
)

// DefaultDataset is used when no dataset is configured.
const DefaultDataset = "nightlife"

//go:embed datasets/*.yaml
var datasets embed.FS

// Names lists the embedded datasets in lexical order.
func Names() []string {
	entries, err := datasets.ReadDir("datasets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load parses and validates the embedded dataset called name.
func Load(name string) (*domain.SeedDataset, error) {
	b, err := datasets.ReadFile(path.Join("datasets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("seed dataset %q: %w (available: %s)", name, domain.ErrNotFound, strings.Join(Names(), ", "))
	}
	return Parse(b)
}

// Parse decodes a dataset document. Unknown fields are rejected.
func Parse(b []byte) (*domain.SeedDataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var ds domain.SeedDataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("seed dataset %q: %w", ds.Name, err)
	}
	return &ds, nil
}
