package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// ErrEmptyCatalog is returned when a catalog holds no spots
var ErrEmptyCatalog = errors.New("catalog has no spots")

// Catalog implements ports.Catalog over a fixed list of spots
type Catalog struct {
	mu    sync.Mutex
	spots []domain.Spot
	next  int
}

// Ensure Catalog implements ports.Catalog
var _ ports.Catalog = (*Catalog)(nil)

// New creates a catalog serving spots. Identities are stripped.
func New(spots []domain.Spot) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(spots); err != nil {
		return nil, err
	}
	return c, nil
}

// Builtin returns the catalog of campus clubs shipped with clubhub
func Builtin() *Catalog {
	c, _ := New(builtinSpots)
	return c
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	spots, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(spots)
}

// Replace swaps the catalog contents, restarting the Next cycle
func (c *Catalog) Replace(spots []domain.Spot) error {
	if len(spots) == 0 {
		return ErrEmptyCatalog
	}
	stripped := slices.Clone(spots)
	for i := range stripped {
		stripped[i].ID = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spots = stripped
	c.next = 0
	return nil
}

// Batch returns every spot in the catalog
func (c *Catalog) Batch() []domain.Spot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.spots)
}

// Next returns one spot, cycling through the catalog
func (c *Catalog) Next() domain.Spot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.spots[c.next%len(c.spots)]
	c.next++
	return s
}

// Len returns the number of spots in a batch
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.spots)
}

// spotFile is the YAML layout shared by catalogs and sequence files
type spotFile struct {
	Spots []spotEntry `yaml:"spots"`
}

type spotEntry struct {
	ID   int64  `yaml:"id,omitempty"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	URL  string `yaml:"url,omitempty"`
}

// ReadFile reads a YAML spot list. Ids are kept when present, so the same
// format describes sequences for diffing.
func ReadFile(path string) ([]domain.Spot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spots: %w", err)
	}
	spots, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spots, nil
}

// Parse decodes a YAML spot list
func Parse(data []byte) ([]domain.Spot, error) {
	var file spotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse spots: %w", err)
	}

	spots := make([]domain.Spot, 0, len(file.Spots))
	for i, e := range file.Spots {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("spot %d: name is required", i)
		}
		spots = append(spots, domain.Spot{ID: e.ID, Name: e.Name, Type: e.Type, URL: e.URL})
	}
	return spots, nil
}

// Marshal encodes spots in the YAML layout read by Parse
func Marshal(spots []domain.Spot) ([]byte, error) {
	file := spotFile{Spots: make([]spotEntry, len(spots))}
	for i, s := range spots {
		file.Spots[i] = spotEntry{ID: s.ID, Name: s.Name, Type: s.Type, URL: s.URL}
	}
	return yaml.Marshal(file)
}
