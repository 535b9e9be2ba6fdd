// Package catalog holds the fixed list of personal shopper profiles. The
// catalog is loaded once at process start and never mutated afterwards.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

//go:embed shoppers.yaml
var defaultData []byte

// Shopper is one personal shopper profile. JSON field names match the
// shape embedded in the assignment log.
type Shopper struct {
	ID           string   `json:"id" mapstructure:"id"`
	Name         string   `json:"nom" mapstructure:"nom"`
	Zone         string   `json:"zone" mapstructure:"zone"`
	Rating       float64  `json:"note_moyenne" mapstructure:"note_moyenne"`
	Styles       []string `json:"styles" mapstructure:"styles"`
	Specialties  []string `json:"specialites" mapstructure:"specialites"`
	Formats      []string `json:"formats" mapstructure:"formats"`
	BudgetLevels []string `json:"niveau_budget" mapstructure:"niveau_budget"`
	Tags         []string `json:"tags" mapstructure:"tags"`
}

// Catalog is a read-only collection of shopper profiles.
type Catalog struct {
	Items []*Shopper
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return parse(defaultData)
}

// FromFile loads a catalog from a YAML file with the same layout as the
// embedded one.
func FromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	var items []*Shopper
	if err := v.UnmarshalKey("shoppers", &items); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	catalog := &Catalog{Items: items}
	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (c *Catalog) validate() error {
	if c.Len() == 0 {
		return fmt.Errorf("catalog contains no shoppers")
	}

	seen := make(map[string]struct{}, c.Len())
	for _, s := range c.Items {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("catalog entry without id or name")
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("duplicate shopper id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

func (c *Catalog) Len() int {
	return len(c.Items)
}

// FindByID returns the shopper with the given id, or nil.
func (c *Catalog) FindByID(id string) *Shopper {
	for _, s := range c.Items {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Labels returns one selectable label per shopper, in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, c.Len())
	for _, s := range c.Items {
		labels = append(labels, fmt.Sprintf("%s – %s", s.Name, s.Zone))
	}
	return labels
}
