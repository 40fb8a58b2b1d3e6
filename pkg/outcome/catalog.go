package outcome

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

// CatalogEntry maps an error text fragment to a user facing message.
type CatalogEntry struct {
	Match   string `yaml:"match"`
	Message string `yaml:"message"`
}

// Catalog translates native error messages. Entries are tried in order.
type Catalog struct {
	entries []CatalogEntry
}

type catalogFile struct {
	Messages []CatalogEntry `yaml:"messages"`
}

// ParseCatalog reads a catalog from YAML. Entries need both match and message.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	c := &Catalog{entries: make([]CatalogEntry, 0, len(f.Messages))}
	for i, e := range f.Messages {
		e.Match = strings.TrimSpace(e.Match)
		e.Message = strings.TrimSpace(e.Message)
		if e.Match == "" || e.Message == "" {
			return nil, fmt.Errorf("%w: entry %d needs match and message", ErrInvalidCatalog, i)
		}
		e.Match = strings.ToLower(e.Match)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultMessages)
	if err != nil {
		panic(fmt.Sprintf("outcome: embedded catalog: %v", err))
	}
	return c
}

// Lookup returns the message for the first entry contained in text.
func (c *Catalog) Lookup(text string) (string, bool) {
	if c == nil || text == "" {
		return "", false
	}
	text = strings.ToLower(text)
	for _, e := range c.entries {
		if strings.Contains(text, e.Match) {
			return e.Message, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
