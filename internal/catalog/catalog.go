package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one symbol/company-name pair from the reference file.
type Entry struct {
	Symbol string
	Name   string
}

// Catalog resolves display names for symbols. Loaded once at startup; the
// dashboard works with free-form input when the catalog is empty.
type Catalog struct {
	entries []Entry
	byCode  map[string]string
}

// Load reads a two-column CSV (symbol,name) reference file. A header line
// is detected and skipped; blank or single-column lines are ignored.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c := &Catalog{byCode: make(map[string]string)}
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		sym := strings.ToUpper(strings.TrimSpace(rec[0]))
		name := strings.TrimSpace(rec[1])
		if sym == "" || name == "" {
			continue
		}
		if i == 0 && strings.EqualFold(sym, "symbol") {
			continue
		}
		if _, dup := c.byCode[sym]; dup {
			continue
		}
		c.entries = append(c.entries, Entry{Symbol: sym, Name: name})
		c.byCode[sym] = name
	}
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].Symbol < c.entries[j].Symbol })
	return c, nil
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{byCode: make(map[string]string)}
}

// Lookup returns the display name for a symbol, or the symbol itself when
// unknown.
func (c *Catalog) Lookup(symbol string) string {
	key := strings.ToUpper(strings.TrimSpace(symbol))
	// The catalog stores bare codes; strip any exchange suffix.
	if i := strings.IndexByte(key, '.'); i > 0 {
		key = key[:i]
	}
	if name, ok := c.byCode[key]; ok {
		return name
	}
	return symbol
}

// Entries returns all catalog entries in symbol order.
func (c *Catalog) Entries() []Entry { return c.entries }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }
