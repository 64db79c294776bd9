package career

import (
	"fmt"
	"strings"
)

// Catalog is a read-only, ordered collection of career records.
type Catalog struct {
	records []Record
	byTitle map[string]int
}

// NewCatalog builds a catalog from the given records. Titles must be unique
// (case-insensitive) and every category must be known.
func NewCatalog(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: make([]Record, 0, len(records)),
		byTitle: make(map[string]int, len(records)),
	}

	for _, r := range records {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			return nil, fmt.Errorf("career record without title")
		}
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("career %q: unknown category %q", title, r.Category)
		}
		key := strings.ToLower(title)
		if _, ok := c.byTitle[key]; ok {
			return nil, fmt.Errorf("duplicate career title %q", title)
		}
		r.Title = title
		c.byTitle[key] = len(c.records)
		c.records = append(c.records, r.Clone())
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultRecords())
	if err != nil {
		panic(fmt.Sprintf("built-in career catalog is invalid: %v", err))
	}
	return c
}

// All returns every record in catalog order.
func (c *Catalog) All() []Record {
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, r.Clone())
	}
	return out
}

// ByTitle looks a record up by its title, ignoring case.
func (c *Catalog) ByTitle(title string) (Record, bool) {
	idx, ok := c.byTitle[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return Record{}, false
	}
	return c.records[idx].Clone(), true
}

// ByCategory returns the records of the given category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Record {
	out := make([]Record, 0)
	for _, r := range c.records {
		if r.Category == cat {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Search matches the query case-insensitively against titles, descriptions
// and required skills.
func (c *Catalog) Search(query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Record, 0)
	for _, r := range c.records {
		if matchesQuery(r, q) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func matchesQuery(r Record, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, skill := range r.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

func (c *Catalog) Len() int { return len(c.records) }

// Titles returns the titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, r.Title)
	}
	return out
}
