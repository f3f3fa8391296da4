package skill

import (
	"sort"
	"strings"
)

// Catalog is the master list of skill names offered for manual selection.
// Every rule in a RuleSet refers to a name in its catalog.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// NewCatalog builds a catalog from names. Blank entries are dropped and
// the result is sorted case-insensitively, the way the selection list
// presents it.
func NewCatalog(names []string) *Catalog {
	c := &Catalog{
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := c.index[n]; ok {
			continue
		}
		c.index[n] = struct{}{}
		c.names = append(c.names, n)
	}
	sort.SliceStable(c.names, func(i, j int) bool {
		return strings.ToLower(c.names[i]) < strings.ToLower(c.names[j])
	})
	return c
}

// Contains reports whether name is a catalog skill
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Names returns a copy of all skill names
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Count returns the number of skills in the catalog
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Search returns catalog skills whose name contains query
// (case-insensitive), skipping any already in selected. A blank query
// returns nothing.
func (c *Catalog) Search(query string, selected []string) []string {
	if c == nil {
		return nil
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	skip := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		skip[s] = struct{}{}
	}

	var result []string
	for _, n := range c.names {
		if _, ok := skip[n]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(n), query) {
			result = append(result, n)
		}
	}
	return result
}
