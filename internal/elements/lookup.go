package elements

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when no element matches a query.
var ErrNotFound = errors.New("element not found")

// Catalog indexes a set of elements for lookup. Build once at startup;
// reads are lock-free since the catalog never changes afterwards.
type Catalog struct {
	ordered  []Element
	bySymbol map[string]int
	byName   map[string]int
}

// NewCatalog indexes the given elements, ordered by atomic number.
func NewCatalog(els []Element) *Catalog {
	c := &Catalog{
		ordered:  append([]Element(nil), els...),
		bySymbol: make(map[string]int, len(els)),
		byName:   make(map[string]int, len(els)),
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].AtomicNumber < c.ordered[j].AtomicNumber
	})
	for i, el := range c.ordered {
		c.bySymbol[strings.ToLower(el.Symbol)] = i
		c.byName[strings.ToLower(el.Name)] = i
	}
	return c
}

// All returns every element, ordered by atomic number. The slice is a
// copy; mutating it cannot corrupt the catalog's indexes.
func (c *Catalog) All() []Element {
	return append([]Element(nil), c.ordered...)
}

// Len returns the number of indexed elements.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Find resolves a query to an element. Symbols and names match exactly,
// case-insensitively ("h", "Gold"); otherwise a name prefix matching
// exactly one element resolves too ("oxy"). Symbol takes precedence over
// name, so "He" is helium, never a prefix of anything else.
func (c *Catalog) Find(query string) (Element, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Element{}, ErrNotFound
	}
	if i, ok := c.bySymbol[q]; ok {
		return c.ordered[i], nil
	}
	if i, ok := c.byName[q]; ok {
		return c.ordered[i], nil
	}

	match := -1
	for i, el := range c.ordered {
		if strings.HasPrefix(strings.ToLower(el.Name), q) {
			if match >= 0 {
				// Ambiguous prefix; the caller has to be more specific.
				return Element{}, ErrNotFound
			}
			match = i
		}
	}
	if match < 0 {
		return Element{}, ErrNotFound
	}
	return c.ordered[match], nil
}
