package fixture

import (
	"errors"
	"fmt"
)

var ErrDuplicateID = errors.New("duplicate match id")

// Catalog is the fixed set of matches shown on the page. It is built once and
// never changes afterwards, so it can be shared between requests freely.
type Catalog struct {
	records []MatchRecord
	byID    map[int]int
}

func NewCatalog(records []MatchRecord) (*Catalog, error) {
	c := &Catalog{
		records: make([]MatchRecord, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	copy(c.records, records)

	for i, r := range c.records {
		if _, exists := c.byID[r.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		c.byID[r.ID] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog for fixtures known to be valid.
func MustCatalog(records []MatchRecord) *Catalog {
	c, err := NewCatalog(records)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the records in catalog order. The slice is a copy.
func (c *Catalog) All() []MatchRecord {
	if c == nil {
		return nil
	}
	out := make([]MatchRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Lookup(id int) (MatchRecord, bool) {
	if c == nil {
		return MatchRecord{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return MatchRecord{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
