package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	records := []MatchRecord{
		{ID: 2, Teams: "C vs D"},
		{ID: 1, Teams: "A vs B"},
	}

	c, err := NewCatalog(records)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	all := c.All()
	require.Len(t, all, 2)
	// Catalog order is input order, not id order
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 1, all[1].ID)

	m, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "A vs B", m.Teams)

	_, ok = c.Lookup(99)
	assert.False(t, ok)
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	_, err := NewCatalog([]MatchRecord{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestCatalog_Immutable(t *testing.T) {
	records := []MatchRecord{{ID: 1, Teams: "A vs B"}}
	c := MustCatalog(records)

	// Neither the input slice nor the returned copy can reach the catalog
	records[0].Teams = "changed"
	all := c.All()
	all[0].Teams = "changed again"

	m, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "A vs B", m.Teams)
	assert.Equal(t, "A vs B", c.All()[0].Teams)
}

func TestCatalog_Nil(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.All())
	_, ok := c.Lookup(1)
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 0)
	for _, m := range c.All() {
		assert.NotEmpty(t, m.Teams)
		assert.NotEmpty(t, m.LiveStreamLink)
	}
}
