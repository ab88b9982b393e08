// Package page holds the promo page behaviour: rendering match cards, the
// match detail modal and the wiring that dismisses it. The controllers only
// talk to the small view interfaces below, so they work against any surface
// that can show a list and a detail panel.
package page

import (
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
)

// ListView shows the match cards.
type ListView interface {
	RenderList(items []fixture.MatchRecord)
}

// DetailView shows one match in the modal.
type DetailView interface {
	ShowDetail(item fixture.MatchRecord)
	Hide()
}

// RenderMatches replaces whatever view shows with one card per catalog record,
// in catalog order. A nil view means the container is not on the page.
func RenderMatches(catalog *fixture.Catalog, view ListView) {
	if view == nil {
		return
	}
	view.RenderList(catalog.All())
}

// Modal looks matches up in the catalog and drives a DetailView.
type Modal struct {
	catalog *fixture.Catalog
	view    DetailView
}

func NewModal(catalog *fixture.Catalog, view DetailView) *Modal {
	return &Modal{catalog: catalog, view: view}
}

// ShowDetails opens the modal on the match with the given id. An unknown id
// leaves the modal as it was and returns false.
func (m *Modal) ShowDetails(id int) bool {
	if m == nil || m.view == nil {
		return false
	}
	match, ok := m.catalog.Lookup(id)
	if !ok {
		return false
	}
	m.view.ShowDetail(match)
	return true
}

// Close hides the modal and discards its content, stream included.
func (m *Modal) Close() {
	if m == nil || m.view == nil {
		return
	}
	m.view.Hide()
}
