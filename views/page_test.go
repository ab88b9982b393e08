package views

import (
	"context"
	"strings"
	"testing"

	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/AdamBeresnev/futsal-cup/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCarriesAllTargets(t *testing.T) {
	doc, err := Document(context.Background(), Page(PageData{TournamentName: "Taça <Futsal>", StreamCountdown: true}))
	require.NoError(t, err)

	els := page.Lookup(doc)
	assert.NotNil(t, els.Matches)
	assert.NotNil(t, els.ModalOverlay)
	assert.NotNil(t, els.ModalContent)
	assert.NotNil(t, els.CloseModal)
	assert.NotNil(t, els.Countdown)
	assert.NotNil(t, els.Days)
	assert.NotNil(t, els.Hours)
	assert.NotNil(t, els.Minutes)
	assert.NotNil(t, els.Seconds)

	assert.Equal(t, "none", dom.Display(els.ModalOverlay))
	assert.Equal(t, "Taça <Futsal>", dom.TextContent(dom.Find(doc.Root(), dom.ByTag("h1"))))

	stream := dom.Find(doc.Root(), dom.ByClass("countdown-stream"))
	require.NotNil(t, stream)
	assert.Equal(t, "/countdown/ws", dom.Attr(stream, "ws-connect"))
}

func TestPagePollingFallback(t *testing.T) {
	doc, err := Document(context.Background(), Page(PageData{TournamentName: "Cup"}))
	require.NoError(t, err)

	stream := dom.Find(doc.Root(), dom.ByClass("countdown-stream"))
	require.NotNil(t, stream)
	assert.Equal(t, "/countdown", dom.Attr(stream, "hx-get"))
	assert.Empty(t, dom.Attr(stream, "ws-connect"))
}

func TestEndToEndScenario(t *testing.T) {
	catalog := fixture.MustCatalog([]fixture.MatchRecord{{
		ID:             1,
		Teams:          "A vs B",
		Date:           "2025-01-01",
		Time:           "20:00",
		Description:    "final",
		LiveStreamLink: "https://example.com/embed/x",
	}})

	doc, err := Document(context.Background(), Page(PageData{TournamentName: "Cup"}))
	require.NoError(t, err)
	p := page.Mount(doc, catalog, "started")

	p.RenderMatches()
	cards := dom.QueryAll(p.Elements.Matches, dom.ByClass(page.ClassCard))
	require.Len(t, cards, 1)
	text := dom.TextContent(cards[0])
	assert.True(t, strings.Contains(text, "A vs B"))
	assert.True(t, strings.Contains(text, "2025-01-01"))
	assert.True(t, strings.Contains(text, "20:00"))

	doc.Click(dom.Find(cards[0], dom.ByClass(page.ClassDetailsBtn)))
	assert.Equal(t, "flex", dom.Display(p.Elements.ModalOverlay))
	assert.Equal(t, "A vs B", dom.TextContent(dom.Find(p.Elements.ModalContent, dom.ByTag("h2"))))
	frame := dom.Find(p.Elements.ModalContent, dom.ByTag("iframe"))
	require.NotNil(t, frame)
	assert.Equal(t, "https://example.com/embed/x", dom.Attr(frame, "src"))

	doc.Click(p.Elements.CloseModal)
	assert.Equal(t, "none", dom.Display(p.Elements.ModalOverlay))
	assert.Nil(t, dom.Find(p.Elements.ModalContent, dom.ByTag("iframe")))
}

func TestCountdownSlots(t *testing.T) {
	doc, err := Document(context.Background(), Countdown())
	require.NoError(t, err)

	container := doc.GetElementByID(page.IDCountdown)
	require.NotNil(t, container)
	slots := dom.QueryAll(container, dom.ByClass("countdown-slot"))
	require.Len(t, slots, 4)

	for i, id := range []string{page.IDDays, page.IDHours, page.IDMinutes, page.IDSeconds} {
		span := dom.Find(slots[i], dom.ByTag("span"))
		require.NotNil(t, span)
		assert.Equal(t, id, dom.Attr(span, "id"))
		assert.Equal(t, "0", dom.TextContent(span))
	}
}

func TestPageOptionalHeroLines(t *testing.T) {
	doc, err := Document(context.Background(), Page(PageData{TournamentName: "Cup"}))
	require.NoError(t, err)
	assert.Nil(t, dom.Find(doc.Root(), dom.ByClass("tagline")))
	assert.Nil(t, dom.Find(doc.Root(), dom.ByClass("venue")))

	doc, err = Document(context.Background(), Page(PageData{TournamentName: "Cup", Tagline: "Finais", Venue: "Pavilhão"}))
	require.NoError(t, err)
	assert.Equal(t, "Finais", dom.TextContent(dom.Find(doc.Root(), dom.ByClass("tagline"))))
	assert.Equal(t, "Pavilhão", dom.TextContent(dom.Find(doc.Root(), dom.ByClass("venue"))))
}
