package page

import (
	"fmt"
	"strconv"

	"github.com/AdamBeresnev/futsal-cup/internal/countdown"
	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/AdamBeresnev/futsal-cup/internal/video"
	"golang.org/x/net/html"
)

const ClosePath = "/modal/close"

func DetailsPath(id int) string {
	return fmt.Sprintf("/matches/%d/details", id)
}

// CardList renders match cards into a container element. Activating a card's
// details button calls onSelect with the match id.
type CardList struct {
	doc       *dom.Document
	container *html.Node
	onSelect  func(id int)
}

// NewCardList returns nil when container is nil.
func NewCardList(doc *dom.Document, container *html.Node, onSelect func(id int)) ListView {
	if container == nil {
		return nil
	}
	return &CardList{doc: doc, container: container, onSelect: onSelect}
}

func (c *CardList) RenderList(items []fixture.MatchRecord) {
	c.doc.RemoveChildren(c.container)
	for _, m := range items {
		c.container.AppendChild(c.card(m))
	}
}

func (c *CardList) card(m fixture.MatchRecord) *html.Node {
	id := strconv.Itoa(m.ID)
	card := dom.CreateElement("div", "class", ClassCard, "data-match-id", id)
	card.AppendChild(dom.CreateText("h3", m.Teams, "class", ClassTeams))
	card.AppendChild(dom.CreateText("p", m.Date, "class", ClassDate))
	card.AppendChild(dom.CreateText("p", m.Time, "class", ClassTime))

	// A native button keeps the control reachable from the keyboard
	btn := dom.CreateText("button", "Ver detalhes",
		"type", "button",
		"class", ClassDetailsBtn,
		"data-match-id", id,
		"hx-get", DetailsPath(m.ID),
		"hx-target", "#"+IDModalOverlay,
		"hx-swap", "outerHTML",
	)
	card.AppendChild(btn)

	if c.onSelect != nil {
		matchID := m.ID
		c.doc.AddEventListener(btn, "click", func(dom.Event) {
			c.onSelect(matchID)
		})
	}
	return card
}

// ModalView fills the modal content region and toggles the overlay.
type ModalView struct {
	doc     *dom.Document
	overlay *html.Node
	content *html.Node
}

// NewModalView returns nil unless both the overlay and its content region exist.
func NewModalView(doc *dom.Document, els Elements) DetailView {
	if els.ModalOverlay == nil || els.ModalContent == nil {
		return nil
	}
	return &ModalView{doc: doc, overlay: els.ModalOverlay, content: els.ModalContent}
}

func (v *ModalView) ShowDetail(m fixture.MatchRecord) {
	v.doc.RemoveChildren(v.content)

	v.content.AppendChild(dom.CreateText("h2", m.Teams))
	v.content.AppendChild(labelled("Data: ", m.Date))
	v.content.AppendChild(labelled("Hora: ", m.Time))
	v.content.AppendChild(dom.CreateText("p", m.Description, "class", "match-description"))

	v.content.AppendChild(streamEmbed(m))

	dom.SetDisplay(v.overlay, "flex")
}

func (v *ModalView) Hide() {
	dom.SetDisplay(v.overlay, "none")
	v.doc.RemoveChildren(v.content)
}

func (v *ModalView) Visible() bool {
	d := dom.Display(v.overlay)
	return d != "" && d != "none"
}

func labelled(label, value string) *html.Node {
	p := dom.CreateElement("p")
	p.AppendChild(dom.CreateText("strong", label))
	p.AppendChild(&html.Node{Type: html.TextNode, Data: value})
	return p
}

// streamEmbed builds the stream frame. The embed URL may be rewritten for
// the player, data-stream-link keeps the link as stored.
func streamEmbed(m fixture.MatchRecord) *html.Node {
	embed := video.ForStream(m.LiveStreamLink)
	tag := embed.Tag()
	if tag == "" {
		return dom.CreateText("p", "Transmissão indisponível", "class", ClassStreamUnavailable)
	}

	attrs := []string{
		"class", ClassStreamFrame,
		"src", embed.URL,
		"data-stream-link", m.LiveStreamLink,
	}
	if tag == "video" {
		attrs = append(attrs, "controls", "", "playsinline", "")
	} else {
		attrs = append(attrs,
			"title", "Transmissão em direto: "+m.Teams,
			"allow", "autoplay; encrypted-media; picture-in-picture",
			"allowfullscreen", "",
		)
	}
	return dom.CreateElement(tag, attrs...)
}

// CountdownSlots writes countdown ticks into the days/hours/minutes/seconds
// slots and replaces the whole countdown container once the event starts.
type CountdownSlots struct {
	doc     *dom.Document
	els     Elements
	started string
}

// NewCountdownSlots returns nil when the countdown container is absent, so
// no timer gets scheduled for it.
func NewCountdownSlots(doc *dom.Document, els Elements, startedMessage string) countdown.Display {
	if els.Countdown == nil {
		return nil
	}
	return &CountdownSlots{doc: doc, els: els, started: startedMessage}
}

func (s *CountdownSlots) ShowRemaining(r countdown.Remaining) {
	s.setSlot(s.els.Days, r.Days)
	s.setSlot(s.els.Hours, r.Hours)
	s.setSlot(s.els.Minutes, r.Minutes)
	s.setSlot(s.els.Seconds, r.Seconds)
}

func (s *CountdownSlots) ShowStarted() {
	s.doc.RemoveChildren(s.els.Countdown)
	s.els.Countdown.AppendChild(dom.CreateText("p", s.started, "class", ClassStarted))
	// The slots went with the old children
	s.els.Days, s.els.Hours, s.els.Minutes, s.els.Seconds = nil, nil, nil, nil
}

func (s *CountdownSlots) setSlot(n *html.Node, v int) {
	if n == nil {
		return
	}
	s.doc.SetText(n, strconv.Itoa(v))
}
