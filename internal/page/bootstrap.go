package page

import (
	"github.com/AdamBeresnev/futsal-cup/internal/countdown"
	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
)

// Bootstrap attaches the dismiss handlers to the close control and the overlay
// background. Either element may be missing. Clicks inside the dialog bubble
// up to the overlay but do not close it.
func Bootstrap(doc *dom.Document, modal *Modal) {
	els := Lookup(doc)

	if els.CloseModal != nil {
		doc.AddEventListener(els.CloseModal, "click", func(dom.Event) {
			modal.Close()
		})
		dom.SetAttr(els.CloseModal, "hx-get", ClosePath)
		dom.SetAttr(els.CloseModal, "hx-target", "#"+IDModalOverlay)
		dom.SetAttr(els.CloseModal, "hx-swap", "outerHTML")
	}

	if overlay := els.ModalOverlay; overlay != nil {
		doc.AddEventListener(overlay, "click", func(e dom.Event) {
			if e.Target == overlay {
				modal.Close()
			}
		})
		dom.SetAttr(overlay, "hx-get", ClosePath)
		dom.SetAttr(overlay, "hx-trigger", "click target:#"+IDModalOverlay+", keyup[key=='Escape'] from:body")
		dom.SetAttr(overlay, "hx-target", "this")
		dom.SetAttr(overlay, "hx-swap", "outerHTML")
	}
}

// Page is a document with its controllers attached.
type Page struct {
	Doc       *dom.Document
	Elements  Elements
	Cards     ListView
	Modal     *Modal
	Countdown countdown.Display
	catalog   *fixture.Catalog
}

// Mount looks up the page targets in doc, wires the modal and prepares the
// card list and countdown display. It bootstraps doc, so call it once per
// document.
func Mount(doc *dom.Document, catalog *fixture.Catalog, startedMessage string) *Page {
	els := Lookup(doc)
	modal := NewModal(catalog, NewModalView(doc, els))
	Bootstrap(doc, modal)

	return &Page{
		Doc:      doc,
		Elements: els,
		Cards: NewCardList(doc, els.Matches, func(id int) {
			modal.ShowDetails(id)
		}),
		Modal:     modal,
		Countdown: NewCountdownSlots(doc, els, startedMessage),
		catalog:   catalog,
	}
}

func (p *Page) RenderMatches() {
	RenderMatches(p.catalog, p.Cards)
}
