package page

import (
	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"golang.org/x/net/html"
)

// Element ids the page markup is expected to carry.
const (
	IDMatches      = "matches"
	IDModalOverlay = "modal-overlay"
	IDModalContent = "modal-content"
	IDCloseModal   = "close-modal"
	IDCountdown    = "countdown"
	IDDays         = "days"
	IDHours        = "hours"
	IDMinutes      = "minutes"
	IDSeconds      = "seconds"
)

// Class names attached to generated elements, consumed by the stylesheet.
const (
	ClassCard       = "match-card"
	ClassTeams      = "match-teams"
	ClassDate       = "match-date"
	ClassTime       = "match-time"
	ClassDetailsBtn = "details-btn"
	ClassStarted    = "countdown-started"

	ClassStreamFrame       = "stream-frame"
	ClassStreamUnavailable = "stream-unavailable"
)

// Elements are the page targets, each nil when absent from the document.
type Elements struct {
	Matches      *html.Node
	ModalOverlay *html.Node
	ModalContent *html.Node
	CloseModal   *html.Node
	Countdown    *html.Node
	Days         *html.Node
	Hours        *html.Node
	Minutes      *html.Node
	Seconds      *html.Node
}

func Lookup(doc *dom.Document) Elements {
	return Elements{
		Matches:      doc.GetElementByID(IDMatches),
		ModalOverlay: doc.GetElementByID(IDModalOverlay),
		ModalContent: doc.GetElementByID(IDModalContent),
		CloseModal:   doc.GetElementByID(IDCloseModal),
		Countdown:    doc.GetElementByID(IDCountdown),
		Days:         doc.GetElementByID(IDDays),
		Hours:        doc.GetElementByID(IDHours),
		Minutes:      doc.GetElementByID(IDMinutes),
		Seconds:      doc.GetElementByID(IDSeconds),
	}
}
