package views

import "github.com/AdamBeresnev/futsal-cup/internal/page"

type PageData struct {
	TournamentName string
	Tagline        string
	Venue          string
	// StreamCountdown connects the countdown to the websocket feed.
	StreamCountdown bool
}

type countdownSlot struct {
	ID    string
	Label string
}

var countdownSlots = []countdownSlot{
	{page.IDDays, "Dias"},
	{page.IDHours, "Horas"},
	{page.IDMinutes, "Minutos"},
	{page.IDSeconds, "Segundos"},
}
