package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/AdamBeresnev/futsal-cup/internal/countdown"
	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/AdamBeresnev/futsal-cup/internal/logging"
	"github.com/AdamBeresnev/futsal-cup/internal/page"
	"github.com/AdamBeresnev/futsal-cup/views"
	"github.com/gorilla/websocket"
	"golang.org/x/net/html"
)

const writeWait = 5 * time.Second

// streamDisplay pushes the rendered countdown block to a websocket after every
// tick. It is only ever driven by one tick goroutine at a time.
type streamDisplay struct {
	conn      *websocket.Conn
	slots     countdown.Display
	container *html.Node
	onError   func(error)
}

func (d *streamDisplay) ShowRemaining(r countdown.Remaining) {
	d.slots.ShowRemaining(r)
	d.push()
}

func (d *streamDisplay) ShowStarted() {
	d.slots.ShowStarted()
	d.push()
}

func (d *streamDisplay) push() {
	var buf bytes.Buffer
	if err := dom.Render(&buf, d.container); err != nil {
		d.onError(err)
		return
	}
	if err := d.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		d.onError(err)
		return
	}
	if err := d.conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
		d.onError(err)
	}
}

// handleCountdownStream runs one countdown per connection. Any message from
// the client restarts it, which resynchronises a tab that was asleep.
func (a *app) handleCountdownStream(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("countdown stream upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	defer a.metrics.StreamOpened()()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	doc, err := views.Document(ctx, views.Countdown())
	if err != nil {
		logging.Error(slog.Default(), "failed to render countdown", err)
		return
	}
	els := page.Lookup(doc)
	display := &streamDisplay{
		conn:      conn,
		slots:     page.NewCountdownSlots(doc, els, a.cfg.StartedMessage),
		container: els.Countdown,
		onError: func(err error) {
			logging.Debug(slog.Default(), "countdown stream write failed", "error", err)
			cancel()
		},
	}

	timer := countdown.NewTimer(
		countdown.WithInterval(a.cfg.CountdownInterval),
		countdown.WithClock(a.now),
		countdown.WithLogger(slog.Default()),
	)
	defer timer.Stop()

	resync := make(chan struct{}, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
			select {
			case resync <- struct{}{}:
			default:
			}
		}
	}()

	handle := timer.Start(ctx, a.cfg.CountdownTarget, display)
	for {
		select {
		case <-ctx.Done():
			return
		case <-resync:
			handle = timer.Start(ctx, a.cfg.CountdownTarget, display)
		case <-handle.Done():
			if handle.Started() {
				if err := closeStarted(conn); err != nil {
					logging.Debug(slog.Default(), "countdown stream close failed", "error", err)
				}
			}
			return
		}
	}
}

// closeStarted tells the client the countdown is over.
func closeStarted(conn *websocket.Conn) error {
	return conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "started"),
		time.Now().Add(writeWait))
}
