package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/AdamBeresnev/futsal-cup/internal/config"
	"github.com/AdamBeresnev/futsal-cup/internal/countdown"
	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/AdamBeresnev/futsal-cup/internal/httputil"
	"github.com/AdamBeresnev/futsal-cup/internal/logging"
	"github.com/AdamBeresnev/futsal-cup/internal/metrics"
	"github.com/AdamBeresnev/futsal-cup/internal/page"
	"github.com/AdamBeresnev/futsal-cup/views"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
)

//go:embed static
var staticFiles embed.FS

// htmx stops polling when it sees this status.
const statusStopPolling = 286

type app struct {
	cfg      config.Config
	catalog  *fixture.Catalog
	metrics  *metrics.Recorder
	now      func() time.Time
	upgrader websocket.Upgrader
}

func newApp(cfg config.Config, catalog *fixture.Catalog, recorder *metrics.Recorder) *app {
	return &app{
		cfg:     cfg,
		catalog: catalog,
		metrics: recorder,
		now:     time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (a *app) pageData() views.PageData {
	return views.PageData{
		TournamentName:  a.cfg.TournamentName,
		Tagline:         a.cfg.Tagline,
		Venue:           a.cfg.Venue,
		StreamCountdown: a.cfg.StreamCountdown,
	}
}

// mountPage renders a fresh page skeleton and attaches the controllers to it.
func (a *app) mountPage(r *http.Request) (*page.Page, error) {
	doc, err := views.Document(r.Context(), views.Page(a.pageData()))
	if err != nil {
		return nil, err
	}
	return page.Mount(doc, a.catalog, a.cfg.StartedMessage), nil
}

func writeHTML(w http.ResponseWriter, status int, node func(http.ResponseWriter) error) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return node(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// writeFailed logs errors hit after the status line went out.
func writeFailed(r *http.Request, err error) {
	slog.Warn("failed to write response", logging.FieldPath, r.URL.Path, "error", err)
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Serve static files
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		p, err := a.mountPage(r)
		if err != nil {
			httputil.InternalServerError(w, r, "Failed to render page", err)
			return
		}
		p.RenderMatches()
		if p.Countdown != nil {
			countdown.Tick(a.cfg.CountdownTarget, a.now(), p.Countdown)
		}

		// Deep links open the modal straight away
		if raw := r.URL.Query().Get("match"); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil {
				p.Modal.ShowDetails(id)
			}
		}

		a.metrics.PageView()
		if err := writeHTML(w, http.StatusOK, func(w http.ResponseWriter) error {
			return dom.Render(w, p.Doc.Root())
		}); err != nil {
			writeFailed(r, err)
		}
	})

	r.Get("/matches/{id}/details", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			a.metrics.DetailView(metrics.OutcomeInvalid)
			httputil.BadRequest(w, r, "Invalid match ID", err)
			return
		}

		p, err := a.mountPage(r)
		if err != nil {
			httputil.InternalServerError(w, r, "Failed to render page", err)
			return
		}
		if !p.Modal.ShowDetails(id) {
			a.metrics.DetailView(metrics.OutcomeNotFound)
			httputil.NoContent(w)
			return
		}

		a.metrics.DetailView(metrics.OutcomeShown)
		if err := writeHTML(w, http.StatusOK, func(w http.ResponseWriter) error {
			return dom.Render(w, p.Elements.ModalOverlay)
		}); err != nil {
			writeFailed(r, err)
		}
	})

	r.Get(page.ClosePath, func(w http.ResponseWriter, r *http.Request) {
		p, err := a.mountPage(r)
		if err != nil {
			httputil.InternalServerError(w, r, "Failed to render page", err)
			return
		}
		p.Modal.Close()
		if err := writeHTML(w, http.StatusOK, func(w http.ResponseWriter) error {
			return dom.Render(w, p.Elements.ModalOverlay)
		}); err != nil {
			writeFailed(r, err)
		}
	})

	r.Get("/countdown", func(w http.ResponseWriter, r *http.Request) {
		doc, err := views.Document(r.Context(), views.Countdown())
		if err != nil {
			httputil.InternalServerError(w, r, "Failed to render countdown", err)
			return
		}
		els := page.Lookup(doc)
		status := http.StatusOK
		if countdown.Tick(a.cfg.CountdownTarget, a.now(), page.NewCountdownSlots(doc, els, a.cfg.StartedMessage)) {
			status = statusStopPolling
		}
		if err := writeHTML(w, status, func(w http.ResponseWriter) error {
			return dom.Render(w, els.Countdown)
		}); err != nil {
			writeFailed(r, err)
		}
	})

	r.Get("/countdown/ws", a.handleCountdownStream)

	r.Handle("/metrics", a.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Default().Handler)

		r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
			if err := writeJSON(w, http.StatusOK, a.catalog.All()); err != nil {
				writeFailed(r, err)
			}
		})

		r.Get("/matches/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, r, "Invalid match ID", err)
				return
			}
			match, ok := a.catalog.Lookup(id)
			if !ok {
				httputil.NotFound(w, r, "Match not found", nil)
				return
			}
			if err := writeJSON(w, http.StatusOK, match); err != nil {
				writeFailed(r, err)
			}
		})

		r.Get("/countdown", func(w http.ResponseWriter, r *http.Request) {
			remaining := a.cfg.CountdownTarget.Sub(a.now())
			if err := writeJSON(w, http.StatusOK, countdownStatus{
				Target:    a.cfg.CountdownTarget,
				Started:   remaining < 0,
				Remaining: countdown.Decompose(remaining),
			}); err != nil {
				writeFailed(r, err)
			}
		})
	})

	return r
}

type countdownStatus struct {
	Target    time.Time           `json:"target"`
	Started   bool                `json:"started"`
	Remaining countdown.Remaining `json:"remaining"`
}
