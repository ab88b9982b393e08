package httputil

import (
	"log/slog"
	"net/http"

	"github.com/AdamBeresnev/futsal-cup/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

func requestAttrs(r *http.Request, msg string, err error) []any {
	attrs := []any{"message", msg, logging.FieldPath, r.URL.Path}
	if id := middleware.GetReqID(r.Context()); id != "" {
		attrs = append(attrs, logging.FieldRequestID, id)
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	return attrs
}

func InternalServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error("internal error", requestAttrs(r, msg, err)...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Warn("bad request", requestAttrs(r, msg, err)...)
	http.Error(w, msg, http.StatusBadRequest)
}

func NotFound(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Warn("not found", requestAttrs(r, msg, err)...)
	http.Error(w, msg, http.StatusNotFound)
}

// NoContent answers htmx requests that should leave the page untouched.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
