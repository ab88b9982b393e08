package views

import (
	"bytes"
	"context"
	"fmt"

	"github.com/AdamBeresnev/futsal-cup/internal/dom"
	"github.com/a-h/templ"
)

// Document renders component and parses the result so page controllers can
// work on it before it is sent.
func Document(ctx context.Context, component templ.Component) (*dom.Document, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return dom.Parse(&buf)
}
