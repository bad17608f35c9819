package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer defines the contract for rendering any supported component (templ, gomponents, etc.).
// It uses any for the component input to support heterogeneous types.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Useful for htmx fragments and exports.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a component as a full HTTP response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles rendering for multiple component types.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

// render inspects the component type and calls the appropriate render method.
func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T. Component must be templ.Component or implement Render(io.Writer) error", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
// The component is rendered to a buffer first so a failure can still produce an error status.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to render component", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}
