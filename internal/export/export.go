// Package export writes static snapshots of the home page.
package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/nfrund/homepage/internal/rendering"
	"github.com/nfrund/homepage/internal/view"
	"github.com/nfrund/homepage/web/src/templates/pages"
	"github.com/spf13/afero"
)

// Exporter renders the initial home page document without mounting an
// instance, so the like button in the snapshot is inert.
type Exporter struct {
	fs       afero.Fs
	renderer rendering.Renderer
}

// New creates an Exporter writing to fs.
func New(fs afero.Fs, renderer rendering.Renderer) *Exporter {
	return &Exporter{fs: fs, renderer: renderer}
}

// Render returns the snapshot document.
func (x *Exporter) Render(ctx context.Context) ([]byte, error) {
	return x.renderer.RenderComponent(ctx, view.HomeDocument(pages.HomeData{}))
}

// Stream writes the snapshot to w.
func (x *Exporter) Stream(ctx context.Context, w io.Writer) (int64, error) {
	body, err := x.Render(ctx)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(body)
	return int64(n), err
}

// WriteFile writes the snapshot to path, creating parent directories.
func (x *Exporter) WriteFile(ctx context.Context, path string) (int64, error) {
	body, err := x.Render(ctx)
	if err != nil {
		return 0, err
	}
	if err := x.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(x.fs, path, body, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return int64(len(body)), nil
}
