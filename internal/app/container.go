// Package app wires the application's services together.
package app

import (
	"context"
	"log/slog"

	"github.com/nfrund/homepage/internal/activity"
	"github.com/nfrund/homepage/internal/config"
	"github.com/nfrund/homepage/internal/export"
	"github.com/nfrund/homepage/internal/pubsub"
	"github.com/nfrund/homepage/internal/rendering"
	"github.com/nfrund/homepage/internal/server"
	"github.com/nfrund/homepage/internal/state"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewContainer registers every service provider against cfg. Services are
// built lazily on first invocation.
func NewContainer(cfg *config.Config, fs afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, fs)
	do.Provide(injector, provideBus)
	do.Provide(injector, provideStore)
	do.Provide(injector, provideTracker)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, provideExporter)
	do.Provide(injector, provideServer)

	return injector
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideStore(i do.Injector) (*state.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	return state.NewStore(state.Options{TTL: cfg.InstanceTTL, Publisher: bus}), nil
}

func provideTracker(i do.Injector) (*activity.Tracker, error) {
	return activity.NewTracker(), nil
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideExporter(i do.Injector) (*export.Exporter, error) {
	return export.New(
		do.MustInvoke[afero.Fs](i),
		do.MustInvoke[*rendering.UniversalRenderer](i),
	), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	s := server.New(server.Dependencies{
		Config:   do.MustInvoke[*config.Config](i),
		Store:    do.MustInvoke[*state.Store](i),
		Tracker:  do.MustInvoke[*activity.Tracker](i),
		Bus:      do.MustInvoke[*pubsub.WatermillBridge](i),
		Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
	})
	s.RegisterRoutes()
	return s, nil
}

// Serve builds the server from the container and runs it until ctx is canceled.
func Serve(ctx context.Context, injector do.Injector) error {
	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		return err
	}
	defer func() {
		if err := do.MustInvoke[*pubsub.WatermillBridge](injector).Close(); err != nil {
			slog.Warn("Failed to close event bus", "error", err)
		}
	}()
	return s.Start(ctx)
}
