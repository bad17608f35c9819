package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/homepage/internal/activity"
	"github.com/nfrund/homepage/internal/config"
	"github.com/nfrund/homepage/internal/middleware"
	"github.com/nfrund/homepage/internal/pubsub"
	"github.com/nfrund/homepage/internal/rendering"
	"github.com/nfrund/homepage/internal/state"
	"github.com/nfrund/homepage/web"
)

// Dependencies holds the services the HTTP server is built from.
type Dependencies struct {
	Config   *config.Config
	Store    *state.Store
	Tracker  *activity.Tracker
	Bus      pubsub.Subscriber
	Renderer *rendering.UniversalRenderer
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	store    *state.Store
	tracker  *activity.Tracker
	bus      pubsub.Subscriber
	renderer *rendering.UniversalRenderer
}

// New creates a new Server instance with its middleware chain installed.
// Routes are added by RegisterRoutes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	// Serve static files from the embedded "web/static" directory.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		store:    deps.Store,
		tracker:  deps.Tracker,
		bus:      deps.Bus,
		renderer: deps.Renderer,
	}
}

// Store is a getter for the server's page state store, useful for testing.
func (s *Server) Store() *state.Store {
	return s.store
}

// ServeHTTP lets the server be used directly with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.E.ServeHTTP(w, r)
}
