package server

import (
	"github.com/nfrund/homepage/internal/handlers"
	"github.com/nfrund/homepage/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(s.store, s.renderer)
	statsHandler := handlers.NewStatsHandler(s.store, s.tracker)

	// Every full page load mounts an instance, so mounting is rate limited.
	// Likes are not: each activation must register.
	s.E.GET("/", homeHandler.HomeGet, middleware.RateLimiter(s.Cfg.MountRateLimit))
	s.E.POST("/likes/:id", homeHandler.LikePost)

	s.E.GET("/stats", statsHandler.StatsGet)
	s.E.GET("/health", handlers.HealthGet)
}
