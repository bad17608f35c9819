package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Instances     int   `json:"instances"`
	LikesRecorded int64 `json:"likes_recorded"`
}

// InstanceCounter reports how many page instances are mounted.
type InstanceCounter interface {
	Len() int
}

// LikeCounter reports how many likes have been recorded.
type LikeCounter interface {
	LikesRecorded() int64
}

// StatsHandler serves operational counters.
type StatsHandler struct {
	instances InstanceCounter
	likes     LikeCounter
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(instances InstanceCounter, likes LikeCounter) *StatsHandler {
	return &StatsHandler{instances: instances, likes: likes}
}

// StatsGet returns the current counters as JSON.
func (h *StatsHandler) StatsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, StatsResponse{
		Instances:     h.instances.Len(),
		LikesRecorded: h.likes.LikesRecorded(),
	})
}

// HealthGet reports that the server is up.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
