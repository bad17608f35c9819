package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/homepage/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace before echo writes the response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if err == nil {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("Server error", "status", he.Code, "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				slog.String("stack_trace", string(debug.Stack())),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
