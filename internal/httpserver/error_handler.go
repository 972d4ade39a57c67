package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomdash/product-dashboard/internal/models"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler maps known errors to deterministic status codes and
// renders the {"error": "..."} envelope. Unexpected errors are logged with
// their real cause and answered with a generic 500.
func NewHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log *slog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: middleware rejections, bind failures, router 404s.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, models.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	log.Error("unhandled error",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return http.StatusInternalServerError, "internal server error"
}
