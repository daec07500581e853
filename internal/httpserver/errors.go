package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/service"
)

// mapError is the only place service failures become HTTP statuses. The
// taxonomy stays inside the core; everything unrecognized is a 500 with a
// generic message.
func mapError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
