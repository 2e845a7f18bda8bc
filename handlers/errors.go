package handlers

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/paddock/ergast"
	"github.com/padraicbc/paddock/league"
	"github.com/padraicbc/paddock/models"
)

// statusClientClosed is logged when the caller went away before the answer.
const statusClientClosed = 499

// httpError maps data-layer errors onto response codes.
func httpError(err error) error {
	var uerr *url.Error
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, league.ErrNoEvent):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(statusClientClosed, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, ergast.ErrStructure), errors.Is(err, ergast.ErrStatus), errors.Is(err, ergast.ErrMalformed), errors.As(err, &uerr):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, models.ErrFormat), errors.Is(err, models.ErrOutOfRange):
		return echo.NewHTTPError(http.StatusInternalServerError, "malformed data file: "+err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
