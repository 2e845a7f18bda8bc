package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/paddock/league"
	"github.com/padraicbc/paddock/models"
)

// QualifyingResults returns the qualifying classification of the last race.
func (h *Handler) QualifyingResults(c echo.Context) error {
	res, err := h.results.QualifyingResults(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// RaceResults returns the final classification of the last race.
func (h *Handler) RaceResults(c echo.Context) error {
	res, err := h.results.RaceResults(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

type scoredRace struct {
	RaceName string       `json:"raceName"`
	Podium   [3]string    `json:"podium"`
	Bets     []models.Bet `json:"bets"`
}

// ScoredBets scores the bets placed on the last race against its result.
// Nothing is written back to bets.csv.
func (h *Handler) ScoredBets(c echo.Context) error {
	ctx := c.Request().Context()
	res, err := h.results.RaceResults(ctx)
	if err != nil {
		return httpError(err)
	}
	bets, err := h.records.Bets(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, scoredRace{
		RaceName: res.RaceName,
		Podium:   res.Podium(),
		Bets:     league.ScoreBets(bets, res),
	})
}

// DriverStandings returns the drivers' championship.
func (h *Handler) DriverStandings(c echo.Context) error {
	res, err := h.results.DriverStandings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ConstructorStandings returns the constructors' championship.
func (h *Handler) ConstructorStandings(c echo.Context) error {
	res, err := h.results.ConstructorStandings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Health reports that the process is serving.
func (h *Handler) Health(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
