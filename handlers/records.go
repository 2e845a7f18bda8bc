package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/paddock/league"
	"github.com/padraicbc/paddock/models"
)

// Bets returns all bets, ordered by points when sort=points is given.
func (h *Handler) Bets(c echo.Context) error {
	bets, err := h.records.Bets(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	switch c.QueryParam("sort") {
	case "":
	case "points":
		models.SortBets(bets)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be points")
	}

	return c.JSON(http.StatusOK, bets)
}

// Users returns all league users in file order.
func (h *Handler) Users(c echo.Context) error {
	users, err := h.records.Users(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Leaderboard returns the betting championship.
func (h *Handler) Leaderboard(c echo.Context) error {
	users, err := h.records.Users(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, league.Leaderboard(users))
}

// Events returns the calendar with zoned dates filled in.
func (h *Handler) Events(c echo.Context) error {
	events, err := h.records.Events(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	for i := range events {
		events[i] = events[i].WithZones(h.cest, h.est)
	}
	return c.JSON(http.StatusOK, events)
}

// nextEvent is an event shown in the asking user's time zone.
type nextEvent struct {
	models.Event
	Local     string           `json:"local"`
	Countdown league.Countdown `json:"countdown"`
}

// NextEvent returns the next upcoming event. q takes a shorthand such as
// "f1" or "quali"; category and session override it. nick picks the user
// whose time zone is used for the local time.
func (h *Handler) NextEvent(c echo.Context) error {
	ctx := c.Request().Context()
	category, session := league.ExpandQuery(c.QueryParam("q"))
	if v := c.QueryParam("category"); v != "" {
		category = v
	}
	if v := c.QueryParam("session"); v != "" {
		session = v
	}

	nick := c.QueryParam("nick")
	var users []models.User
	if nick != "" {
		var err error
		if users, err = h.records.Users(ctx); err != nil {
			return httpError(err)
		}
	}
	loc := league.UserLocation(users, nick)

	events, err := h.records.Events(ctx)
	if err != nil {
		return httpError(err)
	}
	now := h.now()
	e, err := league.NextEvent(events, category, session, now)
	if err != nil {
		return httpError(err)
	}
	t, _ := e.Time()

	return c.JSON(http.StatusOK, nextEvent{
		Event:     e.WithZones(h.cest, h.est),
		Local:     t.In(loc).Format(models.ZonedTimeFormat),
		Countdown: league.Until(t, now),
	})
}
