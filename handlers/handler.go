package handlers

import (
	"context"
	"time"

	"github.com/padraicbc/paddock/models"
)

// Records reads the league files.
type Records interface {
	Bets(ctx context.Context) ([]models.Bet, error)
	Users(ctx context.Context) ([]models.User, error)
	Events(ctx context.Context) ([]models.Event, error)
}

// Results fetches classifications and standings from the results API.
type Results interface {
	QualifyingResults(ctx context.Context) (models.QualifyingResults, error)
	RaceResults(ctx context.Context) (models.RaceResults, error)
	DriverStandings(ctx context.Context) (models.DriverStandings, error)
	ConstructorStandings(ctx context.Context) (models.ConstructorStandings, error)
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	records Records
	results Results
	cest    *time.Location
	est     *time.Location
	now     func() time.Time
}

// New creates a Handler. cest and est are the zones used to fill the
// zoned dates of events; either may be nil.
func New(records Records, results Results, cest, est *time.Location) *Handler {
	return &Handler{records: records, results: results, cest: cest, est: est, now: time.Now}
}
