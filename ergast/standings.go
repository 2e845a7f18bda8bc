package ergast

import (
	"context"

	"github.com/padraicbc/paddock/models"
)

const standingsPath = "MRData.StandingsTable.StandingsLists.0"

// DriverStandings fetches the current drivers' championship.
func (c *Client) DriverStandings(ctx context.Context) (models.DriverStandings, error) {
	doc, err := c.get(ctx, c.SeasonURL()+"driverStandings.json")
	if err != nil {
		return models.DriverStandings{}, err
	}
	return decodeDriverStandings(doc)
}

// ConstructorStandings fetches the current constructors' championship.
func (c *Client) ConstructorStandings(ctx context.Context) (models.ConstructorStandings, error) {
	doc, err := c.get(ctx, c.SeasonURL()+"constructorStandings.json")
	if err != nil {
		return models.ConstructorStandings{}, err
	}
	return decodeConstructorStandings(doc)
}

func decodeDriverStandings(doc Document) (models.DriverStandings, error) {
	items, err := doc.Array(standingsPath + ".DriverStandings")
	if err != nil {
		return models.DriverStandings{}, err
	}
	list := doc.Get(standingsPath)
	out := models.DriverStandings{
		Season: list.String("season"),
		Round:  list.String("round"),
		Rows:   make([]models.DriverStanding, 0, len(items)),
	}
	for _, row := range items {
		out.Rows = append(out.Rows, models.DriverStanding{
			Position: row.String("position"),
			Points:   row.String("points"),
			Wins:     row.String("wins"),
			Driver:   row.String("Driver.code"),
		})
	}
	return out, nil
}

func decodeConstructorStandings(doc Document) (models.ConstructorStandings, error) {
	items, err := doc.Array(standingsPath + ".ConstructorStandings")
	if err != nil {
		return models.ConstructorStandings{}, err
	}
	list := doc.Get(standingsPath)
	out := models.ConstructorStandings{
		Season: list.String("season"),
		Round:  list.String("round"),
		Rows:   make([]models.ConstructorStanding, 0, len(items)),
	}
	for _, row := range items {
		out.Rows = append(out.Rows, models.ConstructorStanding{
			Position:    row.String("position"),
			Points:      row.String("points"),
			Wins:        row.String("wins"),
			Constructor: row.String("Constructor.name"),
		})
	}
	return out, nil
}
