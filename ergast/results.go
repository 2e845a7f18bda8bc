package ergast

import (
	"context"

	"github.com/padraicbc/paddock/models"
)

const racePath = "MRData.RaceTable.Races.0"

// QualifyingResults fetches the qualifying classification of the last race.
func (c *Client) QualifyingResults(ctx context.Context) (models.QualifyingResults, error) {
	doc, err := c.get(ctx, c.LastRaceURL()+"qualifying.json")
	if err != nil {
		return models.QualifyingResults{}, err
	}
	return decodeQualifying(doc)
}

// RaceResults fetches the final classification of the last race.
func (c *Client) RaceResults(ctx context.Context) (models.RaceResults, error) {
	doc, err := c.get(ctx, c.LastRaceURL()+"results.json")
	if err != nil {
		return models.RaceResults{}, err
	}
	return decodeRace(doc)
}

// decodeQualifying fails only when the row array itself is missing; every
// other absent field is left empty.
func decodeQualifying(doc Document) (models.QualifyingResults, error) {
	items, err := doc.Array(racePath + ".QualifyingResults")
	if err != nil {
		return models.QualifyingResults{}, err
	}
	out := models.QualifyingResults{
		RaceName: doc.String(racePath + ".raceName"),
		Rows:     make([]models.QualifyingResultRow, 0, len(items)),
	}
	for _, row := range items {
		out.Rows = append(out.Rows, models.QualifyingResultRow{
			ResultRow: resultRow(row),
			Q1:        row.String("Q1"),
			Q2:        row.String("Q2"),
			Q3:        row.String("Q3"),
		})
	}
	return out, nil
}

func decodeRace(doc Document) (models.RaceResults, error) {
	items, err := doc.Array(racePath + ".Results")
	if err != nil {
		return models.RaceResults{}, err
	}
	out := models.RaceResults{
		RaceName: doc.String(racePath + ".raceName"),
		Rows:     make([]models.RaceResultRow, 0, len(items)),
	}
	for _, row := range items {
		out.Rows = append(out.Rows, models.RaceResultRow{
			ResultRow:      resultRow(row),
			FastestLapTime: row.String("FastestLap.Time.time"),
			RaceTime:       row.String("Time.time"),
		})
	}
	return out, nil
}

func resultRow(row Document) models.ResultRow {
	return models.ResultRow{
		Position: row.String("position"),
		Number:   row.String("number"),
		Driver:   row.String("Driver.code"),
	}
}
