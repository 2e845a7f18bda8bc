package models

// ResultRow holds the fields shared by every classification row.
type ResultRow struct {
	Position string `json:"position"`
	Number   string `json:"number"`
	Driver   string `json:"driver"`
}

// QualifyingResultRow is one driver's qualifying classification.
type QualifyingResultRow struct {
	ResultRow
	Q1 string `json:"q1"`
	Q2 string `json:"q2"`
	Q3 string `json:"q3"`
}

// RaceResultRow is one driver's race classification.
type RaceResultRow struct {
	ResultRow
	FastestLapTime string `json:"fastestLapTime"`
	RaceTime       string `json:"raceTime"`
}

// QualifyingResults is the qualifying classification of a race.
type QualifyingResults struct {
	RaceName string                `json:"raceName"`
	Rows     []QualifyingResultRow `json:"rows"`
}

// RaceResults is the final classification of a race.
type RaceResults struct {
	RaceName string          `json:"raceName"`
	Rows     []RaceResultRow `json:"rows"`
}

// Podium returns the driver codes classified 1st, 2nd and 3rd. Places
// missing from the classification are left empty.
func (r RaceResults) Podium() [3]string {
	var p [3]string
	for _, row := range r.Rows {
		switch row.Position {
		case "1":
			p[0] = row.Driver
		case "2":
			p[1] = row.Driver
		case "3":
			p[2] = row.Driver
		}
	}
	return p
}
