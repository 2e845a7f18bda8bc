package models

// DriverStanding is one row of the drivers' championship.
type DriverStanding struct {
	Position string `json:"position"`
	Points   string `json:"points"`
	Wins     string `json:"wins"`
	Driver   string `json:"driver"`
}

// ConstructorStanding is one row of the constructors' championship.
type ConstructorStanding struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	Constructor string `json:"constructor"`
}

// DriverStandings is the drivers' championship after a round.
type DriverStandings struct {
	Season string           `json:"season"`
	Round  string           `json:"round"`
	Rows   []DriverStanding `json:"rows"`
}

// ConstructorStandings is the constructors' championship after a round.
type ConstructorStandings struct {
	Season string                `json:"season"`
	Round  string                `json:"round"`
	Rows   []ConstructorStanding `json:"rows"`
}
