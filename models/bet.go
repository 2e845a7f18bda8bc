package models

import (
	"cmp"
	"slices"
)

// BetSchema is the column layout of bets.csv.
var BetSchema = Schema{
	{Name: "race", Kind: KindString},
	{Name: "nick", Kind: KindString},
	{Name: "driver1", Kind: KindString},
	{Name: "driver2", Kind: KindString},
	{Name: "driver3", Kind: KindString},
	{Name: "points", Kind: KindInt},
}

// Bet is one user's podium prediction for a race.
type Bet struct {
	Race    string `json:"race"`
	Nick    string `json:"nick"`
	Driver1 string `json:"driver1"`
	Driver2 string `json:"driver2"`
	Driver3 string `json:"driver3"`
	Points  int    `json:"points"`
}

// ParseBet builds a Bet from one bets.csv line.
func ParseBet(line string) (Bet, error) {
	v, err := BetSchema.Parse(line)
	if err != nil {
		return Bet{}, err
	}
	return Bet{
		Race:    v.String("race"),
		Nick:    v.String("nick"),
		Driver1: v.String("driver1"),
		Driver2: v.String("driver2"),
		Driver3: v.String("driver3"),
		Points:  v.Int("points"),
	}, nil
}

// Line renders b in bets.csv layout.
func (b Bet) Line() string {
	return BetSchema.Format(NewValues().
		SetString("race", b.Race).
		SetString("nick", b.Nick).
		SetString("driver1", b.Driver1).
		SetString("driver2", b.Driver2).
		SetString("driver3", b.Driver3).
		SetInt("points", b.Points))
}

// Drivers returns the predicted podium in order.
func (b Bet) Drivers() [3]string {
	return [3]string{b.Driver1, b.Driver2, b.Driver3}
}

// Compare orders bets by points, lowest first.
func (b Bet) Compare(o Bet) int {
	return cmp.Compare(b.Points, o.Points)
}

// SortBets sorts bets by points ascending. Bets with equal points keep
// their relative order.
func SortBets(bets []Bet) {
	slices.SortStableFunc(bets, Bet.Compare)
}
