// Package league holds the betting-league rules applied to records read
// from the store and the results API.
package league

import (
	"strings"

	"github.com/padraicbc/paddock/models"
)

// PodiumPoints is awarded for each driver predicted in the exact podium place.
const PodiumPoints = 10

// Score returns the points a bet earns against a podium.
func Score(b models.Bet, podium [3]string) int {
	score := 0
	for i, d := range b.Drivers() {
		if podium[i] != "" && strings.EqualFold(d, podium[i]) {
			score += PodiumPoints
		}
	}
	return score
}

// ScoreBets returns a copy of bets where every bet placed on the given race
// carries its score. Bets on other races are copied unchanged.
func ScoreBets(bets []models.Bet, race models.RaceResults) []models.Bet {
	podium := race.Podium()
	out := make([]models.Bet, len(bets))
	for i, b := range bets {
		if race.RaceName != "" && strings.EqualFold(b.Race, race.RaceName) {
			b.Points = Score(b, podium)
		}
		out[i] = b
	}
	return out
}
