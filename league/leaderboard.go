package league

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/padraicbc/paddock/models"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Standing is one line of the betting championship.
type Standing struct {
	Position int    `json:"position"`
	Tag      string `json:"tag"`
	Nick     string `json:"nick"`
	Points   int    `json:"points"`
}

// Tag shortens a nick to the three-letter upper-case form shown in tables.
func Tag(nick string) string {
	t := strings.ToUpper(nonAlnum.ReplaceAllString(nick, ""))
	if len(t) > 3 {
		t = t[:3]
	}
	return t
}

// Leaderboard ranks users with points, most points first. Users on equal
// points keep their file order.
func Leaderboard(users []models.User) []Standing {
	ranked := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Points > 0 {
			ranked = append(ranked, u)
		}
	}
	slices.SortStableFunc(ranked, func(a, b models.User) int {
		return cmp.Compare(b.Points, a.Points)
	})

	out := make([]Standing, len(ranked))
	for i, u := range ranked {
		out[i] = Standing{Position: i + 1, Tag: Tag(u.Nick), Nick: u.Nick, Points: u.Points}
	}
	return out
}
