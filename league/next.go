package league

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/padraicbc/paddock/models"
)

const (
	// Any matches every category or session.
	Any = "any"
	// DefaultZone is used for users without a usable time zone.
	DefaultZone = "Europe/Berlin"
)

// ErrNoEvent is returned when no upcoming event matches.
var ErrNoEvent = errors.New("no event found")

// ExpandQuery turns a user search such as "f2" or "quali" into the
// category and session used by NextEvent.
func ExpandQuery(search string) (category, session string) {
	search = strings.TrimSpace(search)
	switch strings.ToLower(search) {
	case "":
		return Any, Any
	case "f1", "formula1":
		return "[Formula 1]", Any
	case "f2", "formula2":
		return "[Formula 2]", Any
	case "f3", "formula3":
		return "[Formula 3]", Any
	case "q", "quali", "qualy", "qualifier", "qualifying":
		return "[Formula 1]", "Qualifying"
	case "r", "race":
		return "[Formula 1]", "Race"
	case "s", "sprint":
		return "[Formula 1]", "Sprint Race"
	default:
		return "[" + search + "]", Any
	}
}

func matches(want, got string) bool {
	return strings.EqualFold(want, Any) || strings.EqualFold(want, got)
}

// NextEvent returns the first event in calendar order that matches
// category and session and has not started before now. The calendar is
// assumed to be sorted by date.
func NextEvent(events []models.Event, category, session string, now time.Time) (models.Event, error) {
	for _, e := range events {
		if !matches(category, e.Category) || !matches(session, e.Description) {
			continue
		}
		t, err := e.Time()
		if err != nil {
			return models.Event{}, fmt.Errorf("event %q: %w", e.Title, err)
		}
		if !t.Before(now) {
			return e, nil
		}
	}
	return models.Event{}, ErrNoEvent
}

// UserLocation returns the time zone of the user whose nick matches,
// ignoring case. Unknown nicks and zones that fail to load get DefaultZone.
func UserLocation(users []models.User, nick string) *time.Location {
	tz := DefaultZone
	for _, u := range users {
		if strings.EqualFold(u.Nick, nick) {
			tz = u.Timezone
		}
	}
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}

// Countdown is the time left until an event, rounded down to the minute.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Until returns the countdown from now to t. Past times give zero.
func Until(t, now time.Time) Countdown {
	d := t.Sub(now)
	if d < 0 {
		return Countdown{}
	}
	m := int(d / time.Minute)
	return Countdown{Days: m / (24 * 60), Hours: m / 60 % 24, Minutes: m % 60}
}
