package models

import "time"

const (
	// EventTimeFormat is the layout of the date column in events.csv.
	EventTimeFormat = "2006-01-02 15:04:05 UTC"
	// ZonedTimeFormat is used for the per-zone display dates.
	ZonedTimeFormat = "Mon 02 Jan 15:04 MST"
)

// EventSchema is the column layout of events.csv. DateCEST and DateEST
// have no column.
var EventSchema = Schema{
	{Name: "category", Kind: KindString},
	{Name: "title", Kind: KindString},
	{Name: "description", Kind: KindString},
	{Name: "date", Kind: KindString},
	{Name: "channel", Kind: KindString},
	{Name: "image", Kind: KindString},
	{Name: "mention", Kind: KindString},
}

// Event is one motorsport calendar entry.
type Event struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	DateCEST    string `json:"dateCEST"`
	DateEST     string `json:"dateEST"`
	Channel     string `json:"channel"`
	Image       string `json:"image"`
	Mention     string `json:"mention"`
}

// ParseEvent builds an Event from one events.csv line.
func ParseEvent(line string) (Event, error) {
	v, err := EventSchema.Parse(line)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Category:    v.String("category"),
		Title:       v.String("title"),
		Description: v.String("description"),
		Date:        v.String("date"),
		Channel:     v.String("channel"),
		Image:       v.String("image"),
		Mention:     v.String("mention"),
	}, nil
}

// Line renders e in events.csv layout.
func (e Event) Line() string {
	return EventSchema.Format(NewValues().
		SetString("category", e.Category).
		SetString("title", e.Title).
		SetString("description", e.Description).
		SetString("date", e.Date).
		SetString("channel", e.Channel).
		SetString("image", e.Image).
		SetString("mention", e.Mention))
}

// Time parses Date.
func (e Event) Time() (time.Time, error) {
	return time.Parse(EventTimeFormat, e.Date)
}

// WithZones returns a copy of e with DateCEST and DateEST rendered in the
// given locations. If Date does not parse the copy is returned unchanged.
func (e Event) WithZones(cest, est *time.Location) Event {
	t, err := e.Time()
	if err != nil {
		return e
	}
	if cest != nil {
		e.DateCEST = t.In(cest).Format(ZonedTimeFormat)
	}
	if est != nil {
		e.DateEST = t.In(est).Format(ZonedTimeFormat)
	}
	return e
}
