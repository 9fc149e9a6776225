// Package calendar builds iCalendar payloads and calendar deep links for the
// wedding day.
package calendar

import (
	"fmt"
	"net/url"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/llehouerou/weddingstory/internal/content"
)

const (
	prodID     = "-//Wedding Invitation//EN"
	uidDomain  = "weddingstory.invalid"
	stampFmt   = "20060102T150405Z"
	googleBase = "https://calendar.google.com/calendar/render"
)

// Event is a single calendar entry.
type Event struct {
	UID         string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
}

// FromContent converts the invitation's event. A fresh UID is assigned.
func FromContent(e content.Event) Event {
	return Event{
		UID:         uuid.NewString() + "@" + uidDomain,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		Description: e.Description,
	}
}

// ICS renders the event as an RFC 5545 VCALENDAR stamped at now.
func ICS(e Event, now time.Time) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	ev := cal.AddEvent(e.UID)
	ev.SetDtStampTime(now)
	ev.SetStartAt(e.Start)
	ev.SetEndAt(e.End)
	ev.SetSummary(e.Title)
	if e.Description != "" {
		ev.SetDescription(e.Description)
	}
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}
	return []byte(cal.Serialize())
}

// GoogleURL returns a Google Calendar "add event" link.
func GoogleURL(e Event) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", fmt.Sprintf("%s/%s", formatTime(e.Start), formatTime(e.End)))
	if e.Description != "" {
		params.Set("details", e.Description)
	}
	if e.Location != "" {
		params.Set("location", e.Location)
	}
	return googleBase + "?" + params.Encode()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(stampFmt)
}
