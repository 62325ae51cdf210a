// Package engine turns stored contacts into birthday views: the celebrations
// of a given day with their composed wishes, the upcoming-birthday list, and
// an iCalendar feed carrying each wish in the event description.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/emersion/go-ical"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
	"github.com/TeQuac/Gratulations/internal/wish"
)

// Clock abstracts time.Now() to allow deterministic testing. The Generator
// consults it for "today"; the wish composer itself never reads it.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Generator is the core service converting contact records into wishes,
// upcoming lists, and calendar data.
type Generator struct {
	Clock Clock

	// FormatSummary allows the caller to inject localized event summaries.
	// When nil, a German fallback is used.
	FormatSummary func(name string, age int) string
}

// Celebration is one contact whose birthday falls on the requested day,
// together with the turned age and the freshly composed wish.
type Celebration struct {
	Contact model.Contact      `json:"contact"`
	Age     int                `json:"age"`
	Wish    wish.GeneratedWish `json:"wish"`
}

// BirthdaysOn composes a celebration for every contact whose birth month and
// day match the given day. Contacts with unparseable birth dates are skipped
// with a log entry. Results are ordered by name using German collation.
func (g *Generator) BirthdaysOn(contacts []model.Contact, day time.Time) []Celebration {
	var out []Celebration
	for _, c := range contacts {
		birthDate, err := time.Parse(config.DateFormatDayKey, c.BirthDate)
		if err != nil {
			slog.Warn(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyContactID, c.ID,
				config.LogKeyValue, c.BirthDate)
			continue
		}
		if birthDate.Month() != day.Month() || birthDate.Day() != day.Day() {
			continue
		}

		out = append(out, Celebration{
			Contact: c,
			Age:     day.Year() - birthDate.Year(),
			Wish:    wish.Compose(c, day),
		})
	}

	sortByName(out)
	return out
}

func sortByName(cs []Celebration) {
	col := collate.New(language.German)
	sort.SliceStable(cs, func(i, j int) bool {
		if r := col.CompareString(cs[i].Contact.PersonName, cs[j].Contact.PersonName); r != 0 {
			return r < 0
		}
		return cs[i].Contact.ID < cs[j].Contact.ID
	})
}

// WishFor composes the wish of a single contact for the given day.
func (g *Generator) WishFor(c model.Contact, day time.Time) (Celebration, error) {
	birthDate, err := time.Parse(config.DateFormatDayKey, c.BirthDate)
	if err != nil {
		return Celebration{}, fmt.Errorf("%s: %w", config.ErrBirthDateParse, err)
	}
	return Celebration{
		Contact: c,
		Age:     day.Year() - birthDate.Year(),
		Wish:    wish.Compose(c, day),
	}, nil
}

// BuildCalendar constructs the iCalendar feed for all contacts. Every contact
// gets one all-day event per year in the previous/current/next year window,
// skipping years before the birth. The event description carries the wish as
// it would read on that very day, so the text in the calendar matches what
// the engine would produce when the day arrives.
//
// It returns the encoded feed and the number of birthdays falling on today.
func (g *Generator) BuildCalendar(ctx context.Context, contacts []model.Contact, reminderTrigger string) ([]byte, int, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Birthdays are local calendar dates, so the event logic runs in local
	// time; only the DTSTAMP is stamped in UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ processed, withEvents, today int }{}

	for _, c := range contacts {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		stats.processed++

		birthDate, err := time.Parse(config.DateFormatDayKey, c.BirthDate)
		if err != nil {
			log.Warn(config.MsgSkippedDate,
				config.LogKeyContactID, c.ID,
				config.LogKeyValue, c.BirthDate)
			continue
		}
		stats.withEvents++

		events, isToday := g.createEvents(c, birthDate, reminderTrigger, now)
		if isToday {
			stats.today++
			log.Info(config.MsgBdayToday,
				config.LogKeyName, c.PersonName,
				config.LogKeyDOB, c.BirthDate)
		}

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		g.logCalendarStats(stats)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logCalendarStats(stats)
	log.Debug("Calendar build finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	return buf.Bytes(), stats.today, nil
}

func (g *Generator) logCalendarStats(stats struct{ processed, withEvents, today int }) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withEvents),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// createEvents generates one event per year in the three-year window around
// now, never before the contact's birth year.
func (g *Generator) createEvents(c model.Contact, birthDate time.Time, reminderTrigger string, now time.Time) ([]*ical.Event, bool) {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	var events []*ical.Event
	isToday := false

	todayYear, todayMonth, todayDay := now.Date()

	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, c.ID, y, config.ICalDomain))

		age := y - birthDate.Year()

		summary := fmt.Sprintf(config.FallbackSummaryAge, c.PersonName, age)
		if age == 0 {
			summary = fmt.Sprintf(config.FallbackSummaryBirth, c.PersonName)
		}
		if g.FormatSummary != nil {
			summary = g.FormatSummary(c.PersonName, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to Mar 1 in non-leap years via time.Date.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

		if y == todayYear && eventDate.Month() == todayMonth && eventDate.Day() == todayDay {
			isToday = true
		}

		// The description holds the wish as composed for the event's own
		// day, matching the deterministic day-stable output.
		event.Props.SetText(config.PropDescription, wish.Compose(c, eventDate).Text)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events, isToday
}

// addAlarm appends a DISPLAY alarm to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a VALUE=TEXT param on the duration.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
