package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

// UpcomingBirthday is a contact projected onto its next birthday occurrence,
// used for sorted list output.
type UpcomingBirthday struct {
	Contact model.Contact `json:"contact"`

	// NextOccurrence is the date of the birthday in the current or next year.
	NextOccurrence time.Time `json:"nextOccurrence"`

	// AgeNext is the age the person turns at NextOccurrence.
	AgeNext int `json:"ageNext"`
}

// Upcoming projects every contact onto its next birthday relative to now and
// sorts the result by occurrence date. Contacts with unparseable birth dates
// are skipped with a log entry.
func (g *Generator) Upcoming(contacts []model.Contact) []UpcomingBirthday {
	now := g.Clock.Now()

	var out []UpcomingBirthday
	for _, c := range contacts {
		birthDate, err := time.Parse(config.DateFormatDayKey, c.BirthDate)
		if err != nil {
			slog.Warn(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyContactID, c.ID,
				config.LogKeyValue, c.BirthDate)
			continue
		}

		next, ageNext := nextOccurrence(now, birthDate)
		out = append(out, UpcomingBirthday{
			Contact:        c,
			NextOccurrence: next,
			AgeNext:        ageNext,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextOccurrence.Equal(out[j].NextOccurrence) {
			return out[i].NextOccurrence.Before(out[j].NextOccurrence)
		}
		return out[i].Contact.PersonName < out[j].Contact.PersonName
	})
	return out
}

// nextOccurrence determines the next birthday date relative to now. A
// birthday falling on today counts as today, not next year.
func nextOccurrence(now, birthDate time.Time) (time.Time, int) {
	loc := now.Location()

	candidate := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	}

	return candidate, candidate.Year() - birthDate.Year()
}
