package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeQuac/Gratulations/internal/model"
)

// fixedClock returns a constant instant, making "today" deterministic.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// TestNextOccurrence verifies the temporal projection logic, including year
// boundaries and leap-year normalization.
func TestNextOccurrence(t *testing.T) {
	// Reference "now": June 15th, 2025 (non-leap year).
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		birthDate    time.Time
		expectedDate time.Time
		expectedAge  int
	}{
		{
			name:         "Birthday already passed this year",
			birthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedAge:  36,
		},
		{
			name:         "Birthday still ahead this year",
			birthDate:    time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			expectedAge:  35,
		},
		{
			name:         "Birthday is today counts as today",
			birthDate:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedAge:  35,
		},
		{
			name:         "Leapling normalizes to March 1st in non-leap years",
			birthDate:    time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedAge:  26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, age := nextOccurrence(now, tt.birthDate)
			assert.Equal(t, tt.expectedDate, next)
			assert.Equal(t, tt.expectedAge, age)
		})
	}
}

func TestUpcoming_SortedByOccurrence(t *testing.T) {
	gen := &Generator{Clock: fixedClock{time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}}

	contacts := []model.Contact{
		{ID: "a", PersonName: "Anna", BirthDate: "1990-01-01"},   // next: 2026-01-01
		{ID: "b", PersonName: "Bernd", BirthDate: "1990-07-01"},  // next: 2025-07-01
		{ID: "c", PersonName: "Claudia", BirthDate: "kaputt"},    // skipped
		{ID: "d", PersonName: "Doris", BirthDate: "2000-06-15"},  // next: today
	}

	upcoming := gen.Upcoming(contacts)

	require.Len(t, upcoming, 3, "the unparseable birth date is skipped")
	assert.Equal(t, "Doris", upcoming[0].Contact.PersonName)
	assert.Equal(t, 25, upcoming[0].AgeNext)
	assert.Equal(t, "Bernd", upcoming[1].Contact.PersonName)
	assert.Equal(t, "Anna", upcoming[2].Contact.PersonName)
}
