package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TeQuac/Gratulations/internal/config"
)

func TestNormalizeNotifyTime(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"", config.DefaultNotifyTime},
		{"8:00", config.DefaultNotifyTime},    // single-digit hour is not accepted
		{"25:00", config.DefaultNotifyTime},   // no such hour
		{"12:60", config.DefaultNotifyTime},   // no such minute
		{"morgens", config.DefaultNotifyTime}, // free text
		{"00:00", "00:00"},
		{"08:30", "08:30"},
		{"23:59", "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNotifyTime(tt.value))
		})
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-05-03", DayKey(time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC)))
}

func TestNotificationDue(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2024, 5, 3, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		now          time.Time
		notifyTime   string
		lastNotified string
		expected     bool
	}{
		{
			name:       "Before trigger time",
			now:        day(7, 59),
			notifyTime: "08:00",
			expected:   false,
		},
		{
			name:       "Exactly at trigger time",
			now:        day(8, 0),
			notifyTime: "08:00",
			expected:   true,
		},
		{
			name:       "After trigger time",
			now:        day(20, 15),
			notifyTime: "08:00",
			expected:   true,
		},
		{
			name:         "Already notified today",
			now:          day(9, 0),
			notifyTime:   "08:00",
			lastNotified: "2024-05-03",
			expected:     false,
		},
		{
			name:         "Notified yesterday",
			now:          day(9, 0),
			notifyTime:   "08:00",
			lastNotified: "2024-05-02",
			expected:     true,
		},
		{
			name:       "Malformed trigger falls back to default",
			now:        day(8, 0),
			notifyTime: "not-a-time",
			expected:   true,
		},
		{
			name:       "Malformed trigger before default",
			now:        day(7, 0),
			notifyTime: "not-a-time",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NotificationDue(tt.now, tt.notifyTime, tt.lastNotified))
		})
	}
}
