package engine

import (
	"regexp"
	"time"

	"github.com/TeQuac/Gratulations/internal/config"
)

// notifyTimePattern accepts 24h wall-clock times, "00:00" to "23:59".
var notifyTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// NormalizeNotifyTime validates a configured notification time and falls back
// to the default when the value is empty or malformed.
func NormalizeNotifyTime(value string) string {
	if notifyTimePattern.MatchString(value) {
		return value
	}
	return config.DefaultNotifyTime
}

// DayKey returns the calendar-day key for dedup bookkeeping.
func DayKey(t time.Time) string {
	return t.Format(config.DateFormatDayKey)
}

// NotificationDue reports whether the daily birthday notification should fire
// now: the wall clock has reached the configured trigger time and no
// notification has been issued for today yet. Issuing at most once per day is
// the caller's job, by persisting DayKey(now) after a successful run.
func NotificationDue(now time.Time, notifyTime, lastNotifiedDay string) bool {
	if lastNotifiedDay == DayKey(now) {
		return false
	}

	trigger, err := time.Parse(config.NotifyTimeFormat, NormalizeNotifyTime(notifyTime))
	if err != nil {
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	triggerMinutes := trigger.Hour()*60 + trigger.Minute()
	return nowMinutes >= triggerMinutes
}
