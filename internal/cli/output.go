package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/TeQuac/Gratulations/internal/config"
)

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// resolveDay returns the day a command operates on: the --date override when
// given, otherwise today.
func resolveDay(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return time.Now(), nil
	}
	day, err := time.Parse(config.DateFormatDayKey, dateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", config.ErrDateParse, dateFlag, err)
	}
	return day, nil
}
