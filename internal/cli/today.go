package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
	"github.com/TeQuac/Gratulations/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's birthdays with their wishes",
		RunE:  runToday,
	}

	cmd.Flags().String(config.FlagDate, "", config.FlagDescDate)
	cmd.Flags().Bool("notify", false, "Respect the daily notification schedule: print only when due and mark the day as notified")
	cmd.Flags().String("at", "", "Override the current wall-clock time (HH:MM) for --notify")

	RootCmd.AddCommand(cmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString(config.FlagDate)
	day, err := resolveDay(dateFlag)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	notifyMode, _ := cmd.Flags().GetBool("notify")
	if notifyMode {
		due, err := notificationDue(cmd, s, day)
		if err != nil {
			return err
		}
		if !due {
			slog.Info(config.MsgNotifySkipped,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyDay, engine.DayKey(day),
			)
			return nil
		}
	}

	contacts, err := s.ForDay(cmd.Context(), day.Format(config.MonthDayFormat))
	if err != nil {
		return err
	}

	trans := newTranslator()
	gen := newGenerator(trans)
	celebrations := gen.BirthdaysOn(contacts, day)

	if notifyMode {
		if err := s.SetPref(cmd.Context(), config.PrefLastNotified, engine.DayKey(day)); err != nil {
			return err
		}
		slog.Info(config.MsgNotifySent,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyCount, len(celebrations),
			config.LogKeyDay, engine.DayKey(day),
		)
	}

	if formatFlag == config.FormatJSON {
		printJSON(celebrations)
		return nil
	}

	if len(celebrations) == 0 {
		fmt.Println(trans.Msg(config.TKeyTodayNone))
		return nil
	}

	for _, cel := range celebrations {
		fmt.Println(trans.MsgData(config.TKeyTodayEntry, map[string]interface{}{
			"Name": cel.Contact.PersonName,
			"Age":  cel.Age,
		}))
		fmt.Println(cel.Wish.Text)
		fmt.Println()
	}
	return nil
}

// notificationDue checks the configured trigger time against the clock and
// the stored last-notified day.
func notificationDue(cmd *cobra.Command, s *store.SQLiteStore, day time.Time) (bool, error) {
	notifyTime, err := s.GetPref(cmd.Context(), config.PrefNotifyTime)
	if err != nil {
		return false, err
	}
	lastNotified, err := s.GetPref(cmd.Context(), config.PrefLastNotified)
	if err != nil {
		return false, err
	}

	now := time.Now()
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		clock, err := time.Parse(config.NotifyTimeFormat, at)
		if err != nil {
			return false, fmt.Errorf("%s %q: %w", config.ErrDateParse, at, err)
		}
		now = time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
	} else {
		now = time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), 0, 0, day.Location())
	}

	return engine.NotificationDue(now, notifyTime, lastNotified), nil
}
