package cli

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
	"github.com/TeQuac/Gratulations/internal/i18n"
	"github.com/TeQuac/Gratulations/internal/server"
	"github.com/TeQuac/Gratulations/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the iCalendar feed and JSON API over HTTP",
		Long:  "Starts a local HTTP server exposing the birthday calendar as an ICS feed\n(with each wish in the event description) and a small read-only JSON API.\nA background worker refreshes the feed and issues daily birthday\nnotifications to the log.",
		RunE:  runServe,
	}

	cmd.Flags().StringP(config.FlagPort, "p", config.DefaultPort, config.FlagDescPort)
	cmd.Flags().Int(config.FlagInterval, config.DefaultRefreshMin, config.FlagDescInterval)
	cmd.Flags().String(config.FlagReminder, config.DefaultReminder, config.FlagDescReminder)

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString(config.FlagPort)
	if err := validatePort(port); err != nil {
		return err
	}

	interval, _ := cmd.Flags().GetInt(config.FlagInterval)
	reminder, _ := cmd.Flags().GetString(config.FlagReminder)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	trans := newTranslator()
	gen := newGenerator(trans)
	srv := server.New(port, s, gen)

	ctx := cmd.Context()

	// First refresh before accepting traffic, so the feed is never 503 for
	// longer than the initial build takes.
	if err := srv.RefreshCalendar(ctx, reminder); err != nil {
		slog.Error(config.MsgRefreshFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err,
		)
	}

	go runWorker(ctx, srv, s, gen, trans, interval, reminder)

	return srv.Start(ctx)
}

// runWorker periodically rebuilds the calendar cache and issues the daily
// birthday notification once the configured wall-clock time has passed.
func runWorker(ctx context.Context, srv *server.Server, s *store.SQLiteStore, gen *engine.Generator, trans *i18n.Translator, intervalMin int, reminder string) {
	if intervalMin <= config.DisabledInterval {
		return
	}

	log := slog.With(config.LogKeyComponent, config.CompWorker)
	log.Info(config.MsgWorkerStart, config.LogKeyInterval, intervalMin)

	ticker := time.NewTicker(time.Duration(intervalMin) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return
		case <-ticker.C:
			log.Debug(config.MsgRefreshStarted)
			if err := srv.RefreshCalendar(ctx, reminder); err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
			}
			checkNotifications(ctx, s, gen, trans, log)
		}
	}
}

// checkNotifications fires the daily notification log entries at most once
// per calendar day.
func checkNotifications(ctx context.Context, s *store.SQLiteStore, gen *engine.Generator, trans *i18n.Translator, log *slog.Logger) {
	now := gen.Clock.Now()

	notifyTime, err := s.GetPref(ctx, config.PrefNotifyTime)
	if err != nil {
		log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
		return
	}
	lastNotified, err := s.GetPref(ctx, config.PrefLastNotified)
	if err != nil {
		log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
		return
	}

	if !engine.NotificationDue(now, notifyTime, lastNotified) {
		return
	}

	contacts, err := s.ForDay(ctx, now.Format(config.MonthDayFormat))
	if err != nil {
		log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
		return
	}

	for _, cel := range gen.BirthdaysOn(contacts, now) {
		preview := cel.Wish.Text
		if len(preview) > config.NotifyPreviewLength {
			preview = preview[:config.NotifyPreviewLength]
		}
		title := trans.MsgData(config.TKeyNotifyTitle, map[string]interface{}{
			"Name": cel.Contact.PersonName,
		})
		log.Info(config.MsgBdayToday,
			config.LogKeyTitle, title,
			config.LogKeyName, cel.Contact.PersonName,
			config.LogKeyWish, preview,
		)
	}

	if err := s.SetPref(ctx, config.PrefLastNotified, engine.DayKey(now)); err != nil {
		log.Error(config.MsgRefreshFailed, config.LogKeyError, err)
		return
	}
	log.Info(config.MsgNotifySent, config.LogKeyDay, engine.DayKey(now))
}

func validatePort(port string) error {
	if port == "" {
		return errors.New(config.ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < config.MinPort || n > config.MaxPort {
		return errors.New(config.ErrPortRange)
	}
	return nil
}
