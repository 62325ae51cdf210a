package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

// ImportStats summarizes one vCard import run.
type ImportStats struct {
	Processed int // cards decoded
	Imported  int // contacts produced
	Skipped   int // cards without a usable birth date
}

// ParseVCards decodes a vCard stream into contact records. Cards without a
// BDAY, or with a BDAY lacking a year, are skipped: the engine needs the
// birth year for ages and seeds. Malformed cards are logged and skipped so a
// single bad entry never aborts the import.
//
// Imported contacts carry neutral wish attributes; the vCard format has no
// notion of bond strength or communication style.
func ParseVCards(ctx context.Context, r io.Reader) ([]model.Contact, ImportStats, error) {
	decoder := vcard.NewDecoder(r)
	var stats ImportStats
	var contacts []model.Contact

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.Processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			stats.Skipped++
			continue
		}

		birthDate, err := parseBDay(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			stats.Skipped++
			continue
		}

		// Name strategy: FN (formatted) > N (structured) > fallback.
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		c := model.Contact{
			BirthDate:          birthDate.Format(config.DateFormatDayKey),
			PersonName:         name,
			Relationship:       config.ImportDefaultRelationship,
			Gender:             config.ImportDefaultGender,
			BondStrength:       config.ImportDefaultBond,
			CommunicationStyle: config.ImportDefaultStyle,
			EmojiPreference:    config.ImportDefaultEmoji,
			WriterType:         config.ImportDefaultWriter,
		}
		if email := card.Get(config.VCardEmail); email != nil {
			c.Email = email.Value
		}
		if tel := card.Get(config.VCardTel); tel != nil {
			c.WhatsApp = tel.Value
		}

		contacts = append(contacts, c)
		stats.Imported++
	}

	return contacts, stats, nil
}

// parseBDay handles the vCard date formats that include a year.
func parseBDay(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatDayKey,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
