package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing contact",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	cmd.Flags().String("name", "", "Person name")
	cmd.Flags().String("birthdate", "", "Birth date as YYYY-MM-DD")
	cmd.Flags().String("nickname", "", "Nickname used in informal greetings")
	cmd.Flags().String("relationship", "", "Relationship category")
	cmd.Flags().String("salutation", "", "Formal salutation: Herr or Frau")
	cmd.Flags().String("gender", "", "Gender: männlich, weiblich or divers")
	cmd.Flags().String("bond", "", "Closeness: sehr eng, eng, mittel or locker")
	cmd.Flags().String("description", "", "Free-text personality description")
	cmd.Flags().String("style", "", "Communication style")
	cmd.Flags().String("emoji", "", "Emoji preference: ja or nein")
	cmd.Flags().String("writer", "", "Long-text writer: ja or nein")
	cmd.Flags().String("email", "", "Email address for mailto links")
	cmd.Flags().String("whatsapp", "", "Phone number for WhatsApp links")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	contact, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	// Only flags the user actually set overwrite stored fields, so an empty
	// flag value can still clear a field intentionally.
	apply := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}

	apply("name", &contact.PersonName)
	apply("birthdate", &contact.BirthDate)
	apply("nickname", &contact.Nickname)
	apply("relationship", &contact.Relationship)
	apply("salutation", &contact.Salutation)
	apply("gender", &contact.Gender)
	apply("bond", &contact.BondStrength)
	apply("description", &contact.Description)
	apply("style", &contact.CommunicationStyle)
	apply("emoji", &contact.EmojiPreference)
	apply("writer", &contact.WriterType)
	apply("email", &contact.Email)
	apply("whatsapp", &contact.WhatsApp)

	if _, err := time.Parse(config.DateFormatDayKey, contact.BirthDate); err != nil {
		return fmt.Errorf("%s %q: %w", config.ErrBirthDateParse, contact.BirthDate, err)
	}

	saved, err := s.Save(cmd.Context(), *contact)
	if err != nil {
		return err
	}

	slog.Info(config.MsgContactSaved,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyContactID, saved.ID,
		config.LogKeyName, saved.PersonName,
	)

	if formatFlag == config.FormatJSON {
		printJSON(saved)
		return nil
	}
	fmt.Printf("%s (%s)\n", saved.PersonName, saved.ID)
	return nil
}
