package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact to the birthday book",
		RunE:  runAdd,
	}

	cmd.Flags().String("name", "", "Person name (required)")
	cmd.Flags().String("birthdate", "", "Birth date as YYYY-MM-DD (required)")
	cmd.Flags().String("nickname", "", "Nickname used in informal greetings")
	cmd.Flags().String("relationship", config.ImportDefaultRelationship, "Relationship category (e.g. Mutter, Chef, Freund)")
	cmd.Flags().String("salutation", "", "Formal salutation: Herr or Frau")
	cmd.Flags().String("gender", config.GenderDiverse, "Gender: männlich, weiblich or divers")
	cmd.Flags().String("bond", config.BondMedium, "Closeness: sehr eng, eng, mittel or locker")
	cmd.Flags().String("description", "", "Free-text personality description")
	cmd.Flags().String("style", config.CommStyleDirect, "Communication style")
	cmd.Flags().String("emoji", config.PrefNo, "Emoji preference: ja or nein")
	cmd.Flags().String("writer", config.PrefNo, "Long-text writer: ja or nein")
	cmd.Flags().String("email", "", "Email address for mailto links")
	cmd.Flags().String("whatsapp", "", "Phone number for WhatsApp links")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birthdate")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	birthDate, _ := cmd.Flags().GetString("birthdate")
	if _, err := time.Parse(config.DateFormatDayKey, birthDate); err != nil {
		return fmt.Errorf("%s %q: %w", config.ErrBirthDateParse, birthDate, err)
	}

	getString := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	c := model.Contact{
		BirthDate:          birthDate,
		PersonName:         getString("name"),
		Nickname:           getString("nickname"),
		Relationship:       getString("relationship"),
		Salutation:         getString("salutation"),
		Gender:             getString("gender"),
		BondStrength:       getString("bond"),
		Description:        getString("description"),
		CommunicationStyle: getString("style"),
		EmojiPreference:    getString("emoji"),
		WriterType:         getString("writer"),
		Email:              getString("email"),
		WhatsApp:           getString("whatsapp"),
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	saved, err := s.Save(cmd.Context(), c)
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
