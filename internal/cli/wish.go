package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "wish <id>",
		Short: "Compose the wish text for a contact",
		Long:  "Composes the personalized congratulation text for one contact. The text\nis deterministic for a given contact and calendar day; use --date to\npreview the text of another day.",
		Args:  cobra.ExactArgs(1),
		RunE:  runWish,
	}

	cmd.Flags().String(config.FlagDate, "", config.FlagDescDate)
	cmd.Flags().Bool("mailto", false, "Also print a prefilled mailto link")
	cmd.Flags().Bool("whatsapp", false, "Also print a prefilled WhatsApp link")

	RootCmd.AddCommand(cmd)
}

func runWish(cmd *cobra.Command, args []string) error {
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

	contact, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	gen := newGenerator(newTranslator())
	cel, err := gen.WishFor(*contact, day)
	if err != nil {
		return err
	}

	withMailto, _ := cmd.Flags().GetBool("mailto")
	withWhatsApp, _ := cmd.Flags().GetBool("whatsapp")

	if formatFlag == config.FormatJSON {
		out := struct {
			engine.Celebration
			Date     string `json:"date"`
			Mailto   string `json:"mailto,omitempty"`
			WhatsApp string `json:"whatsapp,omitempty"`
		}{
			Celebration: cel,
			Date:        day.Format(config.DateFormatDayKey),
		}
		if withMailto {
			out.Mailto = engine.MailtoLink(*contact, cel.Wish.Text)
		}
		if withWhatsApp {
			out.WhatsApp = engine.WhatsAppLink(*contact, cel.Wish.Text)
		}
		printJSON(out)
		return nil
	}

	fmt.Println(cel.Wish.Text)
	if withMailto {
		if link := engine.MailtoLink(*contact, cel.Wish.Text); link != "" {
			fmt.Println(link)
		}
	}
	if withWhatsApp {
		if link := engine.WhatsAppLink(*contact, cel.Wish.Text); link != "" {
			fmt.Println(link)
		}
	}
	return nil
}
