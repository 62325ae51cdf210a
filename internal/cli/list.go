package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts sorted by next birthday",
		RunE:  runList,
	}
	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	contacts, err := s.List(cmd.Context())
	if err != nil {
		return err
	}

	gen := newGenerator(newTranslator())
	upcoming := gen.Upcoming(contacts)

	if formatFlag == config.FormatJSON {
		printJSON(upcoming)
		return nil
	}

	for _, u := range upcoming {
		fmt.Printf("%s  %s (%d)  [%s]\n",
			u.NextOccurrence.Format(config.DateFormatDayKey),
			u.Contact.PersonName,
			u.AgeNext,
			u.Contact.ID,
		)
	}
	return nil
}
