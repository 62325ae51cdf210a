package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the birthday calendar as an .ics file",
		RunE:  runExport,
	}

	cmd.Flags().StringP("out", "o", "geburtstage"+config.ExtICS, "Output file path")
	cmd.Flags().String(config.FlagReminder, config.DefaultReminder, config.FlagDescReminder)

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	reminder, _ := cmd.Flags().GetString(config.FlagReminder)

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
	ics, _, err := gen.BuildCalendar(cmd.Context(), contacts, reminder)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, ics, config.FilePermDefault); err != nil {
		return err
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyPath, out,
		config.LogKeySizeBytes, len(ics),
	)
	return nil
}
