package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE:  runRm,
	}
	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	slog.Info(config.MsgContactDeleted,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyContactID, args[0],
	)
	return nil
}
