package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import contacts from a vCard file or URL",
		Long:  "Imports vCards from a local .vcf file or a CardDAV/WebDAV URL. Imported\ncontacts get neutral wish attributes; refine them with 'edit' afterwards.\nA password given via --pass is stored in the system keyring and reused on\nlater runs for the same user.",
		RunE:  runImport,
	}

	cmd.Flags().String("file", "", "Local vCard file (.vcf)")
	cmd.Flags().String("url", "", "Remote vCard URL (http/https)")
	cmd.Flags().String("user", "", "HTTP basic auth username")
	cmd.Flags().String("pass", "", "HTTP basic auth password (stored in the keyring)")

	cmd.MarkFlagsMutuallyExclusive("file", "url")
	cmd.MarkFlagsOneRequired("file", "url")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	rawURL, _ := cmd.Flags().GetString("url")
	user, _ := cmd.Flags().GetString("user")
	pass, _ := cmd.Flags().GetString("pass")

	log := slog.With(config.LogKeyComponent, config.CompCLI)

	reader, err := openImportSource(cmd, file, rawURL, user, pass, log)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	contacts, stats, err := engine.ParseVCards(cmd.Context(), reader)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	saved := 0
	for _, c := range contacts {
		if _, err := s.Save(cmd.Context(), c); err != nil {
			return err
		}
		saved++
	}

	log.Info(config.MsgImportDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyFound, stats.Imported),
			slog.Int(config.LogKeyCount, saved),
		),
	)
	return nil
}

// openImportSource opens the local file or fetches the URL, resolving the
// basic-auth password through the system keyring.
func openImportSource(cmd *cobra.Command, file, rawURL, user, pass string, log *slog.Logger) (io.ReadCloser, error) {
	if file != "" {
		return os.Open(file)
	}

	if rawURL == "" {
		return nil, errors.New(config.ErrWebURLEmpty)
	}

	if user != "" {
		if pass != "" {
			if err := keyring.Set(config.KeyringService, user, pass); err == nil {
				log.Debug(config.MsgPassStored, config.LogKeyUser, user)
			}
		} else {
			stored, err := keyring.Get(config.KeyringService, user)
			if err != nil {
				log.Debug(config.MsgPassFail,
					config.LogKeyUser, user,
					config.LogKeyError, err,
				)
			} else {
				pass = stored
			}
		}
	}

	fetcher := engine.NewHTTPFetcher()
	return fetcher.Fetch(cmd.Context(), rawURL, user, pass)
}
