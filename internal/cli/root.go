// Package cli implements the gratulations CLI commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
	"github.com/TeQuac/Gratulations/internal/i18n"
	"github.com/TeQuac/Gratulations/internal/store"
)

var (
	dbPath     string
	langFlag   string
	formatFlag string
	debugMode  bool

	logFile *os.File
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:     "gratulations",
	Short:   "Birthday tracking with personalized German wish texts",
	Long:    "Gratulations keeps a local birthday book and composes deterministic,\npersonalized German congratulation texts from each contact's relationship\nmetadata. It can also serve the birthdays as an iCalendar feed.",
	Version: config.Version,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debugMode)
		logStartupInfo()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, config.FlagDB, "d", "", config.FlagDescDB)
	RootCmd.PersistentFlags().StringVarP(&langFlag, config.FlagLang, "l", config.DefaultLanguage, config.FlagDescLang)
	RootCmd.PersistentFlags().StringVarP(&formatFlag, config.FlagFormat, "f", config.FormatText, config.FlagDescFormat)
	RootCmd.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)

	cobra.OnFinalize(func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	})
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv(config.EnvDBPath); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, config.DefaultDBDir, config.DefaultDBFile)
}

func openStore() (*store.SQLiteStore, error) {
	s, err := store.NewSQLiteStore(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreOpen, err)
	}
	return s, nil
}

func newTranslator() *i18n.Translator {
	return i18n.New(langFlag)
}

// newGenerator wires the engine with localized event summaries.
func newGenerator(trans *i18n.Translator) *engine.Generator {
	return &engine.Generator{
		Clock: engine.RealClock{},
		FormatSummary: func(name string, age int) string {
			if age == 0 {
				return trans.MsgData(config.TKeyEvtSummaryBirth, map[string]interface{}{"Name": name})
			}
			return trans.MsgData(config.TKeyEvtSummaryAge, map[string]interface{}{"Name": name, "Age": age})
		},
	}
}

// setupLogging configures the default slog logger: JSON to stdout, plus a
// log file in the user cache directory when available.
func setupLogging(debug bool) {
	writers := []io.Writer{os.Stdout}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
