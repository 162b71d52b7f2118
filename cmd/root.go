package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/config"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/logger"
)

// Build carries what main embeds into the binary.
type Build struct {
	Version   string
	Templates fs.FS
	Static    fs.FS
}

var (
	cfgFile   string
	logLevel  string
	build     Build
	appConfig *config.Config
	log       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "brightegwuogu",
	Short: "brightegwuogu.com site server and content tools",
	Long: `Serves the brightegwuogu.com site from Contentful content, and
lists sermons and music from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func Execute(b Build) {
	build = b
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func initialize() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	l, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appConfig = cfg
	log = l
	return nil
}
