package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/daemon"
	"github.com/climacurat/climacurat/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (sqlite, in-memory sessions, template reload)")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the ClimaCurat web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			// optional .env file, ignored when absent
			if err = godotenv.Load(); err != nil {
				log.Debug().Msg("no .env file found")
			}

			if devMode {
				_ = os.Setenv("DEV_MODE", "true")
			}

			if cfg, err = config.Load(); err != nil {
				panic(err)
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			daemon := daemon.New(&cfg)
			if err := daemon.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
