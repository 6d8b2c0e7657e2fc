package app

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/daemon"
	"github.com/GoFolio/GoFolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the GoFolio web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			// .env is optional, used in development
			_ = godotenv.Load()

			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d := daemon.New(&cfg)

			go func() {
				if err := d.Start(); err != nil {
					log.Fatal().Err(err).Msg("web service failed")
				}
			}()

			d.WaitShutdown()

			return nil
		},
	}
)
