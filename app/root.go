// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoFolio/GoFolio/internal/config"
)

var (
	cfg        config.Config
	configPath string // Path to the configuration directory

	rootCmd = &cobra.Command{
		Use:   "gofolio",
		Short: "GoFolio is a portfolio website with an admin backend",
		Long: `GoFolio serves a personal portfolio website together with an
admin interface and JSON API for managing portfolio items, skills,
technologies, contact messages and site settings.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"./etc/",
		"Path to the configuration directory",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
