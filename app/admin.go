package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/daemon"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/validate"
)

func init() { //nolint: gochecknoinits
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Username of the admin account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password of the admin account")

	if err := createAdminCmd.MarkFlagRequired("password"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(createAdminCmd)
}

var (
	adminUsername string
	adminPassword string

	createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			insert := &models.InsertUser{
				Username: adminUsername,
				Password: adminPassword,
			}

			if err := validate.Struct(insert); err != nil {
				return err
			}

			db := daemon.OpenDB(&cfg)
			if err := daemon.Migrate(db); err != nil {
				return err
			}

			user, err := store.NewGorm(db).CreateUser(context.Background(), insert)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin user %q (id %d)\n", user.Username, user.ID)

			return nil
		},
	}
)
