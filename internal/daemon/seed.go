package daemon

import (
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
)

// EnvAdminPassword overrides the initial admin password at first boot.
const EnvAdminPassword = "GOFOLIO_ADMIN_PASSWORD"

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed initial admin user if user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		password := os.Getenv(EnvAdminPassword)
		if password == "" {
			password = "changeme"
			log.Warn().Msgf("seeding admin user with default password, set %s or change it after first login", EnvAdminPassword)
		}

		db.Create(
			&models.User{
				Username: "admin",
				Password: models.HashPassword(password),
			},
		)
	}

	// Seed site settings singleton so the landing page has content
	db.Model(&models.SiteSettings{}).Count(&count)
	if count == 0 {
		db.Create(
			&models.SiteSettings{
				SiteTitle:       cfg.Title,
				SiteDescription: "Personal portfolio",
				PrimaryColor:    "#2563eb",
			},
		)
	}
}
