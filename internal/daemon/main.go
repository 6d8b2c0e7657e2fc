// Package daemon bootstraps the application: database, migrations, seed
// data, session storage and the web service.
package daemon

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/dsn"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/mail"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web"
	"github.com/GoFolio/GoFolio/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WaitShutdown blocks until the web service has shut down gracefully.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := OpenDB(cfg)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(sessionStorage(cfg))

	var st store.Store = store.NewGorm(db)
	if cfg.Webserver.CacheEnabled {
		st = store.NewCached(st, cfg.Webserver.CacheTTL)
	}

	return &Daemon{
		webService: web.New(cfg, st, mail.New(cfg.Mail)),
		cfg:        cfg,
	}
}

// OpenDB opens the gorm connection for the configured engine.
func OpenDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	default: // mysql
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	return db
}

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Skill{},
		&models.Technology{},
		&models.ContactMessage{},
		&models.SiteSettings{},
	)
}

// sessionStorage builds the fiber session storage backend matching the
// database engine. The sqlite engine keeps sessions in memory: the pure-Go
// sqlite driver serializes writes and sessions are disposable anyway.
func sessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=disable",
				cfg.DB.User,
				cfg.DB.Password,
				cfg.DB.Host,
				cfg.DB.Port,
				cfg.DB.Name,
			),
			Table: "sessions",
		})
	case config.EngineSQLite:
		return sessionmemory.New(sessionmemory.Config{
			GCInterval: 10 * time.Second,
		})
	default: // mysql
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}
}
