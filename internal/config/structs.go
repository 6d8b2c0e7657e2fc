package config

import (
	"time"

	"github.com/GoFolio/GoFolio/internal/logger"
)

// Database engines supported by the daemon.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Mail      Mail
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CacheEnabled bool          // cache public reads (portfolio, skills, technologies, settings)
	CacheTTL     time.Duration // expiry for cached public reads
	Domain       string        // domain name for the webserver
	Port         int           // listening port for the webserver
	ShutDownTime int           // wait time for shutdown
	URL          string        // base url for the webserver
	Session      Session       // session settings
}

// Mail configures the optional outbound notification for new contact
// messages. When disabled, messages are only persisted.
type Mail struct {
	Enabled bool
	URL     string // mail service endpoint accepting a JSON message
	APIKey  string
	From    string
	To      string // recipient for contact notifications
	Timeout time.Duration
}
