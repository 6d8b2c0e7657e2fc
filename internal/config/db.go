package config

// DB holds the database configuration settings.
type DB struct {
	Engine   string // mysql, postgres or sqlite
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string // database file path, sqlite engine only
}
