package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoFolio/GoFolio/internal/config"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name   string
		cfg    config.Config
		wanted string
	}{
		{
			name: "mysql",
			cfg: config.Config{
				DB: config.DB{
					Engine:   config.EngineMySQL,
					Host:     "127.0.0.1",
					Port:     3306,
					User:     "gofolio",
					Password: "secret",
					Name:     "gofolio",
					Extras:   "parseTime=True",
				},
			},
			wanted: "gofolio:secret@tcp(127.0.0.1:3306)/gofolio?parseTime=True",
		},
		{
			name: "unknown engine falls back to mysql",
			cfg: config.Config{
				DB: config.DB{
					Host:     "db.local",
					Port:     3307,
					User:     "u",
					Password: "p",
					Name:     "n",
				},
			},
			wanted: "u:p@tcp(db.local:3307)/n?",
		},
		{
			name: "postgres",
			cfg: config.Config{
				DB: config.DB{
					Engine:   config.EnginePostgres,
					Host:     "127.0.0.1",
					Port:     5432,
					User:     "gofolio",
					Password: "secret",
					Name:     "gofolio",
				},
			},
			wanted: "host=127.0.0.1 user=gofolio password=secret dbname=gofolio port=5432 sslmode=disable",
		},
		{
			name: "sqlite with path",
			cfg: config.Config{
				DB: config.DB{
					Engine: config.EngineSQLite,
					Path:   "/var/lib/gofolio/site.db",
				},
			},
			wanted: "/var/lib/gofolio/site.db",
		},
		{
			name: "sqlite default path",
			cfg: config.Config{
				DB: config.DB{Engine: config.EngineSQLite},
			},
			wanted: "gofolio.db",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wanted, Create(&tc.cfg))
		})
	}
}
