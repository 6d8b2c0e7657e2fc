package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.engine is not mysql, postgres or sqlite.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be mysql, postgres or sqlite")

	// ErrMailURLEmpty error if mail is enabled without a service URL.
	ErrMailURLEmpty = errors.New("toml config mail.url can not be empty when mail is enabled")
)
