// Package main provides the entry point for the GoFolio application.
// It serves a personal portfolio website using the Fiber framework: a
// public landing page, an admin interface and a JSON API for managing
// portfolio items, skills, technologies, contact messages and site
// settings. The application uses gorm for data persistence with mysql,
// postgres and sqlite engines.
package main
