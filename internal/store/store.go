// Package store defines the typed data-access contract backing the routes
// and its implementations. One operation exists per entity and CRUD verb
// the route layer needs; a missing target id is reported with ErrNotFound,
// never with a driver error.
package store

import (
	"context"
	"errors"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrNotFound is returned when the target id has no matching row.
	// Only connectivity or driver failures surface as other errors.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when creating a user whose username
	// already exists.
	ErrUsernameTaken = errors.New("username already exists")
)

// Store is the data-access interface for all persisted entities.
type Store interface {
	// User operations.
	GetUser(ctx context.Context, id uint64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, insert *models.InsertUser) (*models.User, error)

	// Contact message operations. Listing is ordered by creation time.
	SaveContactMessage(ctx context.Context, insert *models.InsertContactMessage) (*models.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uint64) error

	// Portfolio operations.
	GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	GetPortfolioItem(ctx context.Context, id uint64) (*models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, insert *models.InsertPortfolioItem) (*models.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id uint64, update *models.UpdatePortfolioItem) (*models.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id uint64) error

	// Skill operations. An empty skillType returns all rows.
	GetSkills(ctx context.Context, skillType string) ([]models.Skill, error)
	GetSkill(ctx context.Context, id uint64) (*models.Skill, error)
	CreateSkill(ctx context.Context, insert *models.InsertSkill) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id uint64, update *models.UpdateSkill) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id uint64) error

	// Technology operations.
	GetTechnologies(ctx context.Context) ([]models.Technology, error)
	GetTechnology(ctx context.Context, id uint64) (*models.Technology, error)
	CreateTechnology(ctx context.Context, insert *models.InsertTechnology) (*models.Technology, error)
	UpdateTechnology(ctx context.Context, id uint64, update *models.UpdateTechnology) (*models.Technology, error)
	DeleteTechnology(ctx context.Context, id uint64) error

	// Site settings operations. GetSiteSettings returns ErrNotFound until
	// the singleton row has been written once.
	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	CreateOrUpdateSiteSettings(ctx context.Context, insert *models.InsertSiteSettings) (*models.SiteSettings, error)
}
