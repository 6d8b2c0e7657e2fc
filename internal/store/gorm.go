package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

// Gorm is the production Store implementation over a gorm database.
// It works against any dialector the daemon opens (mysql, postgres, sqlite).
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

// NewGorm creates a Store backed by the given gorm database.
func NewGorm(db *gorm.DB) *Gorm {
	if db == nil {
		panic("store: db cannot be nil")
	}

	return &Gorm{db: db}
}

// translate maps gorm's record-not-found onto the package sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

// GetUser retrieves a user by id.
func (s *Gorm) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Gorm) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// CreateUser creates a user with a hashed password.
func (s *Gorm) CreateUser(ctx context.Context, insert *models.InsertUser) (*models.User, error) {
	var existing models.User

	err := s.db.WithContext(ctx).Where("username = ?", insert.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Username: insert.Username,
		Password: models.HashPassword(insert.Password),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveContactMessage persists an inbound contact message.
func (s *Gorm) SaveContactMessage(
	ctx context.Context,
	insert *models.InsertContactMessage,
) (*models.ContactMessage, error) {
	msg := insert.Model()
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}

	return msg, nil
}

// GetContactMessages returns all contact messages ordered by creation time.
func (s *Gorm) GetContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.WithContext(ctx).Order("created_at").Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

// DeleteContactMessage deletes a contact message by id.
func (s *Gorm) DeleteContactMessage(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, &models.ContactMessage{}, id)
}

// GetPortfolioItems returns all portfolio items.
func (s *Gorm) GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// GetPortfolioItem retrieves a portfolio item by id.
func (s *Gorm) GetPortfolioItem(ctx context.Context, id uint64) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}

	return &item, nil
}

// CreatePortfolioItem persists a new portfolio item.
func (s *Gorm) CreatePortfolioItem(
	ctx context.Context,
	insert *models.InsertPortfolioItem,
) (*models.PortfolioItem, error) {
	item := insert.Model()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

// UpdatePortfolioItem applies a partial update and returns the updated row.
func (s *Gorm) UpdatePortfolioItem(
	ctx context.Context,
	id uint64,
	update *models.UpdatePortfolioItem,
) (*models.PortfolioItem, error) {
	item, err := s.GetPortfolioItem(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(item)
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

// DeletePortfolioItem deletes a portfolio item by id.
func (s *Gorm) DeletePortfolioItem(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, &models.PortfolioItem{}, id)
}

// GetSkills returns skills, optionally filtered by type. An empty skillType
// returns all rows.
func (s *Gorm) GetSkills(ctx context.Context, skillType string) ([]models.Skill, error) {
	query := s.db.WithContext(ctx)
	if skillType != "" {
		query = query.Where("type = ?", skillType)
	}

	var skills []models.Skill
	if err := query.Find(&skills).Error; err != nil {
		return nil, err
	}

	return skills, nil
}

// GetSkill retrieves a skill by id.
func (s *Gorm) GetSkill(ctx context.Context, id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return nil, translate(err)
	}

	return &skill, nil
}

// CreateSkill persists a new skill.
func (s *Gorm) CreateSkill(ctx context.Context, insert *models.InsertSkill) (*models.Skill, error) {
	skill := insert.Model()
	if err := s.db.WithContext(ctx).Create(skill).Error; err != nil {
		return nil, err
	}

	return skill, nil
}

// UpdateSkill applies a partial update and returns the updated row.
func (s *Gorm) UpdateSkill(ctx context.Context, id uint64, update *models.UpdateSkill) (*models.Skill, error) {
	skill, err := s.GetSkill(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(skill)
	if err := s.db.WithContext(ctx).Save(skill).Error; err != nil {
		return nil, err
	}

	return skill, nil
}

// DeleteSkill deletes a skill by id.
func (s *Gorm) DeleteSkill(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, &models.Skill{}, id)
}

// GetTechnologies returns all technologies.
func (s *Gorm) GetTechnologies(ctx context.Context) ([]models.Technology, error) {
	var technologies []models.Technology
	if err := s.db.WithContext(ctx).Find(&technologies).Error; err != nil {
		return nil, err
	}

	return technologies, nil
}

// GetTechnology retrieves a technology by id.
func (s *Gorm) GetTechnology(ctx context.Context, id uint64) (*models.Technology, error) {
	var tech models.Technology
	if err := s.db.WithContext(ctx).First(&tech, id).Error; err != nil {
		return nil, translate(err)
	}

	return &tech, nil
}

// CreateTechnology persists a new technology.
func (s *Gorm) CreateTechnology(
	ctx context.Context,
	insert *models.InsertTechnology,
) (*models.Technology, error) {
	tech := insert.Model()
	if err := s.db.WithContext(ctx).Create(tech).Error; err != nil {
		return nil, err
	}

	return tech, nil
}

// UpdateTechnology applies a partial update and returns the updated row.
func (s *Gorm) UpdateTechnology(
	ctx context.Context,
	id uint64,
	update *models.UpdateTechnology,
) (*models.Technology, error) {
	tech, err := s.GetTechnology(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(tech)
	if err := s.db.WithContext(ctx).Save(tech).Error; err != nil {
		return nil, err
	}

	return tech, nil
}

// DeleteTechnology deletes a technology by id.
func (s *Gorm) DeleteTechnology(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, &models.Technology{}, id)
}

// GetSiteSettings returns the singleton settings row.
func (s *Gorm) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := s.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, translate(err)
	}

	return &settings, nil
}

// CreateOrUpdateSiteSettings overwrites the singleton settings row, creating
// it when absent. The read-then-write has a benign race under concurrent
// admin writes; single-admin usage makes that acceptable.
func (s *Gorm) CreateOrUpdateSiteSettings(
	ctx context.Context,
	insert *models.InsertSiteSettings,
) (*models.SiteSettings, error) {
	settings, err := s.GetSiteSettings(ctx)

	if errors.Is(err, ErrNotFound) {
		settings = insert.Model()
		if err := s.db.WithContext(ctx).Create(settings).Error; err != nil {
			return nil, err
		}

		return settings, nil
	}

	if err != nil {
		return nil, err
	}

	insert.Apply(settings)
	settings.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// deleteByID deletes a row of the given model, reporting ErrNotFound when
// no row matched.
func (s *Gorm) deleteByID(ctx context.Context, model interface{}, id uint64) error {
	result := s.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
