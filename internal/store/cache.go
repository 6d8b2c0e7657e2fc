package store

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

// Cache keys for the public read paths. Skills are keyed per type filter;
// the filter values are constrained to technical/soft by validation, so the
// key space is closed and invalidation can enumerate it.
const (
	cacheKeyPortfolio    = "portfolio"
	cacheKeySkills       = "skills:"
	cacheKeyTechnologies = "technologies"
	cacheKeySettings     = "settings"

	cacheCleanupInterval = 10 * time.Minute
)

// Cached decorates a Store with a read-through cache over the public list
// and settings reads. Mutations pass through and invalidate the affected
// keys once they succeed. Per-id reads and admin-only reads are never cached.
type Cached struct {
	Store
	cache *gocache.Cache
}

var _ Store = (*Cached)(nil)

// NewCached wraps inner with a read-through cache using the given TTL.
func NewCached(inner Store, ttl time.Duration) *Cached {
	return &Cached{
		Store: inner,
		cache: gocache.New(ttl, cacheCleanupInterval),
	}
}

// GetPortfolioItems returns the cached portfolio list, filling the cache on miss.
func (c *Cached) GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	if cached, found := c.cache.Get(cacheKeyPortfolio); found {
		return cached.([]models.PortfolioItem), nil
	}

	items, err := c.Store.GetPortfolioItems(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(cacheKeyPortfolio, items, gocache.DefaultExpiration)

	return items, nil
}

// CreatePortfolioItem delegates and invalidates the portfolio list.
func (c *Cached) CreatePortfolioItem(
	ctx context.Context,
	insert *models.InsertPortfolioItem,
) (*models.PortfolioItem, error) {
	item, err := c.Store.CreatePortfolioItem(ctx, insert)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(cacheKeyPortfolio)

	return item, nil
}

// UpdatePortfolioItem delegates and invalidates the portfolio list.
func (c *Cached) UpdatePortfolioItem(
	ctx context.Context,
	id uint64,
	update *models.UpdatePortfolioItem,
) (*models.PortfolioItem, error) {
	item, err := c.Store.UpdatePortfolioItem(ctx, id, update)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(cacheKeyPortfolio)

	return item, nil
}

// DeletePortfolioItem delegates and invalidates the portfolio list.
func (c *Cached) DeletePortfolioItem(ctx context.Context, id uint64) error {
	if err := c.Store.DeletePortfolioItem(ctx, id); err != nil {
		return err
	}

	c.cache.Delete(cacheKeyPortfolio)

	return nil
}

// GetSkills returns the cached skill list for the given filter, filling the
// cache on miss.
func (c *Cached) GetSkills(ctx context.Context, skillType string) ([]models.Skill, error) {
	key := cacheKeySkills + skillType
	if cached, found := c.cache.Get(key); found {
		return cached.([]models.Skill), nil
	}

	skills, err := c.Store.GetSkills(ctx, skillType)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, skills, gocache.DefaultExpiration)

	return skills, nil
}

// CreateSkill delegates and invalidates the skill lists.
func (c *Cached) CreateSkill(ctx context.Context, insert *models.InsertSkill) (*models.Skill, error) {
	skill, err := c.Store.CreateSkill(ctx, insert)
	if err != nil {
		return nil, err
	}

	c.invalidateSkills()

	return skill, nil
}

// UpdateSkill delegates and invalidates the skill lists.
func (c *Cached) UpdateSkill(
	ctx context.Context,
	id uint64,
	update *models.UpdateSkill,
) (*models.Skill, error) {
	skill, err := c.Store.UpdateSkill(ctx, id, update)
	if err != nil {
		return nil, err
	}

	c.invalidateSkills()

	return skill, nil
}

// DeleteSkill delegates and invalidates the skill lists.
func (c *Cached) DeleteSkill(ctx context.Context, id uint64) error {
	if err := c.Store.DeleteSkill(ctx, id); err != nil {
		return err
	}

	c.invalidateSkills()

	return nil
}

// GetTechnologies returns the cached technology list, filling the cache on miss.
func (c *Cached) GetTechnologies(ctx context.Context) ([]models.Technology, error) {
	if cached, found := c.cache.Get(cacheKeyTechnologies); found {
		return cached.([]models.Technology), nil
	}

	technologies, err := c.Store.GetTechnologies(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(cacheKeyTechnologies, technologies, gocache.DefaultExpiration)

	return technologies, nil
}

// CreateTechnology delegates and invalidates the technology list.
func (c *Cached) CreateTechnology(
	ctx context.Context,
	insert *models.InsertTechnology,
) (*models.Technology, error) {
	tech, err := c.Store.CreateTechnology(ctx, insert)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(cacheKeyTechnologies)

	return tech, nil
}

// UpdateTechnology delegates and invalidates the technology list.
func (c *Cached) UpdateTechnology(
	ctx context.Context,
	id uint64,
	update *models.UpdateTechnology,
) (*models.Technology, error) {
	tech, err := c.Store.UpdateTechnology(ctx, id, update)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(cacheKeyTechnologies)

	return tech, nil
}

// DeleteTechnology delegates and invalidates the technology list.
func (c *Cached) DeleteTechnology(ctx context.Context, id uint64) error {
	if err := c.Store.DeleteTechnology(ctx, id); err != nil {
		return err
	}

	c.cache.Delete(cacheKeyTechnologies)

	return nil
}

// GetSiteSettings returns the cached settings singleton, filling the cache
// on miss. ErrNotFound is never cached.
func (c *Cached) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	if cached, found := c.cache.Get(cacheKeySettings); found {
		return cached.(*models.SiteSettings), nil
	}

	settings, err := c.Store.GetSiteSettings(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(cacheKeySettings, settings, gocache.DefaultExpiration)

	return settings, nil
}

// CreateOrUpdateSiteSettings delegates and invalidates the settings singleton.
func (c *Cached) CreateOrUpdateSiteSettings(
	ctx context.Context,
	insert *models.InsertSiteSettings,
) (*models.SiteSettings, error) {
	settings, err := c.Store.CreateOrUpdateSiteSettings(ctx, insert)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(cacheKeySettings)

	return settings, nil
}

func (c *Cached) invalidateSkills() {
	c.cache.Delete(cacheKeySkills)
	c.cache.Delete(cacheKeySkills + models.SkillTypeTechnical)
	c.cache.Delete(cacheKeySkills + models.SkillTypeSoft)
}
