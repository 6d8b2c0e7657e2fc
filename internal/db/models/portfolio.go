package models

import "time"

// PortfolioLinks holds the optional outbound links of a portfolio item.
// All fields are optional; the whole record is stored as a single JSON column.
type PortfolioLinks struct {
	Preview   string `json:"preview,omitempty"`
	GitHub    string `json:"github,omitempty"`
	AppStore  string `json:"appStore,omitempty"`
	PlayStore string `json:"playStore,omitempty"`
}

// PortfolioItem represents a single project shown in the portfolio grid.
// Written only by the authenticated admin, read publicly.
type PortfolioItem struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Image       string         `gorm:"size:512;not null" json:"image"`
	Category    string         `gorm:"size:100;not null" json:"category"`
	Links       PortfolioLinks `gorm:"serializer:json" json:"links"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// InsertPortfolioItem is the payload accepted when creating a portfolio item.
// Server-assigned fields (id, createdAt) are excluded.
type InsertPortfolioItem struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Description string         `json:"description" validate:"required"`
	Image       string         `json:"image" validate:"required,max=512"`
	Category    string         `json:"category" validate:"required,max=100"`
	Links       PortfolioLinks `json:"links"`
}

// Model converts the insert payload into a persistable record.
func (i *InsertPortfolioItem) Model() *PortfolioItem {
	return &PortfolioItem{
		Title:       i.Title,
		Description: i.Description,
		Image:       i.Image,
		Category:    i.Category,
		Links:       i.Links,
	}
}

// UpdatePortfolioItem is the partial-update payload. Nil fields are left
// untouched; any subset of the insertable fields is accepted.
type UpdatePortfolioItem struct {
	Title       *string         `json:"title" validate:"omitempty,max=255"`
	Description *string         `json:"description"`
	Image       *string         `json:"image" validate:"omitempty,max=512"`
	Category    *string         `json:"category" validate:"omitempty,max=100"`
	Links       *PortfolioLinks `json:"links"`
}

// Apply copies the non-nil fields onto the record.
func (u *UpdatePortfolioItem) Apply(item *PortfolioItem) {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Image != nil {
		item.Image = *u.Image
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Links != nil {
		item.Links = *u.Links
	}
}
