package models

import "time"

// Technology represents an entry in the technology badge strip.
type Technology struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Icon      string    `gorm:"size:512;not null" json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertTechnology is the payload accepted when creating a technology.
type InsertTechnology struct {
	Name string `json:"name" validate:"required,max=255"`
	Icon string `json:"icon" validate:"required,max=512"`
}

// Model converts the insert payload into a persistable record.
func (i *InsertTechnology) Model() *Technology {
	return &Technology{
		Name: i.Name,
		Icon: i.Icon,
	}
}

// UpdateTechnology is the partial-update payload; nil fields are left untouched.
type UpdateTechnology struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Icon *string `json:"icon" validate:"omitempty,max=512"`
}

// Apply copies the non-nil fields onto the record.
func (u *UpdateTechnology) Apply(tech *Technology) {
	if u.Name != nil {
		tech.Name = *u.Name
	}
	if u.Icon != nil {
		tech.Icon = *u.Icon
	}
}
