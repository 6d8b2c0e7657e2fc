package models

import "time"

const (
	// SkillTypeTechnical groups hard skills (languages, frameworks, tooling).
	SkillTypeTechnical = "technical"
	// SkillTypeSoft groups soft skills (communication, leadership, ...).
	SkillTypeSoft = "soft"
)

// Skill represents a proficiency entry shown in the skills section.
type Skill struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Percentage int       `gorm:"not null" json:"percentage"`
	Type       string    `gorm:"size:50;not null" json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertSkill is the payload accepted when creating a skill.
type InsertSkill struct {
	Name       string `json:"name" validate:"required,max=255"`
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
	Type       string `json:"type" validate:"required,oneof=technical soft"`
}

// Model converts the insert payload into a persistable record.
func (i *InsertSkill) Model() *Skill {
	return &Skill{
		Name:       i.Name,
		Percentage: i.Percentage,
		Type:       i.Type,
	}
}

// UpdateSkill is the partial-update payload; nil fields are left untouched.
type UpdateSkill struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Percentage *int    `json:"percentage" validate:"omitempty,gte=0,lte=100"`
	Type       *string `json:"type" validate:"omitempty,oneof=technical soft"`
}

// Apply copies the non-nil fields onto the record.
func (u *UpdateSkill) Apply(skill *Skill) {
	if u.Name != nil {
		skill.Name = *u.Name
	}
	if u.Percentage != nil {
		skill.Percentage = *u.Percentage
	}
	if u.Type != nil {
		skill.Type = *u.Type
	}
}
