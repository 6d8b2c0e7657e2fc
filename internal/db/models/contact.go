package models

import "time"

// ContactMessage represents an inbound inquiry from the public contact form.
// Messages are immutable once created; the admin can only read and delete them.
type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage is the payload accepted from the public contact form.
type InsertContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=255"`
	Message string `json:"message" validate:"required,min=10"`
}

// Model converts the insert payload into a persistable record.
func (i *InsertContactMessage) Model() *ContactMessage {
	return &ContactMessage{
		Name:    i.Name,
		Email:   i.Email,
		Subject: i.Subject,
		Message: i.Message,
	}
}
