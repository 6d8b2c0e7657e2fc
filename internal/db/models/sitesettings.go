package models

import "time"

// SocialLinks holds the optional social profile URLs shown in the footer.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// ContactInfo holds the optional contact details shown in the contact section.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// SiteSettings is the singleton record carrying site-wide presentation
// settings. At most one row ever exists; create and update are unified
// into a single create-or-update operation on the storage layer.
type SiteSettings struct {
	ID              uint64      `gorm:"primaryKey" json:"id"`
	SiteTitle       string      `gorm:"size:255;not null" json:"siteTitle"`
	SiteDescription string      `gorm:"type:text;not null" json:"siteDescription"`
	PrimaryColor    string      `gorm:"size:50;not null" json:"primaryColor"`
	SocialLinks     SocialLinks `gorm:"serializer:json" json:"socialLinks"`
	ContactInfo     ContactInfo `gorm:"serializer:json" json:"contactInfo"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// InsertSiteSettings is the payload accepted by the create-or-update
// operation. All top-level fields are required; the sub-record fields
// are individually optional.
type InsertSiteSettings struct {
	SiteTitle       string      `json:"siteTitle" validate:"required,max=255"`
	SiteDescription string      `json:"siteDescription" validate:"required"`
	PrimaryColor    string      `json:"primaryColor" validate:"required,max=50"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	ContactInfo     ContactInfo `json:"contactInfo"`
}

// Model converts the insert payload into a persistable record.
func (i *InsertSiteSettings) Model() *SiteSettings {
	return &SiteSettings{
		SiteTitle:       i.SiteTitle,
		SiteDescription: i.SiteDescription,
		PrimaryColor:    i.PrimaryColor,
		SocialLinks:     i.SocialLinks,
		ContactInfo:     i.ContactInfo,
	}
}

// Apply overwrites all settings fields on the record. Unlike the partial
// entity updates, site settings are replaced wholesale on every write.
func (i *InsertSiteSettings) Apply(s *SiteSettings) {
	s.SiteTitle = i.SiteTitle
	s.SiteDescription = i.SiteDescription
	s.PrimaryColor = i.PrimaryColor
	s.SocialLinks = i.SocialLinks
	s.ContactInfo = i.ContactInfo
}
