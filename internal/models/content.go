package models

import "time"

// Event is an admin-managed event that visitors can reserve.
type Event struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Title     string  `gorm:"type:text;not null" json:"title"`   // Headline.
	Content   string  `gorm:"type:text;not null" json:"content"` // Body text.
	ImageURL  *string `gorm:"type:text" json:"image_url"`        // Optional image reference.
	EventDate *string `gorm:"type:text" json:"event_date"`       // Free-form event date.
	Location  *string `gorm:"type:text" json:"location"`         // Optional venue.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`       // Last update timestamp.
}

// Activity is an admin-managed report of past activities.
type Activity struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Title        string  `gorm:"type:text;not null" json:"title"`   // Headline.
	Content      string  `gorm:"type:text;not null" json:"content"` // Body text.
	ImageURL     *string `gorm:"type:text" json:"image_url"`        // Optional image reference.
	ActivityDate *string `gorm:"type:text" json:"activity_date"`    // Free-form activity date.
	Location     *string `gorm:"type:text" json:"location"`         // Optional venue.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`       // Last update timestamp.
}

// DefaultArticleCategory is applied when an article is created without a category.
const DefaultArticleCategory = "general"

// CrisisArticle is a curated news article.
type CrisisArticle struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Title         string  `gorm:"type:text;not null" json:"title"`                      // Headline.
	Content       string  `gorm:"type:text;not null" json:"content"`                    // Body or summary.
	Source        string  `gorm:"type:text;not null;default:''" json:"source"`          // Publisher name.
	SourceURL     string  `gorm:"type:text;not null;default:''" json:"source_url"`      // Original link.
	ImageURL      string  `gorm:"type:text;not null;default:''" json:"image_url"`       // Image reference.
	Category      string  `gorm:"type:text;not null;default:'general'" json:"category"` // Topic.
	PublishedDate *string `gorm:"type:text;index" json:"published_date"`                // Publication date.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// CompanyInfo is one editable section of the about page.
type CompanyInfo struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Section string `gorm:"type:text;not null;uniqueIndex" json:"section"` // Section key.
	Title   string `gorm:"type:text;not null;default:''" json:"title"`    // Section title.
	Content string `gorm:"type:text;not null;default:''" json:"content"`  // Section body.

	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"` // Last update timestamp.
}

// TableName keeps the singular table name used by the site.
func (CompanyInfo) TableName() string { return "company_info" }

// Image stores uploaded image bytes when the blob store is unavailable.
type Image struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Filename    string `gorm:"type:text;not null;uniqueIndex" json:"filename"` // Public file name.
	Data        string `gorm:"type:text;not null" json:"-"`                    // Base64-encoded bytes.
	ContentType string `gorm:"type:text;not null" json:"content_type"`         // MIME type.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
