package models

import "time"

// User is a persisted member account. The privileged account is never stored here.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Email string `gorm:"type:text;not null;uniqueIndex" json:"email"` // Lower-cased login email.
	Name  string `gorm:"type:text;not null" json:"name"`              // Display name.

	PasswordHash string `gorm:"type:text;not null" json:"-"` // Hex-encoded argon2id key.
	PasswordSalt string `gorm:"type:text;not null" json:"-"` // Hex-encoded per-user salt.

	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"` // Set at insert time only.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
