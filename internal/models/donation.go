package models

import "time"

// DonationStatus is the state of a recurring donation pledge.
type DonationStatus string

// Donation states. Only DonationStatusActive is reachable.
const (
	DonationStatusActive    DonationStatus = "active"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// DonationTypeMonthly is the only donation type offered.
const DonationTypeMonthly = "monthly"

// Donation records a donation pledge.
type Donation struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Amount     int64  `gorm:"not null" json:"amount"`                // Pledged amount in minor units.
	DonorName  string `gorm:"type:text;not null" json:"donor_name"`  // Donor name.
	DonorEmail string `gorm:"type:text;not null" json:"donor_email"` // Donor email.
	DonorPhone string `gorm:"type:text;not null" json:"donor_phone"` // Donor phone.

	DonationType string         `gorm:"type:text;not null;default:'monthly'" json:"donation_type"` // Pledge cadence.
	Status       DonationStatus `gorm:"type:text;not null;default:'active'" json:"status"`         // Pledge state.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"` // Creation timestamp.
}
