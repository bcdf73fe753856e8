package models

import "time"

// ReservationStatus is the state of an event reservation.
type ReservationStatus string

// Reservation states. Only ReservationStatusConfirmed is reachable.
const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// EventReservation records a visitor's reservation for an event.
type EventReservation struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	EventID uint64  `gorm:"not null;index" json:"event_id"` // Reserved event.
	UserID  *uint64 `gorm:"index" json:"user_id"`           // Reserving member, if any.

	Name         string `gorm:"type:text;not null" json:"name"`  // Contact name.
	Email        string `gorm:"type:text;not null" json:"email"` // Contact email.
	Phone        string `gorm:"type:text;not null" json:"phone"` // Contact phone.
	Participants int    `gorm:"not null" json:"participants"`    // Number of participants.

	Status ReservationStatus `gorm:"type:text;not null;default:'confirmed'" json:"status"` // Reservation state.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"` // Creation timestamp.
}
