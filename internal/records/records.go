// Package records stores event reservations and donation pledges.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/settings"
	"gorm.io/gorm"
)

// Recorder failures.
var (
	ErrMissingFields    = apperr.Validation("All fields are required")
	ErrEventNotFound    = apperr.NotFound("Event not found")
	ErrInvalidHeadcount = apperr.Validation("Participants must be at least 1")
)

// Service records reservations and donations. Neither operation is
// idempotent: repeating a request stores another row.
type Service struct {
	db *gorm.DB
}

// NewService constructs a Service.
func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

// ReservationInput is the reservation form.
type ReservationInput struct {
	EventID      uint64 `json:"event_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Participants int    `json:"participants"`
}

// Reserve records a confirmed reservation for an existing event.
func (s *Service) Reserve(ctx context.Context, userID *uint64, in ReservationInput) (*models.EventReservation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.EventID == 0 || in.Name == "" || in.Email == "" || in.Phone == "" || in.Participants == 0 {
		return nil, ErrMissingFields
	}
	if in.Participants < 1 {
		return nil, ErrInvalidHeadcount
	}

	var event models.Event
	if errFind := s.db.WithContext(ctx).Select("id").First(&event, in.EventID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, apperr.Internal("Reservation failed", errFind)
	}

	reservation := models.EventReservation{
		EventID:      in.EventID,
		UserID:       userID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Participants: in.Participants,
		Status:       models.ReservationStatusConfirmed,
	}
	if errCreate := s.db.WithContext(ctx).Create(&reservation).Error; errCreate != nil {
		return nil, apperr.Internal("Reservation failed", errCreate)
	}
	return &reservation, nil
}

// ReservationView is a reservation joined with its event title.
type ReservationView struct {
	models.EventReservation
	EventTitle string `json:"event_title"`
}

// ListReservations returns reservations with event titles, newest first.
func (s *Service) ListReservations(ctx context.Context) ([]ReservationView, error) {
	var rows []ReservationView
	errFind := s.db.WithContext(ctx).
		Table("event_reservations AS r").
		Select("r.*, e.title AS event_title").
		Joins("JOIN events e ON e.id = r.event_id").
		Order("r.created_at DESC, r.id DESC").
		Scan(&rows).Error
	if errFind != nil {
		return nil, apperr.Internal("Failed to fetch reservations", errFind)
	}
	return rows, nil
}

// DonationInput is the donation form.
type DonationInput struct {
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Donate records an active monthly pledge of at least the configured minimum.
func (s *Service) Donate(ctx context.Context, in DonationInput) (*models.Donation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Amount == 0 || in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, ErrMissingFields
	}
	if minAmount := settings.DonationMinAmount(); in.Amount < minAmount {
		return nil, apperr.Validation(fmt.Sprintf("Minimum donation amount is %d", minAmount))
	}

	donation := models.Donation{
		Amount:       in.Amount,
		DonorName:    in.Name,
		DonorEmail:   in.Email,
		DonorPhone:   in.Phone,
		DonationType: models.DonationTypeMonthly,
		Status:       models.DonationStatusActive,
	}
	if errCreate := s.db.WithContext(ctx).Create(&donation).Error; errCreate != nil {
		return nil, apperr.Internal("Donation failed", errCreate)
	}
	return &donation, nil
}

// ListDonations returns every donation, newest first.
func (s *Service) ListDonations(ctx context.Context) ([]models.Donation, error) {
	var list []models.Donation
	if errFind := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch donations", errFind)
	}
	return list, nil
}
