// Package accounts manages member signup, login and lookup.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/auth"
	"github.com/ocevave/ocevave/internal/db"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/security"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest accepted member password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Signup and login failures.
var (
	ErrMissingFields      = apperr.Validation("All fields are required")
	ErrInvalidEmail       = apperr.Validation("Invalid email format")
	ErrPasswordTooShort   = apperr.Validation(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	ErrEmailTaken         = apperr.Validation("Email already registered")
	ErrInvalidCredentials = apperr.Unauthenticated("Invalid email or password")
	ErrTOTPRequired       = apperr.Unauthenticated("One-time code required")
)

// Service owns the member credential store.
type Service struct {
	db    *gorm.DB
	admin auth.PrivilegedAccount
}

// NewService constructs a Service.
func NewService(conn *gorm.DB, admin auth.PrivilegedAccount) *Service {
	return &Service{db: conn, admin: admin}
}

// SignupInput carries the signup form.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup creates a member. The privileged email can never be registered.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if s.admin.Matches(email) {
		return nil, ErrEmailTaken
	}

	hash, salt, errHash := security.HashPassword(in.Password)
	if errHash != nil {
		return nil, apperr.Internal("Signup failed", errHash)
	}
	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		PasswordSalt: salt,
		IsAdmin:      false,
	}
	if errCreate := s.db.WithContext(ctx).Create(&user).Error; errCreate != nil {
		if db.IsUniqueViolation(errCreate) {
			return nil, ErrEmailTaken
		}
		return nil, apperr.Internal("Signup failed", errCreate)
	}
	return &user, nil
}

// LoginInput carries the login form. Code is only consulted for the
// privileged account when it has a TOTP secret.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// Login verifies credentials and returns the identity to issue a session for.
func (s *Service) Login(ctx context.Context, in LoginInput) (auth.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return auth.Identity{}, apperr.Validation("Email and password are required")
	}

	if s.admin.Matches(email) {
		if !s.admin.CheckPassword(in.Password) {
			return auth.Identity{}, ErrInvalidCredentials
		}
		if s.admin.RequiresTOTP() {
			code := strings.TrimSpace(in.Code)
			if code == "" {
				return auth.Identity{}, ErrTOTPRequired
			}
			if !s.admin.CheckTOTP(code) {
				return auth.Identity{}, ErrInvalidCredentials
			}
		}
		return s.admin.Identity(), nil
	}

	user, errFind := s.FindByEmail(ctx, email)
	if errFind != nil {
		if errors.Is(errFind, auth.ErrUserNotFound) {
			return auth.Identity{}, ErrInvalidCredentials
		}
		return auth.Identity{}, apperr.Internal("Login failed", errFind)
	}
	if !security.VerifyPassword(in.Password, user.PasswordHash, user.PasswordSalt) {
		return auth.Identity{}, ErrInvalidCredentials
	}
	userID := user.ID
	return auth.Identity{Email: user.Email, DisplayName: user.Name, UserID: &userID}, nil
}

// FindByEmail returns the member with email, or auth.ErrUserNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	errFind := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("accounts: find user: %w", errFind)
	}
	return &user, nil
}

// Member is the admin view of a member, without credential columns.
type Member struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMembers returns all members, newest first.
func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	var users []models.User
	if errFind := s.db.WithContext(ctx).
		Select("id", "email", "name", "is_admin", "created_at").
		Order("created_at DESC, id DESC").
		Find(&users).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch members", errFind)
	}
	members := make([]Member, 0, len(users))
	for _, user := range users {
		members = append(members, Member{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}
	return members, nil
}
