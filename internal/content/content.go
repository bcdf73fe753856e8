// Package content manages the editorial tables: events, activities,
// crisis articles and company information.
package content

import (
	"context"
	"errors"
	"strings"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/models"
	"gorm.io/gorm"
)

// Content failures.
var (
	ErrTitleContentRequired = apperr.Validation("Title and content are required")
	ErrContentRequired      = apperr.Validation("Content is required")
	ErrEventNotFound        = apperr.NotFound("Event not found")
	ErrActivityNotFound     = apperr.NotFound("Activity not found")
	ErrSectionNotFound      = apperr.NotFound("Section not found")
)

// Service reads and writes editorial content.
type Service struct {
	db *gorm.DB
}

// NewService constructs a Service.
func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

// PostInput is the create payload shared by events and activities. Date is
// stored as event_date or activity_date.
type PostInput struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ImageURL     string `json:"image_url"`
	EventDate    string `json:"event_date"`
	ActivityDate string `json:"activity_date"`
	Location     string `json:"location"`
}

func (in PostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return ErrTitleContentRequired
	}
	return nil
}

// optional maps blank strings to NULL.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// ListEvents returns events, newest first.
func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	var list []models.Event
	if errFind := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch events", errFind)
	}
	return list, nil
}

// GetEvent returns one event.
func (s *Service) GetEvent(ctx context.Context, id uint64) (*models.Event, error) {
	var event models.Event
	if errFind := s.db.WithContext(ctx).First(&event, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, apperr.Internal("Failed to fetch event", errFind)
	}
	return &event, nil
}

// CreateEvent inserts an event and returns its id.
func (s *Service) CreateEvent(ctx context.Context, in PostInput) (uint64, error) {
	if errValidate := in.validate(); errValidate != nil {
		return 0, errValidate
	}
	event := models.Event{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		ImageURL:  optional(in.ImageURL),
		EventDate: optional(in.EventDate),
		Location:  optional(in.Location),
	}
	if errCreate := s.db.WithContext(ctx).Create(&event).Error; errCreate != nil {
		return 0, apperr.Internal("Failed to create event", errCreate)
	}
	return event.ID, nil
}

// DeleteEvent removes an event. Deleting a missing event is not an error.
func (s *Service) DeleteEvent(ctx context.Context, id uint64) error {
	if errDelete := s.db.WithContext(ctx).Delete(&models.Event{}, id).Error; errDelete != nil {
		return apperr.Internal("Failed to delete event", errDelete)
	}
	return nil
}

// ListActivities returns activities, newest first.
func (s *Service) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var list []models.Activity
	if errFind := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch activities", errFind)
	}
	return list, nil
}

// GetActivity returns one activity.
func (s *Service) GetActivity(ctx context.Context, id uint64) (*models.Activity, error) {
	var activity models.Activity
	if errFind := s.db.WithContext(ctx).First(&activity, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, apperr.Internal("Failed to fetch activity", errFind)
	}
	return &activity, nil
}

// CreateActivity inserts an activity and returns its id.
func (s *Service) CreateActivity(ctx context.Context, in PostInput) (uint64, error) {
	if errValidate := in.validate(); errValidate != nil {
		return 0, errValidate
	}
	activity := models.Activity{
		Title:        strings.TrimSpace(in.Title),
		Content:      in.Content,
		ImageURL:     optional(in.ImageURL),
		ActivityDate: optional(in.ActivityDate),
		Location:     optional(in.Location),
	}
	if errCreate := s.db.WithContext(ctx).Create(&activity).Error; errCreate != nil {
		return 0, apperr.Internal("Failed to create activity", errCreate)
	}
	return activity.ID, nil
}

// DeleteActivity removes an activity.
func (s *Service) DeleteActivity(ctx context.Context, id uint64) error {
	if errDelete := s.db.WithContext(ctx).Delete(&models.Activity{}, id).Error; errDelete != nil {
		return apperr.Internal("Failed to delete activity", errDelete)
	}
	return nil
}

// ArticleInput is the crisis article create payload.
type ArticleInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	SourceURL     string `json:"source_url"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category"`
	PublishedDate string `json:"published_date"`
}

// ListArticles returns articles by publication date, newest first.
func (s *Service) ListArticles(ctx context.Context) ([]models.CrisisArticle, error) {
	var list []models.CrisisArticle
	if errFind := s.db.WithContext(ctx).
		Order("published_date DESC, created_at DESC, id DESC").
		Find(&list).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch articles", errFind)
	}
	return list, nil
}

// CreateArticle inserts a crisis article and returns its id.
func (s *Service) CreateArticle(ctx context.Context, in ArticleInput) (uint64, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return 0, ErrTitleContentRequired
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultArticleCategory
	}
	article := models.CrisisArticle{
		Title:         strings.TrimSpace(in.Title),
		Content:       in.Content,
		Source:        strings.TrimSpace(in.Source),
		SourceURL:     strings.TrimSpace(in.SourceURL),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		Category:      category,
		PublishedDate: optional(in.PublishedDate),
	}
	if errCreate := s.db.WithContext(ctx).Create(&article).Error; errCreate != nil {
		return 0, apperr.Internal("Failed to create article", errCreate)
	}
	return article.ID, nil
}

// DeleteArticle removes a crisis article.
func (s *Service) DeleteArticle(ctx context.Context, id uint64) error {
	if errDelete := s.db.WithContext(ctx).Delete(&models.CrisisArticle{}, id).Error; errDelete != nil {
		return apperr.Internal("Failed to delete article", errDelete)
	}
	return nil
}

// ListCompanyInfo returns all sections ordered by key.
func (s *Service) ListCompanyInfo(ctx context.Context) ([]models.CompanyInfo, error) {
	var list []models.CompanyInfo
	if errFind := s.db.WithContext(ctx).Order("section ASC").Find(&list).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch company info", errFind)
	}
	return list, nil
}

// SectionInput is the company info update payload.
type SectionInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateCompanyInfo replaces the title and content of a seeded section.
func (s *Service) UpdateCompanyInfo(ctx context.Context, section string, in SectionInput) error {
	section = strings.TrimSpace(section)
	if strings.TrimSpace(in.Content) == "" {
		return ErrContentRequired
	}
	res := s.db.WithContext(ctx).
		Model(&models.CompanyInfo{}).
		Where("section = ?", section).
		Updates(map[string]any{"title": strings.TrimSpace(in.Title), "content": in.Content})
	if res.Error != nil {
		return apperr.Internal("Failed to update company info", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}
