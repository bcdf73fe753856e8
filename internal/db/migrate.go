package db

import (
	"fmt"

	"github.com/ocevave/ocevave/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyInfoSections are the editable about-page sections seeded on migrate.
var CompanyInfoSections = []string{"about", "mission", "vision", "contact"}

// Migrate creates or updates all tables and seeds required rows.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errMigrate := conn.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Event{},
		&models.Activity{},
		&models.EventReservation{},
		&models.Donation{},
		&models.CrisisArticle{},
		&models.CompanyInfo{},
		&models.Image{},
		&models.Setting{},
	); errMigrate != nil {
		return fmt.Errorf("db: auto migrate: %w", errMigrate)
	}
	return seedCompanyInfo(conn)
}

// seedCompanyInfo inserts empty sections so admins can update them by key.
func seedCompanyInfo(conn *gorm.DB) error {
	rows := make([]models.CompanyInfo, 0, len(CompanyInfoSections))
	for _, section := range CompanyInfoSections {
		rows = append(rows, models.CompanyInfo{Section: section})
	}
	if errCreate := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoNothing: true,
	}).Create(&rows).Error; errCreate != nil {
		return fmt.Errorf("db: seed company info: %w", errCreate)
	}
	return nil
}
