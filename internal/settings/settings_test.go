package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/ocevave/ocevave/internal/models"
	"gorm.io/gorm"
)

func setupSettingsDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:settings_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := db.AutoMigrate(&models.Setting{}); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}
	t.Cleanup(func() { StoreDBConfig(time.Time{}, nil) })
	return db
}

func TestDonationMinAmountDefaultsWithoutRows(t *testing.T) {
	db := setupSettingsDB(t)
	if errRefresh := RefreshDBConfigSnapshot(context.Background(), db); errRefresh != nil {
		t.Fatalf("refresh: %v", errRefresh)
	}
	if got := DonationMinAmount(); got != DefaultDonationMinAmount {
		t.Fatalf("expected default %d, got %d", DefaultDonationMinAmount, got)
	}
	if got := SiteName(); got != DefaultSiteName {
		t.Fatalf("expected default site name, got %q", got)
	}
}

func TestUpsertRefreshesSnapshot(t *testing.T) {
	db := setupSettingsDB(t)
	ctx := context.Background()

	if errUpsert := Upsert(ctx, db, DonationMinAmountKey, json.RawMessage(`5000`)); errUpsert != nil {
		t.Fatalf("upsert: %v", errUpsert)
	}
	if got := DonationMinAmount(); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}

	if errUpsert := Upsert(ctx, db, DonationMinAmountKey, json.RawMessage(`20000`)); errUpsert != nil {
		t.Fatalf("second upsert: %v", errUpsert)
	}
	if got := DonationMinAmount(); got != 20000 {
		t.Fatalf("expected 20000, got %d", got)
	}

	rows, errList := List(ctx, db)
	if errList != nil {
		t.Fatalf("list: %v", errList)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestUpsertRejectsUnknownKey(t *testing.T) {
	db := setupSettingsDB(t)
	errUpsert := Upsert(context.Background(), db, "NOT_A_KEY", json.RawMessage(`1`))
	if !errors.Is(errUpsert, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", errUpsert)
	}
}

func TestDonationMinAmountIgnoresInvalidValue(t *testing.T) {
	StoreDBConfig(time.Now(), map[string]json.RawMessage{DonationMinAmountKey: json.RawMessage(`"lots"`)})
	t.Cleanup(func() { StoreDBConfig(time.Time{}, nil) })
	if got := DonationMinAmount(); got != DefaultDonationMinAmount {
		t.Fatalf("expected default for invalid value, got %d", got)
	}
}
