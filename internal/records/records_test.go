package records

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/db/dbtest"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEvent(t *testing.T, conn *gorm.DB, title string) uint64 {
	t.Helper()
	event := models.Event{Title: title, Content: "body"}
	require.NoError(t, conn.Create(&event).Error)
	return event.ID
}

func TestReserveConfirmsReservation(t *testing.T) {
	conn := dbtest.Open(t)
	eventID := seedEvent(t, conn, "Beach cleanup")
	svc := NewService(conn)
	ctx := context.Background()

	userID := uint64(3)
	reservation, err := svc.Reserve(ctx, &userID, ReservationInput{EventID: eventID, Name: "Park", Email: "p@example.com", Phone: "010", Participants: 2})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
	require.NotNil(t, reservation.UserID)
	assert.Equal(t, userID, *reservation.UserID)

	_, err = svc.Reserve(ctx, nil, ReservationInput{EventID: eventID, Name: "Park", Email: "p@example.com", Phone: "010", Participants: 2})
	require.NoError(t, err)

	list, err := svc.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beach cleanup", list[0].EventTitle)
	assert.Equal(t, 2, list[0].Participants)
	assert.Nil(t, list[0].UserID)

	raw, err := json.Marshal(list[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"event_title":"Beach cleanup"`)
	assert.Contains(t, string(raw), `"participants":2`)
}

func TestReserveValidation(t *testing.T) {
	conn := dbtest.Open(t)
	eventID := seedEvent(t, conn, "Talk")
	svc := NewService(conn)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, nil, ReservationInput{EventID: eventID, Name: "A", Email: "a@b.co", Participants: 1})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Reserve(ctx, nil, ReservationInput{EventID: eventID, Name: "A", Email: "a@b.co", Phone: "1", Participants: -1})
	assert.ErrorIs(t, err, ErrInvalidHeadcount)

	_, err = svc.Reserve(ctx, nil, ReservationInput{EventID: eventID + 50, Name: "A", Email: "a@b.co", Phone: "1", Participants: 1})
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDonateEnforcesMinimum(t *testing.T) {
	settings.StoreDBConfig(time.Now(), nil)
	svc := NewService(dbtest.Open(t))
	ctx := context.Background()

	_, err := svc.Donate(ctx, DonationInput{Amount: 9999, Name: "Choi", Email: "c@example.com", Phone: "010"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	donation, err := svc.Donate(ctx, DonationInput{Amount: 10000, Name: "Choi", Email: "c@example.com", Phone: "010"})
	require.NoError(t, err)
	assert.Equal(t, models.DonationTypeMonthly, donation.DonationType)
	assert.Equal(t, models.DonationStatusActive, donation.Status)

	_, err = svc.Donate(ctx, DonationInput{Amount: 10000, Name: "Choi", Email: "c@example.com", Phone: "010"})
	require.NoError(t, err)

	list, err := svc.ListDonations(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDonateMissingFields(t *testing.T) {
	svc := NewService(dbtest.Open(t))
	_, err := svc.Donate(context.Background(), DonationInput{Amount: 50000, Name: "Choi", Email: "c@example.com"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestDonateHonorsConfiguredMinimum(t *testing.T) {
	settings.StoreDBConfig(time.Now(), map[string]json.RawMessage{
		settings.DonationMinAmountKey: json.RawMessage(`20000`),
	})
	t.Cleanup(func() { settings.StoreDBConfig(time.Now(), nil) })
	svc := NewService(dbtest.Open(t))

	_, err := svc.Donate(context.Background(), DonationInput{Amount: 15000, Name: "Choi", Email: "c@example.com", Phone: "010"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = svc.Donate(context.Background(), DonationInput{Amount: 20000, Name: "Choi", Email: "c@example.com", Phone: "010"})
	assert.NoError(t, err)
}
