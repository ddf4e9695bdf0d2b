package jobs

import (
	"testing"
	"time"

	"pms/constants"
	"pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJobsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Reservation{}, &models.GroupBooking{}, &models.GroupBookingHallReservation{}))
	return db
}

func TestMarkNoShows(t *testing.T) {
	db := setupJobsDB(t)

	stale := models.Reservation{TenantID: 1, Reference: "RES-1", RoomID: 1, UserID: 1,
		CheckInDate: time.Now().AddDate(0, 0, -2), CheckOutDate: time.Now().AddDate(0, 0, 1),
		Status: constants.ReservationStatusConfirmed}
	upcoming := models.Reservation{TenantID: 1, Reference: "RES-2", RoomID: 2, UserID: 1,
		CheckInDate: time.Now().AddDate(0, 0, 3), CheckOutDate: time.Now().AddDate(0, 0, 5),
		Status: constants.ReservationStatusConfirmed}
	inHouse := models.Reservation{TenantID: 1, Reference: "RES-3", RoomID: 3, UserID: 1,
		CheckInDate: time.Now().AddDate(0, 0, -2), CheckOutDate: time.Now().AddDate(0, 0, 1),
		Status: constants.ReservationStatusCheckedIn}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&upcoming).Error)
	require.NoError(t, db.Create(&inHouse).Error)

	MarkNoShows(db, nil)

	var got models.Reservation
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.Equal(t, constants.ReservationStatusNoShow, got.Status)

	got = models.Reservation{}
	require.NoError(t, db.First(&got, upcoming.ID).Error)
	assert.Equal(t, constants.ReservationStatusConfirmed, got.Status)

	// Checked-in guests are never no-shows, whatever the dates say.
	got = models.Reservation{}
	require.NoError(t, db.First(&got, inHouse.ID).Error)
	assert.Equal(t, constants.ReservationStatusCheckedIn, got.Status)
}

func TestExpireTentativeHallReservations(t *testing.T) {
	db := setupJobsDB(t)

	stale := models.GroupBookingHallReservation{TenantID: 1, GroupBookingID: 1, HallID: 1,
		StartDateTime: time.Now().Add(-2 * time.Hour), EndDateTime: time.Now().Add(-1 * time.Hour),
		Status: constants.HallReservationStatusTentative}
	confirmed := models.GroupBookingHallReservation{TenantID: 1, GroupBookingID: 1, HallID: 2,
		StartDateTime: time.Now().Add(-2 * time.Hour), EndDateTime: time.Now().Add(-1 * time.Hour),
		Status: constants.HallReservationStatusConfirmed}
	future := models.GroupBookingHallReservation{TenantID: 1, GroupBookingID: 1, HallID: 3,
		StartDateTime: time.Now().Add(2 * time.Hour), EndDateTime: time.Now().Add(4 * time.Hour),
		Status: constants.HallReservationStatusTentative}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&confirmed).Error)
	require.NoError(t, db.Create(&future).Error)

	ExpireTentativeHallReservations(db, nil)

	var got models.GroupBookingHallReservation
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.Equal(t, constants.HallReservationStatusCancelled, got.Status)

	got = models.GroupBookingHallReservation{}
	require.NoError(t, db.First(&got, confirmed.ID).Error)
	assert.Equal(t, constants.HallReservationStatusConfirmed, got.Status)

	got = models.GroupBookingHallReservation{}
	require.NoError(t, db.First(&got, future.ID).Error)
	assert.Equal(t, constants.HallReservationStatusTentative, got.Status)
}
