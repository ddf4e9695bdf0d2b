package services

import (
	"testing"
	"time"

	"pms/constants"
	"pms/dto"
	"pms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; cap the pool so
	// every query and transaction sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{}, &models.User{}, &models.Category{}, &models.RatePlan{},
		&models.Room{}, &models.MeetingHall{}, &models.Reservation{},
		&models.GroupBooking{}, &models.GroupBookingHallReservation{},
		&models.RoomStatusLog{}, &models.AuditLog{},
	))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) models.Tenant {
	t.Helper()
	tenant := models.Tenant{
		Name:     "Harbor View Hotel",
		Slug:     "harbor-view",
		Currency: "USD",
		Status:   constants.TenantStatusActive,
	}
	require.NoError(t, db.Create(&tenant).Error)
	return tenant
}

func seedUser(t *testing.T, db *gorm.DB, tenantID uint, name string) models.User {
	t.Helper()
	user := models.User{TenantID: tenantID, Name: name, Email: name + "@example.com", Role: "receptionist"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, tenantID uint, name string) models.Category {
	t.Helper()
	category := models.Category{TenantID: tenantID, Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedRatePlan(t *testing.T, db *gorm.DB, tenantID uint, baseRate float64, categoryID *uint, active bool) models.RatePlan {
	t.Helper()
	plan := models.RatePlan{
		TenantID:   tenantID,
		Name:       "Plan",
		BaseRate:   baseRate,
		Currency:   "USD",
		IsActive:   active,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(&plan).Error)
	if !active {
		// The column default would override a zero-value false on create.
		require.NoError(t, db.Model(&plan).Update("is_active", false).Error)
	}
	return plan
}

func seedRoom(t *testing.T, db *gorm.DB, room models.Room) models.Room {
	t.Helper()
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	if room.Capacity == 0 {
		room.Capacity = 2
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedHall(t *testing.T, db *gorm.DB, tenantID uint, name string, active bool) models.MeetingHall {
	t.Helper()
	hall := models.MeetingHall{TenantID: tenantID, Name: name, Capacity: 50, IsActive: active}
	require.NoError(t, db.Create(&hall).Error)
	if !active {
		require.NoError(t, db.Model(&hall).Update("is_active", false).Error)
	}
	return hall
}

func seedReservation(t *testing.T, db *gorm.DB, tenantID, roomID, userID uint, from, to, status string) models.Reservation {
	t.Helper()
	reservation := models.Reservation{
		TenantID:     tenantID,
		Reference:    NewReservationReference(),
		RoomID:       roomID,
		UserID:       userID,
		GuestName:    "Existing Guest",
		CheckInDate:  date(t, from),
		CheckOutDate: date(t, to),
		Status:       status,
		Rate:         10000,
	}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dto.ParseDate(s)
	require.NoError(t, err)
	return d
}

func uintPtr(v uint) *uint        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
