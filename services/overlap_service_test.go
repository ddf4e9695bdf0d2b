package services

import (
	"testing"
	"time"

	"pms/constants"
	apperrors "pms/errors"
	"pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoomOverlapsRejectsEmptyInterval(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOverlapService(db)

	day := date(t, "2026-03-10")

	_, err := svc.FindRoomOverlaps(nil, 1, []uint{1}, day, day)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.FindRoomOverlaps(nil, 1, []uint{1}, day, date(t, "2026-03-09"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFindRoomOverlapsBackToBackStaysDoNotConflict(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	user := seedUser(t, db, tenant.ID, "clerk")
	room := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "201"})

	seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-12", constants.ReservationStatusConfirmed)

	svc := NewOverlapService(db)

	// Checkout day equals the new checkin day: no conflict under half-open intervals.
	conflicts, err := svc.FindRoomOverlaps(nil, tenant.ID, []uint{room.ID}, date(t, "2026-03-12"), date(t, "2026-03-14"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Same on the other side.
	conflicts, err = svc.FindRoomOverlaps(nil, tenant.ID, []uint{room.ID}, date(t, "2026-03-08"), date(t, "2026-03-10"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindRoomOverlapsDetectsIntersections(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	user := seedUser(t, db, tenant.ID, "clerk")
	room := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "201"})

	existing := seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusConfirmed)

	svc := NewOverlapService(db)

	cases := []struct{ name, from, to string }{
		{"query contains existing", "2026-03-09", "2026-03-16"},
		{"existing contains query", "2026-03-11", "2026-03-13"},
		{"overlap at start", "2026-03-08", "2026-03-11"},
		{"overlap at end", "2026-03-14", "2026-03-18"},
		{"identical interval", "2026-03-10", "2026-03-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conflicts, err := svc.FindRoomOverlaps(nil, tenant.ID, []uint{room.ID}, date(t, tc.from), date(t, tc.to))
			require.NoError(t, err)
			require.Len(t, conflicts[room.ID], 1)
			assert.Equal(t, existing.Reference, conflicts[room.ID][0].Reference)
		})
	}
}

func TestFindRoomOverlapsIgnoresNonBlockingStatuses(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	user := seedUser(t, db, tenant.ID, "clerk")
	room := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "201"})

	seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusCancelled)
	seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusCheckedOut)
	seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusNoShow)
	blocking := seedReservation(t, db, tenant.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusCheckedIn)

	conflicts, err := NewOverlapService(db).FindRoomOverlaps(nil, tenant.ID, []uint{room.ID}, date(t, "2026-03-12"), date(t, "2026-03-13"))
	require.NoError(t, err)
	require.Len(t, conflicts[room.ID], 1)
	assert.Equal(t, blocking.ID, conflicts[room.ID][0].ReservationID)
}

func TestFindRoomOverlapsScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	other := models.Tenant{Name: "Other", Slug: "other", Status: constants.TenantStatusActive}
	require.NoError(t, db.Create(&other).Error)

	user := seedUser(t, db, other.ID, "other-clerk")
	room := seedRoom(t, db, models.Room{TenantID: other.ID, RoomNumber: "901"})
	seedReservation(t, db, other.ID, room.ID, user.ID, "2026-03-10", "2026-03-15", constants.ReservationStatusConfirmed)

	conflicts, err := NewOverlapService(db).FindRoomOverlaps(nil, tenant.ID, []uint{room.ID}, date(t, "2026-03-10"), date(t, "2026-03-15"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindHallOverlapsReportsGroupReference(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	user := seedUser(t, db, tenant.ID, "clerk")
	hall := seedHall(t, db, tenant.ID, "Conference A", true)

	group := models.GroupBooking{
		TenantID:    tenant.ID,
		Reference:   NewGroupBookingReference(),
		GuestName:   "Event Host",
		CreatedByID: user.ID,
		HallReservations: []models.GroupBookingHallReservation{{
			TenantID:      tenant.ID,
			HallID:        hall.ID,
			StartDateTime: date(t, "2026-03-10").Add(9 * time.Hour),
			EndDateTime:   date(t, "2026-03-10").Add(12 * time.Hour),
			Status:        constants.HallReservationStatusTentative,
			Rate:          50000,
		}},
	}
	require.NoError(t, db.Create(&group).Error)

	svc := NewOverlapService(db)

	// 10:00-11:00 intersects the 09:00-12:00 hold; tentative blocks.
	conflicts, err := svc.FindHallOverlaps(nil, tenant.ID, []uint{hall.ID},
		date(t, "2026-03-10").Add(10*time.Hour), date(t, "2026-03-10").Add(11*time.Hour))
	require.NoError(t, err)
	require.Len(t, conflicts[hall.ID], 1)
	assert.Equal(t, group.Reference, conflicts[hall.ID][0].Reference)
	assert.Equal(t, constants.HallReservationStatusTentative, conflicts[hall.ID][0].Status)

	// 12:00-14:00 touches the boundary only: free.
	conflicts, err = svc.FindHallOverlaps(nil, tenant.ID, []uint{hall.ID},
		date(t, "2026-03-10").Add(12*time.Hour), date(t, "2026-03-10").Add(14*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
