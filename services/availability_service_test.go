package services

import (
	"context"
	"testing"

	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAvailabilityService(t *testing.T) (*AvailabilityService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewAvailabilityService(AvailabilityServiceOptions{DB: db}), db
}

func availabilityReq(from, to string) *dto.AvailabilityRequest {
	return &dto.AvailabilityRequest{CheckInDate: from, CheckOutDate: to}
}

func TestComputeAvailabilityRejectsBadInput(t *testing.T) {
	svc, _ := newAvailabilityService(t)
	ctx := context.Background()

	_, err := svc.ComputeAvailability(ctx, 1, availabilityReq("10-03-2026", "2026-03-12"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ComputeAvailability(ctx, 1, availabilityReq("2026-03-12", "2026-03-12"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	req := availabilityReq("2026-03-10", "2026-03-12")
	req.MinRate = floatPtr(500)
	req.MaxRate = floatPtr(100)
	_, err = svc.ComputeAvailability(ctx, 1, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRateBand, apperrors.GetAppError(err).Code)
}

func TestComputeAvailabilityPartitionsRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)
	user := seedUser(t, db, tenant.ID, "clerk")

	free := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "101", CustomRate: floatPtr(25000)})
	busy := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "102", CustomRate: floatPtr(25000)})
	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "103", Status: constants.RoomStatusOutOfOrder})

	existing := seedReservation(t, db, tenant.ID, busy.ID, user.ID, "2026-03-10", "2026-03-12", constants.ReservationStatusConfirmed)

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, availabilityReq("2026-03-11", "2026-03-13"))
	require.NoError(t, err)

	// The out-of-order room is not eligible at all.
	assert.Equal(t, 2, result.TotalRooms)

	require.Len(t, result.AvailableRooms, 1)
	assert.Equal(t, free.ID, result.AvailableRooms[0].ID)
	require.NotNil(t, result.AvailableRooms[0].EffectiveRate)
	assert.Equal(t, 25000.0, *result.AvailableRooms[0].EffectiveRate)

	require.Len(t, result.UnavailableRooms, 1)
	assert.Equal(t, busy.ID, result.UnavailableRooms[0].ID)
	require.Len(t, result.UnavailableRooms[0].Conflicts, 1)
	assert.Equal(t, existing.Reference, result.UnavailableRooms[0].Conflicts[0].Reference)
}

func TestComputeAvailabilityRateBandExcludesUnpricedRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "101", CustomRate: floatPtr(20000)})
	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "102", CustomRate: floatPtr(60000)})
	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "103"}) // no determinable rate

	req := availabilityReq("2026-03-10", "2026-03-12")
	req.MinRate = floatPtr(10000)
	req.MaxRate = floatPtr(30000)

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, req)
	require.NoError(t, err)

	require.Len(t, result.AvailableRooms, 1)
	assert.Equal(t, "101", result.AvailableRooms[0].RoomNumber)
}

func TestComputeAvailabilityNoRateBandKeepsUnpricedRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "103"})

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, availabilityReq("2026-03-10", "2026-03-12"))
	require.NoError(t, err)

	require.Len(t, result.AvailableRooms, 1)
	assert.Nil(t, result.AvailableRooms[0].EffectiveRate)
}

func TestComputeAvailabilityCategoryFallbackPricing(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)
	category := seedCategory(t, db, tenant.ID, "Deluxe")

	seedRatePlan(t, db, tenant.ID, 40000, &category.ID, true)
	seedRatePlan(t, db, tenant.ID, 35000, &category.ID, true)

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "301", CategoryID: &category.ID})

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, availabilityReq("2026-03-10", "2026-03-12"))
	require.NoError(t, err)

	require.Len(t, result.AvailableRooms, 1)
	require.NotNil(t, result.AvailableRooms[0].EffectiveRate)
	assert.Equal(t, 35000.0, *result.AvailableRooms[0].EffectiveRate)
	assert.Equal(t, "Deluxe", result.AvailableRooms[0].CategoryName)
}

func TestComputeAvailabilityRecommendsNonReadyRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "101", CustomRate: floatPtr(20000)})
	dirty := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "102", Status: constants.RoomStatusDirty, CustomRate: floatPtr(20000)})

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, availabilityReq("2026-03-10", "2026-03-12"))
	require.NoError(t, err)

	// The dirty room stays in the available list and is also surfaced as a
	// recommendation (bookable for future dates, needs housekeeping attention).
	assert.Len(t, result.AvailableRooms, 2)
	require.Len(t, result.RecommendedRooms, 1)
	assert.Equal(t, dirty.ID, result.RecommendedRooms[0].ID)
}

func TestComputeAvailabilityNeverRecommendsUnusableRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "101", Status: constants.RoomStatusOutOfOrder, CustomRate: floatPtr(20000)})
	dirty := seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "102", Status: constants.RoomStatusDirty, CustomRate: floatPtr(20000)})

	req := availabilityReq("2026-03-10", "2026-03-12")
	req.IncludeOutOfOrder = true

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, req)
	require.NoError(t, err)

	// The out-of-order room is listed when explicitly requested, but only the
	// dirty one is worth suggesting.
	assert.Len(t, result.AvailableRooms, 2)
	require.Len(t, result.RecommendedRooms, 1)
	assert.Equal(t, dirty.ID, result.RecommendedRooms[0].ID)
}

func TestComputeAvailabilityHallsIndependentOfRooms(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)

	// No rooms at all; hall availability must still be populated.
	hall := seedHall(t, db, tenant.ID, "Conference A", true)
	seedHall(t, db, tenant.ID, "Closed Hall", false)

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, availabilityReq("2026-03-10", "2026-03-12"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalRooms)
	assert.Empty(t, result.AvailableRooms)

	assert.Equal(t, 1, result.HallAvailability.TotalHalls)
	require.Len(t, result.HallAvailability.AvailableHalls, 1)
	assert.Equal(t, hall.ID, result.HallAvailability.AvailableHalls[0].ID)
}

func TestComputeAvailabilityFilters(t *testing.T) {
	svc, db := newAvailabilityService(t)
	tenant := seedTenant(t, db)
	category := seedCategory(t, db, tenant.ID, "Suite")

	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "101", Type: "single", Floor: 1, Capacity: 1})
	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "201", Type: "double", Floor: 2, Capacity: 2, CategoryID: &category.ID})
	seedRoom(t, db, models.Room{TenantID: tenant.ID, RoomNumber: "202", Type: "suite", Floor: 2, Capacity: 4, CategoryID: &category.ID})

	req := availabilityReq("2026-03-10", "2026-03-12")
	req.Floor = intPtr(2)
	req.MinOccupancy = intPtr(3)

	result, err := svc.ComputeAvailability(context.Background(), tenant.ID, req)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalRooms)
	assert.Equal(t, "202", result.AvailableRooms[0].RoomNumber)

	// Uncategorized only.
	req = availabilityReq("2026-03-10", "2026-03-12")
	req.Uncategorized = true
	result, err = svc.ComputeAvailability(context.Background(), tenant.ID, req)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalRooms)
	assert.Equal(t, "101", result.AvailableRooms[0].RoomNumber)
}
