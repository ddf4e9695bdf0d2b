package validator

import (
	"testing"

	"pms/dto"
	apperrors "pms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validBatch() *dto.BatchBookingRequest {
	return &dto.BatchBookingRequest{
		GuestName:    "Jordan Smith",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		Rooms:        []dto.RoomBookingItem{{RoomID: 1, Rate: 25000}},
	}
}

func TestValidateAvailabilityRequest(t *testing.T) {
	req := &dto.AvailabilityRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12"}
	require.NoError(t, ValidateAvailabilityRequest(req))

	req.CheckOutDate = "2026-03-10"
	err := ValidateAvailabilityRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInterval, apperrors.GetAppError(err).Code)

	req.CheckOutDate = "12/03/2026"
	err = ValidateAvailabilityRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidFormat, apperrors.GetAppError(err).Code)

	req = &dto.AvailabilityRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12",
		MinRate: floatPtr(500), MaxRate: floatPtr(100)}
	err = ValidateAvailabilityRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRateBand, apperrors.GetAppError(err).Code)
}

func TestValidateBatchBookingRequest(t *testing.T) {
	require.NoError(t, ValidateBatchBookingRequest(validBatch()))

	err := ValidateBatchBookingRequest(&dto.BatchBookingRequest{GuestName: "X"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	req := validBatch()
	req.GuestName = ""
	err = ValidateBatchBookingRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRequiredField, apperrors.GetAppError(err).Code)

	req = validBatch()
	req.GuestPhone = "call me"
	err = ValidateBatchBookingRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidFormat, apperrors.GetAppError(err).Code)

	req = validBatch()
	req.GuestPhone = "+84901234567"
	require.NoError(t, ValidateBatchBookingRequest(req))

	req = validBatch()
	req.Rooms = append(req.Rooms, dto.RoomBookingItem{RoomID: 1, Rate: 25000})
	err = ValidateBatchBookingRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDuplicateRoom, apperrors.GetAppError(err).Code)

	req = validBatch()
	req.Halls = []dto.HallBookingItem{{HallID: 3, StartDateTime: "2026-03-10T12:00:00Z", EndDateTime: "2026-03-10T09:00:00Z"}}
	err = ValidateBatchBookingRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInterval, apperrors.GetAppError(err).Code)

	req = validBatch()
	req.Halls = []dto.HallBookingItem{
		{HallID: 3, StartDateTime: "2026-03-10T09:00:00Z", EndDateTime: "2026-03-10T12:00:00Z"},
		{HallID: 3, StartDateTime: "2026-03-10T11:00:00Z", EndDateTime: "2026-03-10T14:00:00Z"},
	}
	err = ValidateBatchBookingRequest(req)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInterval, apperrors.GetAppError(err).Code)

	// Non-overlapping repeats of the same hall are allowed.
	req.Halls[1].StartDateTime = "2026-03-10T12:00:00Z"
	require.NoError(t, ValidateBatchBookingRequest(req))
}
