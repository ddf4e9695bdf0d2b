package validator

import (
	"fmt"
	"regexp"
	"time"

	"pms/dto"
	apperrors "pms/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators hooks the wire-format checks into gin's binding
// engine. Call once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
			_, err := dto.ParseDate(fl.Field().String())
			return err == nil
		})
	}
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidateAvailabilityRequest enforces the strict schema of an availability
// query before it reaches the engine.
func ValidateAvailabilityRequest(req *dto.AvailabilityRequest) error {
	checkIn, checkOut, err := req.Interval()
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "dates must use the 2006-01-02 layout", err)
	}
	if !checkOut.After(checkIn) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "check-out must be after check-in", nil)
	}
	if req.MinRate != nil && req.MaxRate != nil && *req.MinRate > *req.MaxRate {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidRateBand, "minRate must not exceed maxRate", nil)
	}
	if req.MinOccupancy != nil && *req.MinOccupancy < 0 {
		return apperrors.NewValidationError("minOccupancy must not be negative")
	}
	return nil
}

// ValidateBatchBookingRequest enforces the strict schema of a batch booking
// request. The engine re-checks the core rules inside the transaction; this
// boundary check exists so malformed payloads fail before any storage work.
func ValidateBatchBookingRequest(req *dto.BatchBookingRequest) error {
	if len(req.Rooms) == 0 && len(req.Halls) == 0 {
		return apperrors.NewValidationError("at least one room or hall reservation is required")
	}
	if req.GuestName == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "guest name is required", nil)
	}
	if req.GuestPhone != "" && !phoneRegex.MatchString(req.GuestPhone) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "guest phone is not a valid number", nil)
	}
	if req.DepositAmount < 0 {
		return apperrors.NewValidationError("deposit amount must not be negative")
	}

	if len(req.Rooms) > 0 {
		checkIn, checkOut, err := req.StayInterval()
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "dates must use the 2006-01-02 layout", err)
		}
		if !checkOut.After(checkIn) {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "check-out must be after check-in", nil)
		}

		seen := make(map[uint]bool)
		for _, item := range req.Rooms {
			if item.RoomID == 0 {
				return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "room id is required", nil)
			}
			if item.Rate < 0 {
				return apperrors.NewValidationError(fmt.Sprintf("rate for room %d must not be negative", item.RoomID))
			}
			if seen[item.RoomID] {
				return apperrors.NewAppError(apperrors.ErrCodeDuplicateRoom,
					fmt.Sprintf("room %d appears more than once in the request", item.RoomID), nil)
			}
			seen[item.RoomID] = true
		}
	}

	type hallInterval struct {
		id         uint
		start, end time.Time
	}
	intervals := make([]hallInterval, 0, len(req.Halls))
	for _, hall := range req.Halls {
		if hall.HallID == 0 {
			return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "hall id is required", nil)
		}
		start, end, err := hall.Interval()
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
				fmt.Sprintf("hall %d datetimes must use RFC 3339", hall.HallID), err)
		}
		if !end.After(start) {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidInterval,
				fmt.Sprintf("hall %d end time must be after start time", hall.HallID), nil)
		}
		if hall.Rate < 0 {
			return apperrors.NewValidationError(fmt.Sprintf("rate for hall %d must not be negative", hall.HallID))
		}
		// Repeats of a hall are fine as long as their intervals do not overlap.
		for _, prev := range intervals {
			if prev.id == hall.HallID && prev.start.Before(end) && prev.end.After(start) {
				return apperrors.NewAppError(apperrors.ErrCodeInvalidInterval,
					fmt.Sprintf("hall %d is requested twice for overlapping times", hall.HallID), nil)
			}
		}
		intervals = append(intervals, hallInterval{id: hall.HallID, start: start, end: end})
	}

	return nil
}
