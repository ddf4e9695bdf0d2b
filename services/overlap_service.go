package services

import (
	"time"

	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"

	"gorm.io/gorm"
)

// OverlapService finds existing bookings that conflict with a queried
// interval. Intervals are half-open: an existing booking blocks iff
// existing.start < queryEnd AND existing.end > queryStart, so back-to-back
// stays (checkout = next checkin) never conflict.
type OverlapService struct {
	db *gorm.DB
}

func NewOverlapService(db *gorm.DB) *OverlapService {
	return &OverlapService{db: db}
}

// scope returns the handle to query on. The batch transaction passes its own
// tx so the re-check runs under the same isolation as the writes; nil falls
// back to the service's db for the advisory availability path.
func (s *OverlapService) scope(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// FindRoomOverlaps returns, per requested room, the blocking reservations
// (confirmed/checked_in) that intersect [start, end). A query with
// end <= start is a caller error and is rejected before any lookup.
func (s *OverlapService) FindRoomOverlaps(tx *gorm.DB, tenantID uint, roomIDs []uint, start, end time.Time) (map[uint][]dto.ConflictSummary, error) {
	if !end.After(start) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "check-out must be after check-in", nil)
	}

	conflicts := make(map[uint][]dto.ConflictSummary)
	if len(roomIDs) == 0 {
		return conflicts, nil
	}

	var reservations []models.Reservation
	err := s.scope(tx).
		Where("tenant_id = ? AND room_id IN ?", tenantID, roomIDs).
		Where("status IN ?", constants.ReservationBlockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", end, start).
		Order("check_in_date").
		Find(&reservations).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	for _, r := range reservations {
		conflicts[r.RoomID] = append(conflicts[r.RoomID], dto.ConflictSummary{
			ReservationID: r.ID,
			Reference:     r.Reference,
			Status:        r.Status,
			StartDate:     r.CheckInDate,
			EndDate:       r.CheckOutDate,
		})
	}
	return conflicts, nil
}

// FindHallOverlaps returns, per requested hall, the blocking hall reservations
// (tentative/confirmed) that intersect [start, end). The reference reported is
// the owning group booking's.
func (s *OverlapService) FindHallOverlaps(tx *gorm.DB, tenantID uint, hallIDs []uint, start, end time.Time) (map[uint][]dto.ConflictSummary, error) {
	if !end.After(start) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "hall end time must be after start time", nil)
	}

	conflicts := make(map[uint][]dto.ConflictSummary)
	if len(hallIDs) == 0 {
		return conflicts, nil
	}

	var hallReservations []models.GroupBookingHallReservation
	err := s.scope(tx).
		Where("tenant_id = ? AND hall_id IN ?", tenantID, hallIDs).
		Where("status IN ?", constants.HallBlockingStatuses).
		Where("start_date_time < ? AND end_date_time > ?", end, start).
		Order("start_date_time").
		Find(&hallReservations).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if len(hallReservations) == 0 {
		return conflicts, nil
	}

	references, err := s.groupReferences(tx, hallReservations)
	if err != nil {
		return nil, err
	}

	for _, hr := range hallReservations {
		conflicts[hr.HallID] = append(conflicts[hr.HallID], dto.ConflictSummary{
			ReservationID: hr.ID,
			Reference:     references[hr.GroupBookingID],
			Status:        hr.Status,
			StartDate:     hr.StartDateTime,
			EndDate:       hr.EndDateTime,
		})
	}
	return conflicts, nil
}

func (s *OverlapService) groupReferences(tx *gorm.DB, hallReservations []models.GroupBookingHallReservation) (map[uint]string, error) {
	ids := make([]uint, 0, len(hallReservations))
	seen := make(map[uint]bool)
	for _, hr := range hallReservations {
		if hr.GroupBookingID != 0 && !seen[hr.GroupBookingID] {
			seen[hr.GroupBookingID] = true
			ids = append(ids, hr.GroupBookingID)
		}
	}

	references := make(map[uint]string)
	if len(ids) == 0 {
		return references, nil
	}

	var groups []models.GroupBooking
	if err := s.scope(tx).Select("id", "reference").Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	for _, g := range groups {
		references[g.ID] = g.Reference
	}
	return references, nil
}
