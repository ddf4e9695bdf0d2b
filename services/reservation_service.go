package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"
	"pms/services/logger"
	"pms/services/notification"

	"gorm.io/gorm"
)

// ReservationService covers the lifecycle of reservations after creation:
// lookup, status transitions and the per-room booking calendar. Reservations
// are never deleted; closing statuses keep the row for history.
type ReservationService struct {
	db     *gorm.DB
	audit  *AuditService
	outbox *notification.Outbox
	logger logger.Logger
}

type ReservationServiceOptions struct {
	DB     *gorm.DB
	Audit  *AuditService
	Outbox *notification.Outbox
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	audit := opts.Audit
	if audit == nil {
		audit = NewAuditService(opts.DB, l)
	}
	return &ReservationService{db: opts.DB, audit: audit, outbox: opts.Outbox, logger: l}
}

// GetByReference returns a reservation by its human-readable reference.
func (s *ReservationService) GetByReference(ctx context.Context, tenantID uint, reference string) (*dto.ReservationDetail, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Room").
		Preload("GroupBooking").
		Where("tenant_id = ? AND reference = ?", tenantID, reference).
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCodeNotFound, "no reservation with reference "+reference)
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return toReservationDetail(&reservation), nil
}

// Transition actions accepted by ChangeStatus.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
	ActionCancel   = "cancel"
	ActionNoShow   = "no_show"
)

// ChangeStatus applies one lifecycle transition and appends the audit and
// room-history entries. Invalid transitions are validation errors.
func (s *ReservationService) ChangeStatus(ctx context.Context, tenantID uint, reference, action string, actorID uint, note string) (*models.Reservation, error) {
	var reservation models.Reservation

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tenant_id = ? AND reference = ?", tenantID, reference).First(&reservation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError(apperrors.ErrCodeNotFound,
				fmt.Sprintf("reservation %s not found for this property", reference))
		}
		if err != nil {
			return apperrors.NewStorageError(err)
		}

		state := models.GetReservationState(reservation.Status)
		switch action {
		case ActionCheckIn:
			err = state.CheckIn(&reservation)
		case ActionCheckOut:
			err = state.CheckOut(&reservation)
		case ActionCancel:
			err = state.Cancel(&reservation)
		case ActionNoShow:
			err = state.MarkNoShow(&reservation)
		default:
			return apperrors.NewValidationError("unknown action: " + action)
		}
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := tx.Save(&reservation).Error; err != nil {
			return apperrors.NewStorageError(err)
		}
		return nil
	})
	if txErr != nil {
		if apperrors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, apperrors.NewStorageError(txErr)
	}

	go s.afterStatusChange(&reservation, action, actorID, note)
	return &reservation, nil
}

func (s *ReservationService) afterStatusChange(reservation *models.Reservation, action string, actorID uint, note string) {
	if err := s.audit.Record(reservation.TenantID, actorID, "reservation."+action, "reservation", reservation.ID, reservation); err != nil {
		s.logger.Error("audit append for reservation %s failed: %v", reservation.Reference, err)
	}

	roomStatus := constants.RoomStatusReserved
	switch reservation.Status {
	case constants.ReservationStatusCheckedIn:
		roomStatus = constants.RoomStatusOccupied
	case constants.ReservationStatusCheckedOut:
		roomStatus = constants.RoomStatusDirty
	case constants.ReservationStatusCancelled, constants.ReservationStatusNoShow:
		roomStatus = constants.RoomStatusAvailable
	}

	room := models.Room{Status: roomStatus}
	if err := room.ValidateStatus(); err != nil {
		s.logger.Error("room status for action %s rejected: %v", action, err)
	} else if err := s.db.Model(&models.Room{}).
		Where("tenant_id = ? AND id = ?", reservation.TenantID, reservation.RoomID).
		Update("status", roomStatus).Error; err != nil {
		s.logger.Error("room status update for room %d failed: %v", reservation.RoomID, err)
	}

	if err := s.audit.RecordRoomHistory(reservation.TenantID, reservation.RoomID, roomStatus, note, &reservation.ID, actorID); err != nil {
		s.logger.Error("room history append for room %d failed: %v", reservation.RoomID, err)
	}

	if s.outbox != nil {
		s.outbox.Publish(notification.NewEvent(reservation.TenantID, "reservation."+action, reservation.GuestEmail, reservation))
	}
}

// FindByGuest lists a tenant's reservations whose guest name or email matches
// the query, newest first. The match is a case-insensitive substring on the
// name and an exact match on the email.
func (s *ReservationService) FindByGuest(ctx context.Context, tenantID uint, query string, page, limit int) ([]dto.ReservationDetail, int64, error) {
	if query == "" {
		return nil, 0, apperrors.NewValidationError("guest query must not be empty")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	guestFilter := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&models.Reservation{}).
			Where("tenant_id = ?", tenantID).
			Where("LOWER(guest_name) LIKE ? OR guest_email = ?", "%"+strings.ToLower(query)+"%", query)
	}

	var total int64
	if err := guestFilter().Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}

	var reservations []models.Reservation
	err := guestFilter().
		Preload("Room").
		Preload("GroupBooking").
		Order("check_in_date DESC, id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}

	details := make([]dto.ReservationDetail, 0, len(reservations))
	for i := range reservations {
		details = append(details, *toReservationDetail(&reservations[i]))
	}
	return details, total, nil
}

// RoomCalendar lists the booked intervals of one room inside [from, to).
func (s *ReservationService) RoomCalendar(ctx context.Context, tenantID, roomID uint, from, to time.Time) (*dto.RoomCalendar, error) {
	if !to.After(from) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "calendar end must be after start", nil)
	}

	var room models.Room
	err := s.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCodeRoomNotFound,
			fmt.Sprintf("room %d not found for this property", roomID))
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var reservations []models.Reservation
	err = s.db.WithContext(ctx).
		Where("tenant_id = ? AND room_id = ?", tenantID, roomID).
		Where("status IN ?", constants.ReservationBlockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Order("check_in_date").
		Find(&reservations).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	calendar := &dto.RoomCalendar{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		Intervals:  []dto.BookedInterval{},
	}
	for _, r := range reservations {
		calendar.Intervals = append(calendar.Intervals, dto.BookedInterval{
			ReservationID: r.ID,
			Reference:     r.Reference,
			Status:        r.Status,
			CheckInDate:   r.CheckInDate,
			CheckOutDate:  r.CheckOutDate,
		})
	}
	return calendar, nil
}

func toReservationDetail(r *models.Reservation) *dto.ReservationDetail {
	detail := &dto.ReservationDetail{
		ReservationResponse: dto.ReservationResponse{
			ID:            r.ID,
			Reference:     r.Reference,
			RoomID:        r.RoomID,
			CheckInDate:   r.CheckInDate,
			CheckOutDate:  r.CheckOutDate,
			Nights:        r.Nights(),
			Status:        r.Status,
			Rate:          r.Rate,
			TotalAmount:   r.TotalAmount,
			DepositAmount: r.DepositAmount,
		},
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		GuestPhone:     r.GuestPhone,
		NumGuests:      r.NumGuests,
		GroupBookingID: r.GroupBookingID,
		Notes:          r.Notes,
	}
	if r.Room != nil {
		detail.RoomNumber = r.Room.RoomNumber
	}
	if r.GroupBooking != nil {
		detail.GroupBookingReference = r.GroupBooking.Reference
	}
	return detail
}
