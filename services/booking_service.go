package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"
	"pms/services/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService runs the batch reservation transaction: it validates a
// multi-room/multi-hall request, re-checks overlap inside a single atomic
// transaction, persists the reservations (under an umbrella group booking when
// the batch spans more than one room or includes any hall) and hands side
// effects off after commit. The whole batch succeeds or none of it does.
type BookingService struct {
	db      *gorm.DB
	overlap *OverlapService
	logger  logger.Logger
	effects *BookingSideEffects
}

type BookingServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	SideEffects *BookingSideEffects
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:      opts.DB,
		overlap: NewOverlapService(opts.DB),
		logger:  l,
		effects: opts.SideEffects,
	}
}

// hallBooking is a hall item with its interval already parsed and validated.
type hallBooking struct {
	item  dto.HallBookingItem
	start time.Time
	end   time.Time
}

// CreateBatch creates all requested reservations atomically. Validation and
// not-found failures happen before or inside the transaction without writes;
// any overlap found by the in-transaction re-check aborts the whole batch, so
// no partial booking is ever persisted.
func (s *BookingService) CreateBatch(ctx context.Context, tenantID uint, req *dto.BatchBookingRequest) (*dto.BatchBookingResult, error) {
	checkIn, checkOut, halls, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	var (
		actor            models.User
		group            *models.GroupBooking
		reservations     []models.Reservation
		hallReservations []models.GroupBookingHallReservation
		rooms            []models.Room
	)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if actor, err = s.resolveActingUser(tx, tenantID, req.ActingUserID); err != nil {
			return err
		}

		if len(req.Rooms) > 0 {
			if rooms, err = s.loadRooms(tx, tenantID, req.Rooms); err != nil {
				return err
			}
			if err = s.recheckRoomOverlaps(tx, tenantID, rooms, checkIn, checkOut); err != nil {
				return err
			}
		}

		hallModels, err := s.loadHalls(tx, tenantID, halls)
		if err != nil {
			return err
		}
		if err = s.recheckHallOverlaps(tx, tenantID, halls, hallModels); err != nil {
			return err
		}

		stay := models.Reservation{CheckInDate: checkIn, CheckOutDate: checkOut}
		nights := stay.Nights()
		totalRevenue := 0.0
		for _, item := range req.Rooms {
			totalRevenue += item.Rate * float64(nights)
		}
		for _, hb := range halls {
			totalRevenue += hb.item.Rate
		}

		var groupID *uint
		if len(req.Rooms) > 1 || len(halls) > 0 {
			group = &models.GroupBooking{
				TenantID:          tenantID,
				Reference:         NewGroupBookingReference(),
				GuestName:         req.GuestName,
				GuestEmail:        req.GuestEmail,
				GuestPhone:        req.GuestPhone,
				ExpectedOccupancy: req.NumGuests,
				TotalRooms:        len(req.Rooms),
				TotalRevenue:      totalRevenue,
				Notes:             req.Notes,
				CreatedByID:       actor.ID,
			}
			for _, hb := range halls {
				group.HallReservations = append(group.HallReservations, models.GroupBookingHallReservation{
					TenantID:      tenantID,
					HallID:        hb.item.HallID,
					StartDateTime: hb.start,
					EndDateTime:   hb.end,
					Status:        constants.HallReservationStatusConfirmed,
					Rate:          hb.item.Rate,
					Purpose:       hb.item.Purpose,
				})
			}
			if err := tx.Create(group).Error; err != nil {
				return apperrors.NewStorageError(err)
			}
			groupID = &group.ID
			hallReservations = group.HallReservations
		}

		roomsByID := make(map[uint]models.Room, len(rooms))
		for _, room := range rooms {
			roomsByID[room.ID] = room
		}

		for _, item := range req.Rooms {
			reservation := models.Reservation{
				TenantID:       tenantID,
				Reference:      NewReservationReference(),
				RoomID:         item.RoomID,
				UserID:         actor.ID,
				GroupBookingID: groupID,
				GuestName:      req.GuestName,
				GuestEmail:     req.GuestEmail,
				GuestPhone:     req.GuestPhone,
				NumGuests:      req.NumGuests,
				CheckInDate:    checkIn,
				CheckOutDate:   checkOut,
				Status:         constants.ReservationStatusConfirmed,
				Rate:           item.Rate,
				TotalAmount:    item.Rate * float64(nights),
				DepositAmount:  req.DepositAmount,
				DepositPaid:    req.DepositPaid,
				Notes:          req.Notes,
			}
			if err := tx.Create(&reservation).Error; err != nil {
				return apperrors.NewStorageError(err)
			}
			room := roomsByID[item.RoomID]
			reservation.Room = &room
			reservations = append(reservations, reservation)
		}

		return nil
	})
	if txErr != nil {
		if apperrors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, apperrors.NewStorageError(txErr)
	}

	if s.effects != nil {
		// Best-effort, off the request path; failures are logged, never
		// surfaced as a booking failure.
		go s.effects.AfterBatchCommit(tenantID, actor.ID, group, reservations, hallReservations)
	}

	return buildBatchResult(group, reservations, hallReservations), nil
}

// validate runs the fail-before-storage checks and parses every interval.
func (s *BookingService) validate(req *dto.BatchBookingRequest) (time.Time, time.Time, []hallBooking, error) {
	var checkIn, checkOut time.Time

	if len(req.Rooms) == 0 && len(req.Halls) == 0 {
		return checkIn, checkOut, nil, apperrors.NewValidationError("at least one room or hall reservation is required")
	}
	if req.DepositAmount < 0 {
		return checkIn, checkOut, nil, apperrors.NewValidationError("deposit amount must not be negative")
	}

	if len(req.Rooms) > 0 {
		var err error
		checkIn, checkOut, err = req.StayInterval()
		if err != nil {
			return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "dates must use the 2006-01-02 layout", err)
		}
		if !checkOut.After(checkIn) {
			return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "check-out must be after check-in", nil)
		}

		seen := make(map[uint]bool)
		for _, item := range req.Rooms {
			if item.Rate < 0 {
				return checkIn, checkOut, nil, apperrors.NewValidationError(fmt.Sprintf("rate for room %d must not be negative", item.RoomID))
			}
			if seen[item.RoomID] {
				return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRoom,
					fmt.Sprintf("room %d appears more than once in the request", item.RoomID), nil)
			}
			seen[item.RoomID] = true
		}
	}

	halls := make([]hallBooking, 0, len(req.Halls))
	for _, item := range req.Halls {
		start, end, err := item.Interval()
		if err != nil {
			return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
				fmt.Sprintf("hall %d datetimes must use RFC 3339", item.HallID), err)
		}
		if !end.After(start) {
			return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval,
				fmt.Sprintf("hall %d end time must be after start time", item.HallID), nil)
		}
		// The same hall may appear more than once (morning and evening
		// sessions), but the request's own intervals must not overlap each
		// other; the storage re-check only sees already persisted rows.
		for _, prev := range halls {
			if prev.item.HallID == item.HallID && prev.start.Before(end) && prev.end.After(start) {
				return checkIn, checkOut, nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval,
					fmt.Sprintf("hall %d is requested twice for overlapping times", item.HallID), nil)
			}
		}
		halls = append(halls, hallBooking{item: item, start: start, end: end})
	}

	return checkIn, checkOut, halls, nil
}

// lockingScope adds SELECT ... FOR UPDATE on postgres so concurrent batches
// for the same resources serialize on the row reads. sqlite has a single
// writer and rejects the clause, so it is skipped there.
func lockingScope(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (s *BookingService) loadRooms(tx *gorm.DB, tenantID uint, items []dto.RoomBookingItem) ([]models.Room, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.RoomID)
	}

	var rooms []models.Room
	if err := lockingScope(tx).Where("tenant_id = ? AND id IN ?", tenantID, ids).Find(&rooms).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if len(rooms) != len(ids) {
		found := make(map[uint]bool, len(rooms))
		for _, room := range rooms {
			found[room.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, fmt.Sprintf("%d", id))
			}
		}
		return nil, apperrors.NewNotFoundError(apperrors.ErrCodeRoomNotFound,
			fmt.Sprintf("rooms not found for this property: %s", strings.Join(missing, ", ")))
	}
	return rooms, nil
}

// loadHalls re-validates every requested hall against storage inside the
// transaction, not from a stale read: the hall must exist, belong to the
// tenant and be active.
func (s *BookingService) loadHalls(tx *gorm.DB, tenantID uint, halls []hallBooking) (map[uint]models.MeetingHall, error) {
	hallModels := make(map[uint]models.MeetingHall, len(halls))
	for _, hb := range halls {
		if _, ok := hallModels[hb.item.HallID]; ok {
			continue
		}
		var hall models.MeetingHall
		err := lockingScope(tx).Where("tenant_id = ? AND id = ?", tenantID, hb.item.HallID).First(&hall).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrCodeHallNotFound,
				fmt.Sprintf("hall %d not found for this property", hb.item.HallID))
		}
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		if !hall.IsActive {
			return nil, apperrors.NewValidationError(fmt.Sprintf("hall %q is not active", hall.Name))
		}
		hallModels[hall.ID] = hall
	}
	return hallModels, nil
}

// recheckRoomOverlaps is the concurrency safety net: it runs against current
// blocking reservations inside the same transaction that performs the writes.
func (s *BookingService) recheckRoomOverlaps(tx *gorm.DB, tenantID uint, rooms []models.Room, checkIn, checkOut time.Time) error {
	ids := make([]uint, 0, len(rooms))
	numbers := make(map[uint]string, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
		numbers[room.ID] = room.RoomNumber
	}

	overlaps, err := s.overlap.FindRoomOverlaps(tx, tenantID, ids, checkIn, checkOut)
	if err != nil {
		return err
	}
	if len(overlaps) == 0 {
		return nil
	}

	var conflicting []string
	for id := range overlaps {
		conflicting = append(conflicting, numbers[id])
	}
	sort.Strings(conflicting)
	return apperrors.NewConflictError(
		fmt.Sprintf("rooms already booked for the requested dates: %s", strings.Join(conflicting, ", ")))
}

func (s *BookingService) recheckHallOverlaps(tx *gorm.DB, tenantID uint, halls []hallBooking, hallModels map[uint]models.MeetingHall) error {
	for _, hb := range halls {
		overlaps, err := s.overlap.FindHallOverlaps(tx, tenantID, []uint{hb.item.HallID}, hb.start, hb.end)
		if err != nil {
			return err
		}
		if len(overlaps[hb.item.HallID]) > 0 {
			hall := hallModels[hb.item.HallID]
			return apperrors.NewConflictError(
				fmt.Sprintf("hall %q is already reserved for the requested time", hall.Name))
		}
	}
	return nil
}

// resolveActingUser guarantees every reservation has a valid owning user even
// when no staff account initiated the booking (public portal): the provided
// hint wins when it belongs to the tenant, then the tenant's oldest user, and
// as a last resort a dedicated system user is synthesized for the tenant.
func (s *BookingService) resolveActingUser(tx *gorm.DB, tenantID uint, hint uint) (models.User, error) {
	var user models.User

	if hint != 0 {
		err := tx.Where("tenant_id = ? AND id = ?", tenantID, hint).First(&user).Error
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return user, apperrors.NewStorageError(err)
		}
	}

	err := tx.Where("tenant_id = ?", tenantID).Order("created_at ASC, id ASC").First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.NewStorageError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return user, apperrors.NewStorageError(err)
	}
	user = models.User{
		TenantID: tenantID,
		Name:     "System",
		Email:    fmt.Sprintf("system+%d@pms.local", tenantID),
		Password: string(hash),
		Role:     "system",
		IsSystem: true,
	}
	if err := tx.Create(&user).Error; err != nil {
		return user, apperrors.NewStorageError(err)
	}
	s.logger.Info("synthesized system user %d for tenant %d", user.ID, tenantID)
	return user, nil
}

func buildBatchResult(group *models.GroupBooking, reservations []models.Reservation, hallReservations []models.GroupBookingHallReservation) *dto.BatchBookingResult {
	result := &dto.BatchBookingResult{
		Reservations: []dto.ReservationResponse{},
	}
	if group != nil {
		result.GroupBookingID = &group.ID
		result.GroupBookingReference = group.Reference
		result.TotalRevenue = group.TotalRevenue
	}

	for _, r := range reservations {
		entry := dto.ReservationResponse{
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
		}
		if r.Room != nil {
			entry.RoomNumber = r.Room.RoomNumber
		}
		result.Reservations = append(result.Reservations, entry)
		if group == nil {
			result.TotalRevenue += r.TotalAmount
		}
	}

	for _, hr := range hallReservations {
		result.HallReservations = append(result.HallReservations, dto.HallReservationResponse{
			ID:            hr.ID,
			HallID:        hr.HallID,
			StartDateTime: hr.StartDateTime,
			EndDateTime:   hr.EndDateTime,
			Status:        hr.Status,
			Rate:          hr.Rate,
		})
	}
	return result
}
