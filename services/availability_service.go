package services

import (
	"context"
	"time"

	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"
	"pms/services/logger"

	"gorm.io/gorm"
)

// maxRecommendedRooms caps the best-effort upsell list.
const maxRecommendedRooms = 3

// AvailabilityService merges inventory, overlap and rate results into the
// advisory availability view. The view carries no booking guarantee: the batch
// transaction re-checks overlap before writing, which resolves the accepted
// TOCTOU race between "show availability" and "confirm booking".
type AvailabilityService struct {
	db        *gorm.DB
	inventory *InventoryService
	overlap   *OverlapService
	rates     *RateService
	logger    logger.Logger
}

type AvailabilityServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAvailabilityService(opts AvailabilityServiceOptions) *AvailabilityService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AvailabilityService{
		db:        opts.DB,
		inventory: NewInventoryService(opts.DB),
		overlap:   NewOverlapService(opts.DB),
		rates:     NewRateService(opts.DB),
		logger:    l,
	}
}

// ComputeAvailability computes room and hall availability for the requested
// range. Room and hall availability are logically independent: a tenant with
// zero eligible rooms still gets hall availability back.
func (s *AvailabilityService) ComputeAvailability(ctx context.Context, tenantID uint, req *dto.AvailabilityRequest) (*dto.AvailabilityResult, error) {
	checkIn, checkOut, err := req.Interval()
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "dates must use the 2006-01-02 layout", err)
	}
	if !checkOut.After(checkIn) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidInterval, "check-out must be after check-in", nil)
	}
	if req.MinRate != nil && req.MaxRate != nil && *req.MinRate > *req.MaxRate {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidRateBand, "minRate must not exceed maxRate", nil)
	}

	result := &dto.AvailabilityResult{
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
		AvailableRooms:   []dto.RoomAvailability{},
		UnavailableRooms: []dto.RoomAvailability{},
		RecommendedRooms: []dto.RoomAvailability{},
	}

	rooms, err := s.inventory.FindEligibleRooms(tenantID, req)
	if err != nil {
		return nil, err
	}
	result.TotalRooms = len(rooms)

	if len(rooms) > 0 {
		if err := s.composeRooms(tenantID, rooms, checkIn, checkOut, req, result); err != nil {
			return nil, err
		}
	}

	halls, err := s.composeHalls(ctx, tenantID, req.MinOccupancy, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	result.HallAvailability = *halls

	return result, nil
}

func (s *AvailabilityService) composeRooms(tenantID uint, rooms []models.Room, checkIn, checkOut time.Time, req *dto.AvailabilityRequest, result *dto.AvailabilityResult) error {
	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	overlaps, err := s.overlap.FindRoomOverlaps(nil, tenantID, roomIDs, checkIn, checkOut)
	if err != nil {
		return err
	}

	categoryPlans, err := s.rates.CheapestCategoryPlans(tenantID, fallbackCategoryIDs(rooms))
	if err != nil {
		return err
	}

	for _, room := range rooms {
		if conflicts := overlaps[room.ID]; len(conflicts) > 0 {
			entry := toRoomAvailability(&room, nil)
			entry.Conflicts = conflicts
			result.UnavailableRooms = append(result.UnavailableRooms, entry)
			continue
		}

		rate := ResolveRate(room.CustomRate, room.RatePlan, roomCategoryPlan(&room, categoryPlans))
		if !withinRateBand(rate, req.MinRate, req.MaxRate) {
			// A room with no determinable rate is excluded from a rate-filtered result.
			continue
		}

		entry := toRoomAvailability(&room, rate)
		result.AvailableRooms = append(result.AvailableRooms, entry)

		// Recommend only rooms a guest could actually move into; rooms that
		// are out of order or under maintenance show up solely when the
		// caller asked for them and are never suggested.
		if room.Status != constants.RoomStatusAvailable && room.IsBookable() && len(result.RecommendedRooms) < maxRecommendedRooms {
			result.RecommendedRooms = append(result.RecommendedRooms, entry)
		}
	}
	return nil
}

func (s *AvailabilityService) composeHalls(ctx context.Context, tenantID uint, minOccupancy *int, start, end time.Time) (*dto.HallAvailabilityResult, error) {
	halls, err := s.inventory.FindActiveHalls(tenantID, minOccupancy)
	if err != nil {
		return nil, err
	}

	result := &dto.HallAvailabilityResult{
		TotalHalls:       len(halls),
		AvailableHalls:   []dto.HallAvailability{},
		UnavailableHalls: []dto.HallAvailability{},
	}
	if len(halls) == 0 {
		return result, nil
	}

	hallIDs := make([]uint, 0, len(halls))
	for _, hall := range halls {
		hallIDs = append(hallIDs, hall.ID)
	}

	overlaps, err := s.overlap.FindHallOverlaps(nil, tenantID, hallIDs, start, end)
	if err != nil {
		return nil, err
	}

	for _, hall := range halls {
		rate, err := s.rates.EffectiveHallRate(&hall)
		if err != nil {
			return nil, err
		}
		entry := dto.HallAvailability{
			ID:            hall.ID,
			Name:          hall.Name,
			Floor:         hall.Floor,
			Capacity:      hall.Capacity,
			EffectiveRate: rate,
		}
		if conflicts := overlaps[hall.ID]; len(conflicts) > 0 {
			entry.Conflicts = conflicts
			result.UnavailableHalls = append(result.UnavailableHalls, entry)
		} else {
			result.AvailableHalls = append(result.AvailableHalls, entry)
		}
	}
	return result, nil
}

// fallbackCategoryIDs collects the categories of rooms that will need the
// cheapest-plan fallback (no custom rate, no direct plan).
func fallbackCategoryIDs(rooms []models.Room) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, room := range rooms {
		if room.CustomRate != nil || room.RatePlanID != nil || room.CategoryID == nil {
			continue
		}
		if !seen[*room.CategoryID] {
			seen[*room.CategoryID] = true
			ids = append(ids, *room.CategoryID)
		}
	}
	return ids
}

func roomCategoryPlan(room *models.Room, categoryPlans map[uint]models.RatePlan) *models.RatePlan {
	if room.CategoryID == nil {
		return nil
	}
	if plan, ok := categoryPlans[*room.CategoryID]; ok {
		return &plan
	}
	return nil
}

func withinRateBand(rate, minRate, maxRate *float64) bool {
	if minRate == nil && maxRate == nil {
		return true
	}
	if rate == nil {
		return false
	}
	if minRate != nil && *rate < *minRate {
		return false
	}
	if maxRate != nil && *rate > *maxRate {
		return false
	}
	return true
}

func toRoomAvailability(room *models.Room, rate *float64) dto.RoomAvailability {
	entry := dto.RoomAvailability{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.Type,
		Floor:         room.Floor,
		Capacity:      room.Capacity,
		Status:        room.Status,
		EffectiveRate: rate,
	}
	if room.Category != nil {
		entry.CategoryName = room.Category.Name
	}
	return entry
}
