package services

import (
	"pms/constants"
	"pms/dto"
	apperrors "pms/errors"
	"pms/models"

	"gorm.io/gorm"
)

// InventoryService resolves the rooms and halls eligible for a query. It has
// no side effects; an empty result is valid.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// FindEligibleRooms returns the tenant's rooms matching the AND-combined
// filters, with rate plan and category eagerly loaded so downstream pricing
// needs no extra queries.
func (s *InventoryService) FindEligibleRooms(tenantID uint, req *dto.AvailabilityRequest) ([]models.Room, error) {
	q := s.db.Model(&models.Room{}).
		Where("tenant_id = ?", tenantID).
		Preload("RatePlan").
		Preload("Category")

	if req.RoomType != "" {
		q = q.Where("type = ?", req.RoomType)
	}
	if req.Floor != nil {
		q = q.Where("floor = ?", *req.Floor)
	}
	if req.Uncategorized {
		q = q.Where("category_id IS NULL")
	} else if req.CategoryID != nil {
		q = q.Where("category_id = ?", *req.CategoryID)
	}
	if req.RatePlanID != nil {
		q = q.Where("rate_plan_id = ?", *req.RatePlanID)
	}
	if req.MinOccupancy != nil {
		q = q.Where("capacity >= ?", *req.MinOccupancy)
	}
	if !req.IncludeOutOfOrder {
		q = q.Where("status NOT IN ?", []string{constants.RoomStatusOutOfOrder, constants.RoomStatusMaintenance})
	}

	var rooms []models.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return rooms, nil
}

// FindActiveHalls returns the tenant's active meeting halls, optionally
// filtered by minimum capacity.
func (s *InventoryService) FindActiveHalls(tenantID uint, minOccupancy *int) ([]models.MeetingHall, error) {
	q := s.db.Model(&models.MeetingHall{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Preload("RatePlan").
		Preload("Category")

	if minOccupancy != nil {
		q = q.Where("capacity >= ?", *minOccupancy)
	}

	var halls []models.MeetingHall
	if err := q.Order("id").Find(&halls).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return halls, nil
}
