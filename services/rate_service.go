package services

import (
	apperrors "pms/errors"
	"pms/models"

	"gorm.io/gorm"
)

// RateService computes effective rates. Precedence: explicit custom rate on
// the resource, then the directly linked active rate plan's base rate, then
// (for resources with a category but no direct plan) the cheapest active plan
// targeting that category. A nil result means "rate unknown", never zero.
type RateService struct {
	db *gorm.DB
}

func NewRateService(db *gorm.DB) *RateService {
	return &RateService{db: db}
}

// ResolveRate applies the precedence rules. categoryPlan must already be the
// cheapest active plan for the resource's category (or nil). Pure function.
func ResolveRate(customRate *float64, plan *models.RatePlan, categoryPlan *models.RatePlan) *float64 {
	if customRate != nil {
		return customRate
	}
	if plan != nil && plan.IsActive {
		rate := plan.BaseRate
		return &rate
	}
	if plan == nil && categoryPlan != nil {
		rate := categoryPlan.BaseRate
		return &rate
	}
	return nil
}

// EffectiveRoomRate resolves a single room's nightly rate, looking up the
// category fallback plan when needed.
func (s *RateService) EffectiveRoomRate(room *models.Room) (*float64, error) {
	categoryPlan, err := s.categoryFallback(room.TenantID, room.CustomRate, room.RatePlanID, room.CategoryID)
	if err != nil {
		return nil, err
	}
	return ResolveRate(room.CustomRate, room.RatePlan, categoryPlan), nil
}

// EffectiveHallRate resolves a hall's flat session rate with the same rules.
func (s *RateService) EffectiveHallRate(hall *models.MeetingHall) (*float64, error) {
	categoryPlan, err := s.categoryFallback(hall.TenantID, hall.CustomRate, hall.RatePlanID, hall.CategoryID)
	if err != nil {
		return nil, err
	}
	return ResolveRate(hall.CustomRate, hall.RatePlan, categoryPlan), nil
}

func (s *RateService) categoryFallback(tenantID uint, customRate *float64, ratePlanID, categoryID *uint) (*models.RatePlan, error) {
	if customRate != nil || ratePlanID != nil || categoryID == nil {
		return nil, nil
	}
	plans, err := s.CheapestCategoryPlans(tenantID, []uint{*categoryID})
	if err != nil {
		return nil, err
	}
	if plan, ok := plans[*categoryID]; ok {
		return &plan, nil
	}
	return nil, nil
}

// CheapestCategoryPlans returns, per category, the active rate plan with the
// lowest base rate. Used by the availability composer to price a whole result
// set with one query.
func (s *RateService) CheapestCategoryPlans(tenantID uint, categoryIDs []uint) (map[uint]models.RatePlan, error) {
	cheapest := make(map[uint]models.RatePlan)
	if len(categoryIDs) == 0 {
		return cheapest, nil
	}

	var plans []models.RatePlan
	err := s.db.
		Where("tenant_id = ? AND is_active = ? AND category_id IN ?", tenantID, true, categoryIDs).
		Order("base_rate").
		Find(&plans).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	for _, plan := range plans {
		if plan.CategoryID == nil {
			continue
		}
		if existing, ok := cheapest[*plan.CategoryID]; !ok || plan.BaseRate < existing.BaseRate {
			cheapest[*plan.CategoryID] = plan
		}
	}
	return cheapest, nil
}
