package controllers

import (
	"fmt"
	"time"

	"pms/dto"
	"pms/middleware"
	"pms/response"
	"pms/services"
	"pms/utils"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const availabilityCacheTTL = 5 * time.Minute

type AvailabilityController struct {
	svc *services.AvailabilityService
	rdb *redis.Client
}

func NewAvailabilityController(svc *services.AvailabilityService, rdb *redis.Client) *AvailabilityController {
	return &AvailabilityController{svc: svc, rdb: rdb}
}

// CheckAvailability handles GET /availability. The result is an advisory
// view; callers must re-validate through the batch booking endpoint. Results
// are cached per tenant under a version key that every committed booking bumps.
func (ctl *AvailabilityController) CheckAvailability(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid availability query: "+err.Error())
		return
	}
	if err := validator.ValidateAvailabilityRequest(&req); err != nil {
		handleAppError(c, err)
		return
	}

	ctx := c.Request.Context()
	cacheKey := ""
	if ctl.rdb != nil {
		version, err := ctl.rdb.Get(ctx, availabilityVersionKey(tenantID)).Int64()
		if err != nil && err != redis.Nil {
			utils.LogError("availability cache version lookup failed: %v", err)
		} else {
			cacheKey = availabilityCacheKey(tenantID, version, &req)
			var cached dto.AvailabilityResult
			if err := services.GetFromRedis(ctx, ctl.rdb, cacheKey, &cached); err == nil && cached.CheckInDate != "" {
				response.Success(c, cached)
				return
			}
		}
	}

	result, err := ctl.svc.ComputeAvailability(ctx, tenantID, &req)
	if err != nil {
		handleAppError(c, err)
		return
	}

	if ctl.rdb != nil && cacheKey != "" {
		if err := services.SetToRedis(ctx, ctl.rdb, cacheKey, result, availabilityCacheTTL); err != nil {
			utils.LogError("availability cache store failed: %v", err)
		}
	}

	response.Success(c, result)
}

func availabilityVersionKey(tenantID uint) string {
	return fmt.Sprintf("availability:ver:%d", tenantID)
}

func availabilityCacheKey(tenantID uint, version int64, req *dto.AvailabilityRequest) string {
	return fmt.Sprintf("availability:%d:%d:%s:%s:%s:%s:%s:%v:%s:%s:%v:%s:%s",
		tenantID, version, req.CheckInDate, req.CheckOutDate, req.RoomType,
		ptrKey(req.Floor), ptrKey(req.CategoryID), req.Uncategorized, ptrKey(req.RatePlanID),
		ptrKey(req.MinOccupancy), req.IncludeOutOfOrder, ptrKey(req.MinRate), ptrKey(req.MaxRate))
}

func ptrKey[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
