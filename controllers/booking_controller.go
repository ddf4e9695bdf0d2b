package controllers

import (
	"pms/dto"
	"pms/middleware"
	"pms/response"
	"pms/services"
	"pms/utils"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type BookingController struct {
	svc *services.BookingService
	rdb *redis.Client
}

func NewBookingController(svc *services.BookingService, rdb *redis.Client) *BookingController {
	return &BookingController{svc: svc, rdb: rdb}
}

// CreateBatchBooking handles POST /bookings/batch. The batch either fully
// succeeds or nothing is persisted; a conflict response names the rooms or
// halls that blocked it.
func (ctl *BookingController) CreateBatchBooking(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var req dto.BatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid booking payload: "+err.Error())
		return
	}
	if err := validator.ValidateBatchBookingRequest(&req); err != nil {
		handleAppError(c, err)
		return
	}

	// A token-derived actor takes precedence over the payload hint; both are
	// re-validated against the tenant inside the transaction.
	if actor := middleware.ActorID(c); actor != 0 {
		req.ActingUserID = actor
	}

	result, err := ctl.svc.CreateBatch(c.Request.Context(), tenantID, &req)
	if err != nil {
		handleAppError(c, err)
		return
	}

	if ctl.rdb != nil {
		if err := ctl.rdb.Incr(c.Request.Context(), availabilityVersionKey(tenantID)).Err(); err != nil {
			utils.LogError("availability cache version bump failed: %v", err)
		}
	}

	response.Created(c, result)
}
