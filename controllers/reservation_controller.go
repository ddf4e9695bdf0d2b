package controllers

import (
	"strconv"

	"pms/dto"
	"pms/middleware"
	"pms/response"
	"pms/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{svc: svc}
}

// GetByReference handles GET /reservations/:reference.
func (ctl *ReservationController) GetByReference(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	detail, err := ctl.svc.GetByReference(c.Request.Context(), tenantID, c.Param("reference"))
	if err != nil {
		handleAppError(c, err)
		return
	}
	response.Success(c, detail)
}

// ListByGuest handles GET /reservations?guest=...&page=...&limit=...
func (ctl *ReservationController) ListByGuest(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	details, total, err := ctl.svc.FindByGuest(c.Request.Context(), tenantID, c.Query("guest"), page, limit)
	if err != nil {
		handleAppError(c, err)
		return
	}
	response.SuccessWithPagination(c, details, page, limit, int(total))
}

// ChangeStatus handles PUT /reservations/:reference/status with an action of
// check_in, check_out, cancel or no_show.
func (ctl *ReservationController) ChangeStatus(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid status payload: "+err.Error())
		return
	}

	reservation, err := ctl.svc.ChangeStatus(c.Request.Context(), tenantID, c.Param("reference"), req.Status, middleware.ActorID(c), req.Note)
	if err != nil {
		handleAppError(c, err)
		return
	}
	response.Success(c, reservation)
}

// RoomCalendar handles GET /rooms/:id/calendar?from=...&to=...
func (ctl *ReservationController) RoomCalendar(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	from, err := dto.ParseDate(c.Query("from"))
	if err != nil {
		response.BadRequest(c, "from must use the 2006-01-02 layout")
		return
	}
	to, err := dto.ParseDate(c.Query("to"))
	if err != nil {
		response.BadRequest(c, "to must use the 2006-01-02 layout")
		return
	}

	calendar, err := ctl.svc.RoomCalendar(c.Request.Context(), tenantID, uint(roomID), from, to)
	if err != nil {
		handleAppError(c, err)
		return
	}
	response.Success(c, calendar)
}
