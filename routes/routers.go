package routes

import (
	"pms/controllers"
	"pms/middleware"
	"pms/services"
	"pms/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires services and controllers onto the router. The outbox is
// shared: booking side effects and lifecycle transitions publish to it.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, outbox *notification.Outbox) {
	var tenantCache services.TenantCache
	if redisCli != nil {
		tenantCache = services.NewRedisTenantCache(redisCli)
	}
	tenantService := services.NewTenantService(services.TenantServiceOptions{DB: db, Cache: tenantCache})

	audit := services.NewAuditService(db, nil)
	effects := services.NewBookingSideEffects(audit, outbox, nil)

	availabilitySvc := services.NewAvailabilityService(services.AvailabilityServiceOptions{DB: db})
	bookingSvc := services.NewBookingService(services.BookingServiceOptions{DB: db, SideEffects: effects})
	reservationSvc := services.NewReservationService(services.ReservationServiceOptions{DB: db, Audit: audit, Outbox: outbox})

	availabilityController := controllers.NewAvailabilityController(availabilitySvc, redisCli)
	bookingController := controllers.NewBookingController(bookingSvc, redisCli)
	reservationController := controllers.NewReservationController(reservationSvc)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.TenantMiddleware(tenantService), middleware.ActorMiddleware())

	v1.GET("/availability", availabilityController.CheckAvailability)
	v1.POST("/bookings/batch", bookingController.CreateBatchBooking)
	v1.GET("/reservations", reservationController.ListByGuest)
	v1.GET("/reservations/:reference", reservationController.GetByReference)
	v1.PUT("/reservations/:reference/status", reservationController.ChangeStatus)
	v1.GET("/rooms/:id/calendar", reservationController.RoomCalendar)
}
