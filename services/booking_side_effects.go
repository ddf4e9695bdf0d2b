package services

import (
	"pms/constants"
	"pms/models"
	"pms/services/logger"
	"pms/services/notification"
)

// BookingSideEffects runs the post-commit work of a batch booking: audit-log
// entries, room-history entries and guest notification. Everything here is
// best-effort and non-blocking for the caller; failures are logged, never
// surfaced as a booking failure.
type BookingSideEffects struct {
	audit  *AuditService
	outbox *notification.Outbox
	logger logger.Logger
}

func NewBookingSideEffects(audit *AuditService, outbox *notification.Outbox, l logger.Logger) *BookingSideEffects {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingSideEffects{audit: audit, outbox: outbox, logger: l}
}

// AfterBatchCommit emits one audit entry and one room-history entry per
// created reservation, one audit entry for the group booking, and one guest
// notification for the batch.
func (e *BookingSideEffects) AfterBatchCommit(tenantID, actorID uint, group *models.GroupBooking, reservations []models.Reservation, hallReservations []models.GroupBookingHallReservation) {
	for i := range reservations {
		r := &reservations[i]
		if err := e.audit.Record(tenantID, actorID, "reservation.created", "reservation", r.ID, r); err != nil {
			e.logger.Error("audit append for reservation %s failed: %v", r.Reference, err)
		}
		if err := e.audit.RecordRoomHistory(tenantID, r.RoomID, constants.RoomStatusReserved,
			"reserved by "+r.Reference, &r.ID, actorID); err != nil {
			e.logger.Error("room history append for room %d failed: %v", r.RoomID, err)
		}
	}

	if group != nil {
		if err := e.audit.Record(tenantID, actorID, "group_booking.created", "group_booking", group.ID, group); err != nil {
			e.logger.Error("audit append for group booking %s failed: %v", group.Reference, err)
		}
	}

	if e.outbox == nil {
		return
	}
	payload := map[string]interface{}{
		"reservations":     reservations,
		"hallReservations": hallReservations,
	}
	recipient := ""
	if len(reservations) > 0 {
		recipient = reservations[0].GuestEmail
	} else if group != nil {
		recipient = group.GuestEmail
	}
	if group != nil {
		payload["groupBookingReference"] = group.Reference
	}
	e.outbox.Publish(notification.NewEvent(tenantID, "booking.confirmed", recipient, payload))
}
