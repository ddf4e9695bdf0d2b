package jobs

import (
	"log"
	"time"

	"pms/constants"
	"pms/models"
	"pms/services/notification"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs schedules the housekeeping jobs: nightly no-show marking and
// hourly expiry of stale tentative hall reservations. Both are cleanup around
// the booking engine; they never touch an open booking transaction.
func InitCronJobs(c *cron.Cron, db *gorm.DB, outbox *notification.Outbox) error {
	// 02:00 every day: confirmed reservations whose check-in day has fully
	// passed without a check-in become no-shows.
	if _, err := c.AddFunc("0 2 * * *", func() {
		MarkNoShows(db, outbox)
	}); err != nil {
		return err
	}

	// Hourly: tentative hall reservations whose start time has passed are
	// cancelled so they stop blocking the hall.
	if _, err := c.AddFunc("0 * * * *", func() {
		ExpireTentativeHallReservations(db, outbox)
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// MarkNoShows flips confirmed reservations with a past check-in date to
// no_show and notifies per tenant.
func MarkNoShows(db *gorm.DB, outbox *notification.Outbox) {
	cutoff := time.Now().Truncate(24 * time.Hour)

	var stale []models.Reservation
	if err := db.Where("status = ? AND check_in_date < ?", constants.ReservationStatusConfirmed, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("no-show scan failed: %v", err)
		return
	}

	for _, r := range stale {
		if err := db.Model(&models.Reservation{}).Where("id = ?", r.ID).
			Update("status", constants.ReservationStatusNoShow).Error; err != nil {
			log.Printf("no-show update for reservation %s failed: %v", r.Reference, err)
			continue
		}
		if outbox != nil {
			outbox.Publish(notification.NewEvent(r.TenantID, "reservation.no_show", r.GuestEmail, r))
		}
	}
	if len(stale) > 0 {
		log.Printf("marked %d reservations as no-show", len(stale))
	}
}

// ExpireTentativeHallReservations cancels tentative hall reservations whose
// start time has passed.
func ExpireTentativeHallReservations(db *gorm.DB, outbox *notification.Outbox) {
	now := time.Now()

	var stale []models.GroupBookingHallReservation
	if err := db.Where("status = ? AND start_date_time < ?", constants.HallReservationStatusTentative, now).
		Find(&stale).Error; err != nil {
		log.Printf("tentative hall scan failed: %v", err)
		return
	}

	for _, hr := range stale {
		if err := db.Model(&models.GroupBookingHallReservation{}).Where("id = ?", hr.ID).
			Update("status", constants.HallReservationStatusCancelled).Error; err != nil {
			log.Printf("tentative hall expiry for %d failed: %v", hr.ID, err)
			continue
		}
		if outbox != nil {
			outbox.Publish(notification.NewEvent(hr.TenantID, "hall_reservation.expired", "", hr))
		}
	}
	if len(stale) > 0 {
		log.Printf("expired %d tentative hall reservations", len(stale))
	}
}
