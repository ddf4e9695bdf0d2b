package models

import "time"

// Reservation is a single room booking. Reservations are never deleted; a
// cancelled or no-show reservation stays in the table for audit history.
// Two reservations overlap iff existing.CheckInDate < new.CheckOutDate AND
// existing.CheckOutDate > new.CheckInDate; only confirmed/checked_in rows block.
type Reservation struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	TenantID       uint          `json:"tenantId" gorm:"index"`
	Reference      string        `json:"reference" gorm:"index"`
	RoomID         uint          `json:"roomId" gorm:"index"`
	Room           *Room         `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	UserID         uint          `json:"userId"`
	User           *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GroupBookingID *uint         `json:"groupBookingId" gorm:"index"`
	GroupBooking   *GroupBooking `json:"-" gorm:"foreignKey:GroupBookingID"`
	GuestName      string        `json:"guestName"`
	GuestEmail     string        `json:"guestEmail"`
	GuestPhone     string        `json:"guestPhone"`
	NumGuests      int           `json:"numGuests"`
	CheckInDate    time.Time     `json:"checkInDate" gorm:"index"`
	CheckOutDate   time.Time     `json:"checkOutDate" gorm:"index"`
	Status         string        `json:"status" gorm:"default:confirmed;index"`
	Rate           float64       `json:"rate"` // nightly, fixed at creation
	TotalAmount    float64       `json:"totalAmount"`
	DepositAmount  float64       `json:"depositAmount"`
	DepositPaid    bool          `json:"depositPaid"`
	Notes          string        `json:"notes"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights returns the stay length in whole nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
