package models

import "time"

// GroupBooking is the umbrella record created when one guest request spans
// more than one room or includes any hall reservation. It is only ever created
// together with its child reservations, never standalone.
type GroupBooking struct {
	ID                uint                          `json:"id" gorm:"primaryKey"`
	TenantID          uint                          `json:"tenantId" gorm:"index"`
	Reference         string                        `json:"reference" gorm:"index"`
	GuestName         string                        `json:"guestName"`
	GuestEmail        string                        `json:"guestEmail"`
	GuestPhone        string                        `json:"guestPhone"`
	ExpectedOccupancy int                           `json:"expectedOccupancy"`
	TotalRooms        int                           `json:"totalRooms"`
	TotalRevenue      float64                       `json:"totalRevenue"`
	Notes             string                        `json:"notes"`
	Reservations      []Reservation                 `json:"reservations,omitempty" gorm:"foreignKey:GroupBookingID"`
	HallReservations  []GroupBookingHallReservation `json:"hallReservations,omitempty" gorm:"foreignKey:GroupBookingID"`
	CreatedByID       uint                          `json:"createdById"`
	CreatedAt         time.Time                     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time                     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// GroupBookingHallReservation books a meeting hall for a datetime interval.
// Overlap mirrors room reservations but on half-open datetimes; only
// tentative/confirmed rows block.
type GroupBookingHallReservation struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	TenantID       uint         `json:"tenantId" gorm:"index"`
	GroupBookingID uint         `json:"groupBookingId" gorm:"index"`
	HallID         uint         `json:"hallId" gorm:"index"`
	Hall           *MeetingHall `json:"hall,omitempty" gorm:"foreignKey:HallID"`
	StartDateTime  time.Time    `json:"startDateTime" gorm:"index"`
	EndDateTime    time.Time    `json:"endDateTime" gorm:"index"`
	Status         string       `json:"status" gorm:"default:tentative;index"`
	Rate           float64      `json:"rate"` // flat, per session
	Purpose        string       `json:"purpose"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
