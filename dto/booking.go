package dto

import "time"

// RoomBookingItem selects one room at a caller-supplied nightly rate. The rate
// is trusted as priced by the availability query (staff may override it).
type RoomBookingItem struct {
	RoomID uint    `json:"roomId" binding:"required"`
	Rate   float64 `json:"rate" binding:"gte=0"`
}

// HallBookingItem books a meeting hall for a datetime interval at a flat rate.
// Datetimes use RFC 3339.
type HallBookingItem struct {
	HallID        uint    `json:"hallId" binding:"required"`
	StartDateTime string  `json:"startDateTime" binding:"required"`
	EndDateTime   string  `json:"endDateTime" binding:"required"`
	Rate          float64 `json:"rate" binding:"gte=0"`
	Purpose       string  `json:"purpose"`
}

// BatchBookingRequest books one-or-many rooms and halls in a single atomic
// transaction. All rooms share the same [checkIn, checkOut) interval.
type BatchBookingRequest struct {
	GuestName     string            `json:"guestName" binding:"required"`
	GuestEmail    string            `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone    string            `json:"guestPhone"`
	NumGuests     int               `json:"numGuests" binding:"gte=0"`
	CheckInDate   string            `json:"checkInDate" binding:"omitempty,bookdate"`
	CheckOutDate  string            `json:"checkOutDate" binding:"omitempty,bookdate"`
	Rooms         []RoomBookingItem `json:"rooms" binding:"omitempty,dive"`
	Halls         []HallBookingItem `json:"halls" binding:"omitempty,dive"`
	DepositAmount float64           `json:"depositAmount" binding:"gte=0"`
	DepositPaid   bool              `json:"depositPaid"`
	Notes         string            `json:"notes"`

	// ActingUserID is a hint only; the engine resolves a valid tenant user for
	// system-generated bookings (public portal).
	ActingUserID uint `json:"actingUserId"`
}

type ReservationResponse struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	RoomID        uint      `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Nights        int       `json:"nights"`
	Status        string    `json:"status"`
	Rate          float64   `json:"rate"`
	TotalAmount   float64   `json:"totalAmount"`
	DepositAmount float64   `json:"depositAmount"`
}

type HallReservationResponse struct {
	ID            uint      `json:"id"`
	HallID        uint      `json:"hallId"`
	HallName      string    `json:"hallName"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Status        string    `json:"status"`
	Rate          float64   `json:"rate"`
}

// BatchBookingResult is the all-or-nothing outcome of a batch request.
type BatchBookingResult struct {
	GroupBookingID        *uint                     `json:"groupBookingId"`
	GroupBookingReference string                    `json:"groupBookingReference,omitempty"`
	Reservations          []ReservationResponse     `json:"reservations"`
	HallReservations      []HallReservationResponse `json:"hallReservations,omitempty"`
	TotalRevenue          float64                   `json:"totalRevenue"`
}
