package dto

import "time"

// BookedInterval is one occupied slot on a room's calendar.
type BookedInterval struct {
	ReservationID uint      `json:"reservationId"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
}

// RoomCalendar lists the booked intervals of one room for a queried window.
type RoomCalendar struct {
	RoomID     uint             `json:"roomId"`
	RoomNumber string           `json:"roomNumber"`
	Intervals  []BookedInterval `json:"intervals"`
}

type ReservationDetail struct {
	ReservationResponse
	GuestName             string `json:"guestName"`
	GuestEmail            string `json:"guestEmail"`
	GuestPhone            string `json:"guestPhone"`
	NumGuests             int    `json:"numGuests"`
	GroupBookingID        *uint  `json:"groupBookingId,omitempty"`
	GroupBookingReference string `json:"groupBookingReference,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}
