package dto

import "time"

// AvailabilityRequest is the inbound schema for an availability query.
// Dates use the 2006-01-02 layout; the room interval is [checkIn, checkOut)
// and the hall interval is derived from the same dates.
type AvailabilityRequest struct {
	CheckInDate  string `form:"checkInDate" json:"checkInDate" binding:"required,bookdate"`
	CheckOutDate string `form:"checkOutDate" json:"checkOutDate" binding:"required,bookdate"`

	// Inventory filters, all optional and AND-combined.
	RoomType          string `form:"roomType" json:"roomType"`
	Floor             *int   `form:"floor" json:"floor"`
	CategoryID        *uint  `form:"categoryId" json:"categoryId"`
	Uncategorized     bool   `form:"uncategorized" json:"uncategorized"` // only rooms with no category
	RatePlanID        *uint  `form:"ratePlanId" json:"ratePlanId"`
	MinOccupancy      *int   `form:"minOccupancy" json:"minOccupancy"`
	IncludeOutOfOrder bool   `form:"includeOutOfOrder" json:"includeOutOfOrder"`

	// Rate band applied to available rooms only.
	MinRate *float64 `form:"minRate" json:"minRate"`
	MaxRate *float64 `form:"maxRate" json:"maxRate"`
}

// ConflictSummary describes one existing booking that blocks a resource.
type ConflictSummary struct {
	ReservationID uint      `json:"reservationId"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
}

type RoomAvailability struct {
	ID            uint              `json:"id"`
	RoomNumber    string            `json:"roomNumber"`
	RoomType      string            `json:"roomType"`
	Floor         int               `json:"floor"`
	Capacity      int               `json:"capacity"`
	Status        string            `json:"status"`
	CategoryName  string            `json:"categoryName,omitempty"`
	EffectiveRate *float64          `json:"effectiveRate"` // nil when no rate is determinable
	Conflicts     []ConflictSummary `json:"conflicts,omitempty"`
}

type HallAvailability struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Floor         int               `json:"floor"`
	Capacity      int               `json:"capacity"`
	EffectiveRate *float64          `json:"effectiveRate"`
	Conflicts     []ConflictSummary `json:"conflicts,omitempty"`
}

type HallAvailabilityResult struct {
	TotalHalls       int                `json:"totalHalls"`
	AvailableHalls   []HallAvailability `json:"availableHalls"`
	UnavailableHalls []HallAvailability `json:"unavailableHalls"`
}

// AvailabilityResult is the advisory view returned to the caller. It carries
// no booking guarantee; the batch transaction re-checks overlap before writing.
type AvailabilityResult struct {
	CheckInDate      string                 `json:"checkInDate"`
	CheckOutDate     string                 `json:"checkOutDate"`
	TotalRooms       int                    `json:"totalRooms"`
	AvailableRooms   []RoomAvailability     `json:"availableRooms"`
	UnavailableRooms []RoomAvailability     `json:"unavailableRooms"`
	RecommendedRooms []RoomAvailability     `json:"recommendedRooms"`
	HallAvailability HallAvailabilityResult `json:"hallAvailability"`
}
