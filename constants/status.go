package constants

// Room housekeeping / front-desk status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusDirty       = "dirty"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOutOfOrder  = "out_of_order"
	RoomStatusReserved    = "reserved"
)

// Reservation status
const (
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusNoShow     = "no_show"
)

// Hall reservation status
const (
	HallReservationStatusTentative = "tentative"
	HallReservationStatusConfirmed = "confirmed"
	HallReservationStatusCancelled = "cancelled"
)

// Tenant status
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// ReservationBlockingStatuses are the reservation statuses that count toward a
// room overlap. Anything else (checked_out, cancelled, no_show) frees the room.
var ReservationBlockingStatuses = []string{ReservationStatusConfirmed, ReservationStatusCheckedIn}

// HallBlockingStatuses are the hall reservation statuses that count toward a
// hall overlap.
var HallBlockingStatuses = []string{HallReservationStatusTentative, HallReservationStatusConfirmed}
