package models

import "time"

// RoomStatusLog is the per-room history trail. One entry is appended after
// every committed booking and on every front-desk status change.
type RoomStatusLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TenantID      uint      `gorm:"index" json:"tenantId"`
	RoomID        uint      `gorm:"index" json:"roomId"`
	Status        string    `json:"status"`
	Note          string    `json:"note"`
	ReservationID *uint     `json:"reservationId"`
	ChangedByID   uint      `json:"changedById"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
