package models

import (
	"encoding/json"
	"fmt"
	"time"

	"pms/constants"
)

type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	TenantID    uint            `json:"tenantId" gorm:"index"`
	RoomNumber  string          `json:"roomNumber"`
	Type        string          `json:"type"` // single, double, twin, suite...
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity"` // max occupancy
	NumBeds     int             `json:"numBeds"`
	Status      string          `json:"status" gorm:"default:available"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	CategoryID  *uint           `json:"categoryId"`
	RatePlanID  *uint           `json:"ratePlanId"`
	CustomRate  *float64        `json:"customRate"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	RatePlan    *RatePlan       `json:"ratePlan,omitempty" gorm:"foreignKey:RatePlanID"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied, constants.RoomStatusDirty,
		constants.RoomStatusMaintenance, constants.RoomStatusOutOfOrder, constants.RoomStatusReserved:
		return nil
	}
	return fmt.Errorf("invalid room status: %s", r.Status)
}

// IsBookable reports whether the room is physically usable. Out-of-order and
// maintenance rooms are excluded from availability unless explicitly requested.
func (r *Room) IsBookable() bool {
	return r.Status != constants.RoomStatusOutOfOrder && r.Status != constants.RoomStatusMaintenance
}
