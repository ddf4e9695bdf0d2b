package models

import (
	"encoding/json"
	"time"
)

type MeetingHall struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	TenantID    uint            `json:"tenantId" gorm:"index"`
	Name        string          `json:"name"`
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	IsActive    bool            `json:"isActive" gorm:"default:true"`
	CategoryID  *uint           `json:"categoryId"`
	RatePlanID  *uint           `json:"ratePlanId"`
	CustomRate  *float64        `json:"customRate"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	RatePlan    *RatePlan       `json:"ratePlan,omitempty" gorm:"foreignKey:RatePlanID"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
