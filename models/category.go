package models

import "time"

// Category groups rooms of the same type (Standard, Deluxe, Suite...). Rate
// plans may target a category so rooms without a directly linked plan can
// still be priced.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TenantID    uint      `json:"tenantId" gorm:"index"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
