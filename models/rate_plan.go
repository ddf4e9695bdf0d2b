package models

import "time"

type RatePlan struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TenantID   uint      `json:"tenantId" gorm:"index"`
	Name       string    `json:"name"`
	BaseRate   float64   `json:"baseRate"`
	Currency   string    `json:"currency"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
