package models

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	TenantID   uint            `gorm:"index" json:"tenantId"`
	UserID     uint            `json:"userId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   uint            `json:"entityId"`
	Details    json.RawMessage `json:"details" gorm:"type:json"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}
