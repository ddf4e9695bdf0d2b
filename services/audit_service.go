package services

import (
	apperrors "pms/errors"
	"pms/models"
	"pms/services/logger"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// AuditService appends audit-log and room-history entries. All writes here
// happen after the booking transaction committed and are best-effort.
type AuditService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewAuditService(db *gorm.DB, l logger.Logger) *AuditService {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuditService{db: db, logger: l}
}

// Record appends one audit-log entry. details is serialized to JSON; a
// serialization failure drops the details but keeps the entry.
func (s *AuditService) Record(tenantID, userID uint, action, entityType string, entityID uint, details interface{}) error {
	entry := models.AuditLog{
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = raw
		} else {
			s.logger.Error("audit details for %s %d not serializable: %v", entityType, entityID, err)
		}
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeNotification, "audit log append failed", err)
	}
	return nil
}

// RecordRoomHistory appends one room-history entry.
func (s *AuditService) RecordRoomHistory(tenantID, roomID uint, status, note string, reservationID *uint, changedByID uint) error {
	entry := models.RoomStatusLog{
		TenantID:      tenantID,
		RoomID:        roomID,
		Status:        status,
		Note:          note,
		ReservationID: reservationID,
		ChangedByID:   changedByID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeNotification, "room history append failed", err)
	}
	return nil
}
