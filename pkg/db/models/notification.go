package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
)

// Notification is a per-user storefront message (order updates, promotions).
type Notification struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID              `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Type      enums.NotificationType `gorm:"column:type;not null" json:"type"`
	Title     string                 `gorm:"column:title;not null" json:"title"`
	Message   string                 `gorm:"column:message;not null" json:"message"`
	Read      bool                   `gorm:"column:read;not null;default:false" json:"read"`
	RelatedID *string                `gorm:"column:related_id" json:"related_id,omitempty"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
