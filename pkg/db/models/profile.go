package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
)

// Profile mirrors the account record managed by the hosted auth provider.
type Profile struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"column:email;not null" json:"email"`
	FullName  *string        `gorm:"column:full_name" json:"full_name,omitempty"`
	Phone     *string        `gorm:"column:phone" json:"phone,omitempty"`
	Address   *string        `gorm:"column:address" json:"address,omitempty"`
	AvatarURL *string        `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	Role      enums.UserRole `gorm:"column:role;not null;default:'customer'" json:"role"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
