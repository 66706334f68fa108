package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Review is customer feedback attached to a cake, optionally tied to an order.
type Review struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CakeID       uuid.UUID      `gorm:"column:cake_id;type:uuid;not null" json:"cake_id"`
	UserID       uuid.UUID      `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	OrderID      *uuid.UUID     `gorm:"column:order_id;type:uuid" json:"order_id,omitempty"`
	Rating       int            `gorm:"column:rating;not null" json:"rating"`
	Comment      *string        `gorm:"column:comment" json:"comment,omitempty"`
	Images       pq.StringArray `gorm:"column:images;type:text" json:"images"`
	HelpfulCount int            `gorm:"column:helpful_count;not null;default:0" json:"helpful_count"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
