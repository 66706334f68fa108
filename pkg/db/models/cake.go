package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Cake represents one catalog listing. Prices are whole rupees.
type Cake struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name               string         `gorm:"column:name;not null" json:"name"`
	Description        string         `gorm:"column:description" json:"description"`
	Price              int            `gorm:"column:price;not null" json:"price"`
	ImageURL           *string        `gorm:"column:image_url" json:"image_url,omitempty"`
	CategoryID         *uuid.UUID     `gorm:"column:category_id;type:uuid" json:"category_id,omitempty"`
	Available          bool           `gorm:"column:available;not null;default:true" json:"available"`
	Ingredients        pq.StringArray `gorm:"column:ingredients;type:text" json:"ingredients"`
	Allergens          pq.StringArray `gorm:"column:allergens;type:text" json:"allergens"`
	PreparationTime    *int           `gorm:"column:preparation_time" json:"preparation_time,omitempty"`
	Rating             float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	ReviewCount        int            `gorm:"column:review_count;not null;default:0" json:"review_count"`
	DiscountPercentage *float64       `gorm:"column:discount_percentage" json:"discount_percentage,omitempty"`
	DiscountStartDate  *time.Time     `gorm:"column:discount_start_date" json:"discount_start_date,omitempty"`
	DiscountEndDate    *time.Time     `gorm:"column:discount_end_date" json:"discount_end_date,omitempty"`
	Category           *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
