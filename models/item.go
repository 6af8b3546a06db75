package models

import "time"

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusUnavailable ItemStatus = "unavailable"
)

type Item struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Description   string       `json:"description"`
	CategoryID    uint         `gorm:"not null" json:"categoryId"`
	Category      *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID *uint        `json:"subCategoryId"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
	Quantity      int          `gorm:"not null" json:"quantity"`
	MinQuantity   int          `gorm:"not null" json:"minQuantity"`
	Featured      bool         `gorm:"default:false" json:"featured"`
	// FeaturedUntil stays nil unless Featured is set.
	FeaturedUntil *time.Time `json:"featuredUntil"`
	Status        ItemStatus `gorm:"type:VARCHAR(20);default:'available'" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
