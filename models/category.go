package models

import "time"

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"not null;unique" json:"name"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"subCategories,omitempty"`
	Items         []Item        `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
