package models

import "time"

type SubCategory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null;index:idx_subcategory_name_category,unique" json:"name"`
	CategoryID uint      `gorm:"not null;index:idx_subcategory_name_category,unique" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Items      []Item    `gorm:"foreignKey:SubCategoryID" json:"items,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
