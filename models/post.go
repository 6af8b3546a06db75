package models

import "time"

type PostStatus string

const (
	PostStatusPending PostStatus = "pending"
	PostStatusPosted  PostStatus = "post"
	PostStatusCancel  PostStatus = "cancel"
)

// Post is a seller's priced listing of an item. Pricing carries one entry per
// active payment method; images are relative upload references.
type Post struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID    uint        `gorm:"not null" json:"itemId"`
	Item      *Item       `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Pricing   PricingList `gorm:"type:json;not null" json:"pricing"`
	Images    ImageList   `gorm:"type:json" json:"images"`
	Detail    string      `json:"detail"`
	Status    PostStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Count     int         `gorm:"default:0" json:"count"`
	Orders    []Order     `gorm:"foreignKey:PostID" json:"orders,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
