package models

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// SalesRequest is a seller's restocking offer for an item, approved
// independently of orders.
type SalesRequest struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID          uint           `gorm:"not null" json:"itemId"`
	Item            *Item          `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Price           float64        `gorm:"not null" json:"price"`
	Unit            string         `json:"unit"`
	Quantity        int            `gorm:"default:0" json:"quantity"`
	PaymentMethodID uint           `gorm:"not null" json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"paymentMethod,omitempty"`
	Images          ImageList      `gorm:"type:json" json:"images"`
	Status          RequestStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
