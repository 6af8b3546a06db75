package models

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

type Order struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      uint           `gorm:"not null" json:"customerId"`
	Customer        *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PostID          uint           `gorm:"not null" json:"postId"`
	Post            *Post          `gorm:"foreignKey:PostID" json:"post,omitempty"`
	PaymentMethodID uint           `json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"paymentMethod,omitempty"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	OfferedPrice    float64        `json:"offeredPrice"`
	Status          OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Sales           []Sales        `gorm:"foreignKey:OrderID" json:"sales,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
