package models

import "time"

type SaleStatus string

type SalePaymentStatus string

type SaleDeliveryStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusSold      SaleStatus = "sold"
	SaleStatusCancelled SaleStatus = "cancelled"

	SalePaymentUnpaid  SalePaymentStatus = "unpaid"
	SalePaymentPartial SalePaymentStatus = "partial"
	SalePaymentPaid    SalePaymentStatus = "paid"

	SaleDeliveryPending   SaleDeliveryStatus = "pending"
	SaleDeliveryShipped   SaleDeliveryStatus = "shipped"
	SaleDeliveryDelivered SaleDeliveryStatus = "delivered"
)

// Sales is the fulfillment record of an approved order, or a standalone sale
// linked directly to an item/customer. The three status axes are independent;
// only the transition to "sold" touches item stock.
type Sales struct {
	ID         uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    *uint              `json:"orderId"`
	Order      *Order             `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	CustomerID *uint              `json:"customerId"`
	Customer   *Customer          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ItemID     *uint              `json:"itemId"`
	Item       *Item              `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity   *int               `json:"quantity"`
	Price      float64            `gorm:"not null" json:"price"`
	TotalPrice float64            `gorm:"not null" json:"totalPrice"`
	PaidAmount float64            `gorm:"default:0" json:"paidAmount"`
	Status     SaleStatus         `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Payment    SalePaymentStatus  `gorm:"column:payment_status;type:VARCHAR(20);default:'unpaid'" json:"paymentStatus"`
	Delivery   SaleDeliveryStatus `gorm:"column:delivery_status;type:VARCHAR(20);default:'pending'" json:"deliveryStatus"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}
