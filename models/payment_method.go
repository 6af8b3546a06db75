package models

import "time"

type PaymentMethodStatus string

const (
	PaymentMethodActive   PaymentMethodStatus = "active"
	PaymentMethodInactive PaymentMethodStatus = "inactive"
)

type PaymentMethod struct {
	ID        uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string              `gorm:"not null" json:"name"`
	Status    PaymentMethodStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
