package models

import "time"

type CustomerType string

type CustomerStatus string

const (
	CustomerTypeSeller CustomerType = "seller"
	CustomerTypeBuyer  CustomerType = "buyer"

	// Buyers are approved at registration; sellers start pending and are
	// approved or rejected by staff.
	CustomerStatusPending  CustomerStatus = "pending"
	CustomerStatusApproved CustomerStatus = "approved"
	CustomerStatusRejected CustomerStatus = "rejected"
)

type Customer struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	PhoneNo   string         `gorm:"not null;unique" json:"phoneNo"`
	Password  string         `gorm:"not null" json:"-"`
	Email     string         `gorm:"unique" json:"email"`
	Type      CustomerType   `gorm:"type:VARCHAR(10);not null" json:"type"`
	LicenseNo string         `json:"licenseNo"`
	LegalDoc  ImageList      `gorm:"type:json" json:"legalDoc"`
	Tin       string         `json:"tin"`
	Status    CustomerStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Orders    []Order        `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	Sales     []Sales        `gorm:"foreignKey:CustomerID" json:"sales,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
