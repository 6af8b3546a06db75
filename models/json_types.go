package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// PricingEntry is one price point of a post, bound to a payment method.
type PricingEntry struct {
	PaymentMethodID uint    `json:"paymentMethodId"`
	Value           float64 `json:"value"`
}

// PricingList is stored as a JSON column.
type PricingList []PricingEntry

func (p PricingList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PricingList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for PricingList")
	}
}

// ImageList holds relative file references, stored as a JSON column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ImageList")
	}
}
