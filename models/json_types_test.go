package models

import "testing"

func TestPricingListScanHandlesDriverTypes(t *testing.T) {
	payload := `[{"paymentMethodId":2,"value":55.5}]`

	// Postgres hands over []byte, sqlite a string.
	var fromBytes PricingList
	if err := fromBytes.Scan([]byte(payload)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	var fromString PricingList
	if err := fromString.Scan(payload); err != nil {
		t.Fatalf("scan string: %v", err)
	}

	for _, list := range []PricingList{fromBytes, fromString} {
		if len(list) != 1 || list[0].PaymentMethodID != 2 || list[0].Value != 55.5 {
			t.Errorf("scanned = %+v", list)
		}
	}

	var fromNil PricingList
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if fromNil != nil {
		t.Errorf("nil scan = %+v, want nil", fromNil)
	}

	var bad PricingList
	if err := bad.Scan(42); err == nil {
		t.Error("expected an error for an unsupported source type")
	}
}

func TestImageListValueNeverNull(t *testing.T) {
	var empty ImageList
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	// A nil list serializes as an empty array, not SQL NULL.
	if string(v.([]byte)) != "[]" {
		t.Errorf("value = %s, want []", v)
	}
}
