package models

import (
	"testing"
)

func TestParseProfileRejectsUnknownFields(t *testing.T) {
	_, err := ParseProfile([]byte(`{"phone": "123", "is_admin": true}`))
	if err == nil {
		t.Error("ParseProfile should reject unknown fields")
	}

	p, err := ParseProfile([]byte(`{"phone": "123", "business_name": "Studio X"}`))
	if err != nil {
		t.Fatalf("ParseProfile failed on valid payload: %v", err)
	}
	if p.Phone != "123" || p.BusinessName != "Studio X" {
		t.Errorf("ParseProfile = %+v, want phone 123 and business_name Studio X", p)
	}
}

func TestProfileScan(t *testing.T) {
	raw := `{"location": "Lahore", "portfolio": ["a.jpg", "b.jpg"]}`

	var fromString Profile
	if err := fromString.Scan(raw); err != nil {
		t.Fatalf("Scan(string) failed: %v", err)
	}

	var fromBytes Profile
	if err := fromBytes.Scan([]byte(raw)); err != nil {
		t.Fatalf("Scan([]byte) failed: %v", err)
	}

	if fromString.Location != "Lahore" || len(fromString.Portfolio) != 2 {
		t.Errorf("Scan(string) = %+v", fromString)
	}
	if fromBytes.Location != "Lahore" || len(fromBytes.Portfolio) != 2 {
		t.Errorf("Scan([]byte) = %+v", fromBytes)
	}
}

func TestProfileMerge(t *testing.T) {
	p := Profile{Phone: "111", Location: "Karachi"}
	p.Merge(Profile{Location: "Lahore", Description: "Event photography"})

	if p.Phone != "111" {
		t.Errorf("Phone = %q, want untouched 111", p.Phone)
	}
	if p.Location != "Lahore" {
		t.Errorf("Location = %q, want Lahore", p.Location)
	}
	if p.Description != "Event photography" {
		t.Errorf("Description = %q, want Event photography", p.Description)
	}
}
