package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Profile holds the user's profile data as a single JSONB column.
// The field set is closed: ParseProfile rejects unknown keys.
type Profile struct {
	Phone        string     `json:"phone,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	BusinessName string     `json:"business_name,omitempty"`
	Category     string     `json:"category,omitempty"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location,omitempty"`
	PriceRange   string     `json:"price_range,omitempty"`
	Experience   string     `json:"experience,omitempty"`
	Portfolio    StringList `json:"portfolio,omitempty"`
}

// Value implements the driver.Valuer interface
func (p Profile) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (p *Profile) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Profile: unsupported type %T", value)
	}

	return json.Unmarshal(data, p)
}

// ParseProfile decodes a profile payload, failing on fields outside the
// recognized set.
func ParseProfile(raw []byte) (Profile, error) {
	var p Profile
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Merge overlays the non-empty fields of other onto p.
func (p *Profile) Merge(other Profile) {
	if other.Phone != "" {
		p.Phone = other.Phone
	}
	if other.Avatar != "" {
		p.Avatar = other.Avatar
	}
	if other.BusinessName != "" {
		p.BusinessName = other.BusinessName
	}
	if other.Category != "" {
		p.Category = other.Category
	}
	if other.Description != "" {
		p.Description = other.Description
	}
	if other.Location != "" {
		p.Location = other.Location
	}
	if other.PriceRange != "" {
		p.PriceRange = other.PriceRange
	}
	if other.Experience != "" {
		p.Experience = other.Experience
	}
	if len(other.Portfolio) > 0 {
		p.Portfolio = other.Portfolio
	}
}

// StringList stores a list of strings as a JSONB column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// Contact is the client's contact details attached to a booking.
type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Value implements the driver.Valuer interface
func (c Contact) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (c *Contact) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Contact: unsupported type %T", value)
	}

	return json.Unmarshal(data, c)
}
