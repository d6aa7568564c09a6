package models

import (
	"time"
)

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	Role         Role      `json:"role" gorm:"default:client"`
	IsVerified   bool      `json:"is_verified"`
	IsApproved   bool      `json:"is_approved"`
	OTPCode      string    `json:"-"`
	OTPExpiresAt time.Time `json:"-"`
	Profile      Profile   `json:"profile" gorm:"type:jsonb"`
	Services     []Service `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings     []Booking `json:"bookings,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitize clears credentials and OTP state before the user is written to a response.
func (u *User) Sanitize() {
	u.Password = ""
	u.OTPCode = ""
	u.OTPExpiresAt = time.Time{}
}
