package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	gorm.Model
	ClientID      uint          `json:"client_id"`
	Client        User          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ProviderID    uint          `json:"provider_id"`
	Provider      User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	BookingDate   time.Time     `json:"booking_date"`
	EventDate     time.Time     `json:"event_date"`
	EventLocation string        `json:"event_location"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentID     string        `json:"payment_id,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	ClientContact Contact       `json:"client_contact" gorm:"type:jsonb"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now()
	}
	return nil
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// UpdateStatus applies a status transition and saves the booking.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !b.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
