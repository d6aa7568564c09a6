package models

import (
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	b := &Booking{Status: StatusCompleted}

	if err := b.UpdateStatus(nil, StatusCancelled); err == nil {
		t.Error("UpdateStatus from completed to cancelled should fail")
	}
	if b.Status != StatusCompleted {
		t.Errorf("status changed to %s on rejected transition", b.Status)
	}
}
