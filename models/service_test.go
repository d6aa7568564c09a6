package models

import (
	"testing"
)

func TestRecalcRating(t *testing.T) {
	s := &Service{}

	s.RecalcRating([]Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	})

	if s.Rating != 4.0 {
		t.Errorf("Rating = %v, want 4.0", s.Rating)
	}
	if s.TotalReviews != 3 {
		t.Errorf("TotalReviews = %d, want 3", s.TotalReviews)
	}
}

func TestRecalcRatingEmptyResets(t *testing.T) {
	s := &Service{Rating: 4.5, TotalReviews: 7}

	s.RecalcRating(nil)

	if s.Rating != 0 {
		t.Errorf("Rating = %v, want 0", s.Rating)
	}
	if s.TotalReviews != 0 {
		t.Errorf("TotalReviews = %d, want 0", s.TotalReviews)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []ServiceCategory{CategoryPhotography, CategoryVideography, CategoryCatering, CategoryEventPlanning} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}

	if ValidCategory("Plumbing") {
		t.Error(`ValidCategory("Plumbing") = true, want false`)
	}
	if ValidCategory("") {
		t.Error(`ValidCategory("") = true, want false`)
	}
}
