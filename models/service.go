package models

import (
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryPhotography   ServiceCategory = "Photography"
	CategoryVideography   ServiceCategory = "Videography"
	CategoryCatering      ServiceCategory = "Catering"
	CategoryEventPlanning ServiceCategory = "Event Planning"
)

// ValidCategory reports whether c is one of the fixed service categories.
func ValidCategory(c ServiceCategory) bool {
	switch c {
	case CategoryPhotography, CategoryVideography, CategoryCatering, CategoryEventPlanning:
		return true
	}
	return false
}

type PriceType string

const (
	PricePerHour   PriceType = "per_hour"
	PricePerEvent  PriceType = "per_event"
	PricePerPerson PriceType = "per_person"
	PriceFixed     PriceType = "fixed"
)

type Service struct {
	gorm.Model
	ProviderID   uint            `json:"provider_id"`
	Provider     User            `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Title        string          `json:"title"`
	Category     ServiceCategory `json:"category"`
	Description  string          `json:"description"`
	Images       StringList      `json:"images" gorm:"type:jsonb"`
	Price        float64         `json:"price"`
	PriceType    PriceType       `json:"price_type" gorm:"default:per_event"`
	Location     string          `json:"location"`
	Availability bool            `json:"availability" gorm:"default:true"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"total_reviews"`
	Reviews      []Review        `json:"reviews,omitempty" gorm:"foreignKey:ServiceID"`
	Features     StringList      `json:"features" gorm:"type:jsonb"`
	ServiceArea  StringList      `json:"service_area" gorm:"type:jsonb"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.PriceType == "" {
		s.PriceType = PricePerEvent
	}
	return nil
}

// RecalcRating recomputes the derived rating fields from the given review
// list. Zero reviews resets the rating to 0.
func (s *Service) RecalcRating(reviews []Review) {
	if len(reviews) == 0 {
		s.Rating = 0
		s.TotalReviews = 0
		return
	}

	var total float64
	for _, r := range reviews {
		total += float64(r.Rating)
	}
	s.Rating = total / float64(len(reviews))
	s.TotalReviews = len(reviews)
}
