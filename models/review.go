package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	ServiceID uint   `json:"service_id"`
	ClientID  uint   `json:"client_id"`
	Client    User   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment"`
}

// HasExistingReview reports whether the client has already reviewed the service.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("client_id = ? AND service_id = ? AND deleted_at IS NULL", r.ClientID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}
