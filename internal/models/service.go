package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration"`

	PaymentLink string `gorm:"size:255" json:"paymentLink,omitempty"`
	QRCodeURL   string `gorm:"size:255" json:"qrCodeUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
