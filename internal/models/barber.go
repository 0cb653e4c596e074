package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Avatar string `gorm:"size:255" json:"avatar"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BarberService liga barbeiros aos serviços que eles executam
type BarberService struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID string  `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (bs *BarberService) BeforeCreate(tx *gorm.DB) error {
	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	return nil
}
