package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID string  `gorm:"type:uuid;not null" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID string `gorm:"type:uuid;not null" json:"barberId"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date time.Time `json:"date"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerPhone string `gorm:"size:20;not null" json:"customerPhone"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// fixado na criação; não é recalculado se o preço do serviço mudar
	TotalPrice float64 `json:"totalPrice"`

	PaymentReceiptURL string `gorm:"size:255" json:"paymentReceiptUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
