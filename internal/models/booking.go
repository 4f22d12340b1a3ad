package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint              `gorm:"index:idx_bookings_service_day,priority:1" json:"service_id"`
	Service   BarbershopService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date time.Time `gorm:"index:idx_bookings_service_day,priority:2" json:"date"`

	Status string `gorm:"size:20;default:'confirmed';index:idx_bookings_service_day,priority:3" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
