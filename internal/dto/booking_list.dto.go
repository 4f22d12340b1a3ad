package dto

import "time"

type BookingListDTO struct {
	ID             uint      `json:"id"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ServiceName    string    `json:"service_name"`
	BarbershopName string    `json:"barbershop_name"`
}
