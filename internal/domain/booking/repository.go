package booking

import (
	"context"
	"time"

	"github.com/develtlab/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.BarbershopService, error)

	GetServiceByID(
		ctx context.Context,
		serviceID uint,
	) (*models.BarbershopService, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability / listing --------
	ListBookingsForDay(
		ctx context.Context,
		serviceID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListConfirmedForUser(
		ctx context.Context,
		userID uint,
		from time.Time,
	) ([]models.Booking, error)
}
