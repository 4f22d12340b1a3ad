package booking_test

import (
	"context"
	"time"

	testifymock "github.com/stretchr/testify/mock"

	"github.com/develtlab/barber-booking/internal/models"
)

// mockRepository is a testify mock over the booking domain repository.
type mockRepository struct {
	testifymock.Mock
}

func (m *mockRepository) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	args := m.Called(ctx, slug)
	if shop, ok := args.Get(0).(*models.Barbershop); ok {
		return shop, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetService(ctx context.Context, barbershopID uint, serviceID uint) (*models.BarbershopService, error) {
	args := m.Called(ctx, barbershopID, serviceID)
	if svc, ok := args.Get(0).(*models.BarbershopService); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetServiceByID(ctx context.Context, serviceID uint) (*models.BarbershopService, error) {
	args := m.Called(ctx, serviceID)
	if svc, ok := args.Get(0).(*models.BarbershopService); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) GetBookingForUser(ctx context.Context, bookingID uint, userID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) ListBookingsForDay(ctx context.Context, serviceID uint, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, serviceID, start, end)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListConfirmedForUser(ctx context.Context, userID uint, from time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, userID, from)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}
