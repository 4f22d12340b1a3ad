package booking

import (
	"context"
	"time"

	"github.com/develtlab/barber-booking/internal/cache"
	domain "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/models"
	"github.com/develtlab/barber-booking/internal/timezone"
)

type ListDayBookings struct {
	repo  domain.Repository
	cache *cache.DayBookings
}

func NewListDayBookings(repo domain.Repository, dayCache *cache.DayBookings) *ListDayBookings {
	return &ListDayBookings{repo: repo, cache: dayCache}
}

// Execute devolve as reservas confirmadas de (serviço, dia) — o insumo que o
// cliente usa para montar a grade de horários.
func (uc *ListDayBookings) Execute(
	ctx context.Context,
	shopSlug string,
	serviceID uint,
	date string,
) ([]models.Booking, error) {

	shop, err := uc.repo.GetBarbershopBySlug(ctx, shopSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	if _, err := uc.repo.GetService(ctx, shop.ID, serviceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	day, err := time.ParseInLocation("2006-01-02", date, timezone.Location(shop.Timezone))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if bookings, hit := uc.cache.Get(ctx, serviceID, date); hit {
		return bookings, nil
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, serviceID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, serviceID, date, bookings)
	return bookings, nil
}
