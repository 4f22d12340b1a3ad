package booking

import (
	"context"
	"time"

	"github.com/develtlab/barber-booking/internal/cache"
	domain "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/timezone"
)

type AvailabilityInput struct {
	ShopSlug  string
	ServiceID uint
	Date      string // YYYY-MM-DD
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.DayBookings
}

func NewGetAvailability(repo domain.Repository, dayCache *cache.DayBookings) *GetAvailability {
	return &GetAvailability{repo: repo, cache: dayCache}
}

// Execute lista os horários livres da grade para (serviço, dia). Dias já
// passados são recusados aqui; o filtro puro em si não barra dias passados.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopBySlug(ctx, in.ShopSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	if _, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(shop.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(shop.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookings, hit := uc.cache.Get(ctx, in.ServiceID, in.Date)
	if !hit {
		// AddDate respeita dias civis de 23/25h em transição de horário de verão
		start := day
		end := start.AddDate(0, 0, 1)

		bookings, err = uc.repo.ListBookingsForDay(ctx, in.ServiceID, start, end)
		if err != nil {
			return nil, err
		}

		uc.cache.Set(ctx, in.ServiceID, in.Date, bookings)
	}

	return domain.AvailableSlots(domain.TimeCatalog, bookings, day, now), nil
}
