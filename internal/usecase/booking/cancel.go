package booking

import (
	"context"

	"github.com/develtlab/barber-booking/internal/audit"
	"github.com/develtlab/barber-booking/internal/cache"
	domain "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/models"
	"github.com/develtlab/barber-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.DayBookings
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	dayCache *cache.DayBookings,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: dayCache,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	tz := b.Service.Barbershop.Timezone
	now := timezone.NowIn(tz)

	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.ServiceID, b.Date.In(timezone.Location(tz)).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
