package booking

import (
	"context"
	"time"

	"github.com/develtlab/barber-booking/internal/audit"
	"github.com/develtlab/barber-booking/internal/cache"
	domain "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/models"
	"github.com/develtlab/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache *cache.DayBookings
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	dayCache *cache.DayBookings,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: dayCache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Serviço (carrega a barbearia junto, pelo timezone)
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Horário precisa estar na grade fixa
	// --------------------------------------------------
	if !domain.IsCatalogLabel(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(svc.Barbershop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(svc.Barbershop.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Criação (conflito de horário resolvido no repositório)
	// --------------------------------------------------
	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: svc.ID,
		Date:      start,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, svc.ID, in.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
