package booking

import (
	"context"

	domain "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/dto"
	"github.com/develtlab/barber-booking/internal/timezone"
)

type ListConfirmedBookings struct {
	repo domain.Repository
}

func NewListConfirmedBookings(
	repo domain.Repository,
) *ListConfirmedBookings {
	return &ListConfirmedBookings{
		repo: repo,
	}
}

// Execute devolve as próximas reservas confirmadas do usuário (resumo da
// home e tela de agendamentos).
func (uc *ListConfirmedBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListConfirmedForUser(
		ctx,
		userID,
		timezone.Now(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:             b.ID,
			Date:           b.Date,
			Status:         b.Status,
			ServiceName:    b.Service.Name,
			BarbershopName: b.Service.Barbershop.Name,
		})
	}

	return out, nil
}
