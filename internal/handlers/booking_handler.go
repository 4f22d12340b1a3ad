package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/middleware"
	ucBooking "github.com/develtlab/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	availabilityUC *ucBooking.GetAvailability
	listDayUC      *ucBooking.ListDayBookings
	listMineUC     *ucBooking.ListConfirmedBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	availabilityUC *ucBooking.GetAvailability,
	listDayUC *ucBooking.ListDayBookings,
	listMineUC *ucBooking.ListConfirmedBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
		listDayUC:      listDayUC,
		listMineUC:     listMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE (autenticado)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Horário inválido.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.BadRequest(c, "slot_taken", "Horário já reservado.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Erro ao criar reserva.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// CANCEL (autenticado, só a própria reserva)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Reserva inválida.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Reserva não pode ser cancelada.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar reserva.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// MINHAS RESERVAS (resumo da home)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// RESERVAS DO DIA (público)
// ======================================================

func (h *BookingHandler) ListForDay(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bookings, err := h.listDayUC.Execute(c.Request.Context(), slug, uint(serviceID), dateStr)
	if err != nil {
		h.mapLookupErrors(c, err)
		return
	}

	out := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, gin.H{
			"id":     b.ID,
			"date":   b.Date,
			"status": b.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"bookings": out,
	})
}

// ======================================================
// DISPONIBILIDADE (público)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		ShopSlug:  slug,
		ServiceID: uint(serviceID),
		Date:      dateStr,
	})

	if err != nil {
		h.mapLookupErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *BookingHandler) mapLookupErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "barbershop_not_found"):
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	default:
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
	}
}
