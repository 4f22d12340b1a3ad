package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/develtlab/barber-booking/internal/models"
)

// TimeCatalog é a grade fixa de horários oferecida em todas as barbearias:
// meia em meia hora, das 08:00 às 18:00.
var TimeCatalog = []string{
	"08:00",
	"08:30",
	"09:00",
	"09:30",
	"10:00",
	"10:30",
	"11:00",
	"11:30",
	"12:00",
	"12:30",
	"13:00",
	"13:30",
	"14:00",
	"14:30",
	"15:00",
	"15:30",
	"16:00",
	"16:30",
	"17:00",
	"17:30",
	"18:00",
}

// ParseLabel converte "HH:MM" em hora e minuto.
func ParseLabel(label string) (hour, minute int, ok bool) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}

	return h, m, true
}

func IsCatalogLabel(label string) bool {
	for _, l := range TimeCatalog {
		if l == label {
			return true
		}
	}
	return false
}

// AvailableSlots filtra o catálogo contra os agendamentos já existentes do
// dia. Um horário sai da lista quando já passou (apenas se o dia pedido é
// hoje) ou quando algum agendamento ocupa exatamente a mesma hora e minuto.
// Os bookings já devem vir filtrados para o dia pedido; a data deles não é
// reconferida aqui.
func AvailableSlots(catalog []string, bookings []models.Booking, day time.Time, now time.Time) []string {
	loc := day.Location()
	sameDay := day.Year() == now.Year() &&
		day.Month() == now.Month() &&
		day.Day() == now.Day()

	out := make([]string, 0, len(catalog))

	for _, label := range catalog {
		hour, minute, ok := ParseLabel(label)
		if !ok {
			continue
		}

		if sameDay {
			slotAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
			if slotAt.Before(now) {
				continue
			}
		}

		taken := false
		for _, b := range bookings {
			at := b.Date.In(loc)
			if at.Hour() == hour && at.Minute() == minute {
				taken = true
				break
			}
		}
		if taken {
			continue
		}

		out = append(out, label)
	}

	return out
}
