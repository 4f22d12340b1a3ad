package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/develtlab/barber-booking/internal/config"
	"github.com/develtlab/barber-booking/internal/models"
)

const dayBookingsTTL = 60 * time.Second

// NewClient cria o cliente redis a partir da configuração. Retorna nil quando
// REDIS_ADDR não está definido ou o ping falha; o cache é sempre best-effort.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return nil
	}

	return client
}

// DayBookings guarda a lista de reservas confirmadas de um serviço num dia.
// Uma falha de leitura vale como cache miss, nunca como "dia vazio".
type DayBookings struct {
	client *redis.Client
}

func NewDayBookings(client *redis.Client) *DayBookings {
	return &DayBookings{client: client}
}

func key(serviceID uint, day string) string {
	return fmt.Sprintf("bookings:day:%d:%s", serviceID, day)
}

func (c *DayBookings) Get(ctx context.Context, serviceID uint, day string) ([]models.Booking, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(serviceID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, false
	}

	return bookings, true
}

func (c *DayBookings) Set(ctx context.Context, serviceID uint, day string, bookings []models.Booking) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(bookings)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(serviceID, day), raw, dayBookingsTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

func (c *DayBookings) Invalidate(ctx context.Context, serviceID uint, day string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(serviceID, day)).Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
