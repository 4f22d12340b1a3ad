package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/develtlab/barber-booking/internal/cache"
	"github.com/develtlab/barber-booking/internal/config"
	"github.com/develtlab/barber-booking/internal/handlers"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/middleware"
	"github.com/develtlab/barber-booking/internal/models"
	ucBooking "github.com/develtlab/barber-booking/internal/usecase/booking"
)

type stubRepository struct {
	testifymock.Mock
}

func (m *stubRepository) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	args := m.Called(ctx, slug)
	if shop, ok := args.Get(0).(*models.Barbershop); ok {
		return shop, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubRepository) GetService(ctx context.Context, barbershopID uint, serviceID uint) (*models.BarbershopService, error) {
	args := m.Called(ctx, barbershopID, serviceID)
	if svc, ok := args.Get(0).(*models.BarbershopService); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubRepository) GetServiceByID(ctx context.Context, serviceID uint) (*models.BarbershopService, error) {
	args := m.Called(ctx, serviceID)
	if svc, ok := args.Get(0).(*models.BarbershopService); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *stubRepository) GetBookingForUser(ctx context.Context, bookingID uint, userID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *stubRepository) ListBookingsForDay(ctx context.Context, serviceID uint, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, serviceID, start, end)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubRepository) ListConfirmedForUser(ctx context.Context, userID uint, from time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, userID, from)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func setupBookingRouter(t *testing.T) (*gin.Engine, *stubRepository, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret"}
	repo := new(stubRepository)
	dayCache := cache.NewDayBookings(nil)

	h := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(repo, dayCache, nil),
		ucBooking.NewCancelBooking(repo, dayCache, nil),
		ucBooking.NewGetAvailability(repo, dayCache),
		ucBooking.NewListDayBookings(repo, dayCache),
		ucBooking.NewListConfirmedBookings(repo),
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/barbershops/:slug/services/:id/availability", h.Availability)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.POST("/bookings", h.Create)

	return r, repo, cfg
}

func signToken(t *testing.T, cfg *config.Config, userID uint, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("without a token no booking call reaches the repository", func(t *testing.T) {
		r, repo, _ := setupBookingRouter(t)

		body, _ := json.Marshal(gin.H{
			"service_id": 7,
			"date":       "2030-01-02",
			"time":       "10:00",
		})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, repo.Calls)
	})

	t.Run("authenticated user books a free slot", func(t *testing.T) {
		r, repo, cfg := setupBookingRouter(t)

		svc := &models.BarbershopService{
			ID:           7,
			BarbershopID: 1,
			Active:       true,
			Barbershop:   models.Barbershop{ID: 1, Timezone: "America/Sao_Paulo"},
		}

		repo.On("GetServiceByID", testifymock.Anything, uint(7)).Return(svc, nil)
		repo.On("CreateBooking", testifymock.Anything, testifymock.AnythingOfType("*models.Booking")).
			Run(func(args testifymock.Arguments) {
				args.Get(1).(*models.Booking).ID = 1
			}).
			Return(nil)

		date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		body, _ := json.Marshal(gin.H{
			"service_id": 7,
			"date":       date,
			"time":       "10:00",
		})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, 3, "client"))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(3), created.UserID)
		assert.Equal(t, "confirmed", created.Status)

		repo.AssertExpectations(t)
	})

	t.Run("taken slot maps to 400 slot_taken", func(t *testing.T) {
		r, repo, cfg := setupBookingRouter(t)

		svc := &models.BarbershopService{
			ID:           7,
			BarbershopID: 1,
			Active:       true,
			Barbershop:   models.Barbershop{ID: 1, Timezone: "America/Sao_Paulo"},
		}

		repo.On("GetServiceByID", testifymock.Anything, uint(7)).Return(svc, nil)
		repo.On("CreateBooking", testifymock.Anything, testifymock.Anything).
			Return(httperr.ErrBusiness("slot_taken"))

		date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		body, _ := json.Marshal(gin.H{
			"service_id": 7,
			"date":       date,
			"time":       "10:00",
		})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, 3, "client"))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "slot_taken")
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Run("is public and returns the free slots", func(t *testing.T) {
		r, repo, _ := setupBookingRouter(t)

		shop := &models.Barbershop{ID: 1, Slug: "develt", Timezone: "America/Sao_Paulo"}
		svc := &models.BarbershopService{ID: 7, BarbershopID: 1, Active: true}

		repo.On("GetBarbershopBySlug", testifymock.Anything, "develt").Return(shop, nil)
		repo.On("GetService", testifymock.Anything, uint(1), uint(7)).Return(svc, nil)
		repo.On("ListBookingsForDay", testifymock.Anything, uint(7), testifymock.Anything, testifymock.Anything).
			Return([]models.Booking{}, nil)

		date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		req := httptest.NewRequest(http.MethodGet, "/api/barbershops/develt/services/7/availability?date="+date, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Date  string   `json:"date"`
			Slots []string `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, date, resp.Date)
		assert.Len(t, resp.Slots, 21)
	})

	t.Run("repository failure is a 500, not an empty list", func(t *testing.T) {
		r, repo, _ := setupBookingRouter(t)

		shop := &models.Barbershop{ID: 1, Slug: "develt", Timezone: "America/Sao_Paulo"}
		svc := &models.BarbershopService{ID: 7, BarbershopID: 1, Active: true}

		repo.On("GetBarbershopBySlug", testifymock.Anything, "develt").Return(shop, nil)
		repo.On("GetService", testifymock.Anything, uint(1), uint(7)).Return(svc, nil)
		repo.On("ListBookingsForDay", testifymock.Anything, uint(7), testifymock.Anything, testifymock.Anything).
			Return(nil, errors.New("db down"))

		date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		req := httptest.NewRequest(http.MethodGet, "/api/barbershops/develt/services/7/availability?date="+date, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "availability_failed")
	})
}
