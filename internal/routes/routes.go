package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/develtlab/barber-booking/internal/audit"
	"github.com/develtlab/barber-booking/internal/cache"
	"github.com/develtlab/barber-booking/internal/config"
	"github.com/develtlab/barber-booking/internal/handlers"
	infraRepo "github.com/develtlab/barber-booking/internal/infra/repository"
	"github.com/develtlab/barber-booking/internal/mailer"
	"github.com/develtlab/barber-booking/internal/media"
	"github.com/develtlab/barber-booking/internal/middleware"
	ucBooking "github.com/develtlab/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	dayCache := cache.NewDayBookings(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	smtpSender := mailer.NewSMTPSender(cfg)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		dayCache,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		dayCache,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		dayCache,
	)

	listDayBookingsUC := ucBooking.NewListDayBookings(
		bookingRepo,
		dayCache,
	)

	listConfirmedUC := ucBooking.NewListConfirmedBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		availabilityUC,
		listDayBookingsUC,
		listConfirmedUC,
	)

	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	supportHandler := handlers.NewSupportHandler(smtpSender, cfg.SupportInbox, auditDispatcher)
	mediaHandler := handlers.NewMediaHandler(db, uploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:slug", barbershopHandler.Get)
		api.GET("/barbershops/:slug/services/:id/bookings", bookingHandler.ListForDay)
		api.GET("/barbershops/:slug/services/:id/availability", bookingHandler.Availability)

		api.POST("/support", supportHandler.Send)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.DELETE("/me/bookings/:id", bookingHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", userHandler.List)
				admin.PATCH("/users/:id", userHandler.Update)

				admin.POST("/admin/services/:id/image", mediaHandler.UploadServiceImage)
				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
