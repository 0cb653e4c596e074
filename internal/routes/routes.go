package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mussol-barber/booking-api/internal/audit"
	"github.com/mussol-barber/booking-api/internal/config"
	"github.com/mussol-barber/booking-api/internal/handlers"
	infraRepo "github.com/mussol-barber/booking-api/internal/infra/repository"
	"github.com/mussol-barber/booking-api/internal/middleware"
	"github.com/mussol-barber/booking-api/internal/ratelimit"
	"github.com/mussol-barber/booking-api/internal/storage"
	"github.com/mussol-barber/booking-api/internal/timezone"
	ucBooking "github.com/mussol-barber/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	uploader := storage.NewUploader(cfg)
	limiter := ratelimit.New(cfg)
	location := timezone.Location(cfg.TimeZone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		location,
		cfg.PlatformFee,
	)

	changeStatusUC := ucBooking.NewChangeStatus(
		bookingRepo,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.SlotTimes,
	)

	attachReceiptUC := ucBooking.NewAttachReceipt(
		bookingRepo,
		auditDispatcher,
	)

	statsUC := ucBooking.NewGetStats(
		bookingRepo,
		cfg.PlatformFee,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(bookingRepo)
	barberHandler := handlers.NewBarberHandler(bookingRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		location,
		createAppointmentUC,
		changeStatusUC,
		availabilityUC,
		limiter,
	)

	statsHandler := handlers.NewStatsHandler(statsUC)

	uploadHandler := handlers.NewUploadHandler(
		db,
		uploader,
		attachReceiptUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// FLUXO PÚBLICO DE RESERVA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)

		api.GET("/availability", appointmentHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/upload/payment-receipt/:appointmentId", uploadHandler.PaymentReceipt)

		// ------------------------------
		// PAINEL (JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/stats", statsHandler.Get)

			secured.POST("/upload/barber-photo/:barberId", uploadHandler.BarberPhoto)
			secured.POST("/upload/qr-code/:serviceId", uploadHandler.QRCode)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
