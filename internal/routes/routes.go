package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/infra/whatsapp"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// Integrations are built by main so their lifecycle (and shutdown) stays
// there.
type Integrations struct {
	Audit    *audit.Dispatcher
	Sender   whatsapp.Sender
	Payments payment.Gateway
	Store    storage.ObjectStore
	Redis    *redis.Client
}

// NewEngine builds the gin engine with panic recovery. Forwarded-for headers
// are honoured only from cfg.TrustedProxies.
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	return r, nil
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, in Integrations) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		logger.GinLogger(),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	notifier := ucAppointment.NewNotifier(in.Sender, appointmentRepo, loc)

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		loc,
		domain.ParseOffCatalogPolicy(cfg.OffCatalogPolicy),
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		in.Audit,
		notifier,
		loc,
		time.Duration(cfg.MinAdvanceMinutes)*time.Minute,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		in.Audit,
	)

	listMineUC := ucAppointment.NewListMine(appointmentRepo, loc)

	adminUC := handlers.AdminUseCases{
		List:        ucAppointment.NewListGrouped(appointmentRepo, loc, cfg.PageSize),
		Create:      createAppointmentUC,
		Update:      ucAppointment.NewUpdateAppointment(appointmentRepo, in.Audit, loc),
		Payment:     ucAppointment.NewSetPaymentStatus(appointmentRepo, in.Audit),
		Cancel:      cancelAppointmentUC,
		Notify:      ucAppointment.NewNotifyClient(appointmentRepo, notifier, in.Audit),
		PaymentLink: ucAppointment.NewCreatePaymentLink(appointmentRepo, in.Payments, in.Audit),
		Dashboard:   ucAppointment.NewDashboard(appointmentRepo, loc),
		Report:      ucAppointment.NewExportMonthlyReport(appointmentRepo, in.Store, in.Audit, loc),
	}

	remindersUC := ucAppointment.NewSendReminders(
		appointmentRepo,
		appointmentRepo,
		notifier,
		loc,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	meHandler := handlers.NewMeHandler(userRepo)
	publicHandler := handlers.NewPublicHandler(availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listMineUC,
		cancelAppointmentUC,
	)
	adminHandler := handlers.NewAdminHandler(adminUC, loc)
	cronHandler := handlers.NewCronHandler(remindersUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	if in.Redis != nil {
		limiter := middleware.NewRateLimiter(in.Redis, cfg.RateLimitPerMinute, time.Minute, "barber:rl")
		api.Use(limiter.Middleware())
	}
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/slots", publicHandler.Slots)
			publicAPI.GET("/services", publicHandler.Services)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 👤 CLIENTE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Cancel)
		}

		// ------------------------------
		// 🛠️ ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/appointments", adminHandler.List)
			admin.POST("/appointments", adminHandler.Create)
			admin.PATCH("/appointments/:id", adminHandler.Update)
			admin.PATCH("/appointments/:id/payment", adminHandler.SetPaymentStatus)
			admin.DELETE("/appointments/:id", adminHandler.Delete)
			admin.POST("/appointments/:id/notify", adminHandler.Notify)
			admin.POST("/appointments/:id/payment-link", adminHandler.PaymentLink)

			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/reports", adminHandler.ExportReport)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// ⏰ CRON
		// ------------------------------
		cron := api.Group("/cron")
		cron.Use(middleware.CronSecret(cfg.CronSecret))
		{
			cron.POST("/reminders", cronHandler.Reminders)
		}
	}
}
