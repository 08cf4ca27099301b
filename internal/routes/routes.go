package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	"github.com/Vibe-Web-Agency/dashboard/internal/config"
	"github.com/Vibe-Web-Agency/dashboard/internal/handlers"
	infraRepo "github.com/Vibe-Web-Agency/dashboard/internal/infra/repository"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	"github.com/Vibe-Web-Agency/dashboard/internal/resettoken"
	ucReservation "github.com/Vibe-Web-Agency/dashboard/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)
	quoteRepo := infraRepo.NewQuoteGormRepository(db)
	resetTokens := resettoken.New(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	getReservationUC := ucReservation.NewGetReservation(
		reservationRepo,
	)

	listUpcomingUC := ucReservation.NewListUpcoming(
		reservationRepo,
	)

	calendarMonthUC := ucReservation.NewCalendarMonth(
		reservationRepo,
	)

	historyUC := ucReservation.NewHistory(
		reservationRepo,
	)

	setAttendanceUC := ucReservation.NewSetAttendance(
		reservationRepo,
		auditDispatcher,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, resetTokens, cfg)
	meHandler := handlers.NewMeHandler(db, auditDispatcher)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		getReservationUC,
		listUpcomingUC,
		calendarMonthUC,
		historyUC,
		setAttendanceUC,
		deleteReservationUC,
	)

	quoteHandler := handlers.NewQuoteHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(reservationRepo, quoteRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// 🔐 API PRIVÉE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)
			secured.POST("/me/password", meHandler.ChangePassword)

			secured.GET("/me/dashboard", dashboardHandler.Summary)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListUpcoming)
			secured.GET("/me/reservations/calendar", reservationHandler.Calendar)
			secured.GET("/me/reservations/history", reservationHandler.History)
			secured.GET("/me/reservations/:id", reservationHandler.Get)
			secured.PATCH("/me/reservations/:id/attendance", reservationHandler.SetAttendance)
			secured.DELETE("/me/reservations/:id", reservationHandler.Delete)

			// ------------------------------
			// QUOTES
			// ------------------------------
			secured.GET("/me/quotes", quoteHandler.List)
			secured.POST("/me/quotes", quoteHandler.Create)
			secured.GET("/me/quotes/:id", quoteHandler.Get)
			secured.PATCH("/me/quotes/:id/status", quoteHandler.UpdateStatus)
			secured.DELETE("/me/quotes/:id", quoteHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
