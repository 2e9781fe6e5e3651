package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymcore/internal/auth"
	"gymcore/internal/booking"
	"gymcore/internal/config"
	"gymcore/internal/email"
	"gymcore/internal/member"
	"gymcore/internal/payment"
	"gymcore/internal/plan"
	"gymcore/internal/ptsession"
	"gymcore/internal/schedule"
	"gymcore/internal/subscription"
	"gymcore/internal/trainer"
	"gymcore/internal/user"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	memberRepo := member.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	planRepo := plan.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	sessionRepo := ptsession.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, memberRepo, cfg.JWTSecret))
	scheduleHandler := schedule.NewHandler(schedule.NewService(scheduleRepo, trainerRepo))
	planHandler := plan.NewHandler(plan.NewService(planRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, memberRepo, scheduleRepo, userRepo, emailService))
	sessionHandler := ptsession.NewHandler(ptsession.NewService(sessionRepo, memberRepo, trainerRepo))
	subscriptionHandler := subscription.NewHandler(subscription.NewService(subscriptionRepo, memberRepo, planRepo))
	trainerHandler := trainer.NewHandler(trainerRepo)
	memberHandler := member.NewHandler(memberRepo)
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, memberRepo, payment.NewMockGateway(), cfg.Currency))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	router.GET("/plans", planHandler.ListPlans)
	router.GET("/plans/:id", planHandler.GetPlan)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/classes", scheduleHandler.ListClasses)
		protected.GET("/schedules", scheduleHandler.ListSchedules)
		protected.GET("/schedules/:scheduleID", scheduleHandler.GetSchedule)

		protected.POST("/bookings", bookingHandler.BookClass)
		protected.GET("/bookings/me", bookingHandler.GetMyBookings)
		protected.POST("/bookings/:id/cancel", bookingHandler.CancelBooking)

		protected.GET("/trainers", trainerHandler.ListTrainers)

		protected.POST("/sessions", sessionHandler.BookSession)
		protected.GET("/sessions/me", sessionHandler.GetMySessions)
		protected.GET("/sessions/:id", sessionHandler.GetSession)
		protected.POST("/sessions/:id/cancel", sessionHandler.CancelSession)
		protected.GET("/trainers/:id/rating", sessionHandler.GetTrainerRating)

		protected.POST("/subscriptions", subscriptionHandler.Subscribe)
		protected.GET("/subscriptions/me", subscriptionHandler.GetMySubscriptions)
		protected.GET("/subscriptions/:id", subscriptionHandler.GetSubscription)
		protected.POST("/subscriptions/:id/freeze", subscriptionHandler.Freeze)

		protected.POST("/payments", paymentHandler.ProcessPayment)
		protected.GET("/payments/me", paymentHandler.GetMyPayments)
	}

	staff := router.Group("/staff")
	staff.Use(authMiddleware, auth.RequireRole("trainer", "admin"))
	{
		staff.POST("/bookings/:id/attend", bookingHandler.MarkAttended)
		staff.GET("/schedules/:id/roster", bookingHandler.GetScheduleRoster)
		staff.PUT("/sessions/:id/status", sessionHandler.UpdateStatus)
		staff.POST("/sessions/:id/notes", sessionHandler.AddWorkoutNotes)
		staff.GET("/trainers/:id/sessions", sessionHandler.GetTrainerSessions)
		staff.GET("/members", memberHandler.ListMembers)
		staff.GET("/members/:id", memberHandler.GetMember)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/trainers", trainerHandler.CreateTrainer)
		admin.POST("/classes", scheduleHandler.CreateClass)
		admin.POST("/schedules", scheduleHandler.CreateSchedule)
		admin.DELETE("/schedules/:id", scheduleHandler.CancelSchedule)
		admin.GET("/bookings", bookingHandler.ListBookings)

		admin.POST("/plans", planHandler.CreatePlan)
		admin.DELETE("/plans/:id", planHandler.DeactivatePlan)

		admin.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
		admin.POST("/subscriptions/:id/renew", subscriptionHandler.Renew)
		admin.PUT("/subscriptions/:id/status", subscriptionHandler.UpdateStatus)

		admin.GET("/payments/:id", paymentHandler.GetPayment)
		admin.POST("/payments/:id/refund", paymentHandler.RefundPayment)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics(emailService))
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
