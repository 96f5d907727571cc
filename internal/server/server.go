package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/checkin"
	"github.com/kalebesantos/kgym/internal/config"
	"github.com/kalebesantos/kgym/internal/email"
	"github.com/kalebesantos/kgym/internal/membership"
	"github.com/kalebesantos/kgym/internal/plan"
	"github.com/kalebesantos/kgym/internal/profile"
	"github.com/kalebesantos/kgym/internal/workout"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	profileRepo := profile.NewRepository(db)
	planRepo := plan.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	checkinRepo := checkin.NewRepository(db)
	workoutRepo := workout.NewRepository(db)

	profileSvc := profile.NewService(profileRepo, emailService, cfg.JWTSecret)
	planSvc := plan.NewService(planRepo)
	membershipSvc := membership.NewService(membershipRepo, planRepo, profileRepo, emailService)
	checkinSvc := checkin.NewService(checkinRepo, profileRepo, membershipRepo, cfg.CheckinCodePrefix)
	workoutSvc := workout.NewService(workoutRepo, profileRepo)

	profileHandler := profile.NewHandler(profileSvc)
	planHandler := plan.NewHandler(planSvc)
	membershipHandler := membership.NewHandler(membershipSvc, profileSvc)
	checkinHandler := checkin.NewHandler(checkinSvc, profileSvc, membershipSvc, checkin.StubMatcher{})
	workoutHandler := workout.NewHandler(workoutSvc, profileSvc)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", profileHandler.Register)
		public.POST("/login", profileHandler.Login)
		public.POST("/refresh", profileHandler.RefreshToken)
	}

	// Check-in terminals are unauthenticated kiosks; the code itself is
	// the credential.
	router.POST("/checkin", RateLimitMiddleware(2, 5), checkinHandler.Checkin)
	router.POST("/checkin/face", RateLimitMiddleware(2, 5), checkinHandler.FaceCheckin)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", profileHandler.GetMe)
		protected.GET("/my/membership", membershipHandler.GetMyMembership)
		protected.GET("/my/checkins", checkinHandler.ListMyCheckins)
		protected.GET("/my/workouts", workoutHandler.ListMyWorkouts)
	}

	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/students", profileHandler.CreateStudent)
		admin.GET("/students", profileHandler.ListStudents)
		admin.GET("/students/:id", profileHandler.GetStudent)
		admin.PUT("/students/:id", profileHandler.UpdateStudent)
		admin.DELETE("/students/:id", profileHandler.DeleteStudent)
		admin.GET("/students/:id/status", membershipHandler.GetStudentStatus)
		admin.GET("/students/:id/memberships", membershipHandler.ListStudentMemberships)

		admin.POST("/plans", planHandler.CreatePlan)
		admin.GET("/plans", planHandler.ListPlans)
		admin.GET("/plans/:id", planHandler.GetPlan)
		admin.PUT("/plans/:id", planHandler.UpdatePlan)
		admin.DELETE("/plans/:id", planHandler.DeletePlan)

		admin.POST("/memberships", membershipHandler.AssignPlan)
		admin.GET("/memberships", membershipHandler.ListMemberships)
		admin.PUT("/memberships/:id", membershipHandler.UpdateMembership)
		admin.POST("/memberships/bulk-status", membershipHandler.BulkSetStatus)

		admin.GET("/checkins", checkinHandler.ListCheckins)
		admin.DELETE("/checkins/:id", checkinHandler.DeleteCheckin)
		admin.GET("/report", checkinHandler.Report)

		admin.POST("/workouts", workoutHandler.CreateSheet)
		admin.GET("/workouts", workoutHandler.ListSheets)
		admin.GET("/workouts/:id", workoutHandler.GetSheet)
		admin.PUT("/workouts/:id", workoutHandler.UpdateSheet)
		admin.DELETE("/workouts/:id", workoutHandler.DeleteSheet)
		admin.POST("/workouts/:id/exercises", workoutHandler.AddExercise)
		admin.PUT("/exercises/:id", workoutHandler.UpdateExercise)
		admin.DELETE("/exercises/:id", workoutHandler.DeleteExercise)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
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
