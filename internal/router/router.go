package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shahisiiii/quiz-platform/docs"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/handler"
	"github.com/shahisiiii/quiz-platform/internal/middleware"
	"github.com/shahisiiii/quiz-platform/internal/response"
	"github.com/shahisiiii/quiz-platform/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Category   *handler.CategoryHandler
	Quiz       *handler.QuizHandler
	Question   *handler.QuestionHandler
	Submission *handler.SubmissionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// OpenAPI UI.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}
	router.POST("/api/v1/token/refresh", authLimiter.Middleware(), handlers.Auth.Refresh)

	// ─── 2. Authenticated Group ────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(authService))
	{
		api.GET("/users", handlers.User.List)
		api.GET("/users/me", handlers.User.Me)

		api.GET("/categories", handlers.Category.List)
		api.GET("/categories/:id", handlers.Category.Get)

		api.GET("/quizzes", handlers.Quiz.List)
		api.GET("/quizzes/:id", handlers.Quiz.Get)

		api.POST("/submissions", handlers.Submission.Submit)
		api.GET("/submissions", handlers.Submission.List)
		api.GET("/submissions/my_submissions", handlers.Submission.MySubmissions)
		api.GET("/submissions/:id", handlers.Submission.Get)
	}

	// ─── 3. Admin Group ────────────────────────────────────────────────
	admin := router.Group("/api/v1")
	admin.Use(middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		admin.POST("/categories", handlers.Category.Create)
		admin.PUT("/categories/:id", handlers.Category.Update)
		admin.PATCH("/categories/:id", handlers.Category.Update)
		admin.DELETE("/categories/:id", handlers.Category.Delete)

		admin.POST("/quizzes", handlers.Quiz.Create)
		admin.PUT("/quizzes/:id", handlers.Quiz.Update)
		admin.PATCH("/quizzes/:id", handlers.Quiz.Update)
		admin.DELETE("/quizzes/:id", handlers.Quiz.Delete)
		admin.POST("/quizzes/:id/add_question", handlers.Quiz.AddQuestion)
		admin.GET("/quizzes/:id/statistics", handlers.Quiz.Statistics)

		admin.GET("/questions", handlers.Question.List)
		admin.POST("/questions", handlers.Question.Create)
		admin.GET("/questions/:id", handlers.Question.Get)
		admin.PUT("/questions/:id", handlers.Question.Update)
		admin.PATCH("/questions/:id", handlers.Question.Update)
		admin.DELETE("/questions/:id", handlers.Question.Delete)
	}

	return router
}
