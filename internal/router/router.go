package router

import (
	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
)

const (
	corsAllowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization,true"
)

// New wires repositories, services and handlers over db and returns the configured app.
// rng may be nil to use the shared default random source.
func New(cfg *config.Config, db *sqlx.DB, rng domain.RandomSource) *fiber.App {
	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	questionService := service.NewQuestionService(questionRepository, categoryRepository, txManager, cfg)
	quizService := service.NewQuizService(questionRepository, rng)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	metrics := middleware.NewMetrics()

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(metrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))

	app.Get("/healthz", healthHandler.Health)
	app.Get("/metrics", metrics.Endpoint())
	app.Get("/swagger/*", swagger.HandlerDefault)

	vm := middleware.NewValidationMiddleware()

	app.Get("/categories", questionHandler.GetCategories)
	app.Get("/categories/:id/questions", vm.ValidateID(), vm.ValidatePage(), questionHandler.GetQuestionsByCategory)

	app.Get("/questions", vm.ValidatePage(), questionHandler.ListQuestions)
	app.Post("/questions", vm.ValidatePage(), questionHandler.CreateQuestion)
	app.Delete("/questions/:id", vm.ValidateID(), questionHandler.DeleteQuestion)

	app.Post("/search", vm.ValidatePage(), questionHandler.SearchQuestions)
	app.Post("/quizzes", quizHandler.NextQuestion)

	return app
}
