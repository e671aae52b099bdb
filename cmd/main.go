package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizforge/config"
	"quizforge/database"
	_ "quizforge/docs" // Swagger docs
	adminctrl "quizforge/internal/controller/admin"
	userctrl "quizforge/internal/controller/user"
	"quizforge/internal/logger"
	"quizforge/internal/model"
	"quizforge/internal/repository"
	"quizforge/internal/scheduler"
	"quizforge/internal/service"
)

// @title QuizForge Scoring & Gamification API
// @version 1.0
// @description Quiz attempt submission, answer validation, points ledger, streaks, levels and leaderboards.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewPointsRepository,
			repository.NewUserStatsRepository,
		),

		fx.Provide(
			service.DefaultPointsConfig,
			service.NewLevelEngine,
			service.NewAnswerValidator,
			service.NewGameScoreCalculator,
			service.NewQuestionResolver,
			service.NewPointsService,
			service.NewSubmissionService,
			service.NewQuizService,
			service.NewLeaderboardService,
		),

		fx.Provide(
			scheduler.NewStreakScheduler,
			userctrl.NewAttemptController,
			userctrl.NewPointsController,
			adminctrl.NewPointsAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartStreakScheduler),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server through the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	attemptCtrl *userctrl.AttemptController,
	pointsCtrl *userctrl.PointsController,
	adminCtrl *adminctrl.PointsAdminController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/quizzes/:quiz_id", attemptCtrl.GetQuiz)

		api.POST("/quiz-attempts", attemptCtrl.SubmitAttempt)
		api.GET("/quiz-attempts", attemptCtrl.ListAttempts)
		api.GET("/quiz-attempts/:attempt_id", attemptCtrl.GetAttempt)

		points := api.Group("/points")
		points.GET("/stats", pointsCtrl.GetUserStats)
		points.GET("/history", pointsCtrl.GetPointsHistory)
		points.GET("/leaderboard", pointsCtrl.GetLeaderboard)
		points.GET("/global", pointsCtrl.GetGlobalStats)
		points.GET("/config", pointsCtrl.GetPointsConfig)
		points.POST("/calculate", pointsCtrl.CalculatePoints)
	}

	adminAPI := router.Group("/api/v1/admin")
	{
		adminAPI.POST("/points/award", adminCtrl.AwardCustomPoints)
		adminAPI.POST("/points/streak-sweep", adminCtrl.RunStreakSweep)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartStreakScheduler runs the daily streak bonus job for the lifetime of
// the application.
func StartStreakScheduler(lc fx.Lifecycle, sched *scheduler.StreakScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sched.Start()
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Attempt{},
		&model.AnswerRecord{},
		&model.PointsEntry{},
		&model.UserStats{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
