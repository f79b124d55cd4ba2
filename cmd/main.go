package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/InterviewBuddy/config"
	_ "github.com/lshigami/InterviewBuddy/docs" // Swagger docs - auto-generated
	"github.com/lshigami/InterviewBuddy/internal/controller"
	"github.com/lshigami/InterviewBuddy/internal/logger"
	"github.com/lshigami/InterviewBuddy/internal/repository"
	"github.com/lshigami/InterviewBuddy/internal/search"
	"github.com/lshigami/InterviewBuddy/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Interview Buddy API
// @version 1.0
// @description Headless mock-interview service: search-backed question generation, heuristic answer scoring, session state machine, and JSON/CSV/PDF exports.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			search.NewProvider,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewSessionRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewEvaluatorService,
			service.NewSummaryService,
			service.NewResearchService,
			service.NewExportService,
			service.NewSessionService,
		),

		fx.Provide(
			controller.NewSessionController,
			controller.NewResearchController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
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
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessionCtrl *controller.SessionController,
	researchCtrl *controller.ResearchController,
) {
	if iconPath, ok := cfg.ResolveIconPath(); ok {
		router.StaticFile("/icon", iconPath)
	} else {
		log.Info().Str("file", cfg.Icon.File).Msg("Icon asset not found, /icon route disabled")
	}

	api := router.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		sessions.POST("", sessionCtrl.CreateSession)
		sessions.GET("/:session_id", sessionCtrl.GetSession)
		sessions.POST("/:session_id/setup", sessionCtrl.Setup)
		sessions.GET("/:session_id/interviewer", sessionCtrl.GetInterviewer)
		sessions.POST("/:session_id/back", sessionCtrl.Back)
		sessions.POST("/:session_id/start", sessionCtrl.Start)
		sessions.POST("/:session_id/answers", sessionCtrl.SubmitAnswer)
		sessions.POST("/:session_id/skip", sessionCtrl.Skip)
		sessions.POST("/:session_id/end", sessionCtrl.End)
		sessions.GET("/:session_id/summary", sessionCtrl.GetSummary)
		sessions.POST("/:session_id/reset", sessionCtrl.Reset)
		sessions.GET("/:session_id/export/json", sessionCtrl.ExportJSON)
		sessions.GET("/:session_id/export/csv", sessionCtrl.ExportCSV)
		sessions.GET("/:session_id/export/pdf", sessionCtrl.ExportPDF)

		api.GET("/research", researchCtrl.Research)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview Buddy API server starting on port %s", cfg.Server.Port)
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
