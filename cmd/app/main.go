package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/cmd/fx/assessment_fx"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/cmd/fx/assets_fx"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/cmd/fx/controllers_fx"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/api/controllers"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/web"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/config"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/logging"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/middleware"
)

// Overridden through -ldflags at release time.
var version = "dev"

func main() {
	_ = godotenv.Load()

	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println("obesity-prediction-tool " + version)
		return
	}

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		logging.GetLogger().Fatalf("Failed to load config: %v", err)
	}

	debug := cfg.Debug || config.CliArgs.Debug
	level := logging.ParseLevel(cfg.LogLevel)
	if debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level)

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		fx.Supply(cfg),
		assets_fx.Module,
		assessment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	log := logging.GetLogger()

	srv := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server at http://%s", cfg.ListenAddress)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infoln("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	assessmentController *controllers.AssessmentController,
	pagesController *controllers.PagesController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	RegisterRoutes(r, assessmentController, pagesController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assessmentController *controllers.AssessmentController,
	pagesController *controllers.PagesController,
	healthController *controllers.HealthController) {

	r.GET("/", pagesController.Home)
	r.POST("/assess", pagesController.Assess)
	r.GET("/healthz", healthController.Health)

	apiGroup := r.Group("/api/v1")
	apiGroup.POST("/assessments", assessmentController.CreateAssessment)
	apiGroup.GET("/model", assessmentController.GetModelInfo)
}
