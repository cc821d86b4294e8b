package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/controller"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/repository"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/configwatcher"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/database"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/logger"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/monitoring"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/security"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configDir = "configs"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configMu        sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	levelSubject     *repository.LevelSubjectRepository
	objective        *repository.ObjectiveRepository
	evaluationResult *repository.EvaluationResultRepository
	evaluationLink   *repository.EvaluationLinkRepository
}

type services struct {
	storage        *service.StorageService
	calendar       *service.CalendarService
	evaluation     *service.EvaluationService
	evaluationLink *service.EvaluationLinkService
	catalog        *service.CatalogService
	export         *service.CalendarExportService
}

type controllers struct {
	calendar       *controller.CalendarController
	evaluation     *controller.EvaluationController
	evaluationLink *controller.EvaluationLinkController
	catalog        *controller.CatalogController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configMu.Lock()
	defer a.configMu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig hands a reloaded configuration to every registered callback.
func (a *App) applyConfig(cfg *config.Config) {
	a.configMu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.configMu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		levelSubject:     repository.NewLevelSubjectRepository(db),
		objective:        repository.NewObjectiveRepository(db),
		evaluationResult: repository.NewEvaluationResultRepository(db),
		evaluationLink:   repository.NewEvaluationLinkRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	calendarCfg, err := cfg.Calendar.Build()
	if err != nil {
		return nil, err
	}
	engine, err := calendar.NewEngine(calendarCfg)
	if err != nil {
		return nil, err
	}

	var cache service.CompletionCache
	if rdb != nil {
		cache = service.NewRedisCompletionCache(rdb, cfg.Calendar.CacheTTL())
	}

	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.calendar = service.NewCalendarService(
		engine,
		repos.levelSubject,
		repos.objective,
		repos.evaluationResult,
		cache,
		service.NewScheduleProjector(util.NewDateFormatter(cfg.Calendar.Locale)),
	)
	s.evaluation = service.NewEvaluationService(repos.evaluationResult, s.calendar, cache)
	s.evaluationLink = service.NewEvaluationLinkService(repos.evaluationLink, repos.levelSubject, s.calendar)
	s.catalog = service.NewCatalogService(repos.levelSubject, repos.objective, s.calendar)
	s.export = service.NewCalendarExportService(s.calendar, repos.levelSubject, repos.objective, s.storage)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		calendar:       controller.NewCalendarController(s.calendar, s.export),
		evaluation:     controller.NewEvaluationController(s.evaluation),
		evaluationLink: controller.NewEvaluationLinkController(s.evaluationLink),
		catalog:        controller.NewCatalogController(s.catalog),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchCalendar swaps the calendar engine when the calendar section of a
// reloaded config changes. Invalid sections keep the running calendar.
func (a *App) watchCalendar(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		next, err := cfg.Calendar.Build()
		if err != nil {
			logger.Log.Error("Ignoring invalid calendar config", zap.Error(err))
			return
		}
		current := s.calendar.Engine().Config()
		if sameCalendar(current, next) {
			return
		}
		if err := s.calendar.Reload(next); err != nil {
			logger.Log.Error("Calendar reload failed", zap.Error(err))
		}
	})
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug", migrate)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, completion cache disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()
	services.calendar.CheckCalendarModels()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("barkley-calendar", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchCalendar(services)

	return app, nil
}

func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	go func() {
		if err := configwatcher.Watch(ctx, configDir, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}

func sameCalendar(a, b calendar.Config) bool {
	return a.ProgramStartDate.Format(calendar.DateLayout) == b.ProgramStartDate.Format(calendar.DateLayout) &&
		a.ModuleDurationWeeks == b.ModuleDurationWeeks &&
		a.TotalModules == b.TotalModules &&
		a.Location.String() == b.Location.String()
}
