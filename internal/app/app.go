package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"progress_clock_backend/internal/config"
	"progress_clock_backend/internal/controller"
	"progress_clock_backend/internal/middleware"
	"progress_clock_backend/internal/repository"
	"progress_clock_backend/internal/service"
	"progress_clock_backend/pkg/configwatcher"
	"progress_clock_backend/pkg/database"
	"progress_clock_backend/pkg/logger"
	"progress_clock_backend/pkg/monitoring"
	"progress_clock_backend/pkg/security"
	"progress_clock_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	limiter         *security.Limiter
	services        *services
	configCallbacks []func(*config.Config)
}

type services struct {
	cache  *repository.ClockCacheRepository
	clock  *service.ClockService
	export *service.ExportService
}

type controllers struct {
	clock  *controller.ClockController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initServices(cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	s := &services{}

	// 接口变量不能持有 nil 指针，未启用缓存时保持 nil 接口
	var cache service.SVGCache
	if rdb != nil {
		s.cache = repository.NewClockCacheRepository(rdb, cfg.Redis.TTL)
		cache = s.cache
	}

	s.clock = service.NewClockService(service.StyleFromConfig(&cfg.Clock), cache)
	s.clock.SetMaxTotal(cfg.Clock.MaxTotal)
	s.export = service.NewExportService(s.clock, storage)
	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	var cache controller.Pinger
	if s.cache != nil {
		cache = s.cache
	}
	return &controllers{
		clock:  controller.NewClockController(s.clock, s.export),
		health: controller.NewHealthController(cache),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	gin.SetMode(cfg.Server.Mode)

	app := &App{Config: cfg}

	rdb, err := database.InitRedis(context.Background(), &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}
	app.Redis = rdb

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	s, err := app.initServices(cfg, rdb)
	if err != nil {
		return nil, err
	}
	app.services = s
	c := app.initControllers(s)

	// 热更新只影响表盘样式和扇区上限，其它配置需要重启
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		s.clock.SetStyle(service.StyleFromConfig(&newCfg.Clock))
		s.clock.SetMaxTotal(newCfg.Clock.MaxTotal)
		logger.Log.Info("Clock style updated", zap.Any("style", s.clock.Style()), zap.Int("max_total", newCfg.Clock.MaxTotal))
	})

	monitoring.Init()

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	app.limiter = security.NewLimiter(cfg.RateLimit.MaxRequests, window)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, c, cfg)

	logger.Log.Info("Application initialized",
		zap.String("mode", cfg.Server.Mode),
		zap.String("storage", cfg.Storage.Type),
		zap.Bool("cache", rdb != nil),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)
	return app, nil
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出（5 秒超时）
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.limiter.Run(ctx)

	if a.Config.File != "" {
		w := configwatcher.New(a.Config.File, a.ApplyConfig)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
	return err
}

// Close 释放外部连接
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}
