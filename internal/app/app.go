package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/internal/handlers"
	"github.com/akazarov/serptrack/internal/notify"
	"github.com/akazarov/serptrack/internal/pg"
	"github.com/akazarov/serptrack/internal/repo"
	"github.com/akazarov/serptrack/internal/serp"
	"github.com/akazarov/serptrack/internal/service"
	"github.com/akazarov/serptrack/pkg/auth"
	"github.com/akazarov/serptrack/pkg/clients"
	"github.com/akazarov/serptrack/pkg/logger"
	"github.com/akazarov/serptrack/pkg/ratelimit"
)

// Live checks per caller per minute.
const (
	liveRate  = 1.0
	liveBurst = 60
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	g     *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	provider := serp.NewProvider(cfg, clients.NewHTTPClient())
	a.srv = service.New(cfg, a.repo, txManager, provider, notify.NewLogNotifier())
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.ServiceSecret), newLimiter(cfg))

	g, gctx := errgroup.WithContext(ctx)
	a.g = g

	if err = a.startHTTPServer(gctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startTrackingWorker(gctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	if cfg.RedisAddress == "" {
		return ratelimit.NewMemoryLimiter(liveRate, liveBurst)
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	return ratelimit.NewRedisLimiter(client, liveRate, liveBurst)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	a.g.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.g.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	return nil
}

func (a *Application) startTrackingWorker(ctx context.Context) {
	a.g.Go(func() error {
		// finish checks billed before the last shutdown, then follow the ticker
		if _, err := a.srv.WorkerService.SyncPending(ctx); err != nil {
			zap.L().Error("startup pending sync failed", zap.Error(err))
		}
		a.srv.WorkerService.Start(ctx)
		return nil
	})
}

// Wait blocks until the signal context is canceled or one of the background
// systems fails, then drains the rest.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	defer cancel()

	if err := a.g.Wait(); err != nil {
		zap.L().Error(err.Error())
		return err
	}
	return nil
}
