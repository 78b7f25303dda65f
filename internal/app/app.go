package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/bot"
	"github.com/dh139/venom-blood-test-bot/internal/config"
	"github.com/dh139/venom-blood-test-bot/internal/export"
	"github.com/dh139/venom-blood-test-bot/internal/handler"
	"github.com/dh139/venom-blood-test-bot/internal/metrics"
	"github.com/dh139/venom-blood-test-bot/internal/middleware"
	"github.com/dh139/venom-blood-test-bot/internal/notification"
	"github.com/dh139/venom-blood-test-bot/internal/repository"
	"github.com/dh139/venom-blood-test-bot/internal/router"
	"github.com/dh139/venom-blood-test-bot/internal/scheduler"
	"github.com/dh139/venom-blood-test-bot/internal/service"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
	"github.com/dh139/venom-blood-test-bot/internal/session"
	"github.com/dh139/venom-blood-test-bot/internal/ticket"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	loc        *time.Location
	db         *dbpg.DB
	redis      *redis.Client
	tg         *tgbotapi.BotAPI
	bot        *bot.Bot
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BloodTestBot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if app.loc, err = cfg.Booking.Location(); err != nil {
		return nil, fmt.Errorf("booking timezone: %w", err)
	}

	if cfg.Storage.UsePostgres() {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if cfg.Redis.Enabled() {
		if err = app.initRedis(); err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
	}

	if cfg.Telegram.BotToken != "" {
		tg, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			return nil, fmt.Errorf("init telegram bot: %w", err)
		}
		app.tg = tg
		app.log.Info("telegram bot authorized", logger.String("username", tg.Self.UserName))
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))

	return nil
}

func (a *App) initServices() error {
	var bookingRepo ports.BookingRepo = repository.NewMemoryBookingRepo()
	if a.db != nil {
		bookingRepo = repository.NewBookingRepo(a.db)
	} else {
		a.log.Warn("bookings are kept in memory and will not survive a restart")
	}

	var ledger ports.ReminderLedger = repository.NewMemoryLedger()
	if a.redis != nil {
		ledger = repository.NewRedisLedger(a.redis)
	}

	reminderAt, err := service.ParseClockTime(a.cfg.Scheduler.ReminderAt)
	if err != nil {
		return fmt.Errorf("reminder time: %w", err)
	}

	n := notification.NewTelegramNotifier(a.tg, a.log)
	m := metrics.NewBookingMetrics(nil)

	slotService := service.NewSlotService(bookingRepo, a.cfg.Booking.SlotLimit)
	conversationService := service.NewConversationService(
		bookingRepo,
		session.NewStore(),
		slotService,
		n,
		ticket.NewQRRenderer(0),
		m,
		a.log,
		service.ConversationConfig{
			SessionTTL: a.cfg.Booking.SessionTTL,
			Location:   a.loc,
		},
	)
	reminderService := service.NewReminderService(bookingRepo, ledger, n, m, a.log, reminderAt, a.loc)
	adminService := service.NewAdminService(
		a.cfg.Telegram.AdminID,
		bookingRepo,
		export.NewXLSXExporter(),
		reminderService,
		a.log,
	)

	a.scheduler = scheduler.New(
		reminderService,
		conversationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	if a.tg != nil {
		a.bot = bot.New(conversationService, adminService, n, a.cfg.Telegram.SupportPhone, a.log)
	} else {
		a.log.Warn("telegram bot token is not set, running admin API only")
	}

	h := handler.NewHandler(slotService, conversationService, adminService, a.loc)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.OperatorAuth(adminService),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.scheduler.Start(ctx)
	}()

	if a.bot != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.bot.Run(ctx, a.tg)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	wg.Wait()

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
