package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"github.com/talkincode/inventorypro/config"
	"github.com/talkincode/inventorypro/internal/assistant"
	"github.com/talkincode/inventorypro/internal/storage"
	"github.com/talkincode/inventorypro/internal/store"
	"github.com/talkincode/inventorypro/pkg/metrics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	repo      storage.Repository
	inventory *store.InventoryStore
	gen       assistant.Generator
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ AssistantProvider = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Inventory() *store.InventoryStore {
	return a.inventory
}

func (a *Application) Assistant() assistant.Generator {
	return a.gen
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideInventory replaces the application's store (used in tests).
func (a *Application) OverrideInventory(s *store.InventoryStore) {
	a.inventory = s
}

// OverrideAssistant replaces the description assistant (used in tests).
func (a *Application) OverrideAssistant(g assistant.Generator) {
	a.gen = g
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return err
	}

	// Initialize metrics with workdir convention
	if err := metrics.InitMetrics(cfg.System.Workdir); err != nil {
		zap.S().Warn("Failed to initialize metrics:", err)
	}

	// Open the inventory database and load the collection
	a.repo, err = storage.NewBoltRepository(cfg.StoragePath())
	if err != nil {
		return err
	}
	zap.S().Infof("Inventory database opened, file: %s", cfg.StoragePath())

	a.inventory = store.NewInventoryStore(a.repo)
	if err := a.inventory.Initialize(); err != nil {
		return err
	}

	a.gen = assistant.NewOpenAIAssistant(cfg.Assistant)

	a.initJob()
	return nil
}

// InitDb discards the persisted collection and reseeds the demonstration set.
func (a *Application) InitDb() {
	a.inventory.Reseed()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}

	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			zap.S().Errorf("close inventory database: %v", err)
		}
	}

	_ = metrics.Close()
	_ = zap.L().Sync()
}
