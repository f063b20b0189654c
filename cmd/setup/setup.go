package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common/bank"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/graceful"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/idgenerator"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/ledger"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/localstorage"
	cMetrics "github.com/rommsen/BudgetBuddy-sub000/internal/common/metrics"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/retry"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
	"github.com/rommsen/BudgetBuddy-sub000/internal/repositories"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config      config.Config
	Logger      *zap.Logger
	WriteDB     *sql.DB
	ReadDB      *sql.DB
	SettingRepo repositories.SettingRepository
	Service     *services.Services
	Metrics     cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	cfg, err := config.Load(".", "./config", "/config")
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logger, err := setupLogger(cfg, command)
	if err != nil {
		err = fmt.Errorf("failed to init logger: %w", err)
		return
	}
	zap.ReplaceGlobals(logger)
	setup.Logger = logger

	stopper = append(stopper, func(ctx context.Context) error {
		_ = logger.Sync()
		return nil
	})

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// settings live in an embedded badger store next to the binary
	settingStorage, err := localstorage.NewBadgerStorage[models.Setting](
		cfg.SettingsStore.BaseDir, cfg.SettingsStore.Bucket)
	if err != nil {
		err = fmt.Errorf("failed to open settings store: %w", err)
		return
	}
	settingRepo := repositories.NewSettingRepository(settingStorage)
	stopper = append(stopper, func(ctx context.Context) error { return settingRepo.Close() })

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	retryer := retry.NewExponentialBackOff(&cfg.Sync.ExponentialBackoff)

	bankClient := bank.New(cfg.Bank.HTTP, logger)
	ledgerClient := ledger.New(cfg.Ledger, retryer, logger)

	idGenerator := idgenerator.New()

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		settingRepo,
		bankClient,
		ledgerClient,
		idGenerator,
		mtc,
	)

	setup.WriteDB = writeDB
	setup.ReadDB = readDB
	setup.SettingRepo = settingRepo
	setup.Service = srv
	setup.Metrics = mtc

	return setup, stopper, nil
}

func setupLogger(cfg config.Config, command string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.App.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var zapCfg zap.Config
	if config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build(zap.Fields(
		zap.String("app", cfg.App.Name),
		zap.String("command", command),
	))
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
