package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common/graceful"
	commonhttp "github.com/rommsen/BudgetBuddy-sub000/internal/common/http"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/http/middleware"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/deliveries/http/health"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"

	v1rules "github.com/rommsen/BudgetBuddy-sub000/internal/deliveries/http/v1/rules"
	v1settings "github.com/rommsen/BudgetBuddy-sub000/internal/deliveries/http/v1/settings"
	v1sync "github.com/rommsen/BudgetBuddy-sub000/internal/deliveries/http/v1/sync"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			zap.L().Error("[SHUTDOWN] HTTP server error", zap.Error(err))
		} else {
			zap.L().Info("[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	_ context.Context,
	conf config.Config,
	log *zap.Logger,
	ruleService services.RuleService,
	syncService services.SyncService,
	settingService services.SettingService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, log)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group register api
	v1rules.New(v1Group, ruleService)
	v1sync.New(v1Group, syncService)
	v1settings.New(v1Group, settingService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
