package main

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/cmd/setup"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/graceful"
	"github.com/rommsen/BudgetBuddy-sub000/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		zap.L().Fatal("failed to setup app", zap.Error(err))
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.Logger,
		s.Service.Rule,
		s.Service.Sync,
		s.Service.Setting,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	zap.L().Info("http server stopped!")
}
