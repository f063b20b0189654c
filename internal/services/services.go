package services

import (
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/bank"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/idgenerator"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/ledger"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/metrics"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	settingRepo repositories.SettingRepository

	bankClient   bank.Client
	ledgerClient ledger.Client
	idgenerator  idgenerator.Generator
	metrics      metrics.Metrics

	common service

	Rule          *rule
	Duplicate     *duplicateDetector
	ImportBuilder *importBuilder
	Setting       *setting
	Sync          *syncOrchestrator
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	settingRepo repositories.SettingRepository,
	bankClient bank.Client,
	ledgerClient ledger.Client,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		settingRepo:  settingRepo,
		bankClient:   bankClient,
		ledgerClient: ledgerClient,
		idgenerator:  idgenerator,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Rule = (*rule)(&srv.common)
	srv.Duplicate = (*duplicateDetector)(&srv.common)
	srv.ImportBuilder = (*importBuilder)(&srv.common)
	srv.Setting = (*setting)(&srv.common)
	srv.Sync = newSyncOrchestrator(srv)

	return srv
}
