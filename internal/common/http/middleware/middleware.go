package middleware

import (
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
)

type AppMiddleware struct {
	conf config.Config
	log  *zap.Logger
}

func NewMiddleware(conf config.Config, log *zap.Logger) *AppMiddleware {
	if log == nil {
		log = zap.L()
	}
	return &AppMiddleware{
		conf: conf,
		log:  log,
	}
}
