package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	rr *ruleRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.rr = (*ruleRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetRuleRepository() RuleRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside a single database transaction. The transaction is
// injected into the context so every repository call inside steps joins it.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	zap.L().Debug("[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			zap.L().Error("[DATABASE.TRANSACTION.PANIC]", zap.Error(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			zap.L().Warn("[DATABASE.TRANSACTION.ROLLBACK]", zap.Error(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					zap.L().Warn("[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", zap.Error(err))
					err = nil
				}
			}

			zap.L().Debug("[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetRuleRepository() RuleRepository {
	return r.rr
}
