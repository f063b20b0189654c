package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type RuleRepository interface {
	Create(ctx context.Context, in models.CreateRuleIn) (models.Rule, error)
	Update(ctx context.Context, in models.UpdateRuleIn) (models.Rule, error)
	DeleteByID(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (models.Rule, error)
	List(ctx context.Context, opts models.ListRulesOptions) ([]models.Rule, error)
	TouchLastMatched(ctx context.Context, ids []uint64) error
}

type ruleRepository sqlRepo

var _ RuleRepository = (*ruleRepository)(nil)

func (rr *ruleRepository) Create(ctx context.Context, in models.CreateRuleIn) (out models.Rule, err error) {
	db := rr.r.extractTxWrite(ctx)

	out = models.Rule{
		Name:          in.Name,
		Pattern:       in.Pattern,
		Kind:          in.Kind,
		Field:         in.Field,
		CategoryID:    in.CategoryID,
		CategoryName:  in.CategoryName,
		PayeeOverride: in.PayeeOverride,
		Priority:      in.Priority,
		Enabled:       in.Enabled,
	}

	err = db.QueryRowContext(ctx, queryRuleCreate,
		in.Name,
		in.Pattern,
		in.Kind,
		in.Field,
		in.CategoryID,
		in.CategoryName,
		in.PayeeOverride,
		in.Priority,
		in.Enabled,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return models.Rule{}, fmt.Errorf("failed to create rule: %w", err)
	}

	return out, nil
}

func (rr *ruleRepository) Update(ctx context.Context, in models.UpdateRuleIn) (out models.Rule, err error) {
	db := rr.r.extractTxWrite(ctx)

	out = models.Rule{
		ID:            in.ID,
		Name:          in.Name,
		Pattern:       in.Pattern,
		Kind:          in.Kind,
		Field:         in.Field,
		CategoryID:    in.CategoryID,
		CategoryName:  in.CategoryName,
		PayeeOverride: in.PayeeOverride,
		Priority:      in.Priority,
		Enabled:       in.Enabled,
	}

	err = db.QueryRowContext(ctx, queryRuleUpdate,
		in.ID,
		in.Name,
		in.Pattern,
		in.Kind,
		in.Field,
		in.CategoryID,
		in.CategoryName,
		in.PayeeOverride,
		in.Priority,
		in.Enabled,
	).Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rule{}, common.ErrDataNotFound
		}
		return models.Rule{}, fmt.Errorf("failed to update rule: %w", err)
	}

	return out, nil
}

func (rr *ruleRepository) DeleteByID(ctx context.Context, id uint64) error {
	db := rr.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryRuleDeleteByID, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrDataNotFound
	}

	return nil
}

func (rr *ruleRepository) GetByID(ctx context.Context, id uint64) (out models.Rule, err error) {
	db := rr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryRuleGetByID, id).Scan(
		&out.ID,
		&out.Name,
		&out.Pattern,
		&out.Kind,
		&out.Field,
		&out.CategoryID,
		&out.CategoryName,
		&out.PayeeOverride,
		&out.Priority,
		&out.Enabled,
		&out.LastMatchedAt,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rule{}, common.ErrDataNotFound
		}
		return models.Rule{}, fmt.Errorf("failed to get rule: %w", err)
	}

	return out, nil
}

func (rr *ruleRepository) List(ctx context.Context, opts models.ListRulesOptions) (out []models.Rule, err error) {
	db := rr.r.extractTxRead(ctx)

	query, args, err := buildListRulesQuery(ruleColumns, opts).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rule models.Rule
		err = rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.Pattern,
			&rule.Kind,
			&rule.Field,
			&rule.CategoryID,
			&rule.CategoryName,
			&rule.PayeeOverride,
			&rule.Priority,
			&rule.Enabled,
			&rule.LastMatchedAt,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}

	return out, rows.Err()
}

func (rr *ruleRepository) TouchLastMatched(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	db := rr.r.extractTxWrite(ctx)

	ruleIDs := make([]int64, 0, len(ids))
	for _, id := range ids {
		ruleIDs = append(ruleIDs, int64(id))
	}

	_, err := db.ExecContext(ctx, queryRuleTouchLastMatched, pq.Array(ruleIDs))
	if err != nil {
		return fmt.Errorf("failed to touch last matched: %w", err)
	}

	return nil
}
