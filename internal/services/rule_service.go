package services

import (
	"context"
	"errors"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type RuleService interface {
	Create(ctx context.Context, in models.CreateRuleIn) (*models.RuleOut, error)
	Update(ctx context.Context, in models.UpdateRuleIn) (*models.RuleOut, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*models.RuleOut, error)
	List(ctx context.Context, opts models.ListRulesOptions) ([]*models.RuleOut, error)

	EnabledRules(ctx context.Context) ([]models.Rule, error)
	Match(rules []models.Rule, tx models.BankTransaction) *models.Rule
	RecordMatches(ctx context.Context, ruleIDs []uint64) error
}

type rule service

var _ RuleService = (*rule)(nil)

// Create validates the pattern under its declared kind before anything is
// persisted; a rule that cannot compile never reaches the store.
func (s *rule) Create(ctx context.Context, in models.CreateRuleIn) (output *models.RuleOut, err error) {
	if err = models.ValidatePattern(in.Kind, in.Pattern); err != nil {
		return
	}

	res, err := s.srv.sqlRepo.GetRuleRepository().Create(ctx, in)
	if err != nil {
		err = common.ErrUnableToCreate
		return
	}
	output = res.ConvertToRuleOut()

	return
}

func (s *rule) Update(ctx context.Context, in models.UpdateRuleIn) (output *models.RuleOut, err error) {
	if err = models.ValidatePattern(in.Kind, in.Pattern); err != nil {
		return
	}

	res, err := s.srv.sqlRepo.GetRuleRepository().Update(ctx, in)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			err = models.GetErrMap(models.ErrKeyRuleNotFound)
			return
		}
		err = common.ErrUnableToUpdate
		return
	}
	output = res.ConvertToRuleOut()

	return
}

func (s *rule) Delete(ctx context.Context, id uint64) (err error) {
	err = s.srv.sqlRepo.GetRuleRepository().DeleteByID(ctx, id)
	if errors.Is(err, common.ErrDataNotFound) {
		err = models.GetErrMap(models.ErrKeyRuleNotFound)
	}

	return
}

func (s *rule) Get(ctx context.Context, id uint64) (output *models.RuleOut, err error) {
	res, err := s.srv.sqlRepo.GetRuleRepository().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			err = models.GetErrMap(models.ErrKeyRuleNotFound)
			return
		}
		err = common.ErrInternalServerError
		return
	}
	output = res.ConvertToRuleOut()

	return
}

func (s *rule) List(ctx context.Context, opts models.ListRulesOptions) (output []*models.RuleOut, err error) {
	rules, err := s.srv.sqlRepo.GetRuleRepository().List(ctx, opts)
	if err != nil {
		err = common.ErrInternalServerError
		return
	}

	output = make([]*models.RuleOut, 0, len(rules))
	for i := range rules {
		output = append(output, rules[i].ConvertToRuleOut())
	}

	return
}

// EnabledRules returns the active rule set in matching order: priority
// ascending, ties broken by insertion order.
func (s *rule) EnabledRules(ctx context.Context) ([]models.Rule, error) {
	return s.srv.sqlRepo.GetRuleRepository().List(ctx, models.ListRulesOptions{EnabledOnly: true})
}

// Match evaluates rules in the given order and returns the first one whose
// pattern matches the transaction, or nil when nothing matches. Pure: no rule
// errors surface here, a pattern that cannot compile is a non-match.
func (s *rule) Match(rules []models.Rule, tx models.BankTransaction) *models.Rule {
	for i := range rules {
		if !rules[i].Enabled {
			continue
		}
		if rules[i].Matches(tx) {
			return &rules[i]
		}
	}
	return nil
}

// RecordMatches stamps lastMatchedAt on the rules that classified at least one
// transaction in a batch. Bookkeeping only; a failure here must not fail the
// sync, so callers log and continue.
func (s *rule) RecordMatches(ctx context.Context, ruleIDs []uint64) error {
	return s.srv.sqlRepo.GetRuleRepository().TouchLastMatched(ctx, ruleIDs)
}
