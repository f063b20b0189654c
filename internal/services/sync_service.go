package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/bank"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type SyncService interface {
	Start(ctx context.Context) (*models.StartSyncOut, error)
	BeginChallenge(ctx context.Context) (*models.StartSyncOut, error)
	ConfirmChallenge(ctx context.Context) (*models.SessionOut, error)
	Current(ctx context.Context) (*models.SessionOut, error)
	UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.InFlightTransaction, error)
	SetSplits(ctx context.Context, id string, req models.CreateSplitsRequest) (*models.InFlightTransaction, error)
	ClearSplits(ctx context.Context, id string) (*models.InFlightTransaction, error)
	Import(ctx context.Context) (*models.SessionOut, error)
	Reimport(ctx context.Context, req models.ReimportRequest) (*models.SessionOut, error)
	Cancel(ctx context.Context) (*models.SessionOut, error)
	Clear(ctx context.Context) error
}

// syncOrchestrator owns the single active reconciliation session. All session
// mutation happens under one mutex; there is deliberately no support for
// concurrent runs.
type syncOrchestrator struct {
	srv *Services

	mu        sync.Mutex
	session   *models.Session
	challenge bank.ChallengeHandle
}

var _ SyncService = (*syncOrchestrator)(nil)

func newSyncOrchestrator(srv *Services) *syncOrchestrator {
	return &syncOrchestrator{srv: srv}
}

// Start opens a new session. Only one session may be active; a previous
// session must be terminal (and is replaced) or cleared first.
func (s *syncOrchestrator) Start(_ context.Context) (*models.StartSyncOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && !s.session.State.Terminal() {
		return nil, models.GetErrMap(models.ErrKeySessionAlreadyActive, s.session.ID)
	}

	s.session = models.NewSession(s.srv.idgenerator.Generate("sync"), time.Now())
	s.challenge = bank.ChallengeHandle{}
	s.srv.metrics.SyncStarted()

	zap.L().Info("sync session started", zap.String("session_id", s.session.ID))

	return &models.StartSyncOut{
		Kind:    "startSync",
		Session: s.session.ConvertToSessionOut(),
	}, nil
}

// BeginChallenge asks the bank gateway to start its auth flow and records the
// issued challenge. The protocol behind the challenge is the gateway's
// business; the session only tracks that one is pending.
func (s *syncOrchestrator) BeginChallenge(ctx context.Context) (*models.StartSyncOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireStateLocked(models.SessionStateAwaitingBankAuth); err != nil {
		return nil, err
	}

	handle, err := s.srv.bankClient.BeginAuth(ctx)
	if err != nil {
		s.failLocked(fmt.Errorf("%w: %v", common.ErrBankAuthFailed, err))
		return nil, common.ErrBankAuthFailed
	}

	s.challenge = handle
	s.session.State = models.SessionStateAwaitingChallengeResponse

	return &models.StartSyncOut{
		Kind:      "startSync",
		Session:   s.session.ConvertToSessionOut(),
		Challenge: handle.Instructions,
	}, nil
}

// ConfirmChallenge completes bank auth and runs the whole fetch step: bank
// feed and ledger snapshot are loaded concurrently, every fetched transaction
// is classified and checked for duplicates, and the session lands in
// ReviewingTransactions. Any failure along the way fails the session, never a
// partial success.
func (s *syncOrchestrator) ConfirmChallenge(ctx context.Context) (*models.SessionOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireStateLocked(models.SessionStateAwaitingChallengeResponse); err != nil {
		return nil, err
	}

	if err := s.srv.bankClient.ConfirmChallenge(ctx, s.challenge.ID); err != nil {
		s.failLocked(fmt.Errorf("%w: %v", common.ErrBankChallengeFailed, err))
		return nil, common.ErrBankChallengeFailed
	}

	s.session.State = models.SessionStateFetchingTransactions

	if err := s.fetchAndClassifyLocked(ctx); err != nil {
		s.failLocked(err)
		return nil, err
	}

	s.session.State = models.SessionStateReviewingTransactions

	return s.session.ConvertToSessionOut(), nil
}

// fetchAndClassifyLocked loads the bank feed and the ledger snapshot, then
// classifies and duplicate-checks each transaction. The ledger window is the
// fetch window plus the date tolerance so true duplicates near the boundary
// are not missed, and the snapshot is fetched exactly once: every transaction
// in the batch is judged against the same ledger state.
func (s *syncOrchestrator) fetchAndClassifyLocked(ctx context.Context) error {
	accountRef := s.srv.Setting.StringOrDefault(models.SettingKeyBankAccountRef, s.srv.conf.Bank.AccountRef)
	ledgerAccount := s.srv.Setting.StringOrDefault(models.SettingKeyLedgerAccountID, s.srv.conf.Ledger.AccountID)
	fetchDays := s.srv.Setting.IntOrDefault(models.SettingKeyFetchWindowDays, s.srv.conf.Sync.FetchWindowDays)
	toleranceDays := s.srv.Setting.IntOrDefault(models.SettingKeyDateToleranceDays, s.srv.conf.Sync.DateToleranceDays)

	var (
		bankTxs  []models.BankTransaction
		snapshot []models.LedgerTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := s.srv.bankClient.FetchTransactions(gctx, accountRef, fetchDays)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrBankFetchFailed, err)
		}
		bankTxs = txs
		return nil
	})
	g.Go(func() error {
		txs, err := s.srv.ledgerClient.ListTransactions(gctx, ledgerAccount, fetchDays+toleranceDays)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
		}
		snapshot = txs
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	rules, err := s.srv.Rule.EnabledRules(ctx)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	matchedRules := make(map[uint64]struct{})
	for i := range bankTxs {
		tx := &models.InFlightTransaction{
			ID:     s.srv.idgenerator.Generate("tx"),
			Bank:   bankTxs[i],
			Status: models.TransactionStatusUnclassified,
			Import: models.ImportResult{State: models.ImportStateNotAttempted},
		}

		if matched := s.srv.Rule.Match(rules, tx.Bank); matched != nil {
			tx.SetCategory(matched.CategoryID, matched.CategoryName, models.TransactionStatusRuleMatched)
			if matched.PayeeOverride != "" {
				tx.PayeeOverride = matched.PayeeOverride
			}
			matchedRules[matched.ID] = struct{}{}
		}

		tx.Duplicate = s.srv.Duplicate.Detect(snapshot, tx.Bank, toleranceDays)
		s.srv.metrics.DuplicateVerdict(string(tx.Duplicate.Kind))

		s.session.AddTransaction(tx)
	}

	s.srv.metrics.TransactionsFetched(len(bankTxs))

	if len(matchedRules) > 0 {
		ruleIDs := make([]uint64, 0, len(matchedRules))
		for id := range matchedRules {
			ruleIDs = append(ruleIDs, id)
		}
		if err := s.srv.Rule.RecordMatches(ctx, ruleIDs); err != nil {
			zap.L().Warn("recording rule matches failed", zap.Error(err))
		}
	}

	return nil
}

func (s *syncOrchestrator) Current(_ context.Context) (*models.SessionOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, models.GetErrMap(models.ErrKeySessionNotFound)
	}

	return s.session.ConvertToSessionOut(), nil
}

// UpdateTransaction applies one review edit. Every field is applied
// idempotently and assigning a category clears a previous split set.
func (s *syncOrchestrator) UpdateTransaction(_ context.Context, id string, req models.UpdateTransactionRequest) (*models.InFlightTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.reviewTransactionLocked(id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			tx.SetCategory("", "", models.TransactionStatusUnclassified)
		} else {
			name := ""
			if req.CategoryName != nil {
				name = *req.CategoryName
			}
			tx.SetCategory(*req.CategoryID, name, models.TransactionStatusManuallyCategorized)
		}
	}
	if req.PayeeOverride != nil {
		tx.PayeeOverride = *req.PayeeOverride
	}
	if req.Note != nil {
		tx.Note = *req.Note
	}
	if req.Skipped != nil {
		if *req.Skipped {
			tx.Skip()
		} else {
			tx.Unskip()
		}
	}

	return tx, nil
}

// SetSplits installs a validated split set on one transaction, replacing any
// single category. Validation failures come back as a list so a UI can show
// every problem at once.
func (s *syncOrchestrator) SetSplits(_ context.Context, id string, req models.CreateSplitsRequest) (*models.InFlightTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.reviewTransactionLocked(id)
	if err != nil {
		return nil, err
	}

	splits := make([]models.TransactionSplit, 0, len(req.Splits))
	for _, in := range req.Splits {
		amount, err := decimal.NewFromString(in.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: split amount %q", common.ErrValidation, in.Amount)
		}
		splits = append(splits, models.TransactionSplit{
			CategoryID:   in.CategoryID,
			CategoryName: in.CategoryName,
			Amount:       amount,
			Memo:         in.Memo,
		})
	}

	if err := tx.SetSplits(splits); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *syncOrchestrator) ClearSplits(_ context.Context, id string) (*models.InFlightTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.reviewTransactionLocked(id)
	if err != nil {
		return nil, err
	}

	tx.ClearSplits()

	return tx, nil
}

// Import builds a write request for every import-ready transaction, sends the
// batch to the ledger, and maps the ledger's rejections back onto the session.
// Partial rejection is a normal Completed outcome, not a failure.
func (s *syncOrchestrator) Import(ctx context.Context) (*models.SessionOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireStateLocked(models.SessionStateReviewingTransactions); err != nil {
		return nil, err
	}

	s.session.State = models.SessionStateImporting

	var ready []*models.InFlightTransaction
	for _, tx := range s.session.Transactions {
		if tx.ImportReady() {
			ready = append(ready, tx)
		}
	}

	if err := s.submitLocked(ctx, ready, false); err != nil {
		s.failLocked(err)
		return nil, err
	}

	s.completeLocked()

	return s.session.ConvertToSessionOut(), nil
}

// Reimport resubmits ledger-rejected transactions with fresh random import
// ids so the ledger will not reject them again for the same id.
func (s *syncOrchestrator) Reimport(ctx context.Context, req models.ReimportRequest) (*models.SessionOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireStateLocked(models.SessionStateCompleted); err != nil {
		return nil, err
	}

	var selected []*models.InFlightTransaction
	for _, id := range req.TransactionIDs {
		tx, ok := s.session.Transaction(id)
		if !ok {
			return nil, models.GetErrMap(models.ErrKeyTransactionNotFound, id)
		}
		if tx.Import.State != models.ImportStateRejected {
			return nil, models.GetErrMap(models.ErrKeyTransactionNotRejected, id)
		}
		selected = append(selected, tx)
	}

	s.session.State = models.SessionStateImporting

	if err := s.submitLocked(ctx, selected, true); err != nil {
		s.failLocked(err)
		return nil, err
	}

	s.completeLocked()

	return s.session.ConvertToSessionOut(), nil
}

// submitLocked sends one batch and applies the result. Rejected import ids
// are mapped back by exact id first, then by the normalized reference the
// deterministic id embeds; the comparison is the same transform that
// generated the id. A rejection that maps to nothing is logged loudly and
// marks nothing: guessing would flag unrelated transactions.
func (s *syncOrchestrator) submitLocked(ctx context.Context, txs []*models.InFlightTransaction, forceNewToken bool) error {
	if len(txs) == 0 {
		return nil
	}

	memoLimit := s.srv.Setting.IntOrDefault(models.SettingKeyMemoLimit, s.srv.conf.Sync.MemoLimit)

	requests := make([]models.LedgerWriteRequest, 0, len(txs))
	byImportID := make(map[string]*models.InFlightTransaction, len(txs))
	byNormRef := make(map[string]*models.InFlightTransaction, len(txs))
	for _, tx := range txs {
		req, err := s.srv.ImportBuilder.Build(tx, memoLimit, forceNewToken)
		if err != nil {
			return err
		}
		requests = append(requests, req)
		byImportID[req.ImportID] = tx
		if normRef := models.NormalizeReference(tx.Bank.Reference); normRef != "" {
			byNormRef[normRef] = tx
		}
	}

	result, err := s.srv.ledgerClient.CreateTransactions(ctx, requests)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
	}

	for _, tx := range txs {
		tx.Import = models.ImportResult{State: models.ImportStateImported}
	}

	rejected := 0
	for _, rejectedID := range result.RejectedImportIDs {
		tx, ok := byImportID[rejectedID]
		if !ok {
			normRef := models.StripImportIDPrefix(rejectedID)
			tx, ok = byNormRef[normRef]
		}
		if !ok {
			zap.L().Warn("ledger rejection does not map to any in-flight transaction",
				zap.String("import_id", rejectedID))
			s.srv.metrics.UnmappedRejection()
			continue
		}

		tx.Import = models.ImportResult{
			State:  models.ImportStateRejected,
			Reason: fmt.Sprintf("ledger rejected import id %s as duplicate", rejectedID),
		}
		rejected++
	}

	s.srv.metrics.TransactionsImported(len(txs) - rejected)
	s.srv.metrics.TransactionsRejected(rejected)

	return nil
}

func (s *syncOrchestrator) Cancel(_ context.Context) (*models.SessionOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, models.GetErrMap(models.ErrKeySessionNotFound)
	}
	if !s.session.State.Cancellable() {
		return nil, models.GetErrMap(models.ErrKeySessionNotCancellable, string(s.session.State))
	}

	now := time.Now()
	s.session.State = models.SessionStateCancelled
	s.session.CompletedAt = &now

	zap.L().Info("sync session cancelled", zap.String("session_id", s.session.ID))

	return s.session.ConvertToSessionOut(), nil
}

// Clear discards a terminal session so the next run starts clean. An active
// session must complete, fail or be cancelled first; its final status stays
// inspectable until then.
func (s *syncOrchestrator) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	if !s.session.State.Terminal() {
		return models.GetErrMap(models.ErrKeySessionInvalidState, string(s.session.State))
	}

	s.session = nil
	s.challenge = bank.ChallengeHandle{}

	return nil
}

func (s *syncOrchestrator) requireStateLocked(state models.SessionState) error {
	if s.session == nil {
		return models.GetErrMap(models.ErrKeySessionNotFound)
	}
	if s.session.State != state {
		return models.GetErrMap(models.ErrKeySessionInvalidState,
			fmt.Sprintf("state is %s, expected %s", s.session.State, state))
	}
	return nil
}

func (s *syncOrchestrator) reviewTransactionLocked(id string) (*models.InFlightTransaction, error) {
	if err := s.requireStateLocked(models.SessionStateReviewingTransactions); err != nil {
		return nil, err
	}
	tx, ok := s.session.Transaction(id)
	if !ok {
		return nil, models.GetErrMap(models.ErrKeyTransactionNotFound, id)
	}
	return tx, nil
}

func (s *syncOrchestrator) failLocked(cause error) {
	now := time.Now()
	s.session.State = models.SessionStateFailed
	s.session.FailureReason = cause.Error()
	s.session.CompletedAt = &now

	zap.L().Error("sync session failed",
		zap.String("session_id", s.session.ID),
		zap.Error(cause))
}

// completeLocked derives the final counters from the per-transaction state as
// it is now, never from values captured before the import mutations.
func (s *syncOrchestrator) completeLocked() {
	now := time.Now()
	s.session.RecomputeCounts()
	s.session.State = models.SessionStateCompleted
	s.session.CompletedAt = &now
}
