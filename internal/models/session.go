package models

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

type SessionState string

const (
	SessionStateIdle                      SessionState = "idle"
	SessionStateAwaitingBankAuth          SessionState = "awaiting_bank_auth"
	SessionStateAwaitingChallengeResponse SessionState = "awaiting_challenge_response"
	SessionStateFetchingTransactions      SessionState = "fetching_transactions"
	SessionStateReviewingTransactions     SessionState = "reviewing_transactions"
	SessionStateImporting                 SessionState = "importing"
	SessionStateCompleted                 SessionState = "completed"
	SessionStateFailed                    SessionState = "failed"
	SessionStateCancelled                 SessionState = "cancelled"
)

func (s SessionState) Terminal() bool {
	switch s {
	case SessionStateCompleted, SessionStateFailed, SessionStateCancelled:
		return true
	default:
		return false
	}
}

// Cancellable states precede the import commit. Once a write request has been
// sent to the ledger it must be allowed to complete.
func (s SessionState) Cancellable() bool {
	switch s {
	case SessionStateAwaitingBankAuth, SessionStateAwaitingChallengeResponse,
		SessionStateFetchingTransactions, SessionStateReviewingTransactions:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	TransactionStatusUnclassified        TransactionStatus = "unclassified"
	TransactionStatusRuleMatched         TransactionStatus = "rule_matched"
	TransactionStatusManuallyCategorized TransactionStatus = "manually_categorized"
	TransactionStatusSkipped             TransactionStatus = "skipped"
)

type ImportState string

const (
	ImportStateNotAttempted ImportState = "not_attempted"
	ImportStateImported     ImportState = "imported"
	ImportStateRejected     ImportState = "rejected"
)

// ImportResult is the post-import ledger status, kept separate from the
// pre-import duplicate verdict on purpose: the two duplicate concepts evolved
// independently and are reconciled by the orchestrator, not unified here.
type ImportResult struct {
	State  ImportState `json:"state"`
	Reason string      `json:"reason,omitempty"`
}

// TransactionSplit divides part of a transaction's amount onto one budget
// category. Exists only attached to an in-flight transaction in split mode.
type TransactionSplit struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Memo         string          `json:"memo,omitempty"`
}

// SplitAmountTolerance is the allowed rounding slack between the sum of split
// amounts and the parent amount, in minor currency units.
var SplitAmountTolerance = decimal.NewFromFloat(0.01)

// ValidateSplits checks the split-set invariants: at least two entries and a
// sum within tolerance of the parent amount. All violations are returned at
// once so a UI can show every problem in one pass.
func ValidateSplits(parentAmount decimal.Decimal, splits []TransactionSplit) error {
	var errs *multierror.Error

	if len(splits) < 2 {
		errs = multierror.Append(errs, GetErrMap(ErrKeySplitTooFew))
	}

	sum := decimal.Zero
	for _, s := range splits {
		sum = sum.Add(s.Amount)
	}
	if len(splits) > 0 && sum.Sub(parentAmount).Abs().GreaterThan(SplitAmountTolerance) {
		errs = multierror.Append(errs, GetErrMap(
			ErrKeySplitAmountMismatch,
			"splits sum to "+sum.String()+", transaction amount is "+parentAmount.String(),
		))
	}

	return errs.ErrorOrNil()
}

// InFlightTransaction is the session's working unit: one bank transaction
// plus everything rule matching, duplicate detection, user review and import
// attach to it. Mutable only within its owning session, and only through the
// setters below; single category and split set are mutually exclusive and
// the setters keep it that way.
type InFlightTransaction struct {
	ID   string          `json:"id"`
	Bank BankTransaction `json:"bank"`

	Status        TransactionStatus  `json:"status"`
	CategoryID    string             `json:"categoryId,omitempty"`
	CategoryName  string             `json:"categoryName,omitempty"`
	Splits        []TransactionSplit `json:"splits,omitempty"`
	PayeeOverride string             `json:"payeeOverride,omitempty"`
	Note          string             `json:"note,omitempty"`

	Duplicate DuplicateVerdict `json:"duplicate"`
	Import    ImportResult     `json:"import"`

	// statusBeforeSkip restores the classification status on unskip.
	statusBeforeSkip TransactionStatus
}

// SetCategory assigns a single category and clears any split set. Safe to
// apply repeatedly.
func (t *InFlightTransaction) SetCategory(id, name string, status TransactionStatus) {
	t.CategoryID = id
	t.CategoryName = name
	t.Splits = nil
	t.Status = status
}

// SetSplits validates and installs a split set, clearing the single-category
// fields. On success the transaction counts as manually categorized.
func (t *InFlightTransaction) SetSplits(splits []TransactionSplit) error {
	if err := ValidateSplits(t.Bank.Amount, splits); err != nil {
		return err
	}
	t.Splits = splits
	t.CategoryID = ""
	t.CategoryName = ""
	t.Status = TransactionStatusManuallyCategorized
	return nil
}

// ClearSplits removes the split set, leaving the transaction unclassified.
func (t *InFlightTransaction) ClearSplits() {
	if t.Splits == nil {
		return
	}
	t.Splits = nil
	t.Status = TransactionStatusUnclassified
}

func (t *InFlightTransaction) Skip() {
	if t.Status == TransactionStatusSkipped {
		return
	}
	t.statusBeforeSkip = t.Status
	t.Status = TransactionStatusSkipped
}

func (t *InFlightTransaction) Unskip() {
	if t.Status != TransactionStatusSkipped {
		return
	}
	t.Status = t.statusBeforeSkip
	if t.Status == "" {
		t.Status = TransactionStatusUnclassified
	}
}

func (t *InFlightTransaction) Skipped() bool {
	return t.Status == TransactionStatusSkipped
}

// ImportReady reports whether the transaction can be turned into a ledger
// write request: not skipped, and carrying either a category or a valid split
// set. The write builder treats an unready transaction as a precondition
// violation, so this filter runs first.
func (t *InFlightTransaction) ImportReady() bool {
	if t.Skipped() {
		return false
	}
	return t.CategoryID != "" || len(t.Splits) >= 2
}

// EffectivePayee is the user override when present, the bank payee otherwise.
func (t *InFlightTransaction) EffectivePayee() string {
	if t.PayeeOverride != "" {
		return t.PayeeOverride
	}
	return t.Bank.Payee
}

type SessionCounts struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Session owns one reconciliation run and the full set of in-flight
// transactions for its lifetime. One active instance per process.
type Session struct {
	ID            string        `json:"id"`
	State         SessionState  `json:"state"`
	StartedAt     time.Time     `json:"startedAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	FailureReason string        `json:"failureReason,omitempty"`
	Counts        SessionCounts `json:"counts"`

	Transactions []*InFlightTransaction `json:"transactions"`

	byID map[string]*InFlightTransaction
}

func NewSession(id string, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		State:     SessionStateAwaitingBankAuth,
		StartedAt: startedAt,
		byID:      make(map[string]*InFlightTransaction),
	}
}

// AddTransaction registers a fetched transaction with the session.
func (s *Session) AddTransaction(tx *InFlightTransaction) {
	s.Transactions = append(s.Transactions, tx)
	s.byID[tx.ID] = tx
	s.Counts.Total = len(s.Transactions)
}

// Transaction looks up an in-flight transaction by its session-local id.
func (s *Session) Transaction(id string) (*InFlightTransaction, bool) {
	tx, ok := s.byID[id]
	return tx, ok
}

// RecomputeCounts derives the final counters from the current per-transaction
// state. Always called after import mutations, never from values captured
// before them.
func (s *Session) RecomputeCounts() {
	counts := SessionCounts{Total: len(s.Transactions)}
	for _, tx := range s.Transactions {
		switch {
		case tx.Import.State == ImportStateImported:
			counts.Imported++
		case tx.Skipped():
			counts.Skipped++
		}
	}
	s.Counts = counts
}
