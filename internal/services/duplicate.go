package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type DuplicateDetector interface {
	Detect(ledgerTxs []models.LedgerTransaction, tx models.BankTransaction, dateToleranceDays int) models.DuplicateVerdict
}

type duplicateDetector service

var _ DuplicateDetector = (*duplicateDetector)(nil)

// Detect runs the three duplicate checks against a ledger snapshot and folds
// them into one verdict. All three always execute so the evidence record is
// complete for every verdict, including NotDuplicate. Priority when deciding:
// a reference or import-id hit is confirmed, a fuzzy hit alone is only
// possible. Pure over its inputs; an empty snapshot yields NotDuplicate.
func (s *duplicateDetector) Detect(ledgerTxs []models.LedgerTransaction, tx models.BankTransaction, dateToleranceDays int) models.DuplicateVerdict {
	evidence := models.DuplicateEvidence{Reference: tx.Reference}

	for i := range ledgerTxs {
		if models.MemoContainsReference(ledgerTxs[i].Memo, tx.Reference) {
			evidence.ReferenceMatch = true
			break
		}
	}

	for i := range ledgerTxs {
		if ledgerTxs[i].ImportID == "" {
			continue
		}
		if models.MatchesImportID(tx.Reference, ledgerTxs[i].ImportID) {
			evidence.ImportIDMatch = true
			break
		}
	}

	for i := range ledgerTxs {
		if fuzzyMatches(ledgerTxs[i], tx, dateToleranceDays) {
			evidence.Fuzzy = &models.FuzzyMatch{
				LedgerID: ledgerTxs[i].ID,
				Date:     ledgerTxs[i].Date,
				Amount:   ledgerTxs[i].Amount,
				Payee:    ledgerTxs[i].Payee,
			}
			break
		}
	}

	verdict := models.DuplicateVerdict{
		Kind:     models.DuplicateVerdictNone,
		Evidence: evidence,
	}

	switch {
	case evidence.ReferenceMatch || evidence.ImportIDMatch:
		verdict.Kind = models.DuplicateVerdictConfirmed
		verdict.Reference = tx.Reference
	case evidence.Fuzzy != nil:
		verdict.Kind = models.DuplicateVerdictPossible
		verdict.Reason = fmt.Sprintf(
			"ledger transaction %q on %s over %s looks the same",
			evidence.Fuzzy.Payee,
			evidence.Fuzzy.Date.Format("2006-01-02"),
			evidence.Fuzzy.Amount.String(),
		)
	}

	return verdict
}

// fuzzyMatches is the heuristic check: booking dates within the tolerance,
// amounts exactly equal, and one payee a case-insensitive substring of the
// other. It never upgrades to confirmed on its own; two unrelated same-day
// same-amount purchases at one merchant are plausible.
func fuzzyMatches(ledgerTx models.LedgerTransaction, tx models.BankTransaction, dateToleranceDays int) bool {
	if !ledgerTx.Amount.Equal(tx.Amount) {
		return false
	}

	if !datesWithin(ledgerTx.Date, tx.BookedAt, dateToleranceDays) {
		return false
	}

	ledgerPayee := strings.ToLower(ledgerTx.Payee)
	bankPayee := strings.ToLower(tx.Payee)
	if ledgerPayee == "" || bankPayee == "" {
		return false
	}

	return strings.Contains(ledgerPayee, bankPayee) || strings.Contains(bankPayee, ledgerPayee)
}

func datesWithin(a, b time.Time, days int) bool {
	diff := a.Truncate(24 * time.Hour).Sub(b.Truncate(24 * time.Hour))
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(days)*24*time.Hour
}
