package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type ImportBuilderService interface {
	Build(tx *models.InFlightTransaction, memoLimit int, forceNewToken bool) (models.LedgerWriteRequest, error)
}

type importBuilder service

var _ ImportBuilderService = (*importBuilder)(nil)

// Build turns a reviewed in-flight transaction into a ledger write request.
// The import id is deterministic from the bank reference unless forceNewToken
// asks for a fresh random one (re-import of a ledger-rejected transaction).
// A transaction that is not import-ready is a caller bug, not a user error:
// the orchestrator filters before calling here.
func (s *importBuilder) Build(tx *models.InFlightTransaction, memoLimit int, forceNewToken bool) (models.LedgerWriteRequest, error) {
	if !tx.ImportReady() {
		return models.LedgerWriteRequest{}, fmt.Errorf("transaction %s has neither a category nor a split set", tx.ID)
	}

	importID := models.NewImportID(tx.Bank.Reference)
	if forceNewToken {
		importID = models.NewRandomImportID()
	}
	if err := models.ValidateImportID(importID); err != nil {
		// The ledger would truncate or reject the id; warn and send anyway,
		// the rejection mapping falls back to the normalized reference.
		zap.L().Warn("import id exceeds ledger field limit",
			zap.String("transaction_id", tx.ID),
			zap.Error(err))
	}

	req := models.LedgerWriteRequest{
		ImportID: importID,
		Date:     tx.Bank.BookedAt,
		Amount:   tx.Bank.Amount,
		Payee:    tx.EffectivePayee(),
		Memo:     models.BuildMemo(tx.Bank.Memo, tx.Bank.Reference, memoLimit),
	}

	if len(tx.Splits) >= 2 {
		req.SubLines = make([]models.LedgerSubLine, 0, len(tx.Splits))
		for _, split := range tx.Splits {
			req.SubLines = append(req.SubLines, models.LedgerSubLine{
				CategoryID:   split.CategoryID,
				CategoryName: split.CategoryName,
				Amount:       split.Amount,
				Memo:         split.Memo,
			})
		}
		return req, nil
	}

	req.CategoryID = tx.CategoryID
	return req, nil
}
