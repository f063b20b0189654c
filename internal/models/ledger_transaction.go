package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is one line item already present on the budgeting ledger,
// read once per sync for the duplicate-detection window.
type LedgerTransaction struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Payee  string          `json:"payee"`
	Memo   string          `json:"memo"`

	// ImportID is set only when the transaction was previously written by
	// this system.
	ImportID string `json:"importId"`
}

// LedgerSubLine is one split line of a multi-category write request.
type LedgerSubLine struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Memo         string          `json:"memo"`
}

// LedgerWriteRequest is the write shape sent to the ledger. Either CategoryID
// is set (single-category) or SubLines carries two or more entries (split),
// never both.
type LedgerWriteRequest struct {
	ImportID string          `json:"importId"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Payee    string          `json:"payee"`
	Memo     string          `json:"memo"`

	CategoryID string          `json:"categoryId,omitempty"`
	SubLines   []LedgerSubLine `json:"subLines,omitempty"`
}

// LedgerWriteResult is the ledger's answer to a batch create. The ledger
// rejects duplicates by import id; mapping rejected ids back onto in-flight
// transactions is the orchestrator's job, not the ledger's.
type LedgerWriteResult struct {
	CreatedIDs        []string `json:"createdIds"`
	RejectedImportIDs []string `json:"rejectedImportIds"`
}
