package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one line item fetched from the bank feed. It is never
// mutated after fetch. Reference is the bank-assigned identifier and is
// treated as an opaque string: it may contain any character, including path
// separators, and must never be parsed or split.
type BankTransaction struct {
	Reference string          `json:"reference"`
	BookedAt  time.Time       `json:"bookedAt"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Payee     string          `json:"payee"`
	Memo      string          `json:"memo"`
}
