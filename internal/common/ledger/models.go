package ledger

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

// The budget API speaks integer milliunits; conversions stay inside this
// package so the rest of the system only ever sees decimals.
var milliunitFactor = decimal.NewFromInt(1000)

func toMilliunits(amount decimal.Decimal) int64 {
	return amount.Mul(milliunitFactor).Round(0).IntPart()
}

func fromMilliunits(milliunits int64) decimal.Decimal {
	return decimal.NewFromInt(milliunits).Div(milliunitFactor)
}

const wireDateFormat = "2006-01-02"

// RetryableHTTPCodes are ledger responses worth retrying.
var RetryableHTTPCodes = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
	http.StatusInternalServerError: {},
}

type transactionDTO struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Amount   int64  `json:"amount"`
	Payee    string `json:"payee_name"`
	Memo     string `json:"memo"`
	ImportID string `json:"import_id"`
}

type listTransactionsResponse struct {
	Transactions []transactionDTO `json:"transactions"`
}

func (d transactionDTO) convert() (models.LedgerTransaction, error) {
	date, err := time.Parse(wireDateFormat, d.Date)
	if err != nil {
		return models.LedgerTransaction{}, err
	}
	return models.LedgerTransaction{
		ID:       d.ID,
		Date:     date,
		Amount:   fromMilliunits(d.Amount),
		Payee:    d.Payee,
		Memo:     d.Memo,
		ImportID: d.ImportID,
	}, nil
}

type subTransactionDTO struct {
	Amount     int64  `json:"amount"`
	CategoryID string `json:"category_id"`
	Memo       string `json:"memo,omitempty"`
}

type createTransactionDTO struct {
	AccountID       string              `json:"account_id"`
	Date            string              `json:"date"`
	Amount          int64               `json:"amount"`
	PayeeName       string              `json:"payee_name"`
	Memo            string              `json:"memo"`
	ImportID        string              `json:"import_id"`
	CategoryID      string              `json:"category_id,omitempty"`
	SubTransactions []subTransactionDTO `json:"subtransactions,omitempty"`
}

type createTransactionsRequest struct {
	Transactions []createTransactionDTO `json:"transactions"`
}

type createTransactionsResponse struct {
	TransactionIDs     []string `json:"transaction_ids"`
	DuplicateImportIDs []string `json:"duplicate_import_ids"`
}

func convertWriteRequest(accountID string, req models.LedgerWriteRequest) createTransactionDTO {
	dto := createTransactionDTO{
		AccountID: accountID,
		Date:      req.Date.Format(wireDateFormat),
		Amount:    toMilliunits(req.Amount),
		PayeeName: req.Payee,
		Memo:      req.Memo,
		ImportID:  req.ImportID,
	}

	if len(req.SubLines) > 0 {
		for _, sub := range req.SubLines {
			dto.SubTransactions = append(dto.SubTransactions, subTransactionDTO{
				Amount:     toMilliunits(sub.Amount),
				CategoryID: sub.CategoryID,
				Memo:       sub.Memo,
			})
		}
		return dto
	}

	dto.CategoryID = req.CategoryID
	return dto
}
