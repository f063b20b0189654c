package bank

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

// ChallengeHandle carries what a UI needs to walk the user through the bank's
// challenge step. The protocol behind it is the gateway's business.
type ChallengeHandle struct {
	ID           string `json:"id"`
	Instructions string `json:"instructions"`
}

// RetryableHTTPCodes are gateway responses worth retrying.
var RetryableHTTPCodes = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
	http.StatusInternalServerError: {},
}

type beginAuthResponse struct {
	Challenge ChallengeHandle `json:"challenge"`
}

type confirmChallengeResponse struct {
	Confirmed bool   `json:"confirmed"`
	Message   string `json:"message"`
}

type transactionDTO struct {
	Reference string `json:"reference"`
	BookedAt  string `json:"bookedAt"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Payee     string `json:"payee"`
	Memo      string `json:"memo"`
}

type fetchTransactionsResponse struct {
	Transactions []transactionDTO `json:"transactions"`
}

func (d transactionDTO) convert() (models.BankTransaction, error) {
	bookedAt, err := time.Parse("2006-01-02", d.BookedAt)
	if err != nil {
		return models.BankTransaction{}, err
	}
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return models.BankTransaction{}, err
	}
	return models.BankTransaction{
		Reference: d.Reference,
		BookedAt:  bookedAt,
		Amount:    amount,
		Currency:  d.Currency,
		Payee:     d.Payee,
		Memo:      d.Memo,
	}, nil
}
