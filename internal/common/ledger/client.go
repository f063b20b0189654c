// Package ledger talks to the budgeting ledger's HTTP API. Duplicate
// rejection happens ledger-side by import id; this client only reports the
// rejected ids back, mapping them onto transactions is the orchestrator's
// contract.
package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/retry"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type Client interface {
	ListTransactions(ctx context.Context, accountID string, days int) ([]models.LedgerTransaction, error)
	CreateTransactions(ctx context.Context, requests []models.LedgerWriteRequest) (models.LedgerWriteResult, error)
}

type client struct {
	baseURL    string
	token      string
	budgetID   string
	accountID  string
	httpClient *resty.Client
	retryer    retry.Retryer
	log        *zap.Logger
}

func New(conf config.LedgerConfig, retryer retry.Retryer, log *zap.Logger) Client {
	retryWaitTime := time.Duration(conf.HTTP.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetRetryCount(conf.HTTP.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(conf.HTTP.Timeout)

	if log == nil {
		log = zap.L()
	}

	return client{
		baseURL:    conf.HTTP.BaseURL,
		token:      conf.HTTP.Token,
		budgetID:   conf.BudgetID,
		accountID:  conf.AccountID,
		httpClient: restyClient,
		retryer:    retryer,
		log:        log,
	}
}

func (c client) ListTransactions(ctx context.Context, accountID string, days int) ([]models.LedgerTransaction, error) {
	if accountID == "" {
		accountID = c.accountID
	}
	sinceDate := time.Now().AddDate(0, 0, -days).Format(wireDateFormat)
	url := fmt.Sprintf("%s/v1/budgets/%s/accounts/%s/transactions", c.baseURL, c.budgetID, accountID)

	var res listTransactionsResponse
	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetAuthToken(c.token).
		SetQueryParam("since_date", sinceDate).
		SetResult(&res).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed send request: %w", err)
	}
	if httpRes.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", common.ErrLedgerUnavailable, httpRes.Status())
	}

	transactions := make([]models.LedgerTransaction, 0, len(res.Transactions))
	for _, dto := range res.Transactions {
		tx, err := dto.convert()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed ledger transaction %q: %v", common.ErrLedgerUnavailable, dto.ID, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// CreateTransactions writes a batch and retries transient failures. Client
// errors are permanent: resubmitting a bad batch will not make it better.
func (c client) CreateTransactions(ctx context.Context, requests []models.LedgerWriteRequest) (models.LedgerWriteResult, error) {
	url := fmt.Sprintf("%s/v1/budgets/%s/transactions", c.baseURL, c.budgetID)

	body := createTransactionsRequest{}
	for _, req := range requests {
		body.Transactions = append(body.Transactions, convertWriteRequest(c.accountID, req))
	}

	var res createTransactionsResponse
	operation := func() error {
		httpRes, err := c.httpClient.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json; charset=utf-8").
			SetAuthToken(c.token).
			SetBody(body).
			SetResult(&res).
			Post(url)
		if err != nil {
			return fmt.Errorf("failed send request: %w", err)
		}
		if httpRes.IsError() {
			err = fmt.Errorf("%w: %s", common.ErrLedgerUnavailable, httpRes.Status())
			if httpRes.StatusCode() >= 400 && httpRes.StatusCode() < 500 {
				return c.retryer.StopRetryWithErr(err)
			}
			return err
		}
		return nil
	}

	if err := c.retryer.Retry(ctx, operation); err != nil {
		return models.LedgerWriteResult{}, err
	}

	c.log.Info("ledger batch created",
		zap.Int("requested", len(requests)),
		zap.Int("created", len(res.TransactionIDs)),
		zap.Int("rejected", len(res.DuplicateImportIDs)),
	)

	return models.LedgerWriteResult{
		CreatedIDs:        res.TransactionIDs,
		RejectedImportIDs: res.DuplicateImportIDs,
	}, nil
}
