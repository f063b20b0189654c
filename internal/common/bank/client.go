// Package bank talks to the bank gateway. The OAuth/TAN protocol itself lives
// behind the gateway; this client only drives the three calls the sync
// orchestrator needs and treats them as opaque remote operations.
package bank

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type Client interface {
	BeginAuth(ctx context.Context) (ChallengeHandle, error)
	ConfirmChallenge(ctx context.Context, challengeID string) error
	FetchTransactions(ctx context.Context, accountRef string, days int) ([]models.BankTransaction, error)
}

type client struct {
	baseURL    string
	token      string
	httpClient *resty.Client
	log        *zap.Logger
}

func New(configuration config.HTTPConfiguration, log *zap.Logger) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	if log == nil {
		log = zap.L()
	}

	return client{
		baseURL:    configuration.BaseURL,
		token:      configuration.Token,
		httpClient: restyClient,
		log:        log,
	}
}

func (c client) BeginAuth(ctx context.Context) (ChallengeHandle, error) {
	url := fmt.Sprintf("%s/api/v1/auth", c.baseURL)

	var res beginAuthResponse
	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetAuthToken(c.token).
		SetResult(&res).
		Post(url)
	if err != nil {
		return ChallengeHandle{}, fmt.Errorf("failed send request: %w", err)
	}
	if httpRes.IsError() {
		c.log.Warn("bank auth request rejected",
			zap.String("url", url),
			zap.String("status", httpRes.Status()),
		)
		return ChallengeHandle{}, fmt.Errorf("%w: %s", common.ErrBankAuthFailed, httpRes.Status())
	}

	return res.Challenge, nil
}

func (c client) ConfirmChallenge(ctx context.Context, challengeID string) error {
	url := fmt.Sprintf("%s/api/v1/auth/%s/confirm", c.baseURL, challengeID)

	var res confirmChallengeResponse
	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetAuthToken(c.token).
		SetResult(&res).
		Post(url)
	if err != nil {
		return fmt.Errorf("failed send request: %w", err)
	}
	if httpRes.IsError() || !res.Confirmed {
		reason := res.Message
		if reason == "" {
			reason = httpRes.Status()
		}
		return fmt.Errorf("%w: %s", common.ErrBankChallengeFailed, reason)
	}

	return nil
}

func (c client) FetchTransactions(ctx context.Context, accountRef string, days int) ([]models.BankTransaction, error) {
	url := fmt.Sprintf("%s/api/v1/accounts/%s/transactions", c.baseURL, accountRef)

	var res fetchTransactionsResponse
	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetAuthToken(c.token).
		SetQueryParam("days", fmt.Sprint(days)).
		SetResult(&res).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed send request: %w", err)
	}
	if httpRes.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", common.ErrBankFetchFailed, httpRes.Status())
	}

	transactions := make([]models.BankTransaction, 0, len(res.Transactions))
	for _, dto := range res.Transactions {
		tx, err := dto.convert()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed transaction %q: %v", common.ErrBankFetchFailed, dto.Reference, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
