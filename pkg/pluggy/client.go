package pluggy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/caixahub/syncd/pkg/common"
)

const (
	apiKeyTTL          = 2 * time.Hour
	apiKeyExpirySlack  = time.Minute
	transactionsLimit  = "200"
	defaultCallTimeout = 30 * time.Second
)

// Client wraps the Open Finance aggregator API. The api key cache is
// owned by the instance, guarded by mu, and refreshed when it is within
// apiKeyExpirySlack of expiring. refreshMu serializes refreshes so an
// expired key triggers one auth round-trip, not one per caller; cache
// reads only ever take mu.
type Client struct {
	cl           *req.Client
	baseURL      string
	clientID     string
	clientSecret string
	retryCfg     common.RetryConfig

	refreshMu    sync.Mutex
	mu           sync.Mutex
	apiKey       string
	apiKeyExpiry time.Time
}

func NewClient(
	clientID string,
	clientSecret string,
	baseURL string,
	cl *req.Client,
) *Client {
	cl.SetTimeout(defaultCallTimeout)

	return &Client{
		cl:           cl,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		retryCfg:     common.DefaultRetryConfig(),
	}
}

func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if apiKey, ok := c.cachedAPIKey(); ok {
		return apiKey, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if apiKey, ok := c.cachedAPIKey(); ok {
		return apiKey, nil
	}

	var authResp authResponse

	err := common.Retry(ctx, c.retryCfg, func() error {
		resp, reqErr := c.cl.R().
			SetContext(ctx).
			SetBodyJsonMarshal(authRequest{
				ClientID:     c.clientID,
				ClientSecret: c.clientSecret,
			}).
			SetSuccessResult(&authResp).
			Post(c.baseURL + "/auth")

		return classify(resp, reqErr)
	})
	if err != nil {
		return "", errors.Wrap(err, "aggregator authentication failed")
	}

	c.mu.Lock()
	c.apiKey = authResp.APIKey
	c.apiKeyExpiry = time.Now().Add(apiKeyTTL)
	c.mu.Unlock()

	return authResp.APIKey, nil
}

func (c *Client) cachedAPIKey() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.apiKey != "" && time.Until(c.apiKeyExpiry) > apiKeyExpirySlack {
		return c.apiKey, true
	}

	return "", false
}

func (c *Client) GetItem(ctx context.Context, itemID string) (*ItemStatus, error) {
	var item ItemStatus

	if err := c.get(ctx, "/items/"+itemID, nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) GetAccounts(ctx context.Context, itemID string) ([]*AccountSnapshot, error) {
	var accountsResp accountsResponse

	params := map[string]string{"itemId": itemID}
	if err := c.get(ctx, "/accounts", params, &accountsResp); err != nil {
		return nil, err
	}

	return accountsResp.Results, nil
}

// GetTransactions returns one page of the feed. Callers loop while
// Page < TotalPages; dates are passed as calendar dates, inclusive.
func (c *Client) GetTransactions(
	ctx context.Context,
	accountExternalID string,
	from time.Time,
	to time.Time,
	page int,
) (*TransactionPage, error) {
	var txPage TransactionPage

	params := map[string]string{
		"accountId": accountExternalID,
		"from":      from.Format(time.DateOnly),
		"to":        to.Format(time.DateOnly),
		"page":      fmt.Sprint(page),
		"pageSize":  transactionsLimit,
	}

	if err := c.get(ctx, "/transactions", params, &txPage); err != nil {
		return nil, err
	}

	return &txPage, nil
}

// TriggerItemUpdate asks the aggregator to re-fetch the item from the
// source bank. The ack does not mean the refresh finished; completion
// arrives via webhook or is observed by polling GetItem.
func (c *Client) TriggerItemUpdate(ctx context.Context, itemID string) (*UpdateAck, error) {
	apiKey, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var ack UpdateAck

	err = common.Retry(ctx, c.retryCfg, func() error {
		resp, reqErr := c.cl.R().
			SetContext(ctx).
			SetHeader("X-API-KEY", apiKey).
			SetBodyJsonMarshal(map[string]any{}).
			SetSuccessResult(&ack).
			Patch(c.baseURL + "/items/" + itemID)

		return classify(resp, reqErr)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "trigger update for item %s", itemID)
	}

	return &ack, nil
}

// CreateConnectToken issues a token the frontend uses to run the
// aggregator connect widget against an existing item (reconnection).
func (c *Client) CreateConnectToken(ctx context.Context, itemID string) (*ConnectToken, error) {
	apiKey, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var token ConnectToken

	err = common.Retry(ctx, c.retryCfg, func() error {
		resp, reqErr := c.cl.R().
			SetContext(ctx).
			SetHeader("X-API-KEY", apiKey).
			SetBodyJsonMarshal(map[string]string{"itemId": itemID}).
			SetSuccessResult(&token).
			Post(c.baseURL + "/connect_token")

		return classify(resp, reqErr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create connect token")
	}

	return &token, nil
}

func (c *Client) RegisterWebhook(ctx context.Context, url string, event string) (*WebhookRegistration, error) {
	apiKey, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var registration WebhookRegistration

	err = common.Retry(ctx, c.retryCfg, func() error {
		resp, reqErr := c.cl.R().
			SetContext(ctx).
			SetHeader("X-API-KEY", apiKey).
			SetBodyJsonMarshal(map[string]string{
				"url":   url,
				"event": event,
			}).
			SetSuccessResult(&registration).
			Post(c.baseURL + "/webhooks")

		return classify(resp, reqErr)
	})
	if err != nil {
		return nil, errors.Wrap(err, "register webhook")
	}

	return &registration, nil
}

func (c *Client) get(
	ctx context.Context,
	path string,
	params map[string]string,
	out any,
) error {
	apiKey, err := c.Authenticate(ctx)
	if err != nil {
		return err
	}

	err = common.Retry(ctx, c.retryCfg, func() error {
		request := c.cl.R().
			SetContext(ctx).
			SetHeader("X-API-KEY", apiKey).
			SetSuccessResult(out)

		for k, v := range params {
			request = request.SetQueryParam(k, v)
		}

		resp, reqErr := request.Get(c.baseURL + path)

		return classify(resp, reqErr)
	})
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}

	return nil
}

// classify maps a response onto the error taxonomy so upper layers can
// pick retry vs status transition without looking at HTTP codes.
func classify(resp *req.Response, err error) error {
	if err != nil {
		return errors.Mark(err, common.ErrTransient)
	}

	if resp.IsSuccessState() {
		return nil
	}

	respErr := errors.Newf("aggregator response %d: %s", resp.StatusCode, resp.String())

	switch {
	case resp.StatusCode >= 500:
		return errors.Mark(respErr, common.ErrTransient)
	case resp.StatusCode == 404:
		return errors.Mark(errors.Mark(respErr, common.ErrNotFound), common.ErrPermanent)
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return errors.Mark(errors.Mark(respErr, common.ErrReconnectionRequired), common.ErrPermanent)
	default:
		return errors.Mark(respErr, common.ErrPermanent)
	}
}
