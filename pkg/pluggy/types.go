package pluggy

import "time"

// Item statuses reported by the aggregator for one bank consent.
const (
	ItemStatusUpdated          = "UPDATED"
	ItemStatusUpdating         = "UPDATING"
	ItemStatusOutdated         = "OUTDATED"
	ItemStatusLoginError       = "LOGIN_ERROR"
	ItemStatusWaitingUserInput = "WAITING_USER_INPUT"
)

type authRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type authResponse struct {
	APIKey string `json:"apiKey"`
}

type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ItemStatus struct {
	ID              string     `json:"id"`
	ConnectorID     int64      `json:"connectorId"`
	Status          string     `json:"status"`
	ExecutionStatus string     `json:"executionStatus"`
	Error           *ItemError `json:"error"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type AccountSnapshot struct {
	ID           string  `json:"id"`
	ItemID       string  `json:"itemId"`
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	Name         string  `json:"name"`
	Number       string  `json:"number"`
	Balance      string  `json:"balance"`
	CurrencyCode string  `json:"currencyCode"`
	CreditLimit  *string `json:"creditData.creditLimit,omitempty"`
}

// RemoteTransaction keeps the amount as the raw wire string so a
// malformed value fails for that one record instead of the whole page.
type RemoteTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"` // CREDIT or DEBIT
}

type TransactionPage struct {
	Results    []*RemoteTransaction `json:"results"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	Total      int                  `json:"total"`
}

type accountsResponse struct {
	Results []*AccountSnapshot `json:"results"`
}

type UpdateAck struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ConnectToken struct {
	AccessToken string `json:"accessToken"`
}

type WebhookRegistration struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Event string `json:"event"`
}
