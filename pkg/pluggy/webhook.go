package pluggy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Webhook event names the aggregator delivers.
const (
	EventItemUpdated           = "item/updated"
	EventItemError             = "item/error"
	EventItemWaitingUserAction = "item/waiting_user_action"
	EventItemDeleted           = "item/deleted"
)

type WebhookPayload struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

type WebhookData struct {
	ItemID    string     `json:"itemId"`
	AccountID string     `json:"accountId"`
	Status    string     `json:"status"`
	Error     *ItemError `json:"error"`
}

// VerifyWebhookSignature checks the hex-encoded HMAC-SHA256 of the raw
// request body against the shared webhook secret.
func VerifyWebhookSignature(body []byte, signature string, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
