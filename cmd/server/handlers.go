package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/caixahub/syncd/pkg/common"
	"github.com/caixahub/syncd/pkg/pluggy"
)

const companyHeader = "X-Company-Id"

type Handler struct {
	svc           SyncService
	webhookSecret string
	pool          *workerpool.WorkerPool
	logger        zerolog.Logger
}

func NewHandler(
	svc SyncService,
	webhookSecret string,
	pool *workerpool.WorkerPool,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		svc:           svc,
		webhookSecret: webhookSecret,
		pool:          pool,
		logger:        logger,
	}
}

// HandleWebhook validates and acknowledges fast; the aggregator
// round-trip happens in a background task, never inside this request.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Webhook-Signature")
	if !pluggy.VerifyWebhookSignature(body, signature, h.webhookSecret) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var payload pluggy.WebhookPayload
	if err = json.Unmarshal(body, &payload); err != nil || payload.Event == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.pool.Submit(func() {
		ctx := h.logger.With().
			Str("event", payload.Event).
			Str("item_id", payload.Data.ItemID).
			Logger().WithContext(context.Background())

		if handleErr := h.svc.HandleWebhookEvent(ctx, payload); handleErr != nil {
			zerolog.Ctx(ctx).Error().Err(handleErr).Msg("webhook processing failed")
		}
	})

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) HandleManualSync(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	companyID := r.Header.Get(companyHeader)
	if companyID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Status: "error",
			Error:  "missing company scope",
		})
		return
	}

	outcome, err := h.svc.ManualSync(r.Context(), accountID, companyID)

	switch {
	case errors.Is(err, common.ErrReconnectionRequired):
		info, reconnectErr := h.svc.ReconnectInfo(r.Context(), accountID, companyID)
		if reconnectErr != nil {
			h.logger.Error().Err(reconnectErr).
				Str("account_id", accountID).
				Msg("failed to issue reconnect token")

			writeJSON(w, http.StatusConflict, errorResponse{
				Status: "error",
				Error:  "bank reconnection required",
			})
			return
		}

		writeJSON(w, http.StatusConflict, reconnectResponse{
			Status:       "error",
			ReconnectURL: connectURL(info.ConnectToken),
		})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Status: "error",
			Error:  "account not found",
		})
	case err != nil:
		h.logger.Error().Err(err).
			Str("account_id", accountID).
			Msg("manual sync failed")

		writeJSON(w, http.StatusBadGateway, errorResponse{
			Status: "error",
			Error:  "sync failed",
		})
	case outcome.Coalesced:
		writeJSON(w, http.StatusAccepted, syncResponse{
			Status: "in_progress",
		})
	default:
		writeJSON(w, http.StatusOK, syncResponse{
			Status:             "success",
			TransactionsSynced: outcome.TransactionsSynced,
		})
	}
}

func (h *Handler) HandleReconnect(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	companyID := r.Header.Get(companyHeader)
	if companyID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Status: "error",
			Error:  "missing company scope",
		})
		return
	}

	info, err := h.svc.ReconnectInfo(r.Context(), accountID, companyID)

	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Status: "error",
			Error:  "account not found",
		})
	case err != nil:
		h.logger.Error().Err(err).
			Str("account_id", accountID).
			Msg("reconnect token issuance failed")

		writeJSON(w, http.StatusBadGateway, errorResponse{
			Status: "error",
			Error:  "could not create reconnect token",
		})
	default:
		writeJSON(w, http.StatusOK, reconnectResponse{
			Status:       "success",
			ReconnectURL: connectURL(info.ConnectToken),
		})
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func connectURL(token string) string {
	return "https://connect.pluggy.ai/?connect_token=" + token
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
