package main

import (
	"context"

	"github.com/caixahub/syncd/pkg/orchestrator"
	"github.com/caixahub/syncd/pkg/pluggy"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type SyncService interface {
	HandleWebhookEvent(ctx context.Context, payload pluggy.WebhookPayload) error
	ManualSync(ctx context.Context, accountID string, companyID string) (*orchestrator.SyncOutcome, error)
	ReconnectInfo(ctx context.Context, accountID string, companyID string) (*orchestrator.ReconnectInfo, error)
}
