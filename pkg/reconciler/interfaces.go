package reconciler

import (
	"context"
	"time"

	"github.com/caixahub/syncd/pkg/categorizer"
	"github.com/caixahub/syncd/pkg/database"
	"github.com/caixahub/syncd/pkg/pluggy"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package reconciler_test -source=interfaces.go

type Aggregator interface {
	GetTransactions(
		ctx context.Context,
		accountExternalID string,
		from time.Time,
		to time.Time,
		page int,
	) (*pluggy.TransactionPage, error)
}

type Categorizer interface {
	Resolve(ctx context.Context, request categorizer.Request) (categorizer.Resolution, error)
}

type Repo interface {
	// GetTransactionsByExternalIDs returns the existing rows for the
	// account keyed by external id. Missing ids are simply absent.
	GetTransactionsByExternalIDs(
		ctx context.Context,
		accountID string,
		externalIDs []string,
	) (map[string]*database.Transaction, error)
	CreateTransaction(ctx context.Context, tx *database.Transaction) error
	UpdateTransaction(ctx context.Context, tx *database.Transaction) error
	UpdateAccountSyncState(ctx context.Context, account *database.BankAccount) error
}
