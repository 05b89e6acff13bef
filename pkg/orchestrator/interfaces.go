package orchestrator

import (
	"context"
	"time"

	"github.com/caixahub/syncd/pkg/database"
	"github.com/caixahub/syncd/pkg/pluggy"
	"github.com/caixahub/syncd/pkg/reconciler"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package orchestrator_test -source=interfaces.go

type Aggregator interface {
	GetItem(ctx context.Context, itemID string) (*pluggy.ItemStatus, error)
	GetAccounts(ctx context.Context, itemID string) ([]*pluggy.AccountSnapshot, error)
	TriggerItemUpdate(ctx context.Context, itemID string) (*pluggy.UpdateAck, error)
	CreateConnectToken(ctx context.Context, itemID string) (*pluggy.ConnectToken, error)
}

type Reconciler interface {
	Window(
		account *database.BankAccount,
		now time.Time,
		loc *time.Location,
	) (time.Time, time.Time)
	Reconcile(
		ctx context.Context,
		account *database.BankAccount,
		from time.Time,
		to time.Time,
	) (*reconciler.Result, error)
}

type Repo interface {
	// GetAccountScoped returns (nil, nil) when no such account exists
	// for the company; absence is a normal outcome, not an error.
	GetAccountScoped(ctx context.Context, accountID string, companyID string) (*database.BankAccount, error)
	ListAccountsByItem(ctx context.Context, itemID string) ([]*database.BankAccount, error)
	ListSyncableAccounts(ctx context.Context) ([]*database.BankAccount, error)
	UpdateAccountStatus(ctx context.Context, account *database.BankAccount) error
	GetCompany(ctx context.Context, companyID string) (*database.Company, error)
}

type Locker interface {
	Acquire(ctx context.Context, accountID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, accountID string) error
}

type UsageUpdater interface {
	Recompute(ctx context.Context, companyID string, ref time.Time) (int64, error)
}
