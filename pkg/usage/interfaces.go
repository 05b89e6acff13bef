package usage

import (
	"context"
	"time"

	"github.com/caixahub/syncd/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package usage_test -source=interfaces.go

type Repo interface {
	GetCompany(ctx context.Context, companyID string) (*database.Company, error)
	ListCompanies(ctx context.Context) ([]*database.Company, error)
	CountTransactionsInRange(
		ctx context.Context,
		companyID string,
		from time.Time,
		to time.Time,
	) (int64, error)
	GetUsage(ctx context.Context, companyID string, month string) (*database.ResourceUsage, error)
	UpsertTransactionsCount(ctx context.Context, companyID string, month string, count int64) error
}
