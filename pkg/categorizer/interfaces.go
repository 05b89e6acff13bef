package categorizer

import (
	"context"

	"github.com/caixahub/syncd/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package categorizer_test -source=interfaces.go

type Repo interface {
	ListActiveRules(ctx context.Context, companyID string) ([]*database.CategoryRule, error)
	GetCategory(ctx context.Context, categoryID string) (*database.Category, error)
	ListSystemCategories(ctx context.Context) ([]*database.Category, error)
	FindOrCreateCategory(
		ctx context.Context,
		companyID string,
		name string,
		categoryType database.CategoryType,
	) (*database.Category, error)
	IncrementRuleApplied(ctx context.Context, ruleID string) error
	UncategorizedCategory(ctx context.Context) (*database.Category, error)
}
