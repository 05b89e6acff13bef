package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/caixahub/syncd/pkg/common"
	"github.com/caixahub/syncd/pkg/database"
)

// Gorm is the relational repository behind every service interface.
// owner identifies this process as a lease holder.
type Gorm struct {
	db    *gorm.DB
	owner string
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{
		db:    db,
		owner: uuid.NewString(),
	}
}

func (g *Gorm) GetAccountScoped(
	ctx context.Context,
	accountID string,
	companyID string,
) (*database.BankAccount, error) {
	var account database.BankAccount

	err := g.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", accountID, companyID).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get account")
	}

	return &account, nil
}

func (g *Gorm) ListAccountsByItem(ctx context.Context, itemID string) ([]*database.BankAccount, error) {
	var accounts []*database.BankAccount

	err := g.db.WithContext(ctx).
		Where("item_id = ? AND is_active", itemID).
		Find(&accounts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list accounts by item")
	}

	return accounts, nil
}

func (g *Gorm) ListSyncableAccounts(ctx context.Context) ([]*database.BankAccount, error) {
	var accounts []*database.BankAccount

	err := g.db.WithContext(ctx).
		Where("is_active AND status IN ?", []database.AccountStatus{
			database.AccountStatusLinkedActive,
			database.AccountStatusLinkedOutdated,
		}).
		Find(&accounts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list syncable accounts")
	}

	return accounts, nil
}

func (g *Gorm) UpdateAccountStatus(ctx context.Context, account *database.BankAccount) error {
	err := g.db.WithContext(ctx).
		Model(account).
		Select("status", "sync_error_message", "updated_at").
		Updates(map[string]any{
			"status":             account.Status,
			"sync_error_message": account.SyncErrorMessage,
			"updated_at":         time.Now().UTC(),
		}).Error

	return errors.Wrap(err, "update account status")
}

func (g *Gorm) UpdateAccountSyncState(ctx context.Context, account *database.BankAccount) error {
	err := g.db.WithContext(ctx).
		Model(account).
		Updates(map[string]any{
			"last_sync_at":       account.LastSyncAt,
			"sync_error_message": account.SyncErrorMessage,
			"current_balance":    account.CurrentBalance,
			"credit_limit":       account.CreditLimit,
			"updated_at":         time.Now().UTC(),
		}).Error

	return errors.Wrap(err, "update account sync state")
}

func (g *Gorm) GetTransactionsByExternalIDs(
	ctx context.Context,
	accountID string,
	externalIDs []string,
) (map[string]*database.Transaction, error) {
	byExternalID := map[string]*database.Transaction{}

	if len(externalIDs) == 0 {
		return byExternalID, nil
	}

	var transactions []*database.Transaction

	err := g.db.WithContext(ctx).
		Where("bank_account_id = ? AND external_id IN ?", accountID, externalIDs).
		Find(&transactions).Error
	if err != nil {
		return nil, errors.Wrap(err, "load transactions by external id")
	}

	for _, tx := range transactions {
		byExternalID[tx.ExternalID] = tx
	}

	return byExternalID, nil
}

func (g *Gorm) CreateTransaction(ctx context.Context, tx *database.Transaction) error {
	err := g.db.WithContext(ctx).Create(tx).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Mark(err, common.ErrDuplicate)
	}

	return errors.Wrap(err, "create transaction")
}

func (g *Gorm) UpdateTransaction(ctx context.Context, tx *database.Transaction) error {
	return errors.Wrap(g.db.WithContext(ctx).Save(tx).Error, "update transaction")
}

func (g *Gorm) GetCompany(ctx context.Context, companyID string) (*database.Company, error) {
	var company database.Company

	err := g.db.WithContext(ctx).Where("id = ?", companyID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get company")
	}

	return &company, nil
}

func (g *Gorm) ListCompanies(ctx context.Context) ([]*database.Company, error) {
	var companies []*database.Company

	if err := g.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, errors.Wrap(err, "list companies")
	}

	return companies, nil
}

func (g *Gorm) ListActiveRules(ctx context.Context, companyID string) ([]*database.CategoryRule, error) {
	var rules []*database.CategoryRule

	err := g.db.WithContext(ctx).
		Where("company_id = ? AND is_active", companyID).
		Order("created_at").
		Find(&rules).Error
	if err != nil {
		return nil, errors.Wrap(err, "list category rules")
	}

	return rules, nil
}

func (g *Gorm) GetCategory(ctx context.Context, categoryID string) (*database.Category, error) {
	var category database.Category

	err := g.db.WithContext(ctx).Where("id = ?", categoryID).First(&category).Error
	if err != nil {
		return nil, errors.Wrap(err, "get category")
	}

	return &category, nil
}

func (g *Gorm) ListSystemCategories(ctx context.Context) ([]*database.Category, error) {
	var categories []*database.Category

	err := g.db.WithContext(ctx).
		Where("is_system").
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "list system categories")
	}

	return categories, nil
}

func (g *Gorm) FindOrCreateCategory(
	ctx context.Context,
	companyID string,
	name string,
	categoryType database.CategoryType,
) (*database.Category, error) {
	var category database.Category

	err := g.db.WithContext(ctx).
		Where("company_id = ? AND name = ?", companyID, name).
		Attrs(database.Category{
			ID:        uuid.NewString(),
			CompanyID: &companyID,
			Type:      categoryType,
		}).
		FirstOrCreate(&category, database.Category{Name: name}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert race; the winner's row is what we want.
		err = g.db.WithContext(ctx).
			Where("company_id = ? AND name = ?", companyID, name).
			First(&category).Error
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find or create category %s", name)
	}

	return &category, nil
}

func (g *Gorm) IncrementRuleApplied(ctx context.Context, ruleID string) error {
	err := g.db.WithContext(ctx).
		Model(&database.CategoryRule{}).
		Where("id = ?", ruleID).
		UpdateColumn("applied_count", gorm.Expr("applied_count + 1")).Error

	return errors.Wrap(err, "increment rule applied_count")
}

func (g *Gorm) UncategorizedCategory(ctx context.Context) (*database.Category, error) {
	var category database.Category

	err := g.db.WithContext(ctx).
		Where("is_system AND name = ?", uncategorizedName).
		Attrs(database.Category{
			ID:       uuid.NewString(),
			Type:     database.CategoryTypeExpense,
			IsSystem: true,
		}).
		FirstOrCreate(&category, database.Category{Name: uncategorizedName}).Error
	if err != nil {
		return nil, errors.Wrap(err, "load sentinel category")
	}

	return &category, nil
}

func (g *Gorm) CountTransactionsInRange(
	ctx context.Context,
	companyID string,
	from time.Time,
	to time.Time,
) (int64, error) {
	var count int64

	err := g.db.WithContext(ctx).
		Model(&database.Transaction{}).
		Joins("JOIN bank_accounts ON bank_accounts.id = transactions.bank_account_id").
		Where("bank_accounts.company_id = ?", companyID).
		Where("transactions.transaction_date >= ? AND transactions.transaction_date < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count transactions")
	}

	return count, nil
}

func (g *Gorm) GetUsage(ctx context.Context, companyID string, month string) (*database.ResourceUsage, error) {
	var row database.ResourceUsage

	err := g.db.WithContext(ctx).
		Where("company_id = ? AND month = ?", companyID, month).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get usage row")
	}

	return &row, nil
}

// UpsertTransactionsCount writes the recounted value. AIRequestsCount is
// owned by the insight component and must survive the upsert untouched.
func (g *Gorm) UpsertTransactionsCount(
	ctx context.Context,
	companyID string,
	month string,
	count int64,
) error {
	row := database.ResourceUsage{
		CompanyID:         companyID,
		Month:             month,
		TransactionsCount: count,
		UpdatedAt:         time.Now().UTC(),
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "month"}},
			DoUpdates: clause.Assignments(map[string]any{
				"transactions_count": count,
				"updated_at":         row.UpdatedAt,
			}),
		}).
		Create(&row).Error

	return errors.Wrap(err, "upsert usage counter")
}

const uncategorizedName = "Uncategorized"

// Acquire takes the per-account sync lease, stealing it only when the
// previous holder's lease expired. Returns false when held by someone
// else, which callers treat as "coalesce".
func (g *Gorm) Acquire(ctx context.Context, accountID string, ttl time.Duration) (bool, error) {
	now := time.Now().UTC()

	lease := database.SyncLease{
		AccountID: accountID,
		Owner:     g.owner,
		ExpiresAt: now.Add(ttl),
	}

	res := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Lt{Column: clause.Column{Table: "sync_leases", Name: "expires_at"}, Value: now},
			}},
			DoUpdates: clause.Assignments(map[string]any{
				"owner":      g.owner,
				"expires_at": lease.ExpiresAt,
			}),
		}).
		Create(&lease)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "acquire sync lease")
	}

	return res.RowsAffected > 0, nil
}

func (g *Gorm) Release(ctx context.Context, accountID string) error {
	err := g.db.WithContext(ctx).
		Where("account_id = ? AND owner = ?", accountID, g.owner).
		Delete(&database.SyncLease{}).Error

	return errors.Wrap(err, "release sync lease")
}
