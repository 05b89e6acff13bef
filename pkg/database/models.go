package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusLinkedActive      = AccountStatus("LINKED_ACTIVE")
	AccountStatusLinkedOutdated    = AccountStatus("LINKED_OUTDATED")
	AccountStatusLinkedError       = AccountStatus("LINKED_ERROR")
	AccountStatusWaitingUserAction = AccountStatus("WAITING_USER_ACTION")
	AccountStatusDisconnected      = AccountStatus("DISCONNECTED")
)

type TransactionType string

const (
	TransactionTypeCredit      = TransactionType("credit")
	TransactionTypeDebit       = TransactionType("debit")
	TransactionTypeTransferIn  = TransactionType("transfer_in")
	TransactionTypeTransferOut = TransactionType("transfer_out")
	TransactionTypePixIn       = TransactionType("pix_in")
	TransactionTypePixOut      = TransactionType("pix_out")
	TransactionTypeInterest    = TransactionType("interest")
	TransactionTypeFee         = TransactionType("fee")
)

// IsInflow reports whether money moves into the account for this type.
func (t TransactionType) IsInflow() bool {
	switch t {
	case TransactionTypeCredit, TransactionTypeTransferIn, TransactionTypePixIn, TransactionTypeInterest:
		return true
	default:
		return false
	}
}

type CategoryType string

const (
	CategoryTypeIncome  = CategoryType("income")
	CategoryTypeExpense = CategoryType("expense")
)

type RuleMatchType string

const (
	RuleMatchPrefix   = RuleMatchType("prefix")
	RuleMatchContains = RuleMatchType("contains")
	RuleMatchFuzzy    = RuleMatchType("fuzzy")
)

type Company struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Timezone  string
	CreatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}

// Location resolves the company timezone, falling back to UTC on a bad
// or empty value so a misconfigured row can never break a sync.
func (c Company) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

type BankAccount struct {
	ID          string `gorm:"primaryKey"`
	CompanyID   string `gorm:"index"`
	Name        string
	AccountType string

	// ExternalID and ItemID are set together once the aggregator connect
	// flow completes; until then the account is pending.
	ExternalID *string `gorm:"index"`
	ItemID     *string `gorm:"index"`

	CurrentBalance   decimal.Decimal
	CreditLimit      *decimal.Decimal
	Status           AccountStatus `gorm:"index"`
	LastSyncAt       *time.Time
	SyncErrorMessage string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}

func (a BankAccount) IsLinked() bool {
	return a.ExternalID != nil && a.ItemID != nil
}

// CanSync reports whether automatic reconciliation is allowed for the
// current status. Error states require an explicit user reconnection.
func (a BankAccount) CanSync() bool {
	switch a.Status {
	case AccountStatusLinkedActive, AccountStatusLinkedOutdated:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID            string `gorm:"primaryKey"`
	BankAccountID string `gorm:"uniqueIndex:idx_transactions_account_external"`

	// ExternalID is the aggregator-assigned id, unique per account. The
	// composite unique index is the dedup guarantee across overlapping
	// sync windows.
	ExternalID string `gorm:"uniqueIndex:idx_transactions_account_external"`

	Amount          decimal.Decimal
	TransactionDate time.Time `gorm:"index"`
	Description     string
	RawCategory     string
	CategoryID      *string
	Type            TransactionType

	IsAICategorized    bool
	CategoryConfidence *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}

type Category struct {
	ID string `gorm:"primaryKey"`

	// Unique per company so concurrent resolvers cannot create the same
	// provider category twice. NULL company = shared system category.
	CompanyID *string `gorm:"uniqueIndex:idx_categories_company_name"`
	Name      string  `gorm:"uniqueIndex:idx_categories_company_name"`
	Type      CategoryType
	Keywords  []string `gorm:"serializer:json"`
	IsSystem  bool
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

type CategoryRule struct {
	ID           string `gorm:"primaryKey"`
	CompanyID    string `gorm:"index"`
	CategoryID   string
	Pattern      string
	MatchType    RuleMatchType
	AppliedCount int64
	IsActive     bool
	CreatedAt    time.Time
}

func (CategoryRule) TableName() string {
	return "category_rules"
}

type ResourceUsage struct {
	CompanyID string `gorm:"primaryKey"`
	Month     string `gorm:"primaryKey;size:7"` // YYYY-MM in the company timezone

	TransactionsCount int64
	AIRequestsCount   int64
	UpdatedAt         time.Time
}

func (ResourceUsage) TableName() string {
	return "resource_usage"
}

// SyncLease serializes reconciliation per account. The expiry makes it a
// lease rather than a lock: a crashed holder cannot wedge the account.
type SyncLease struct {
	AccountID string `gorm:"primaryKey"`
	Owner     string
	ExpiresAt time.Time
}

func (SyncLease) TableName() string {
	return "sync_leases"
}
