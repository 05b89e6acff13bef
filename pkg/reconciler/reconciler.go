package reconciler

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/caixahub/syncd/pkg/categorizer"
	"github.com/caixahub/syncd/pkg/common"
	"github.com/caixahub/syncd/pkg/database"
	"github.com/caixahub/syncd/pkg/pluggy"
)

const (
	// safetyOverlap absorbs the source bank's settlement delay: a
	// transaction can show up in the feed dated after the wall-clock
	// moment it was posted (timezones, bank-side batching). Syncing
	// strictly "since last sync" silently drops rows near day
	// boundaries. Floor is 2 calendar days; we keep one extra.
	safetyOverlap = 3 * 24 * time.Hour

	// futureHorizonDays extends the window past the local calendar date
	// for the same reason, in the other direction.
	futureHorizonDays = 1

	maxPages = 1000
)

type Reconciler struct {
	repo        Repo
	aggregator  Aggregator
	categorizer Categorizer
}

func NewReconciler(
	repo Repo,
	aggregator Aggregator,
	categorizer Categorizer,
) *Reconciler {
	return &Reconciler{
		repo:        repo,
		aggregator:  aggregator,
		categorizer: categorizer,
	}
}

// Window computes the [from, to] fetch range for an account, in the
// company's timezone. from = max(last_sync - overlap, created_at);
// to = tomorrow's calendar date.
func (r *Reconciler) Window(
	account *database.BankAccount,
	now time.Time,
	loc *time.Location,
) (time.Time, time.Time) {
	from := account.CreatedAt

	if account.LastSyncAt != nil {
		if candidate := account.LastSyncAt.Add(-safetyOverlap); candidate.After(from) {
			from = candidate
		}
	}

	local := now.In(loc)
	to := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, futureHorizonDays)

	return from.In(loc), to
}

// Reconcile pulls the remote feed for the window and converges local
// rows onto it. A single bad record lands in Result.Errors and never
// aborts the batch; only a total fetch failure returns an error.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	account *database.BankAccount,
	from time.Time,
	to time.Time,
) (*Result, error) {
	if !account.IsLinked() {
		return nil, errors.Mark(
			errors.Newf("account %s is not linked to the aggregator", account.ID),
			common.ErrPermanent)
	}

	remote, err := r.fetchWindow(ctx, *account.ExternalID, from, to)
	if err != nil {
		account.SyncErrorMessage = err.Error()
		if stateErr := r.repo.UpdateAccountSyncState(ctx, account); stateErr != nil {
			zerolog.Ctx(ctx).Error().Err(stateErr).
				Str("account_id", account.ID).
				Msg("failed to record sync failure")
		}

		return nil, errors.Wrapf(err, "fetch window for account %s", account.ID)
	}

	externalIDs := lo.Map(remote, func(tx *pluggy.RemoteTransaction, _ int) string {
		return tx.ID
	})

	existing, err := r.repo.GetTransactionsByExternalIDs(ctx, account.ID, externalIDs)
	if err != nil {
		return nil, errors.Wrap(err, "load existing transactions")
	}

	result := &Result{}

	for _, remoteTx := range remote {
		if applyErr := r.apply(ctx, account, remoteTx, existing, result); applyErr != nil {
			result.Errors = append(result.Errors,
				errors.Wrapf(applyErr, "transaction %s", remoteTx.ID))

			zerolog.Ctx(ctx).Warn().Err(applyErr).
				Str("account_id", account.ID).
				Str("external_id", remoteTx.ID).
				Msg("skipping remote transaction")
		}
	}

	now := time.Now().UTC()
	account.LastSyncAt = &now
	account.SyncErrorMessage = ""

	if err = r.repo.UpdateAccountSyncState(ctx, account); err != nil {
		return result, errors.Wrap(err, "update account sync state")
	}

	zerolog.Ctx(ctx).Info().
		Str("account_id", account.ID).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("errors", len(result.Errors)).
		Msg("reconciliation finished")

	return result, nil
}

func (r *Reconciler) fetchWindow(
	ctx context.Context,
	accountExternalID string,
	from time.Time,
	to time.Time,
) ([]*pluggy.RemoteTransaction, error) {
	var remote []*pluggy.RemoteTransaction

	for page := 1; page <= maxPages; page++ {
		txPage, err := r.aggregator.GetTransactions(ctx, accountExternalID, from, to, page)
		if err != nil {
			return nil, err
		}

		remote = append(remote, txPage.Results...)

		if len(txPage.Results) == 0 || page >= txPage.TotalPages {
			break
		}
	}

	return remote, nil
}

func (r *Reconciler) apply(
	ctx context.Context,
	account *database.BankAccount,
	remoteTx *pluggy.RemoteTransaction,
	existing map[string]*database.Transaction,
	result *Result,
) error {
	amount, err := decimal.NewFromString(remoteTx.Amount)
	if err != nil {
		return errors.Wrapf(err, "malformed amount in %s", spew.Sdump(remoteTx))
	}

	if current, ok := existing[remoteTx.ID]; ok {
		// Aggregator corrected a previously-seen value.
		if current.Amount.Equal(amount) && current.Description == remoteTx.Description {
			result.Skipped++
			return nil
		}

		current.Amount = amount
		current.Description = remoteTx.Description

		if err = r.repo.UpdateTransaction(ctx, current); err != nil {
			return errors.Wrap(err, "update transaction")
		}

		result.Updated++

		return nil
	}

	txType := mapTransactionType(remoteTx, amount)

	tx := &database.Transaction{
		ID:              uuid.NewString(),
		BankAccountID:   account.ID,
		ExternalID:      remoteTx.ID,
		Amount:          amount,
		TransactionDate: remoteTx.Date,
		Description:     remoteTx.Description,
		RawCategory:     remoteTx.Category,
		Type:            txType,
	}

	resolution, err := r.categorizer.Resolve(ctx, categorizer.Request{
		CompanyID:   account.CompanyID,
		Description: remoteTx.Description,
		RawCategory: remoteTx.Category,
		Type:        txType,
	})
	if err != nil {
		// Categorization failure must not lose the transaction.
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("external_id", remoteTx.ID).
			Msg("categorization failed, persisting uncategorized")
	} else if resolution.Category != nil {
		tx.CategoryID = &resolution.Category.ID
		confidence := resolution.Confidence
		tx.CategoryConfidence = &confidence
	}

	if err = r.repo.CreateTransaction(ctx, tx); err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			// Lost a race against a concurrent run; the row exists.
			result.Skipped++
			return nil
		}

		return errors.Wrap(err, "create transaction")
	}

	result.Created++

	return nil
}

func mapTransactionType(remoteTx *pluggy.RemoteTransaction, amount decimal.Decimal) database.TransactionType {
	inflow := remoteTx.Type == "CREDIT" || (remoteTx.Type == "" && amount.IsPositive())

	upper := strings.ToUpper(remoteTx.Description)
	category := strings.ToUpper(remoteTx.Category)

	switch {
	case strings.Contains(upper, "PIX"):
		if inflow {
			return database.TransactionTypePixIn
		}
		return database.TransactionTypePixOut
	case strings.Contains(upper, "TRANSF") || strings.Contains(category, "TRANSFER"):
		if inflow {
			return database.TransactionTypeTransferIn
		}
		return database.TransactionTypeTransferOut
	case strings.Contains(category, "INTEREST") || strings.Contains(upper, "RENDIMENTO"):
		return database.TransactionTypeInterest
	case strings.Contains(category, "FEE") || strings.Contains(upper, "TARIFA"):
		return database.TransactionTypeFee
	case inflow:
		return database.TransactionTypeCredit
	default:
		return database.TransactionTypeDebit
	}
}
