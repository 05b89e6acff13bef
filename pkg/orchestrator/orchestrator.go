package orchestrator

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/caixahub/syncd/pkg/common"
	"github.com/caixahub/syncd/pkg/database"
	"github.com/caixahub/syncd/pkg/pluggy"
	"github.com/caixahub/syncd/pkg/reconciler"
)

type Orchestrator struct {
	repo        Repo
	aggregator  Aggregator
	reconciler  Reconciler
	locker      Locker
	usage       UsageUpdater
	cfg         Config
	retryConfig common.RetryConfig
}

func NewOrchestrator(
	repo Repo,
	aggregator Aggregator,
	reconcilerSvc Reconciler,
	locker Locker,
	usage UsageUpdater,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		repo:        repo,
		aggregator:  aggregator,
		reconciler:  reconcilerSvc,
		locker:      locker,
		usage:       usage,
		cfg:         cfg.withDefaults(),
		retryConfig: common.DefaultRetryConfig(),
	}
}

// HandleWebhookEvent applies one aggregator event to the accounts of the
// affected item. Unknown items are logged and ignored; the webhook
// endpoint still answers 200 for them.
func (o *Orchestrator) HandleWebhookEvent(ctx context.Context, payload pluggy.WebhookPayload) error {
	if payload.Data.ItemID == "" {
		zerolog.Ctx(ctx).Warn().
			Str("event", payload.Event).
			Msg("webhook event without item id, ignoring")

		return nil
	}

	accounts, err := o.repo.ListAccountsByItem(ctx, payload.Data.ItemID)
	if err != nil {
		return errors.Wrap(err, "list accounts for item")
	}

	if len(accounts) == 0 {
		zerolog.Ctx(ctx).Info().
			Str("item_id", payload.Data.ItemID).
			Str("event", payload.Event).
			Msg("webhook for unknown item, ignoring")

		return nil
	}

	switch payload.Event {
	case pluggy.EventItemUpdated:
		return o.onItemUpdated(ctx, payload, accounts)
	case pluggy.EventItemError:
		return o.markAccounts(ctx, accounts, database.AccountStatusLinkedError, webhookErrorDetail(payload))
	case pluggy.EventItemWaitingUserAction:
		return o.markAccounts(ctx, accounts, database.AccountStatusWaitingUserAction, webhookErrorDetail(payload))
	case pluggy.EventItemDeleted:
		return o.markAccounts(ctx, accounts, database.AccountStatusDisconnected, "")
	default:
		zerolog.Ctx(ctx).Info().
			Str("event", payload.Event).
			Msg("unhandled webhook event")

		return nil
	}
}

func (o *Orchestrator) onItemUpdated(
	ctx context.Context,
	payload pluggy.WebhookPayload,
	accounts []*database.BankAccount,
) error {
	// A webhook with an unhealthy status is an error event in disguise.
	switch payload.Data.Status {
	case pluggy.ItemStatusLoginError:
		return o.markAccounts(ctx, accounts, database.AccountStatusLinkedError, webhookErrorDetail(payload))
	case pluggy.ItemStatusWaitingUserInput:
		return o.markAccounts(ctx, accounts, database.AccountStatusWaitingUserAction, webhookErrorDetail(payload))
	}

	var lastErr error

	for _, account := range accounts {
		if account.Status == database.AccountStatusDisconnected {
			continue // terminal, only a fresh connect flow revives it
		}

		account.Status = database.AccountStatusLinkedActive
		account.SyncErrorMessage = ""

		if err := o.repo.UpdateAccountStatus(ctx, account); err != nil {
			lastErr = errors.Wrapf(err, "activate account %s", account.ID)
			continue
		}

		if _, err := o.SyncAccount(ctx, account); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("account_id", account.ID).
				Msg("webhook-triggered sync failed")
		}
	}

	return lastErr
}

func (o *Orchestrator) markAccounts(
	ctx context.Context,
	accounts []*database.BankAccount,
	status database.AccountStatus,
	detail string,
) error {
	var lastErr error

	for _, account := range accounts {
		if account.Status == database.AccountStatusDisconnected {
			continue
		}

		account.Status = status
		account.SyncErrorMessage = detail

		if err := o.repo.UpdateAccountStatus(ctx, account); err != nil {
			lastErr = errors.Wrapf(err, "mark account %s", account.ID)
		}
	}

	return lastErr
}

// ManualSync is the user-initiated path: trigger a background refresh at
// the aggregator, wait for it briefly, then reconcile whatever is
// already available. Best effort now beats waiting indefinitely.
func (o *Orchestrator) ManualSync(
	ctx context.Context,
	accountID string,
	companyID string,
) (*SyncOutcome, error) {
	account, err := o.repo.GetAccountScoped(ctx, accountID, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "load account")
	}

	if account == nil {
		return nil, errors.Mark(errors.Newf("account %s", accountID), common.ErrNotFound)
	}

	if !account.CanSync() {
		return nil, errors.Mark(
			errors.Newf("account %s is in state %s", account.ID, account.Status),
			common.ErrReconnectionRequired)
	}

	if !account.IsLinked() {
		return nil, errors.Mark(
			errors.Newf("account %s has no aggregator link", account.ID),
			common.ErrPermanent)
	}

	if _, err = o.aggregator.TriggerItemUpdate(ctx, *account.ItemID); err != nil {
		// The refresh is opportunistic; stale-but-available data is
		// still worth reconciling.
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("item_id", *account.ItemID).
			Msg("item update trigger failed, syncing available data")
	} else {
		o.awaitItemRefresh(ctx, *account.ItemID)
	}

	return o.SyncAccount(ctx, account)
}

// ReconnectInfo returns a fresh connect token for the account's item so
// the user can re-authenticate with their bank.
func (o *Orchestrator) ReconnectInfo(
	ctx context.Context,
	accountID string,
	companyID string,
) (*ReconnectInfo, error) {
	account, err := o.repo.GetAccountScoped(ctx, accountID, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "load account")
	}

	if account == nil {
		return nil, errors.Mark(errors.Newf("account %s", accountID), common.ErrNotFound)
	}

	if account.ItemID == nil {
		return nil, errors.Mark(
			errors.Newf("account %s has no aggregator link", account.ID),
			common.ErrPermanent)
	}

	token, err := o.aggregator.CreateConnectToken(ctx, *account.ItemID)
	if err != nil {
		return nil, errors.Wrap(err, "create connect token")
	}

	return &ReconnectInfo{ConnectToken: token.AccessToken}, nil
}

// SyncAccount runs one locked reconciliation for the account. A held
// lease coalesces the request into the in-flight run.
func (o *Orchestrator) SyncAccount(
	ctx context.Context,
	account *database.BankAccount,
) (*SyncOutcome, error) {
	// Status alone does not prove linkage: the connect flow fills the
	// aggregator ids after the row is created.
	if !account.IsLinked() {
		return nil, errors.Mark(
			errors.Newf("account %s has no aggregator link", account.ID),
			common.ErrPermanent)
	}

	acquired, err := o.locker.Acquire(ctx, account.ID, o.cfg.LeaseTTL)
	if err != nil {
		return nil, errors.Wrap(err, "acquire sync lease")
	}

	if !acquired {
		zerolog.Ctx(ctx).Info().
			Str("account_id", account.ID).
			Msg("sync already in flight, coalescing")

		return &SyncOutcome{Coalesced: true}, nil
	}

	defer func() {
		if releaseErr := o.locker.Release(context.WithoutCancel(ctx), account.ID); releaseErr != nil {
			zerolog.Ctx(ctx).Error().Err(releaseErr).
				Str("account_id", account.ID).
				Msg("failed to release sync lease")
		}
	}()

	loc := time.UTC

	company, err := o.repo.GetCompany(ctx, account.CompanyID)
	if err != nil {
		return nil, errors.Wrap(err, "load company")
	}
	if company != nil {
		loc = company.Location()
	}

	o.refreshBalance(ctx, account)

	from, to := o.reconciler.Window(account, time.Now(), loc)

	result, err := o.runReconcile(ctx, account, from, to)
	if err != nil {
		if errors.Is(err, common.ErrReconnectionRequired) {
			account.Status = database.AccountStatusWaitingUserAction
			account.SyncErrorMessage = err.Error()

			if stateErr := o.repo.UpdateAccountStatus(ctx, account); stateErr != nil {
				zerolog.Ctx(ctx).Error().Err(stateErr).
					Str("account_id", account.ID).
					Msg("failed to persist reconnection-required state")
			}
		}

		return nil, err
	}

	if account.Status == database.AccountStatusLinkedOutdated {
		account.Status = database.AccountStatusLinkedActive

		if err = o.repo.UpdateAccountStatus(ctx, account); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("account_id", account.ID).
				Msg("failed to clear outdated flag")
		}
	}

	o.recountMonths(ctx, account.CompanyID, from, to, loc)

	return &SyncOutcome{
		TransactionsSynced: result.Synced(),
		Created:            result.Created,
		Updated:            result.Updated,
	}, nil
}

// recountMonths refreshes the usage counter for every month the sync
// window touched; a backfilling first sync can span many months, and
// each of them moved.
func (o *Orchestrator) recountMonths(
	ctx context.Context,
	companyID string,
	from time.Time,
	to time.Time,
	loc *time.Location,
) {
	local := from.In(loc)

	for ref := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc); !ref.After(to); ref = ref.AddDate(0, 1, 0) {
		if _, err := o.usage.Recompute(ctx, companyID, ref); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("company_id", companyID).
				Time("month", ref).
				Msg("usage recount failed")
		}
	}
}

func (o *Orchestrator) runReconcile(
	ctx context.Context,
	account *database.BankAccount,
	from time.Time,
	to time.Time,
) (result *reconciler.Result, err error) {
	err = common.Retry(ctx, o.retryConfig, func() error {
		var runErr error
		result, runErr = o.reconciler.Reconcile(ctx, account, from, to)
		return runErr
	})

	return result, err
}

// SyncDueAccounts is the scheduled fallback for items whose webhooks
// never arrive. Only healthy accounts participate; stale ones are
// flagged LINKED_OUTDATED first.
func (o *Orchestrator) SyncDueAccounts(ctx context.Context) error {
	accounts, err := o.repo.ListSyncableAccounts(ctx)
	if err != nil {
		return errors.Wrap(err, "list syncable accounts")
	}

	staleBefore := time.Now().Add(-o.cfg.OutdatedAfter)

	stale := lo.Filter(accounts, func(account *database.BankAccount, _ int) bool {
		return account.LastSyncAt == nil || account.LastSyncAt.Before(staleBefore)
	})

	for _, account := range stale {
		if account.Status != database.AccountStatusLinkedActive {
			continue
		}

		account.Status = database.AccountStatusLinkedOutdated
		if err = o.repo.UpdateAccountStatus(ctx, account); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("account_id", account.ID).
				Msg("failed to flag account outdated")
		}
	}

	pool := workerpool.New(o.cfg.PoolSize)

	for _, account := range accounts {
		account := account

		pool.Submit(func() {
			if _, syncErr := o.SyncAccount(ctx, account); syncErr != nil {
				zerolog.Ctx(ctx).Error().Err(syncErr).
					Str("account_id", account.ID).
					Msg("scheduled sync failed")
			}
		})
	}

	pool.StopWait()

	return nil
}

// awaitItemRefresh polls the item until it leaves UPDATING, with bounded
// attempts. Giving up is fine: the reconcile that follows works off
// whatever the aggregator already has.
func (o *Orchestrator) awaitItemRefresh(ctx context.Context, itemID string) {
	for attempt := 0; attempt < o.cfg.ItemPollAttempts; attempt++ {
		item, err := o.aggregator.GetItem(ctx, itemID)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("item_id", itemID).
				Msg("item status poll failed")

			return
		}

		if item.Status != pluggy.ItemStatusUpdating {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(o.cfg.ItemPollBackoff * time.Duration(attempt+1)):
		}
	}
}

func (o *Orchestrator) refreshBalance(ctx context.Context, account *database.BankAccount) {
	snapshots, err := o.aggregator.GetAccounts(ctx, *account.ItemID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("item_id", *account.ItemID).
			Msg("balance refresh failed")

		return
	}

	snapshot, found := lo.Find(snapshots, func(s *pluggy.AccountSnapshot) bool {
		return s.ID == *account.ExternalID
	})
	if !found {
		return
	}

	if balance, parseErr := decimal.NewFromString(snapshot.Balance); parseErr == nil {
		account.CurrentBalance = balance
	}

	if snapshot.CreditLimit != nil {
		if limit, parseErr := decimal.NewFromString(*snapshot.CreditLimit); parseErr == nil {
			account.CreditLimit = &limit
		}
	}
}

func webhookErrorDetail(payload pluggy.WebhookPayload) string {
	if payload.Data.Error != nil {
		return payload.Data.Error.Message
	}

	return payload.Data.Status
}
