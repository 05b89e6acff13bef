package usage

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Updater keeps per-company monthly counters equal to the ground truth
// in the transaction table. Always a full recount: incremental counters
// drift under concurrent writes and partial failures, a recount is
// self-healing and idempotent.
type Updater struct {
	repo Repo
}

func NewUpdater(repo Repo) *Updater {
	return &Updater{
		repo: repo,
	}
}

// Recompute recounts the month containing ref, interpreted in the
// company's timezone, and upserts the counter. Returns the fresh count.
func (u *Updater) Recompute(ctx context.Context, companyID string, ref time.Time) (int64, error) {
	company, err := u.repo.GetCompany(ctx, companyID)
	if err != nil {
		return 0, errors.Wrap(err, "load company")
	}

	if company == nil {
		return 0, errors.Newf("company %s does not exist", companyID)
	}

	loc := company.Location()
	local := ref.In(loc)

	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthKey := monthStart.Format("2006-01")

	count, err := u.repo.CountTransactionsInRange(ctx, companyID, monthStart, nextMonth)
	if err != nil {
		return 0, errors.Wrap(err, "count transactions")
	}

	existing, err := u.repo.GetUsage(ctx, companyID, monthKey)
	if err != nil {
		return 0, errors.Wrap(err, "load usage row")
	}

	if existing != nil && existing.TransactionsCount != count {
		// Drift is expected under concurrency; the recount is the fix,
		// not a failure.
		zerolog.Ctx(ctx).Info().
			Str("company_id", companyID).
			Str("month", monthKey).
			Int64("stored", existing.TransactionsCount).
			Int64("actual", count).
			Msg("usage counter drift corrected")
	}

	if err = u.repo.UpsertTransactionsCount(ctx, companyID, monthKey, count); err != nil {
		return 0, errors.Wrap(err, "upsert usage counter")
	}

	return count, nil
}

// SweepAll recounts the current month for every company. Per-company
// failures are logged and do not stop the sweep.
func (u *Updater) SweepAll(ctx context.Context) error {
	companies, err := u.repo.ListCompanies(ctx)
	if err != nil {
		return errors.Wrap(err, "list companies")
	}

	now := time.Now()

	for _, company := range companies {
		if _, err = u.Recompute(ctx, company.ID, now); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("company_id", company.ID).
				Msg("usage sweep failed for company")
		}
	}

	return nil
}
