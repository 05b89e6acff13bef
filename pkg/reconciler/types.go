package reconciler

type Result struct {
	Created int
	Updated int
	Skipped int

	// Errors holds the per-transaction failures of a run. A non-empty
	// list still counts as a successful reconciliation.
	Errors []error
}

func (r *Result) Synced() int {
	return r.Created + r.Updated
}
