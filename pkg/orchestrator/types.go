package orchestrator

import "time"

type SyncOutcome struct {
	TransactionsSynced int
	Created            int
	Updated            int

	// Coalesced is set when another run already held the account lease;
	// the caller relies on the in-flight run instead of queueing.
	Coalesced bool
}

type ReconnectInfo struct {
	ConnectToken string
}

type Config struct {
	LeaseTTL time.Duration

	// OutdatedAfter is the staleness horizon: accounts not synced within
	// it get flagged LINKED_OUTDATED before the scheduled run.
	OutdatedAfter time.Duration

	PoolSize int

	ItemPollAttempts int
	ItemPollBackoff  time.Duration
}

func (c Config) withDefaults() Config {
	if c.LeaseTTL <= 0 {
		c.LeaseTTL = 5 * time.Minute
	}
	if c.OutdatedAfter <= 0 {
		c.OutdatedAfter = 12 * time.Hour
	}
	if c.PoolSize <= 0 {
		c.PoolSize = 10
	}
	if c.ItemPollAttempts <= 0 {
		c.ItemPollAttempts = 5
	}
	if c.ItemPollBackoff <= 0 {
		c.ItemPollBackoff = 2 * time.Second
	}
	return c
}
