package main

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	PostgresDSN string `env:"POSTGRES_CONNECTION_STRING,required"`

	PluggyBaseURL      string `env:"PLUGGY_BASE_URL" envDefault:"https://api.pluggy.ai"`
	PluggyClientID     string `env:"PLUGGY_CLIENT_ID,required"`
	PluggyClientSecret string `env:"PLUGGY_CLIENT_SECRET,required"`

	WebhookSecret string `env:"WEBHOOK_SECRET,required"`

	// WebhookURL, when set, is registered with the aggregator at boot.
	WebhookURL string `env:"WEBHOOK_URL"`

	// SyncSchedule is a cron spec for the periodic sync + usage sweep,
	// the fallback for items that never fire webhooks reliably.
	SyncSchedule string `env:"SYNC_SCHEDULE" envDefault:"0 */6 * * *"`

	WebhookPoolSize int `env:"WEBHOOK_POOL_SIZE" envDefault:"20"`
}

type syncResponse struct {
	Status             string `json:"status"`
	TransactionsSynced int    `json:"transactions_synced"`
}

type reconnectResponse struct {
	Status       string `json:"status"`
	ReconnectURL string `json:"reconnect_url"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
