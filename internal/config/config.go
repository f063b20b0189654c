package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		App      App      `json:"app" mapstructure:"app"`
		Postgres Postgres `json:"postgres" mapstructure:"postgres"`

		Bank   BankConfig   `json:"bank" mapstructure:"bank"`
		Ledger LedgerConfig `json:"ledger" mapstructure:"ledger"`
		Sync   SyncConfig   `json:"sync" mapstructure:"sync"`

		SettingsStore SettingsStoreConfig `json:"settings_store" mapstructure:"settings_store"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	// HTTPConfiguration is shared by the bank and ledger collaborator clients.
	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url" mapstructure:"base_url"`
		Token         string        `json:"token" mapstructure:"token"`
		Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
		RetryCount    int           `json:"retry_count" mapstructure:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time" mapstructure:"retry_wait_time"`
	}

	BankConfig struct {
		HTTP       HTTPConfiguration `json:"http" mapstructure:"http"`
		AccountRef string            `json:"account_ref" mapstructure:"account_ref"`
	}

	LedgerConfig struct {
		HTTP      HTTPConfiguration `json:"http" mapstructure:"http"`
		BudgetID  string            `json:"budget_id" mapstructure:"budget_id"`
		AccountID string            `json:"account_id" mapstructure:"account_id"`
	}

	// SyncConfig holds the knobs of one reconciliation run. The ledger lookup
	// window is always FetchWindowDays+DateToleranceDays so duplicates near the
	// window boundary are not missed.
	SyncConfig struct {
		FetchWindowDays   int `json:"fetch_window_days" mapstructure:"fetch_window_days"`
		DateToleranceDays int `json:"date_tolerance_days" mapstructure:"date_tolerance_days"`
		MemoLimit         int `json:"memo_limit" mapstructure:"memo_limit"`

		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
	}

	SettingsStoreConfig struct {
		BaseDir string `json:"base_dir" mapstructure:"base_dir"`
		Bucket  string `json:"bucket" mapstructure:"bucket"`
	}
)

const (
	DefaultFetchWindowDays   = 30
	DefaultDateToleranceDays = 1
	DefaultMemoLimit         = 300
)

// Load reads config.yaml from the given search paths and applies environment
// overrides with the BUDGETBUDDY prefix (BUDGETBUDDY_APP_HTTP_PORT and so on).
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("BUDGETBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "budgetbuddy")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9667)
	v.SetDefault("app.graceful_timeout", 5*time.Second)
	v.SetDefault("sync.fetch_window_days", DefaultFetchWindowDays)
	v.SetDefault("sync.date_tolerance_days", DefaultDateToleranceDays)
	v.SetDefault("sync.memo_limit", DefaultMemoLimit)
	v.SetDefault("settings_store.base_dir", "./data")
	v.SetDefault("settings_store.bucket", "budgetbuddy-settings")

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		// config file is optional for local runs, env vars still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
