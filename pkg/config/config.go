package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Accounts            string
	TravelWallets       string
	Merchants           string
	Budgets             string
	AccountTransactions string
	TravelTransactions  string
	Connections         string
}

type Config struct {
	Port               string
	LogLevel           string
	StorageBackend     string
	Tables             Tables
	AlertQueueURL      string
	WebsocketEndpoint  string
	PaymentMaxAttempts int

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads the .env file, if any, and then the process environment, and
// validates what the payment API needs.
func Load() (*Config, error) {
	cfg := read()

	attempts, err := strconv.Atoi(getEnv("PAYMENT_MAX_ATTEMPTS", "3"))
	if err != nil || attempts < 1 {
		return nil, fmt.Errorf("PAYMENT_MAX_ATTEMPTS must be a positive integer")
	}
	cfg.PaymentMaxAttempts = attempts

	switch cfg.StorageBackend {
	case BackendMemory:
	case BackendDynamoDB:
		if missing := cfg.Tables.missing(); len(missing) > 0 {
			return nil, fmt.Errorf("missing DynamoDB table names: %s", strings.Join(missing, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// LoadWebsocket loads the configuration of the websocket Lambdas, which only
// touch the connections table. The alert fan-out also needs the endpoint.
func LoadWebsocket(requireEndpoint bool) (*Config, error) {
	cfg := read()

	if cfg.Tables.Connections == "" {
		return nil, fmt.Errorf("missing DynamoDB table names: DYNAMODB_CONNECTIONS_TABLE_NAME")
	}
	if requireEndpoint && cfg.WebsocketEndpoint == "" {
		return nil, fmt.Errorf("WEBSOCKET_API_ENDPOINT is required")
	}

	return cfg, nil
}

func read() *Config {
	envFileLoaded := godotenv.Load() == nil

	return &Config{
		Port:           getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendDynamoDB)),
		Tables: Tables{
			Accounts:            os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
			TravelWallets:       os.Getenv("DYNAMODB_TRAVEL_WALLETS_TABLE_NAME"),
			Merchants:           os.Getenv("DYNAMODB_MERCHANTS_TABLE_NAME"),
			Budgets:             os.Getenv("DYNAMODB_BUDGETS_TABLE_NAME"),
			AccountTransactions: os.Getenv("DYNAMODB_ACCOUNT_TRANSACTIONS_TABLE_NAME"),
			TravelTransactions:  os.Getenv("DYNAMODB_TRAVEL_TRANSACTIONS_TABLE_NAME"),
			Connections:         os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
		},
		AlertQueueURL:     os.Getenv("SQS_ALERT_QUEUE_URL"),
		WebsocketEndpoint: os.Getenv("WEBSOCKET_API_ENDPOINT"),
		EnvFileLoaded:     envFileLoaded,
	}
}

// missing lists the variables of the tables the payment API needs. The
// connections table is only needed by the websocket components.
func (t Tables) missing() []string {
	var names []string
	for env, value := range map[string]string{
		"DYNAMODB_ACCOUNTS_TABLE_NAME":             t.Accounts,
		"DYNAMODB_TRAVEL_WALLETS_TABLE_NAME":       t.TravelWallets,
		"DYNAMODB_MERCHANTS_TABLE_NAME":            t.Merchants,
		"DYNAMODB_BUDGETS_TABLE_NAME":              t.Budgets,
		"DYNAMODB_ACCOUNT_TRANSACTIONS_TABLE_NAME": t.AccountTransactions,
		"DYNAMODB_TRAVEL_TRANSACTIONS_TABLE_NAME":  t.TravelTransactions,
	} {
		if value == "" {
			names = append(names, env)
		}
	}
	sort.Strings(names)
	return names
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
