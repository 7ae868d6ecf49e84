package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	SettlementURL     string
	SettlementTimeout time.Duration
	ReceiptBaseURI    string
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeoutSecs int

	fs := flag.NewFlagSet("watchparty", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Settlement gateway (token transfers and receipt minting)
	fs.StringVar(&cfg.SettlementURL, "s", "", "Settlement gateway URL")
	fs.IntVar(&timeoutSecs, "settlement-timeout", 0, "Settlement call timeout in seconds")
	fs.StringVar(&cfg.ReceiptBaseURI, "receipt-base-uri", "", "Base URI for receipt metadata")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3721 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}

	if cfg.SettlementURL == "" {
		cfg.SettlementURL = os.Getenv("SETTLEMENT_URL")
	}
	if cfg.SettlementURL == "" {
		return Config{}, errors.New("settlement gateway URL required (use -s or SETTLEMENT_URL env)")
	}

	if timeoutSecs == 0 {
		if s := os.Getenv("SETTLEMENT_TIMEOUT"); s != "" {
			secs, err := strconv.Atoi(s)
			if err != nil || secs <= 0 {
				return Config{}, errors.New("invalid SETTLEMENT_TIMEOUT env variable")
			}
			timeoutSecs = secs
		} else {
			timeoutSecs = 10
		}
	}
	cfg.SettlementTimeout = time.Duration(timeoutSecs) * time.Second

	if cfg.ReceiptBaseURI == "" {
		cfg.ReceiptBaseURI = os.Getenv("RECEIPT_BASE_URI")
	}
	if cfg.ReceiptBaseURI == "" {
		cfg.ReceiptBaseURI = "ipfs://watchparty/receipts"
	}

	return cfg, nil
}
