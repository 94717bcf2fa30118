package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-d database DSN (sqlite file, postgres:// URL or :memory:)
//	-c/-config json file path with configs
//	-starting-balance wallet grant for new sessions
//	-bcrypt-cost bcrypt cost factor
//	-strict-session-sync report session writes for unknown accounts
//	-log-file log file path
//	-feed-address article feed base URL
//	-api-key article feed API key
//	-period most-popular window in days
//	-request-timeout feed request timeout (e.g., "15s")
//	-rate-limit feed requests per minute
//	-feed-error-policy "swallow" or "surface"
//	-feed-refresh-interval feed cache refresh interval (e.g., "10m")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("news-kiosk", flag.ContinueOnError)

	var databaseDSN string
	var jsonConfigPath string
	var startingBalance int64
	var bcryptCost int
	var strictSessionSync bool
	var logFile string
	var feedAddress string
	var apiKey string
	var period int
	var requestTimeout time.Duration
	var rateLimit int
	var feedErrorPolicy string
	var feedRefreshInterval time.Duration

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Int64Var(&startingBalance, "starting-balance", 0, "Starting wallet balance")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor")
	fs.BoolVar(&strictSessionSync, "strict-session-sync", false, "Fail session writes for unknown accounts")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&feedAddress, "feed-address", "", "Article feed base URL")
	fs.StringVar(&apiKey, "api-key", "", "Article feed API key")
	fs.IntVar(&period, "period", 0, "Most-popular period in days (1, 7, 30)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Feed request timeout (e.g., 15s)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Feed requests per minute")
	fs.StringVar(&feedErrorPolicy, "feed-error-policy", "", "Feed error policy: swallow or surface")
	fs.DurationVar(&feedRefreshInterval, "feed-refresh-interval", 0, "Feed cache refresh interval (e.g., 10m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StartingBalance:   startingBalance,
			BcryptCost:        bcryptCost,
			StrictSessionSync: strictSessionSync,
			LogFile:           logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			FeedAddress:     feedAddress,
			APIKey:          apiKey,
			Period:          period,
			RequestTimeout:  requestTimeout,
			RateLimit:       rateLimit,
			FeedErrorPolicy: FeedErrorPolicy(feedErrorPolicy),
		},
		Workers: Workers{
			FeedRefreshInterval: feedRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// defaultLogFile places the log file next to the executable.
func defaultLogFile() string {
	execPath, err := os.Executable()
	if err != nil {
		return "logs"
	}
	return filepath.Join(filepath.Dir(execPath), "logs")
}
