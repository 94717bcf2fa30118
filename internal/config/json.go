package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		StartingBalance   int64  `json:"starting_balance"`
		BcryptCost        int    `json:"bcrypt_cost"`
		StrictSessionSync bool   `json:"strict_session_sync"`
		LogFile           string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		FeedAddress     string   `json:"feed_address"`
		APIKey          string   `json:"api_key"`
		Period          int      `json:"period"`
		RequestTimeout  Duration `json:"request_timeout"`
		RateLimit       int      `json:"rate_limit"`
		FeedErrorPolicy string   `json:"feed_error_policy"`
	} `json:"adapter,omitempty"`

	Workers struct {
		FeedRefreshInterval Duration `json:"feed_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StartingBalance:   jsonCfg.App.StartingBalance,
			BcryptCost:        jsonCfg.App.BcryptCost,
			StrictSessionSync: jsonCfg.App.StrictSessionSync,
			LogFile:           jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			FeedAddress:     jsonCfg.Adapter.FeedAddress,
			APIKey:          jsonCfg.Adapter.APIKey,
			Period:          jsonCfg.Adapter.Period,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:       jsonCfg.Adapter.RateLimit,
			FeedErrorPolicy: FeedErrorPolicy(jsonCfg.Adapter.FeedErrorPolicy),
		},
		Workers: Workers{
			FeedRefreshInterval: time.Duration(jsonCfg.Workers.FeedRefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
