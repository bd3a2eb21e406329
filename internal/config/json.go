package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations accept both strings ("24h") and nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SeedDemoUser  bool     `json:"seed_demo_user"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN               string   `json:"dsn"`
			ConnectRetries    uint64   `json:"connect_retries"`
			ConnectRetryDelay Duration `json:"connect_retry_delay"`
			MaxOpenConns      int      `json:"max_open_conns"`
			MaxIdleConns      int      `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		Telegram struct {
			BotToken      string `json:"bot_token"`
			APIURL        string `json:"api_url"`
			WebhookSecret string `json:"webhook_secret"`
		} `json:"telegram,omitempty"`

		GitHub struct {
			Token      string `json:"token"`
			Repository string `json:"repository"`
			APIURL     string `json:"api_url"`
		} `json:"github,omitempty"`

		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			SeedDemoUser:  jsonCfg.App.SeedDemoUser,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:               jsonCfg.Storage.DB.DSN,
				ConnectRetries:    jsonCfg.Storage.DB.ConnectRetries,
				ConnectRetryDelay: time.Duration(jsonCfg.Storage.DB.ConnectRetryDelay),
				MaxOpenConns:      jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:      jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			Telegram: Telegram{
				BotToken:      jsonCfg.Adapter.Telegram.BotToken,
				APIURL:        jsonCfg.Adapter.Telegram.APIURL,
				WebhookSecret: jsonCfg.Adapter.Telegram.WebhookSecret,
			},
			GitHub: GitHub{
				Token:      jsonCfg.Adapter.GitHub.Token,
				Repository: jsonCfg.Adapter.GitHub.Repository,
				APIURL:     jsonCfg.Adapter.GitHub.APIURL,
			},
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
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
