package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// human readable durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		BcryptCost      int      `json:"bcrypt_cost"`
		Version         string   `json:"version"`
		DemoUserEnabled bool     `json:"demo_user_enabled"`
		DemoEmail       string   `json:"demo_email"`
		DemoPassword    string   `json:"demo_password"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		StaticDir       string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Media struct {
		CloudName   string   `json:"cloud_name"`
		APIKey      string   `json:"api_key"`
		APISecret   string   `json:"api_secret"`
		BaseURL     string   `json:"base_url"`
		Folder      string   `json:"folder"`
		Timeout     Duration `json:"timeout"`
		ChunkSize   int64    `json:"chunk_size"`
		MaxFileSize int64    `json:"max_file_size"`
		MaxFiles    int      `json:"max_files"`
	} `json:"media,omitempty"`

	RateLimit struct {
		LoginAttempts int      `json:"login_attempts"`
		Window        Duration `json:"window"`
	} `json:"rate_limit,omitempty"`
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
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:      jsonCfg.App.BcryptCost,
			Version:         jsonCfg.App.Version,
			DemoUserEnabled: jsonCfg.App.DemoUserEnabled,
			DemoEmail:       jsonCfg.App.DemoEmail,
			DemoPassword:    jsonCfg.App.DemoPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			StaticDir:       jsonCfg.Server.StaticDir,
		},
		Media: Media{
			CloudName:   jsonCfg.Media.CloudName,
			APIKey:      jsonCfg.Media.APIKey,
			APISecret:   jsonCfg.Media.APISecret,
			BaseURL:     jsonCfg.Media.BaseURL,
			Folder:      jsonCfg.Media.Folder,
			Timeout:     time.Duration(jsonCfg.Media.Timeout),
			ChunkSize:   jsonCfg.Media.ChunkSize,
			MaxFileSize: jsonCfg.Media.MaxFileSize,
			MaxFiles:    jsonCfg.Media.MaxFiles,
		},
		RateLimit: RateLimit{
			LoginAttempts: jsonCfg.RateLimit.LoginAttempts,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
