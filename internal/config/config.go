package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DeviceName string `yaml:"device_name"`
}

type APIConfig struct {
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	Timeout      string `yaml:"timeout"`
}

type StorageConfig struct {
	SessionPath string `yaml:"session_path"`
	CachePath   string `yaml:"cache_path"`
}

type OTPConfig struct {
	CodeLength   int    `yaml:"code_length"`
	ResendWindow string `yaml:"resend_window"`
}

type PaymentConfig struct {
	VerificationFee float64 `yaml:"verification_fee"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	OTP     OTPConfig     `yaml:"otp"`
	Payment PaymentConfig `yaml:"payment"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DeviceName      string
	APIBaseURL      string
	ImageBaseURL    string
	RequestTimeout  time.Duration
	SessionPath     string
	CachePath       string
	OTPCodeLength   int
	OTPResendWindow time.Duration
	VerificationFee float64
}

const (
	defaultBaseURL      = "https://manage.bdtuition.com/api/v1"
	defaultImageBaseURL = "https://manage.bdtuition.com"
	defaultDeviceName   = "mobile_app"
	defaultTimeout      = 30 * time.Second
	defaultResendWindow = 60 * time.Second
	defaultSessionPath  = "bdtuition-session.db"
	defaultCachePath    = "bdtuition-cache.db"
	defaultFee          = 500
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load resolves configuration from an optional YAML file, an optional .env
// file, and environment variables, in increasing order of precedence.
// A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	// Best effort: a .env next to the binary overrides nothing if absent.
	_ = godotenv.Load()

	cfg := &Config{
		DeviceName:      defaultDeviceName,
		APIBaseURL:      defaultBaseURL,
		ImageBaseURL:    defaultImageBaseURL,
		RequestTimeout:  defaultTimeout,
		SessionPath:     defaultSessionPath,
		CachePath:       defaultCachePath,
		OTPCodeLength:   6,
		OTPResendWindow: defaultResendWindow,
		VerificationFee: defaultFee,
	}

	if path != "" {
		file, err := loadConfigFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := applyFile(cfg, file); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api base URL must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func applyFile(cfg *Config, file *ConfigFile) error {
	if file.App.DeviceName != "" {
		cfg.DeviceName = file.App.DeviceName
	}
	if file.API.BaseURL != "" {
		cfg.APIBaseURL = file.API.BaseURL
	}
	if file.API.ImageBaseURL != "" {
		cfg.ImageBaseURL = file.API.ImageBaseURL
	}
	if file.API.Timeout != "" {
		d, err := time.ParseDuration(file.API.Timeout)
		if err != nil {
			return fmt.Errorf("invalid api timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if file.Storage.SessionPath != "" {
		cfg.SessionPath = file.Storage.SessionPath
	}
	if file.Storage.CachePath != "" {
		cfg.CachePath = file.Storage.CachePath
	}
	if file.OTP.CodeLength != 0 {
		cfg.OTPCodeLength = file.OTP.CodeLength
	}
	if file.OTP.ResendWindow != "" {
		d, err := time.ParseDuration(file.OTP.ResendWindow)
		if err != nil {
			return fmt.Errorf("invalid otp resend window: %w", err)
		}
		cfg.OTPResendWindow = d
	}
	if file.Payment.VerificationFee != 0 {
		cfg.VerificationFee = file.Payment.VerificationFee
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.DeviceName = env("BDTUITION_DEVICE_NAME", cfg.DeviceName)
	cfg.APIBaseURL = env("BDTUITION_API_BASE_URL", cfg.APIBaseURL)
	cfg.ImageBaseURL = env("BDTUITION_IMAGE_BASE_URL", cfg.ImageBaseURL)
	cfg.SessionPath = env("BDTUITION_SESSION_PATH", cfg.SessionPath)
	cfg.CachePath = env("BDTUITION_CACHE_PATH", cfg.CachePath)

	if v := os.Getenv("BDTUITION_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid BDTUITION_API_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("BDTUITION_OTP_RESEND_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid BDTUITION_OTP_RESEND_WINDOW: %w", err)
		}
		cfg.OTPResendWindow = d
	}
	if v := os.Getenv("BDTUITION_VERIFICATION_FEE"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BDTUITION_VERIFICATION_FEE: %w", err)
		}
		cfg.VerificationFee = fee
	}
	return nil
}
