package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	SessionTTL string `yaml:"session_ttl"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type EscalationConfig struct {
	SeverityThreshold int    `yaml:"severity_threshold"`
	TwimlBaseURL      string `yaml:"twiml_base_url"`
	CallTimeout       string `yaml:"call_timeout"`
	MaxCallAttempts   int    `yaml:"max_call_attempts"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Twilio     TwilioConfig     `yaml:"twilio"`
	Escalation EscalationConfig `yaml:"escalation"`
	Casbin     CasbinConfig     `yaml:"casbin"`
}

type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	AccessTTL         time.Duration
	SessionTTL        time.Duration
	TwilioSID         string
	TwilioToken       string
	TwilioFrom        string
	SeverityThreshold int
	TwimlBaseURL      string
	CallTimeout       time.Duration
	MaxCallAttempts   int
	CasbinModelPath   string
}

const (
	DefaultSeverityThreshold = 4
	DefaultTwimlBaseURL      = "http://localhost:8000"
	DefaultCallTimeout       = 10 * time.Second
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	sesTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	callTimeout := DefaultCallTimeout
	if configFile.Escalation.CallTimeout != "" {
		callTimeout, err = time.ParseDuration(configFile.Escalation.CallTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid escalation call timeout: %w", err)
		}
	}

	threshold := configFile.Escalation.SeverityThreshold
	if threshold == 0 {
		threshold = DefaultSeverityThreshold
	}
	if v := os.Getenv("ESCALATION_SEVERITY_THRESHOLD"); v != "" {
		threshold, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ESCALATION_SEVERITY_THRESHOLD: %w", err)
		}
	}

	baseURL := env("TWIML_BASE_URL", configFile.Escalation.TwimlBaseURL)
	if baseURL == "" {
		baseURL = DefaultTwimlBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid TwiML base URL %q: %w", baseURL, err)
	}

	maxAttempts := configFile.Escalation.MaxCallAttempts
	if maxAttempts == 0 {
		maxAttempts = 1
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		DSN:               configFile.Database.DSN,
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		JWTSecret:         configFile.JWT.Secret,
		JWTIssuer:         configFile.JWT.Issuer,
		AccessTTL:         accTTL,
		SessionTTL:        sesTTL,
		TwilioSID:         env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:       env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:        env("TWILIO_PHONE_NUMBER", configFile.Twilio.FromNumber),
		SeverityThreshold: threshold,
		TwimlBaseURL:      baseURL,
		CallTimeout:       callTimeout,
		MaxCallAttempts:   maxAttempts,
		CasbinModelPath:   configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
