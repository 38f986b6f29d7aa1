package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken      string        `yaml:"slack_bot_token"`
	SlackSigningSecret string        `yaml:"slack_signing_secret"`
	DatabasePath       string        `yaml:"database_path"`
	DatabaseBusy       time.Duration `yaml:"database_busy_timeout"`
	Port               string        `yaml:"port"`

	// Commands are only accepted in this channel when set
	AllowedChannelID string   `yaml:"allowed_channel_id"`
	AdminUserIDs     []string `yaml:"admin_user_ids"`
	// An empty list lets every user act as a moderator
	ModeratorUserIDs []string `yaml:"moderator_user_ids"`

	LogLevel   string `yaml:"log_level"`
	LogConsole bool   `yaml:"log_console"`

	MaxHours7D         float64       `yaml:"max_hours_7d"`
	HeavyLockWindow    time.Duration `yaml:"heavy_lock_window"`
	MinDuration        float64       `yaml:"min_duration"`
	MaxDuration        float64       `yaml:"max_duration"`
	DefaultTimezone    string        `yaml:"default_timezone"`
	ClaimRatePerMinute int           `yaml:"claim_rate_per_minute"`
}

// ConfigError reports a configuration key that could not be used.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	errRequired = errors.New("is required")
	errInvalid  = errors.New("is invalid")
)

// Default returns the configuration used before any file or environment is applied.
func Default() *Config {
	return &Config{
		DatabasePath:       "./shifts.db",
		DatabaseBusy:       5 * time.Second,
		Port:               "3000",
		LogLevel:           "info",
		MaxHours7D:         domain.DefaultMaxHours7D,
		HeavyLockWindow:    domain.DefaultHeavyLockWindow,
		MinDuration:        domain.DefaultMinDurationHours,
		MaxDuration:        domain.DefaultMaxDurationHours,
		DefaultTimezone:    domain.DefaultTimezone,
		ClaimRatePerMinute: 10,
	}
}

// Load applies defaults, then the YAML file named by CONFIG_FILE (if any),
// then environment variables, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Key: "CONFIG_FILE", Value: path, Err: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Key: "CONFIG_FILE", Value: path, Err: err}
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.SlackBotToken = getEnv("SLACK_BOT_TOKEN", c.SlackBotToken)
	c.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", c.SlackSigningSecret)
	c.DatabasePath = getEnv("DATABASE_PATH", c.DatabasePath)
	c.Port = getEnv("PORT", c.Port)
	c.AllowedChannelID = getEnv("ALLOWED_CHANNEL_ID", c.AllowedChannelID)
	c.AdminUserIDs = getEnvList("ADMIN_USER_IDS", c.AdminUserIDs)
	c.ModeratorUserIDs = getEnvList("MODERATOR_USER_IDS", c.ModeratorUserIDs)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", c.DefaultTimezone)

	var err error
	if c.LogConsole, err = getEnvBool("LOG_CONSOLE", c.LogConsole); err != nil {
		return err
	}
	if c.DatabaseBusy, err = getEnvDuration("DATABASE_BUSY_TIMEOUT", c.DatabaseBusy, time.Millisecond); err != nil {
		return err
	}
	if c.MaxHours7D, err = getEnvFloat("MAX_HOURS_7D", c.MaxHours7D); err != nil {
		return err
	}
	if c.HeavyLockWindow, err = getEnvDuration("HEAVY_LOCK_WINDOW", c.HeavyLockWindow, time.Minute); err != nil {
		return err
	}
	if c.MinDuration, err = getEnvFloat("MIN_DURATION", c.MinDuration); err != nil {
		return err
	}
	if c.MaxDuration, err = getEnvFloat("MAX_DURATION", c.MaxDuration); err != nil {
		return err
	}
	if c.ClaimRatePerMinute, err = getEnvInt("CLAIM_RATE_PER_MINUTE", c.ClaimRatePerMinute); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if c.SlackBotToken == "" {
		return &ConfigError{Key: "SLACK_BOT_TOKEN", Err: errRequired}
	}
	if c.SlackSigningSecret == "" {
		return &ConfigError{Key: "SLACK_SIGNING_SECRET", Err: errRequired}
	}
	if c.DatabasePath == "" {
		return &ConfigError{Key: "DATABASE_PATH", Err: errRequired}
	}
	if c.Port == "" {
		return &ConfigError{Key: "PORT", Err: errRequired}
	}
	if c.MaxHours7D <= 0 {
		return &ConfigError{Key: "MAX_HOURS_7D", Value: fmt.Sprint(c.MaxHours7D), Err: errors.New("must be positive")}
	}
	if c.HeavyLockWindow < 0 {
		return &ConfigError{Key: "HEAVY_LOCK_WINDOW", Value: c.HeavyLockWindow.String(), Err: errors.New("must not be negative")}
	}
	if c.MinDuration <= 0 {
		return &ConfigError{Key: "MIN_DURATION", Value: fmt.Sprint(c.MinDuration), Err: errors.New("must be positive")}
	}
	if c.MaxDuration < c.MinDuration {
		return &ConfigError{Key: "MAX_DURATION", Value: fmt.Sprint(c.MaxDuration), Err: errors.New("must not be below MIN_DURATION")}
	}
	if err := timeslot.ValidateTimezone(c.DefaultTimezone); err != nil {
		return &ConfigError{Key: "DEFAULT_TIMEZONE", Value: c.DefaultTimezone, Err: err}
	}
	if c.ClaimRatePerMinute <= 0 {
		return &ConfigError{Key: "CLAIM_RATE_PER_MINUTE", Value: strconv.Itoa(c.ClaimRatePerMinute), Err: errors.New("must be positive")}
	}
	return nil
}

// Policy converts the fairness and duration settings for the shift ledger.
func (c *Config) Policy() domain.Policy {
	policy := domain.DefaultPolicy()
	policy.MaxHours7D = c.MaxHours7D
	policy.HeavyLockWindow = c.HeavyLockWindow
	policy.MinDurationHours = c.MinDuration
	policy.MaxDurationHours = c.MaxDuration
	policy.DefaultTimezone = c.DefaultTimezone
	return policy
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConfigError{Key: key, Value: raw, Err: errInvalid}
	}
	return value, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Key: key, Value: raw, Err: errInvalid}
	}
	return value, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &ConfigError{Key: key, Value: raw, Err: errInvalid}
	}
	return value, nil
}

// getEnvDuration accepts Go durations ("90m") or a bare number counted in unit.
func getEnvDuration(key string, defaultValue, unit time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(n * float64(unit)), nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &ConfigError{Key: key, Value: raw, Err: errInvalid}
	}
	return value, nil
}
