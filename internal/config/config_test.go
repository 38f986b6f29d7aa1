package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./shifts.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AdminUserIDs)
	assert.Equal(t, 10, cfg.ClaimRatePerMinute)
	assert.Equal(t, domain.DefaultPolicy(), cfg.Policy())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_USER_IDS", " U1, ,U2 ")
	t.Setenv("MODERATOR_USER_IDS", "U3")
	t.Setenv("MAX_HOURS_7D", "4.5")
	t.Setenv("HEAVY_LOCK_WINDOW", "90")
	t.Setenv("MIN_DURATION", "0.5")
	t.Setenv("MAX_DURATION", "8")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Berlin")
	t.Setenv("LOG_CONSOLE", "true")
	t.Setenv("DATABASE_BUSY_TIMEOUT", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"U1", "U2"}, cfg.AdminUserIDs)
	assert.Equal(t, []string{"U3"}, cfg.ModeratorUserIDs)
	assert.True(t, cfg.LogConsole)
	assert.Equal(t, 250*time.Millisecond, cfg.DatabaseBusy)

	policy := cfg.Policy()
	assert.Equal(t, 4.5, policy.MaxHours7D)
	assert.Equal(t, 90*time.Minute, policy.HeavyLockWindow)
	assert.Equal(t, 0.5, policy.MinDurationHours)
	assert.Equal(t, 8.0, policy.MaxDurationHours)
	assert.Equal(t, "Europe/Berlin", policy.DefaultTimezone)
	assert.Equal(t, domain.DefaultFairnessWindow, policy.FairnessWindow)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "shift-bot.yaml")
	content := `
port: "8080"
admin_user_ids: [UADMIN]
heavy_lock_window: 30m
max_hours_7d: 6
default_timezone: America/New_York
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port, "environment wins over file")
	assert.Equal(t, []string{"UADMIN"}, cfg.AdminUserIDs)
	assert.Equal(t, 30*time.Minute, cfg.HeavyLockWindow)
	assert.Equal(t, 6.0, cfg.MaxHours7D)
	assert.Equal(t, "America/New_York", cfg.DefaultTimezone)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{
			name:    "missing bot token",
			env:     map[string]string{"SLACK_SIGNING_SECRET": "s"},
			wantKey: "SLACK_BOT_TOKEN",
		},
		{
			name:    "missing signing secret",
			env:     map[string]string{"SLACK_BOT_TOKEN": "t"},
			wantKey: "SLACK_SIGNING_SECRET",
		},
		{
			name:    "unparseable cap",
			env:     map[string]string{"SLACK_BOT_TOKEN": "t", "SLACK_SIGNING_SECRET": "s", "MAX_HOURS_7D": "three"},
			wantKey: "MAX_HOURS_7D",
		},
		{
			name:    "unknown timezone",
			env:     map[string]string{"SLACK_BOT_TOKEN": "t", "SLACK_SIGNING_SECRET": "s", "DEFAULT_TIMEZONE": "Nowhere/Land"},
			wantKey: "DEFAULT_TIMEZONE",
		},
		{
			name:    "inverted duration bounds",
			env:     map[string]string{"SLACK_BOT_TOKEN": "t", "SLACK_SIGNING_SECRET": "s", "MIN_DURATION": "2", "MAX_DURATION": "1"},
			wantKey: "MAX_DURATION",
		},
		{
			name:    "bad lock window",
			env:     map[string]string{"SLACK_BOT_TOKEN": "t", "SLACK_SIGNING_SECRET": "s", "HEAVY_LOCK_WINDOW": "soon"},
			wantKey: "HEAVY_LOCK_WINDOW",
		},
		{
			name:    "missing config file",
			env:     map[string]string{"CONFIG_FILE": "/does/not/exist.yaml"},
			wantKey: "CONFIG_FILE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.wantKey, cfgErr.Key)
		})
	}
}
