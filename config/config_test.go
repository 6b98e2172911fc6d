package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepicker-bot/pkg/datepicker"
)

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	_, err := LoadConfig()
	assert.True(t, errors.As(err, &ErrNoToken{}))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, TransportTelebot, cfg.Transport)
	assert.Equal(t, "datepicker-bot.db", cfg.DatabasePath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 32, cfg.QueueSize)
	assert.Equal(t, 720*time.Hour, cfg.StateTTL)
	assert.Equal(t, "@daily", cfg.PruneSchedule)
	assert.Equal(t, "en", cfg.DefaultLanguage)

	opts := cfg.PickerOptions()
	require.NotNil(t, opts.Day)
	assert.Nil(t, opts.Day.Header)
	assert.Equal(t, []datepicker.Row{{"prev-month", "today", "next-month"}, {"select"}, {"cancel"}}, opts.Day.Footer)
	assert.Nil(t, opts.Month)
	require.NotNil(t, opts.Year)
	assert.Equal(t, []datepicker.Row{{"today"}}, opts.Year.Header)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "secret")
	t.Setenv("BOT_TRANSPORT", "TgBotAPI")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORKERS", "8")
	t.Setenv("STATE_TTL", "1h30m")
	t.Setenv("DATEPICKER_INITIAL_VIEW", "month")
	t.Setenv("DATEPICKER_DAY_FOOTER", "")
	t.Setenv("DATEPICKER_MONTH_HEADER", "year")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, TransportTgbotapi, cfg.Transport)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 90*time.Minute, cfg.StateTTL)

	opts := cfg.PickerOptions()
	assert.Equal(t, datepicker.MonthView, opts.InitialView)
	require.NotNil(t, opts.Day)
	assert.Empty(t, opts.Day.Footer)
	assert.NotNil(t, opts.Day.Footer)
	require.NotNil(t, opts.Month)
	assert.Equal(t, []datepicker.Row{{"year"}}, opts.Month.Header)
	assert.Nil(t, opts.Month.Footer)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"transport", "BOT_TRANSPORT", "smoke-signals"},
		{"log level", "LOG_LEVEL", "loud"},
		{"workers", "WORKERS", "many"},
		{"ttl", "STATE_TTL", "forever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_TOKEN", "secret")
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestUnknownTransportError(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "secret")
	t.Setenv("BOT_TRANSPORT", "smoke")
	_, err := LoadConfig()
	var target ErrUnknownTransport
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "smoke", target.Transport)
}
