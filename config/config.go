package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"datepicker-bot/pkg/datepicker"
)

const (
	TransportTelebot  = "telebot"
	TransportTgbotapi = "tgbotapi"
)

// Раскладки по умолчанию добавляют кнопки today и cancel.
var defaultLayouts = map[string]string{
	"DATEPICKER_DAY_FOOTER":  "prev-month,today,next-month;select;cancel",
	"DATEPICKER_YEAR_HEADER": "today",
}

type Config struct {
	TelegramToken   string
	Transport       string
	DatabasePath    string
	LogLevel        slog.Level
	Workers         int
	QueueSize       int
	StateTTL        time.Duration
	PruneSchedule   string
	DefaultLanguage string

	InitialView datepicker.ViewKind
	Layouts     map[datepicker.ViewKind]*datepicker.LayoutOptions
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, ErrNoToken{}
	}

	cfg := &Config{
		TelegramToken:   token,
		Transport:       strings.ToLower(getEnv("BOT_TRANSPORT", TransportTelebot)),
		DatabasePath:    getEnv("DATABASE_PATH", "datepicker-bot.db"),
		PruneSchedule:   getEnv("PRUNE_SCHEDULE", "@daily"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		InitialView:     datepicker.ViewKind(getEnv("DATEPICKER_INITIAL_VIEW", "")),
		Layouts:         make(map[datepicker.ViewKind]*datepicker.LayoutOptions),
	}
	if cfg.Transport != TransportTelebot && cfg.Transport != TransportTgbotapi {
		return nil, ErrUnknownTransport{Transport: cfg.Transport}
	}

	var err error
	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.Workers, err = getEnvInt("WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getEnvInt("QUEUE_SIZE", 32); err != nil {
		return nil, err
	}
	if cfg.StateTTL, err = time.ParseDuration(getEnv("STATE_TTL", "720h")); err != nil {
		return nil, fmt.Errorf("STATE_TTL: %w", err)
	}

	for _, view := range []datepicker.ViewKind{datepicker.DayView, datepicker.MonthView, datepicker.YearView} {
		if l := loadLayout(view); l != nil {
			cfg.Layouts[view] = l
		}
	}
	return cfg, nil
}

// PickerOptions собирает настройки пикера из окружения, остальное берётся по умолчанию.
func (c *Config) PickerOptions() datepicker.Options {
	return datepicker.Options{
		InitialView: c.InitialView,
		Day:         c.Layouts[datepicker.DayView],
		Month:       c.Layouts[datepicker.MonthView],
		Year:        c.Layouts[datepicker.YearView],
	}
}

// loadLayout читает DATEPICKER_<VIEW>_HEADER и _FOOTER.
// Заданная пустая строка означает пустую секцию, незаданная переменная оставляет раскладку по умолчанию.
func loadLayout(view datepicker.ViewKind) *datepicker.LayoutOptions {
	prefix := "DATEPICKER_" + strings.ToUpper(string(view)) + "_"
	header, hasHeader := lookupLayout(prefix + "HEADER")
	footer, hasFooter := lookupLayout(prefix + "FOOTER")
	if !hasHeader && !hasFooter {
		return nil
	}
	l := &datepicker.LayoutOptions{}
	if hasHeader {
		l.Header = datepicker.ParseRows(header)
	}
	if hasFooter {
		l.Footer = datepicker.ParseRows(footer)
	}
	return l
}

func lookupLayout(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := defaultLayouts[key]
	return v, ok
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN не задан в окружении"
}

type ErrUnknownTransport struct {
	Transport string
}

func (e ErrUnknownTransport) Error() string {
	return fmt.Sprintf("BOT_TRANSPORT: неизвестный транспорт %q (telebot или tgbotapi)", e.Transport)
}
