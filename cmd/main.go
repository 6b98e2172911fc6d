package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"

	"datepicker-bot/config"
	"datepicker-bot/internal/app/service"
	"datepicker-bot/internal/delivery/telegram"
	"datepicker-bot/internal/delivery/telegram/flows"
	"datepicker-bot/internal/delivery/tgbot"
	"datepicker-bot/internal/locale"
	"datepicker-bot/internal/repository/sqlite"
	"datepicker-bot/pkg/datepicker"
	"datepicker-bot/pkg/workerpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Ошибка загрузки конфига", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("Запуск Telegram Datepicker Bot...", "transport", cfg.Transport)

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		slog.Error("Ошибка подключения к базе", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		slog.Error("Ошибка миграции", "error", err)
		os.Exit(1)
	}
	stateRepo := sqlite.NewSqliteStateRepo(db)

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	defer pool.Close()
	async := service.NewAsyncService(pool)

	catalog, err := locale.Load(cfg.DefaultLanguage)
	if err != nil {
		slog.Error("Ошибка загрузки переводов", "error", err)
		os.Exit(1)
	}
	clock := datepicker.RealClock{}
	actions := func(lang string) []datepicker.CustomAction {
		return flows.Actions(func(id datepicker.ActionID) string {
			return catalog.Message(lang, string(id))
		}, clock)
	}
	opts := cfg.PickerOptions()
	opts.Clock = clock
	pickers, err := service.NewPickerService(opts, catalog, stateRepo, actions)
	if err != nil {
		slog.Error("Ошибка настроек пикера", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	states := service.NewStateService(stateRepo, cfg.StateTTL)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.PruneSchedule, func() {
		_, _ = states.Prune(ctx)
	}); err != nil {
		slog.Error("Ошибка расписания очистки", "schedule", cfg.PruneSchedule, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	switch cfg.Transport {
	case config.TransportTgbotapi:
		bot, err := tgbot.NewBot(cfg.TelegramToken, pickers, async)
		if err != nil {
			slog.Error("Ошибка запуска бота", "error", err)
			os.Exit(1)
		}
		slog.Info("Бот запущен!")
		bot.Start(ctx)
	default:
		pref := telebot.Settings{
			Token:  cfg.TelegramToken,
			Poller: &telebot.LongPoller{Timeout: 10},
		}
		bot, err := telebot.NewBot(pref)
		if err != nil {
			slog.Error("Ошибка запуска бота", "error", err)
			os.Exit(1)
		}
		handler := &telegram.Handler{
			Bot:     bot,
			Pickers: pickers,
			Async:   async,
		}
		handler.Register()

		go func() {
			<-ctx.Done()
			bot.Stop()
		}()
		slog.Info("Бот запущен!")
		bot.Start()
	}
}
