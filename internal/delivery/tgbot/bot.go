package tgbot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"datepicker-bot/internal/app/service"
	"datepicker-bot/internal/delivery/telegram"
	"datepicker-bot/internal/delivery/telegram/keyboards"
	"datepicker-bot/internal/delivery/telegram/router"
	"datepicker-bot/internal/locale"
)

// Bot делает то же, что и telebot-версия, но поверх telegram-bot-api.
type Bot struct {
	API     *tgbotapi.BotAPI
	Pickers *service.PickerService
	Async   *service.AsyncService
}

func NewBot(token string, pickers *service.PickerService, async *service.AsyncService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Bot{API: api, Pickers: pickers, Async: async}, nil
}

// Start читает обновления до отмены ctx.
func (b *Bot) Start(ctx context.Context) {
	slog.Info("authorized", "user", b.API.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				go b.handleMessage(update.Message)
			} else if update.CallbackQuery != nil {
				go b.handleCallbackQuery(update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "date":
	default:
		return
	}
	chatID := message.Chat.ID
	lang := languageOf(message.From)

	kb, err := b.Pickers.Session(lang, chatID).Start(context.Background())
	if err != nil {
		slog.Error("start picker", "chat", chatID, "error", err)
		return
	}
	msg := tgbotapi.NewMessage(chatID, b.Pickers.Message(lang, locale.MsgPrompt))
	msg.ReplyMarkup = Markup(keyboards.PickerUnique, kb)
	if _, err := b.API.Send(msg); err != nil {
		slog.Error("send picker", "chat", chatID, "error", err)
	}
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	key, payload := router.Split(query.Data)
	if key != keyboards.PickerUnique || query.Message == nil {
		_, _ = b.API.Request(tgbotapi.NewCallback(query.ID, ""))
		return
	}
	chatID := query.Message.Chat.ID
	lang := languageOf(query.From)

	_, err := b.Async.SubmitAsync(service.StateKey(chatID), func() (any, error) {
		ctx := context.Background()
		chat := NewChat(b.API, query, keyboards.PickerUnique)

		d, ok := b.Pickers.Session(lang, chatID).ProcessData(ctx, chat, payload)
		if ok {
			slog.Info("date selected", "chat", chatID, "date", d.String())
			text := telegram.PickedText(b.Pickers.Message(lang, locale.MsgPicked), d)
			edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, text)
			if _, err := b.API.Request(edit); err != nil {
				if _, err := b.API.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
					slog.Warn("send selected date", "chat", chatID, "error", err)
				}
			}
		}
		return nil, chat.Acknowledge(ctx, 0)
	})
	if err != nil {
		slog.Error("process picker callback", "chat", chatID, "error", err)
	}
}

func languageOf(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.LanguageCode
}
