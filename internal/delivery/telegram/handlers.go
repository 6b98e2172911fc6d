package telegram

import (
	"context"
	"log/slog"
	"strings"

	"gopkg.in/telebot.v3"

	"datepicker-bot/internal/app/service"
	"datepicker-bot/internal/delivery/telegram/keyboards"
	"datepicker-bot/internal/delivery/telegram/middleware"
	"datepicker-bot/internal/delivery/telegram/router"
	"datepicker-bot/internal/locale"
	"datepicker-bot/pkg/datepicker"
)

// DateFormat — формат выбранной даты в ответе пользователю (dd/mm/yyyy).
const DateFormat = "02/01/2006"

type Handler struct {
	Bot     *telebot.Bot
	Pickers *service.PickerService
	Async   *service.AsyncService
	Router  *router.CallbackRouter
}

func (h *Handler) Register() {
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/date", h.handleStart)

	if h.Router == nil {
		h.Router = router.New()
	}
	h.Router.Register(keyboards.PickerUnique, h.handlePicker)
	h.Router.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	lang := languageOf(c)
	session := h.Pickers.Session(lang, c.Chat().ID)
	kb, err := session.Start(context.Background())
	if err != nil {
		slog.Error("start picker", "chat", c.Chat().ID, "error", err)
		return err
	}
	return c.Send(h.Pickers.Message(lang, locale.MsgPrompt), keyboards.Markup(keyboards.PickerUnique, kb))
}

func (h *Handler) handlePicker(c telebot.Context, payload string) error {
	chatID := c.Chat().ID
	_, err := h.Async.SubmitAsync(service.StateKey(chatID), func() (any, error) {
		ctx := context.Background()
		lang := languageOf(c)
		chat := NewChat(h.Bot, c, keyboards.PickerUnique)

		d, ok := h.Pickers.Session(lang, chatID).ProcessData(ctx, chat, payload)
		if ok {
			slog.Info("date selected", "chat", chatID, "date", d.String())
			if err := middleware.EditOrSend(c, PickedText(h.Pickers.Message(lang, locale.MsgPicked), d), nil); err != nil {
				slog.Warn("send selected date", "chat", chatID, "error", err)
			}
		}
		return nil, chat.Acknowledge(ctx, 0)
	})
	if err != nil {
		slog.Error("process picker callback", "chat", chatID, "error", err)
	}
	return err
}

// PickedText подставляет дату в сообщение о выборе.
func PickedText(tpl string, d datepicker.Date) string {
	return strings.ReplaceAll(tpl, "{date}", d.Time().Format(DateFormat))
}

func languageOf(c telebot.Context) string {
	if u := c.Sender(); u != nil {
		return u.LanguageCode
	}
	return ""
}
