package router

import (
	"log/slog"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter раскладывает callback-и по ключу кнопки (telebot unique).
// На callback отвечает сам обработчик; router отвечает только на неизвестные ключи.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
}

func New() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	raw := c.Data()
	if cb := c.Callback(); cb != nil && cb.Unique != "" {
		raw = Join(cb.Unique, cb.Data)
	}
	key, payload := Split(raw)
	slog.Debug("callback", "raw", raw, "key", key)

	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	_ = c.Respond()
	return false, nil
}

// Split разбирает данные кнопки "\f<key>|<payload>".
func Split(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}

// Join собирает данные кнопки в том же формате, что и telebot.
func Join(key, payload string) string {
	return "\f" + key + "|" + payload
}
