package telegram

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"gopkg.in/telebot.v3"

	"datepicker-bot/internal/delivery/telegram/keyboards"
	"datepicker-bot/internal/delivery/telegram/middleware"
	"datepicker-bot/pkg/datepicker"
)

// Chat связывает пикер с сообщением, к которому пришёл callback.
type Chat struct {
	bot     *telebot.Bot
	c       telebot.Context
	unique  string
	ackOnce sync.Once
	ackErr  error
}

func NewChat(bot *telebot.Bot, c telebot.Context, unique string) *Chat {
	return &Chat{bot: bot, c: c, unique: unique}
}

// ErrNoMessage — callback пришёл не от сообщения с клавиатурой.
var ErrNoMessage = errors.New("callback has no message to edit")

func (ch *Chat) Edit(_ context.Context, kb datepicker.Keyboard) error {
	cb := ch.c.Callback()
	if cb == nil {
		return ErrNoMessage
	}
	return middleware.EditMarkup(ch.bot, cb, keyboards.Markup(ch.unique, kb))
}

// Acknowledge отвечает на callback не больше одного раза.
// CallbackResponse в telebot не умеет cache_time, поэтому запрос уходит через Raw.
func (ch *Chat) Acknowledge(_ context.Context, cacheTime int) error {
	ch.ackOnce.Do(func() {
		cb := ch.c.Callback()
		if cb == nil {
			return
		}
		params := map[string]string{"callback_query_id": cb.ID}
		if cacheTime > 0 {
			params["cache_time"] = strconv.Itoa(cacheTime)
		}
		_, ch.ackErr = ch.bot.Raw("answerCallbackQuery", params)
	})
	return ch.ackErr
}

func (ch *Chat) Delete(_ context.Context) error {
	return ch.c.Delete()
}
