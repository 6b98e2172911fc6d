package middleware

import (
	"strings"

	"gopkg.in/telebot.v3"
)

func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	if err := c.Edit(text); err != nil {
		return c.Send(text)
	}
	return nil
}

// EditMarkup меняет только клавиатуру сообщения.
// Повторная отрисовка той же клавиатуры ("message is not modified") не считается ошибкой.
func EditMarkup(bot *telebot.Bot, msg telebot.Editable, markup *telebot.ReplyMarkup) error {
	if _, err := bot.EditReplyMarkup(msg, markup); err != nil {
		if NotModified(err) {
			return nil
		}
		return err
	}
	return nil
}

func NotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not modified")
}
