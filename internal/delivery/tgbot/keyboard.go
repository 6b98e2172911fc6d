package tgbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"datepicker-bot/internal/delivery/telegram/router"
	"datepicker-bot/pkg/datepicker"
)

// Markup переводит сетку пикера в inline-клавиатуру.
// Данные кнопок кодируются так же, как в telebot: "\f<unique>|<token>".
func Markup(unique string, kb datepicker.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, r := range kb {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(r))
		for _, b := range r {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Text, router.Join(unique, b.Data)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
