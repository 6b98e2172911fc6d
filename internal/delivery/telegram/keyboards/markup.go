package keyboards

import (
	"gopkg.in/telebot.v3"

	"datepicker-bot/pkg/datepicker"
)

// PickerUnique — ключ кнопок пикера в данных callback-а.
const PickerUnique = "datepicker"

// Markup переводит сетку пикера в inline-клавиатуру telebot.
func Markup(unique string, kb datepicker.Keyboard) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(kb))
	for _, r := range kb {
		row := make(telebot.Row, 0, len(r))
		for _, b := range r {
			row = append(row, markup.Data(b.Text, unique, b.Data))
		}
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return markup
}
