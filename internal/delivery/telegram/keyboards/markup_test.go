package keyboards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepicker-bot/pkg/datepicker"
)

func TestMarkup(t *testing.T) {
	kb := datepicker.Keyboard{
		{{Text: "<<", Data: "day:prev-year:2024:3:15"}, {Text: "March 2024", Data: "day:days-title:2024:3:15"}},
		{datepicker.IgnoreButton(" ")},
	}
	markup := Markup(PickerUnique, kb)

	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "<<", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, PickerUnique, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "day:prev-year:2024:3:15", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, datepicker.IgnoreData, markup.InlineKeyboard[1][0].Data)
}
