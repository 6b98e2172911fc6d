package datepicker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRender(t *testing.T) {
	p := New(testSettings(Options{}))
	kb := p.Render(MonthView, MustDate(2024, 3, 15))

	require.Len(t, kb, 5)
	assert.Equal(t, []string{"<<", "2024", ">>"}, texts(kb[0]))
	assert.Equal(t, []string{"Jan", "Feb", "Mar *", "Apr"}, texts(kb[1]))
	assert.Equal(t, []string{"May", "Jun", "Jul", "Aug"}, texts(kb[2]))
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec"}, texts(kb[3]))
	assert.Equal(t, []string{"Select"}, texts(kb[4]))

	assert.Equal(t, "month:set-month:2024:4:15", kb[1][3].Data)
	assert.Equal(t, "month:year:2024:3:15", kb[0][1].Data)
}

func TestMonthRenderClampsCellDay(t *testing.T) {
	p := New(testSettings(Options{}))
	kb := p.Render(MonthView, MustDate(2024, 1, 31))

	feb, ok := findButton(kb, "Feb")
	require.True(t, ok)
	tok, err := DecodeToken(feb.Data)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, 2, 29), tok.Date)
}

func TestMonthRenderColumnsAndNoSelect(t *testing.T) {
	p := New(testSettings(Options{Month: &LayoutOptions{Columns: 3, Footer: []Row{}}}))
	kb := p.Render(MonthView, MustDate(2024, 3, 15))

	require.Len(t, kb, 5)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, texts(kb[1]), "no marker without select")
}

func TestMonthHandle(t *testing.T) {
	p := New(testSettings(Options{}))
	noSelect := New(testSettings(Options{Month: &LayoutOptions{Footer: []Row{}}}))
	ctx := context.Background()

	tests := []struct {
		name   string
		picker *Picker
		action ActionID
		want   Outcome
	}{
		{"set-month re-renders", p, ActionSetMonth, Navigate(MonthView, MustDate(2024, 5, 10))},
		{"set-month goes to day without select", noSelect, ActionSetMonth, Navigate(DayView, MustDate(2024, 5, 10))},
		{"select opens day view", p, ActionSelect, Navigate(DayView, MustDate(2024, 5, 10))},
		{"year opens year view", p, ActionYear, Navigate(YearView, MustDate(2024, 5, 10))},
		{"prev-year", p, ActionPrevYear, Navigate(MonthView, MustDate(2023, 5, 10))},
		{"next-year", p, ActionNextYear, Navigate(MonthView, MustDate(2025, 5, 10))},
		{"set-view", p, ActionSetView, Navigate(MonthView, MustDate(2024, 5, 10))},
		{"unknown", p, "teleport", Ignore()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.picker.Dispatch(ctx, &fakeChat{}, Token{View: MonthView, Action: tt.action, Date: MustDate(2024, 5, 10)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
