package datepicker

import (
	"context"
	"strconv"
)

type dayView struct {
	baseView
}

func newDayView(s *Settings) *dayView {
	return &dayView{baseView: newBaseView(DayView, s)}
}

func (v *dayView) button(id ActionID, d Date) (Button, bool) {
	switch id {
	case ActionPrevYear, ActionNextYear, ActionPrevMonth, ActionNextMonth, ActionSelect, ActionIgnore:
		return v.plainButton(id, d), true
	case ActionDaysTitle:
		label := v.label(string(id), d, v.layout.MonthNames[d.Month-1])
		return NewButton(label, Token{View: DayView, Action: ActionDaysTitle, Date: d}), true
	}
	return Button{}, false
}

// Render рисует месяц по неделям с понедельника, d выделена.
func (v *dayView) Render(d Date) Keyboard {
	kb := v.actionRows(v.layout.Header, d, v.button)

	if v.layout.ShowWeekdays {
		row := make([]Button, 0, 7)
		for _, wd := range v.layout.WeekdayLabels {
			row = append(row, IgnoreButton(wd))
		}
		kb = append(kb, row)
	}

	blank := v.settings.Label(string(ActionIgnore))
	today := v.settings.Today()
	selectOn := v.layout.SelectEnabled()

	offset := (int(Date{Year: d.Year, Month: d.Month, Day: 1}.Time().Weekday()) + 6) % 7
	days := DaysIn(d.Year, d.Month)
	cells := make([]Button, 0, 42)
	for i := 0; i < offset; i++ {
		cells = append(cells, IgnoreButton(blank))
	}
	for day := 1; day <= days; day++ {
		cell := Date{Year: d.Year, Month: d.Month, Day: day}
		label := strconv.Itoa(day)
		switch {
		case cell == d && selectOn:
			label = v.label("selected-day", cell, strconv.Itoa(cell.Month))
		case cell == today:
			label = v.label("present-day", cell, strconv.Itoa(cell.Month))
		}
		cells = append(cells, NewButton(label, Token{View: DayView, Action: ActionSetDay, Date: cell}))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, IgnoreButton(blank))
	}
	kb = append(kb, chunk(cells, 7)...)

	return append(kb, v.actionRows(v.layout.Footer, d, v.button)...)
}

func (v *dayView) Handle(ctx context.Context, chat Chat, action ActionID, d Date) (Outcome, error) {
	switch action {
	case ActionSelect:
		return Select(d), nil
	case ActionSetDay:
		if !v.layout.SelectEnabled() {
			return Select(d), nil
		}
		return Navigate(DayView, d), nil
	case ActionSetView:
		return Navigate(DayView, d), nil
	case ActionPrevYear, ActionNextYear:
		n := 1
		if action == ActionPrevYear {
			n = -1
		}
		next, err := d.AddYears(n)
		if err != nil {
			return Outcome{}, err
		}
		return Navigate(DayView, next), nil
	case ActionPrevMonth, ActionNextMonth:
		n := 1
		if action == ActionPrevMonth {
			n = -1
		}
		next, err := d.AddMonths(n)
		if err != nil {
			return Outcome{}, err
		}
		return Navigate(DayView, next), nil
	case ActionDaysTitle:
		return Navigate(MonthView, d), nil
	case ActionIgnore:
		return Ignore(), nil
	}
	return v.delegate(ctx, chat, action, d)
}
