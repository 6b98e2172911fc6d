package datepicker

import "context"

type monthView struct {
	baseView
}

func newMonthView(s *Settings) *monthView {
	return &monthView{baseView: newBaseView(MonthView, s)}
}

func (v *monthView) button(id ActionID, d Date) (Button, bool) {
	switch id {
	case ActionPrevYear, ActionNextYear, ActionSelect, ActionIgnore:
		return v.plainButton(id, d), true
	case ActionYear:
		label := v.label(string(id), d, v.layout.MonthLabels[d.Month-1])
		return NewButton(label, Token{View: MonthView, Action: ActionYear, Date: d}), true
	}
	return Button{}, false
}

func (v *monthView) Render(d Date) Keyboard {
	kb := v.actionRows(v.layout.Header, d, v.button)

	selectOn := v.layout.SelectEnabled()
	cells := make([]Button, 0, 12)
	for i, title := range v.layout.MonthLabels {
		month := i + 1
		label := title
		if month == d.Month && selectOn {
			label = v.label("selected-month", d, title)
		}
		y, m, day := d.withClampedDay(d.Year, month)
		cells = append(cells, Button{Text: label, Data: encodeFields(string(MonthView), string(ActionSetMonth), y, m, day)})
	}
	kb = append(kb, chunk(cells, v.layout.Columns)...)

	return append(kb, v.actionRows(v.layout.Footer, d, v.button)...)
}

func (v *monthView) Handle(ctx context.Context, chat Chat, action ActionID, d Date) (Outcome, error) {
	switch action {
	case ActionSetView:
		return Navigate(MonthView, d), nil
	case ActionSetMonth:
		if !v.layout.SelectEnabled() {
			return Navigate(DayView, d), nil
		}
		return Navigate(MonthView, d), nil
	case ActionPrevYear, ActionNextYear:
		n := 1
		if action == ActionPrevYear {
			n = -1
		}
		next, err := d.AddYears(n)
		if err != nil {
			return Outcome{}, err
		}
		return Navigate(MonthView, next), nil
	case ActionSelect:
		return Navigate(DayView, d), nil
	case ActionYear:
		return Navigate(YearView, d), nil
	case ActionIgnore:
		return Ignore(), nil
	}
	return v.delegate(ctx, chat, action, d)
}

