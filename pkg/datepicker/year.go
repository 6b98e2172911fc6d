package datepicker

import (
	"context"
	"strconv"
)

type yearView struct {
	baseView
}

func newYearView(s *Settings) *yearView {
	return &yearView{baseView: newBaseView(YearView, s)}
}

// window считает, сколько лет видно на странице. На столько же листают prev-years/next-years.
func (v *yearView) window() int {
	return 2*v.layout.YearOffset + 1
}

func (v *yearView) button(id ActionID, d Date) (Button, bool) {
	switch id {
	case ActionPrevYears, ActionNextYears, ActionIgnore:
		return v.plainButton(id, d), true
	}
	return Button{}, false
}

func (v *yearView) Render(d Date) Keyboard {
	kb := v.actionRows(v.layout.Header, d, v.button)

	blank := v.settings.Label(string(ActionIgnore))
	cells := make([]Button, 0, v.window())
	for value := d.Year - v.layout.YearOffset; value <= d.Year+v.layout.YearOffset; value++ {
		if value < 1 || value > 9999 {
			cells = append(cells, IgnoreButton(blank))
			continue
		}
		label := strconv.Itoa(value)
		if value == d.Year {
			label = v.label("selected-year", d, strconv.Itoa(d.Month))
		}
		y, m, day := d.withClampedDay(value, d.Month)
		cells = append(cells, Button{Text: label, Data: encodeFields(string(YearView), string(ActionSetYear), y, m, day)})
	}
	kb = append(kb, chunk(cells, v.layout.Columns)...)

	return append(kb, v.actionRows(v.layout.Footer, d, v.button)...)
}

func (v *yearView) Handle(ctx context.Context, chat Chat, action ActionID, d Date) (Outcome, error) {
	switch action {
	case ActionSetView:
		return Navigate(YearView, d), nil
	case ActionPrevYears, ActionNextYears:
		n := v.window()
		if action == ActionPrevYears {
			n = -n
		}
		next, err := d.AddYears(n)
		if err != nil {
			return Outcome{}, err
		}
		return Navigate(YearView, next), nil
	case ActionSetYear:
		return Navigate(MonthView, d), nil
	case ActionIgnore:
		return Ignore(), nil
	}
	return v.delegate(ctx, chat, action, d)
}
