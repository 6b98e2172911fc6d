package datepicker

import "strings"

// ViewKind — один из трёх видов календаря.
type ViewKind string

const (
	DayView   ViewKind = "day"
	MonthView ViewKind = "month"
	YearView  ViewKind = "year"
)

var viewKinds = []ViewKind{DayView, MonthView, YearView}

func (v ViewKind) Valid() bool {
	return v == DayView || v == MonthView || v == YearView
}

// ActionID — идентификатор действия в токене кнопки.
type ActionID string

const (
	ActionPrevYear  ActionID = "prev-year"
	ActionNextYear  ActionID = "next-year"
	ActionPrevYears ActionID = "prev-years"
	ActionNextYears ActionID = "next-years"
	ActionPrevMonth ActionID = "prev-month"
	ActionNextMonth ActionID = "next-month"
	ActionSetDay    ActionID = "set-day"
	ActionSetMonth  ActionID = "set-month"
	ActionSetYear   ActionID = "set-year"
	ActionSetView   ActionID = "set-view"
	ActionSelect    ActionID = "select"
	ActionDaysTitle ActionID = "days-title"
	ActionYear      ActionID = "year"
	ActionIgnore    ActionID = "ignore"
)

var builtinActions = map[ActionID]struct{}{
	ActionPrevYear: {}, ActionNextYear: {}, ActionPrevYears: {}, ActionNextYears: {},
	ActionPrevMonth: {}, ActionNextMonth: {}, ActionSetDay: {}, ActionSetMonth: {},
	ActionSetYear: {}, ActionSetView: {}, ActionSelect: {}, ActionDaysTitle: {},
	ActionYear: {}, ActionIgnore: {},
}

// Builtin сообщает, входит ли действие во встроенный набор.
func (a ActionID) Builtin() bool {
	_, ok := builtinActions[a]
	return ok
}

// carriesDate: кнопки-ячейки несут собственную дату, остальные действия
// работают от текущей выделенной даты.
func (a ActionID) carriesDate() bool {
	return a == ActionSetDay || a == ActionSetMonth || a == ActionSetYear
}

// Row — одна строка кнопок в шапке или подвале вида.
type Row []ActionID

// ParseRows разбирает компактную запись раскладки:
// "prev-month,select,next-month;cancel" даёт две строки.
func ParseRows(s string) []Row {
	rows := []Row{}
	for _, part := range strings.Split(s, ";") {
		var row Row
		for _, id := range strings.Split(part, ",") {
			if id = strings.TrimSpace(id); id != "" {
				row = append(row, ActionID(id))
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// flatten разворачивает строки в плоский список действий.
func flatten(rows []Row) []ActionID {
	var out []ActionID
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func containsAction(rows []Row, a ActionID) bool {
	for _, id := range flatten(rows) {
		if id == a {
			return true
		}
	}
	return false
}
