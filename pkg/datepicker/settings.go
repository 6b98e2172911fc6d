package datepicker

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// IgnoreCacheTime: сколько секунд клиент не повторяет нажатие на неактивную кнопку.
const IgnoreCacheTime = 60

// LayoutOptions — переопределения раскладки одного вида.
// Пустые поля оставляют значения по умолчанию; пустой, но не nil Header убирает шапку.
type LayoutOptions struct {
	Header        []Row
	Footer        []Row
	ShowWeekdays  *bool
	WeekdayLabels []string
	MonthLabels   []string
	MonthNames    []string
	Columns       int
	YearOffset    int
}

// Layout — итоговая раскладка вида после слияния с умолчаниями.
type Layout struct {
	Header        []Row
	Footer        []Row
	ShowWeekdays  bool
	WeekdayLabels []string
	MonthLabels   []string
	MonthNames    []string
	Columns       int
	YearOffset    int
}

// SelectEnabled сообщает, есть ли в раскладке кнопка select.
func (l Layout) SelectEnabled() bool {
	return containsAction(l.Header, ActionSelect) || containsAction(l.Footer, ActionSelect)
}

// Options — настройки, которые передаёт приложение.
type Options struct {
	InitialView ViewKind
	// InitialDate по умолчанию равна сегодняшней дате по Clock.
	InitialDate   Date
	Day           *LayoutOptions
	Month         *LayoutOptions
	Year          *LayoutOptions
	Labels        map[string]string
	CustomActions []CustomAction
	Clock         Clock
	Logger        *slog.Logger
}

// Settings — проверенные неизменяемые настройки пикера.
type Settings struct {
	initialView ViewKind
	initialDate Date
	layouts     map[ViewKind]Layout
	labels      map[string]string
	actions     []CustomAction
	clock       Clock
	logger      *slog.Logger
}

func defaultLabels() map[string]string {
	return map[string]string{
		string(ActionPrevYear):  "<<",
		string(ActionNextYear):  ">>",
		string(ActionPrevYears): "<<",
		string(ActionNextYears): ">>",
		string(ActionPrevMonth): "<",
		string(ActionNextMonth): ">",
		string(ActionDaysTitle): "{month} {year}",
		string(ActionYear):      "{year}",
		string(ActionSelect):    "Select",
		string(ActionIgnore):    " ",
		"selected-day":          "{day} *",
		"selected-month":        "{month} *",
		"selected-year":         "{year} *",
		"present-day":           "• {day} •",
	}
}

func defaultLayouts() map[ViewKind]Layout {
	return map[ViewKind]Layout{
		DayView: {
			Header:        []Row{{ActionPrevYear, ActionDaysTitle, ActionNextYear}},
			Footer:        []Row{{ActionPrevMonth, ActionSelect, ActionNextMonth}},
			ShowWeekdays:  true,
			WeekdayLabels: []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
			MonthNames: []string{"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December"},
			Columns: 7,
		},
		MonthView: {
			Header:      []Row{{ActionPrevYear, ActionYear, ActionNextYear}},
			Footer:      []Row{{ActionSelect}},
			MonthLabels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Columns:     4,
		},
		YearView: {
			Header:     []Row{},
			Footer:     []Row{{ActionPrevYears, ActionNextYears}},
			Columns:    3,
			YearOffset: 4,
		},
	}
}

// встроенные действия, которые умеет рисовать каждый вид
var viewActions = map[ViewKind]map[ActionID]struct{}{
	DayView: {
		ActionPrevYear: {}, ActionNextYear: {}, ActionPrevMonth: {}, ActionNextMonth: {},
		ActionDaysTitle: {}, ActionSelect: {}, ActionIgnore: {},
	},
	MonthView: {
		ActionPrevYear: {}, ActionNextYear: {}, ActionYear: {}, ActionSelect: {}, ActionIgnore: {},
	},
	YearView: {
		ActionPrevYears: {}, ActionNextYears: {}, ActionIgnore: {},
	},
}

// NewSettings сливает опции с умолчаниями и проверяет результат.
// Умолчания создаются заново на каждый вызов.
func NewSettings(opts Options) (*Settings, error) {
	s := &Settings{
		initialView: opts.InitialView,
		initialDate: opts.InitialDate,
		labels:      defaultLabels(),
		clock:       opts.Clock,
		logger:      opts.Logger,
	}
	if s.initialView == "" {
		s.initialView = DayView
	}
	if !s.initialView.Valid() {
		return nil, &ConfigError{Slot: "initial_view", Reason: fmt.Sprintf("no view named %q", s.initialView)}
	}
	if !s.initialDate.IsZero() {
		if _, err := NewDate(s.initialDate.Year, s.initialDate.Month, s.initialDate.Day); err != nil {
			return nil, &ConfigError{Slot: "initial_date", Reason: err.Error()}
		}
	}
	if s.clock == nil {
		s.clock = RealClock{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	for k, v := range opts.Labels {
		s.labels[k] = v
	}

	custom := make(map[ActionID]struct{}, len(opts.CustomActions))
	for i, a := range opts.CustomActions {
		if a == nil {
			return nil, &ConfigError{Slot: fmt.Sprintf("custom_actions[%d]", i), Reason: "nil action"}
		}
		id := a.ID()
		switch {
		case id == "":
			return nil, &ConfigError{Slot: fmt.Sprintf("custom_actions[%d]", i), Reason: "empty action id"}
		case strings.Contains(string(id), tokenSep):
			return nil, &ConfigError{Slot: "custom_actions", Action: id, Reason: "id must not contain " + tokenSep}
		case id.Builtin():
			return nil, &ConfigError{Slot: "custom_actions", Action: id, Reason: "id shadows a built-in action"}
		}
		if _, dup := custom[id]; dup {
			return nil, &ConfigError{Slot: "custom_actions", Action: id, Reason: "duplicate action id"}
		}
		custom[id] = struct{}{}
		s.actions = append(s.actions, a)
	}

	defaults := defaultLayouts()
	s.layouts = make(map[ViewKind]Layout, len(defaults))
	overrides := map[ViewKind]*LayoutOptions{DayView: opts.Day, MonthView: opts.Month, YearView: opts.Year}
	for _, kind := range viewKinds {
		l, err := mergeLayout(kind, defaults[kind], overrides[kind])
		if err != nil {
			return nil, err
		}
		if err := validateRows(kind, "header", l.Header, custom); err != nil {
			return nil, err
		}
		if err := validateRows(kind, "footer", l.Footer, custom); err != nil {
			return nil, err
		}
		s.layouts[kind] = l
	}
	return s, nil
}

func mergeLayout(kind ViewKind, l Layout, o *LayoutOptions) (Layout, error) {
	if o == nil {
		return l, nil
	}
	if o.Header != nil {
		l.Header = copyRows(o.Header)
	}
	if o.Footer != nil {
		l.Footer = copyRows(o.Footer)
	}
	if o.ShowWeekdays != nil {
		l.ShowWeekdays = *o.ShowWeekdays
	}
	if o.WeekdayLabels != nil {
		if len(o.WeekdayLabels) != 7 {
			return l, &ConfigError{View: kind, Slot: "weekdays_labels", Reason: "should be 7 weekdays labels"}
		}
		l.WeekdayLabels = append([]string(nil), o.WeekdayLabels...)
	}
	if o.MonthLabels != nil {
		if len(o.MonthLabels) != 12 {
			return l, &ConfigError{View: kind, Slot: "months_labels", Reason: "should be 12 months labels"}
		}
		l.MonthLabels = append([]string(nil), o.MonthLabels...)
	}
	if o.MonthNames != nil {
		if len(o.MonthNames) != 12 {
			return l, &ConfigError{View: kind, Slot: "month_names", Reason: "should be 12 month names"}
		}
		l.MonthNames = append([]string(nil), o.MonthNames...)
	}
	if o.Columns < 0 {
		return l, &ConfigError{View: kind, Slot: "columns", Reason: "must not be negative"}
	}
	if o.Columns > 0 && kind != DayView {
		l.Columns = o.Columns
	}
	if o.YearOffset < 0 {
		return l, &ConfigError{View: kind, Slot: "year_offset", Reason: "must not be negative"}
	}
	if o.YearOffset > 0 {
		l.YearOffset = o.YearOffset
	}
	return l, nil
}

func validateRows(kind ViewKind, slot string, rows []Row, custom map[ActionID]struct{}) error {
	for _, id := range flatten(rows) {
		if _, ok := custom[id]; ok {
			continue
		}
		if !id.Builtin() {
			return &ConfigError{View: kind, Slot: slot, Action: id, Reason: "no action named " + string(id)}
		}
		if _, ok := viewActions[kind][id]; !ok {
			return &ConfigError{View: kind, Slot: slot, Action: id, Reason: "action is not available in this view"}
		}
	}
	return nil
}

func copyRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, append(Row(nil), r...))
	}
	return out
}

func (s *Settings) InitialView() ViewKind {
	return s.initialView
}

// InitialDate возвращает заданную дату или сегодняшнюю.
func (s *Settings) InitialDate() Date {
	if s.initialDate.IsZero() {
		return s.Today()
	}
	return s.initialDate
}

func (s *Settings) Today() Date {
	return DateOf(s.clock.Now())
}

// Layout возвращает копию раскладки вида.
func (s *Settings) Layout(kind ViewKind) Layout {
	l := s.layouts[kind]
	l.Header = copyRows(l.Header)
	l.Footer = copyRows(l.Footer)
	l.WeekdayLabels = append([]string(nil), l.WeekdayLabels...)
	l.MonthLabels = append([]string(nil), l.MonthLabels...)
	l.MonthNames = append([]string(nil), l.MonthNames...)
	return l
}

func (s *Settings) Label(key string) string {
	return s.labels[key]
}

func (s *Settings) customAction(id ActionID) (CustomAction, bool) {
	for _, a := range s.actions {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// LabelKeys перечисляет ключи таблицы подписей по умолчанию.
func LabelKeys() []string {
	labels := defaultLabels()
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
