package datepicker

import (
	"context"
	"strconv"
)

type OutcomeKind int

const (
	Ignored OutcomeKind = iota
	Navigated
	Selected
	Delegated
)

func (k OutcomeKind) String() string {
	switch k {
	case Navigated:
		return "navigated"
	case Selected:
		return "selected"
	case Delegated:
		return "delegated"
	default:
		return "ignored"
	}
}

// Outcome — результат обработки одного действия.
// Navigated несёт вид и дату, которые пикер отрисует, Selected несёт выбранную дату.
type Outcome struct {
	Kind  OutcomeKind
	View  ViewKind
	Date  Date
	inner *Outcome
}

func Ignore() Outcome {
	return Outcome{Kind: Ignored}
}

func Navigate(view ViewKind, d Date) Outcome {
	return Outcome{Kind: Navigated, View: view, Date: d}
}

func Select(d Date) Outcome {
	return Outcome{Kind: Selected, Date: d}
}

func delegate(o Outcome) Outcome {
	return Outcome{Kind: Delegated, inner: &o}
}

// Inner возвращает результат пользовательского действия для Delegated.
func (o Outcome) Inner() (Outcome, bool) {
	if o.Kind != Delegated || o.inner == nil {
		return Outcome{}, false
	}
	return *o.inner, true
}

// navigation возвращает вид и дату, которые нужно отрисовать, если они есть.
func (o Outcome) navigation() (ViewKind, Date, bool) {
	if inner, ok := o.Inner(); ok {
		return inner.navigation()
	}
	if o.Kind == Navigated {
		return o.View, o.Date, true
	}
	return "", Date{}, false
}

// Chat умеет заменить клавиатуру сообщения и ответить на callback.
// cacheTime в секундах, 0 означает без подсказки.
type Chat interface {
	Edit(ctx context.Context, kb Keyboard) error
	Acknowledge(ctx context.Context, cacheTime int) error
}

// Call — данные вызова пользовательского действия.
type Call struct {
	Chat   Chat
	View   ViewKind
	Action ActionID
	Date   Date
}

// CustomAction — кнопка и обработчик, которые приложение добавляет в любой вид.
// Поддерживаемые виды действие проверяет само, возвращая Ignore для чужих.
type CustomAction interface {
	ID() ActionID
	Button(view ViewKind, d Date) Button
	Handle(ctx context.Context, call Call) (Outcome, error)
}

// Action — готовая реализация CustomAction на функциях.
type Action struct {
	Name ActionID
	// Label — шаблон подписи с {year}, {month}, {day}.
	Label string
	// Views ограничивает виды, в которых действие обрабатывается. Пустой список разрешает все.
	Views  []ViewKind
	OnCall func(ctx context.Context, call Call) (Outcome, error)
}

func (a *Action) ID() ActionID {
	return a.Name
}

func (a *Action) Button(view ViewKind, d Date) Button {
	label := formatLabel(a.Label, d.Year, strconv.Itoa(d.Month), d.Day)
	return NewButton(label, Token{View: view, Action: a.Name, Date: d})
}

func (a *Action) Handle(ctx context.Context, call Call) (Outcome, error) {
	if !a.available(call.View) || a.OnCall == nil {
		return Ignore(), nil
	}
	return a.OnCall(ctx, call)
}

func (a *Action) available(view ViewKind) bool {
	if len(a.Views) == 0 {
		return true
	}
	for _, v := range a.Views {
		if v == view {
			return true
		}
	}
	return false
}
