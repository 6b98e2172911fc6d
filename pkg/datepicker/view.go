package datepicker

import (
	"context"
	"strconv"
	"strings"
)

type view interface {
	Kind() ViewKind
	Render(d Date) Keyboard
	Handle(ctx context.Context, chat Chat, action ActionID, d Date) (Outcome, error)
}

// baseView — общее для всех видов: шапка, подвал и пользовательские действия.
type baseView struct {
	kind     ViewKind
	settings *Settings
	layout   Layout
}

func newBaseView(kind ViewKind, s *Settings) baseView {
	return baseView{kind: kind, settings: s, layout: s.layouts[kind]}
}

func (b *baseView) Kind() ViewKind {
	return b.kind
}

// actionRows рисует строки шапки или подвала: сначала встроенные кнопки вида,
// затем пользовательские действия в порядке регистрации.
func (b *baseView) actionRows(rows []Row, d Date, builtin func(ActionID, Date) (Button, bool)) Keyboard {
	var kb Keyboard
	for _, r := range rows {
		var out []Button
		for _, id := range r {
			if btn, ok := builtin(id, d); ok {
				out = append(out, btn)
				continue
			}
			if a, ok := b.settings.customAction(id); ok {
				out = append(out, a.Button(b.kind, d))
			}
		}
		if len(out) > 0 {
			kb = append(kb, out)
		}
	}
	return kb
}

// plainButton рисует кнопку действия с подписью из таблицы и датой текущего вида.
func (b *baseView) plainButton(id ActionID, d Date) Button {
	label := b.label(string(id), d, strconv.Itoa(d.Month))
	if id == ActionIgnore {
		return IgnoreButton(label)
	}
	return NewButton(label, Token{View: b.kind, Action: id, Date: d})
}

func (b *baseView) label(key string, d Date, month string) string {
	return formatLabel(b.settings.Label(key), d.Year, month, d.Day)
}

func (b *baseView) delegate(ctx context.Context, chat Chat, action ActionID, d Date) (Outcome, error) {
	a, ok := b.settings.customAction(action)
	if !ok {
		return Ignore(), nil
	}
	o, err := a.Handle(ctx, Call{Chat: chat, View: b.kind, Action: action, Date: d})
	if err != nil {
		return Outcome{}, err
	}
	return delegate(o), nil
}

func formatLabel(tpl string, year int, month string, day int) string {
	if !strings.Contains(tpl, "{") {
		return tpl
	}
	return strings.NewReplacer(
		"{year}", strconv.Itoa(year),
		"{month}", month,
		"{day}", strconv.Itoa(day),
	).Replace(tpl)
}

// chunk раскладывает кнопки по строкам заданной ширины.
func chunk(buttons []Button, width int) Keyboard {
	if width <= 0 {
		width = len(buttons)
	}
	var kb Keyboard
	for len(buttons) > 0 {
		n := width
		if n > len(buttons) {
			n = len(buttons)
		}
		kb = append(kb, buttons[:n:n])
		buttons = buttons[n:]
	}
	return kb
}
