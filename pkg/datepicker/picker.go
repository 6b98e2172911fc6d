package datepicker

import (
	"context"
	"errors"
)

// Picker хранит три вида и маршрутизирует между ними callback-и.
// Состояния между вызовами не держит: выделенная дата живёт в токенах кнопок.
type Picker struct {
	settings *Settings
	views    map[ViewKind]view
}

// New создаёт пикер по проверенным настройкам. При nil берутся настройки по умолчанию.
func New(settings *Settings) *Picker {
	if settings == nil {
		var err error
		if settings, err = NewSettings(Options{}); err != nil {
			panic(err)
		}
	}
	return &Picker{
		settings: settings,
		views: map[ViewKind]view{
			DayView:   newDayView(settings),
			MonthView: newMonthView(settings),
			YearView:  newYearView(settings),
		},
	}
}

// NewPicker проверяет опции и создаёт пикер.
func NewPicker(opts Options) (*Picker, error) {
	s, err := NewSettings(opts)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

func (p *Picker) Settings() *Settings {
	return p.settings
}

// Start рисует начальный вид на начальную дату.
func (p *Picker) Start() Keyboard {
	return p.Render(p.settings.InitialView(), p.settings.InitialDate())
}

// Render рисует вид на дату; для неизвестного вида возвращает nil.
func (p *Picker) Render(kind ViewKind, d Date) Keyboard {
	v, ok := p.views[kind]
	if !ok {
		return nil
	}
	return v.Render(d)
}

// Dispatch только вычисляет результат действия, ничего не отрисовывая.
func (p *Picker) Dispatch(ctx context.Context, chat Chat, t Token) (Outcome, error) {
	v, ok := p.views[t.View]
	if !ok || t.Action == ActionIgnore {
		return Ignore(), nil
	}
	o, err := v.Handle(ctx, chat, t.Action, t.Date)
	if err != nil {
		return Outcome{}, &TransitionError{View: t.View, Action: t.Action, Err: err}
	}
	return o, nil
}

// Process обрабатывает callback и возвращает выбранную дату, если выбор завершён.
// Любой сбой перехода логируется, на callback отвечается с подсказкой кэша,
// и вызов считается обработанным без результата.
func (p *Picker) Process(ctx context.Context, chat Chat, t Token) (Date, bool) {
	return p.process(ctx, chat, t, nil)
}

// ProcessData раскодирует токен и обрабатывает его как Process.
func (p *Picker) ProcessData(ctx context.Context, chat Chat, data string) (Date, bool) {
	t, ok := p.decode(ctx, chat, data)
	if !ok {
		return Date{}, false
	}
	return p.Process(ctx, chat, t)
}

func (p *Picker) decode(ctx context.Context, chat Chat, data string) (Token, bool) {
	t, err := DecodeToken(data)
	if err != nil {
		p.settings.logger.Warn("datepicker: malformed callback", "data", data, "error", err)
		p.acknowledge(ctx, chat)
		return Token{}, false
	}
	return t, true
}

// commitFunc вызывается между вычислением результата и отрисовкой.
type commitFunc func(ctx context.Context, o Outcome) error

func (p *Picker) process(ctx context.Context, chat Chat, t Token, commit commitFunc) (Date, bool) {
	if t.Action == ActionIgnore || !t.View.Valid() {
		p.acknowledge(ctx, chat)
		return Date{}, false
	}
	o, err := p.Dispatch(ctx, chat, t)
	if err == nil && commit != nil {
		if cerr := commit(ctx, o); cerr != nil {
			err = &TransitionError{View: t.View, Action: t.Action, Err: cerr}
		}
	}
	if err == nil {
		err = p.apply(ctx, chat, t, o)
	}
	if err != nil {
		p.fail(ctx, chat, err)
		return Date{}, false
	}
	if o.Kind == Selected {
		return o.Date, true
	}
	return Date{}, false
}

// apply отрисовывает вид, запрошенный результатом, и отправляет клавиатуру в чат.
func (p *Picker) apply(ctx context.Context, chat Chat, t Token, o Outcome) error {
	kind, d, ok := o.navigation()
	if !ok {
		return nil
	}
	kb := p.Render(kind, d)
	if kb == nil {
		return &TransitionError{View: t.View, Action: t.Action, Err: errors.New("unknown view " + string(kind))}
	}
	if err := chat.Edit(ctx, kb); err != nil {
		return &TransitionError{View: t.View, Action: t.Action, Err: err}
	}
	return nil
}

func (p *Picker) fail(ctx context.Context, chat Chat, err error) {
	var te *TransitionError
	if errors.As(err, &te) {
		p.settings.logger.Warn("datepicker: transition failed",
			"view", te.View, "action", te.Action, "error", te.Err)
	} else {
		p.settings.logger.Warn("datepicker: transition failed", "error", err)
	}
	p.acknowledge(ctx, chat)
}

func (p *Picker) acknowledge(ctx context.Context, chat Chat) {
	if err := chat.Acknowledge(ctx, IgnoreCacheTime); err != nil {
		p.settings.logger.Warn("datepicker: answer callback", "error", err)
	}
}
