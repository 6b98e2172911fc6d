package flows

import (
	"context"

	"datepicker-bot/pkg/datepicker"
)

const (
	TodayID  datepicker.ActionID = "today"
	CancelID datepicker.ActionID = "cancel"
)

// Deleter — чат, который умеет удалить сообщение с пикером.
type Deleter interface {
	Delete(ctx context.Context) error
}

// Today переводит пикер на сегодняшнюю дату в виде дней.
func Today(label string, clock datepicker.Clock) *datepicker.Action {
	return &datepicker.Action{
		Name:  TodayID,
		Label: label,
		Views: []datepicker.ViewKind{datepicker.DayView, datepicker.YearView},
		OnCall: func(_ context.Context, _ datepicker.Call) (datepicker.Outcome, error) {
			return datepicker.Navigate(datepicker.DayView, datepicker.DateOf(clock.Now())), nil
		},
	}
}

// Cancel удаляет сообщение, если транспорт это поддерживает.
func Cancel(label string) *datepicker.Action {
	return &datepicker.Action{
		Name:  CancelID,
		Label: label,
		Views: []datepicker.ViewKind{datepicker.DayView},
		OnCall: func(ctx context.Context, call datepicker.Call) (datepicker.Outcome, error) {
			if d, ok := call.Chat.(Deleter); ok {
				if err := d.Delete(ctx); err != nil {
					return datepicker.Outcome{}, err
				}
			}
			return datepicker.Ignore(), nil
		},
	}
}

// Actions собирает действия бота. label переводит id действия в подпись.
func Actions(label func(id datepicker.ActionID) string, clock datepicker.Clock) []datepicker.CustomAction {
	if clock == nil {
		clock = datepicker.RealClock{}
	}
	return []datepicker.CustomAction{
		Today(label(TodayID), clock),
		Cancel(label(CancelID)),
	}
}
