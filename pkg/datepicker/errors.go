package datepicker

import (
	"errors"
	"fmt"
)

var (
	ErrConfig         = errors.New("datepicker: invalid settings")
	ErrMalformedToken = errors.New("datepicker: malformed token")
	ErrInvalidDate    = errors.New("datepicker: invalid date")
	ErrTransition     = errors.New("datepicker: transition failed")
)

// ConfigError описывает ошибку в настройках; путь повторяет структуру опций.
type ConfigError struct {
	View   ViewKind
	Slot   string
	Action ActionID
	Reason string
}

func (e *ConfigError) Error() string {
	path := "settings"
	if e.View != "" {
		path = "views -> " + string(e.View)
	}
	if e.Slot != "" {
		path += " -> " + e.Slot
	}
	if e.Action != "" {
		return fmt.Sprintf("%s -> %s: %s", path, e.Action, e.Reason)
	}
	return path + ": " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// TransitionError описывает сбой во время обработки действия. Пикер его логирует и проглатывает.
type TransitionError struct {
	View   ViewKind
	Action ActionID
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("datepicker: %s/%s: %v", e.View, e.Action, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransition
}
