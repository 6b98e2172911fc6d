package service

import (
	"fmt"
	"strconv"

	"datepicker-bot/internal/locale"
	"datepicker-bot/pkg/datepicker"
)

// ActionsFunc строит пользовательские действия для языка.
type ActionsFunc func(lang string) []datepicker.CustomAction

// PickerService держит готовые пикеры для каждого языка каталога
// и выдаёт сессии по id чата.
type PickerService struct {
	catalog *locale.Catalog
	store   datepicker.StateStore
	pickers map[string]*datepicker.Picker
}

// NewPickerService проверяет настройки для всех языков сразу,
// так что ошибка конфигурации всплывает при старте.
func NewPickerService(base datepicker.Options, catalog *locale.Catalog, store datepicker.StateStore, actions ActionsFunc) (*PickerService, error) {
	s := &PickerService{
		catalog: catalog,
		store:   store,
		pickers: make(map[string]*datepicker.Picker),
	}
	for _, lang := range catalog.Languages() {
		opts := catalog.Apply(lang, base)
		if actions != nil {
			opts.CustomActions = append(append([]datepicker.CustomAction(nil), base.CustomActions...), actions(lang)...)
		}
		p, err := datepicker.NewPicker(opts)
		if err != nil {
			return nil, fmt.Errorf("picker for %q: %w", lang, err)
		}
		s.pickers[lang] = p
	}
	return s, nil
}

// Picker возвращает пикер для кода языка Telegram (language_code).
func (s *PickerService) Picker(code string) *datepicker.Picker {
	return s.pickers[s.catalog.Match(code)]
}

func (s *PickerService) Session(code string, chatID int64) *datepicker.Session {
	return datepicker.NewSession(s.Picker(code), s.store, StateKey(chatID))
}

func (s *PickerService) Message(code, id string) string {
	return s.catalog.Message(s.catalog.Match(code), id)
}

// StateKey — ключ состояния разговора.
func StateKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
