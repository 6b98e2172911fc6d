package datepicker

import (
	"context"
	"sync"
)

// StateStore — внешнее хранилище состояния разговора.
type StateStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Session хранит выделенную дату в StateStore
// под ключом разговора. Порядок в Process: чтение, вычисление, запись,
// отрисовка, ответ на callback.
type Session struct {
	picker *Picker
	store  StateStore
	key    string
}

func NewSession(p *Picker, store StateStore, key string) *Session {
	return &Session{picker: p, store: store, key: key}
}

func (s *Session) Picker() *Picker {
	return s.picker
}

// Current возвращает сохранённую дату. Испорченное значение считается отсутствующим.
func (s *Session) Current(ctx context.Context) (Date, bool, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil || !ok {
		return Date{}, false, err
	}
	d, err := ParseDate(raw)
	if err != nil {
		s.picker.settings.logger.Warn("datepicker: drop stored date", "key", s.key, "value", raw, "error", err)
		return Date{}, false, nil
	}
	return d, true, nil
}

// Start сверяется с сохранённой датой, сохраняет её и рисует начальный вид.
func (s *Session) Start(ctx context.Context) (Keyboard, error) {
	d, ok, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		d = s.picker.settings.InitialDate()
	}
	if err := s.store.Set(ctx, s.key, d.String()); err != nil {
		return nil, err
	}
	return s.picker.Render(s.picker.settings.InitialView(), d), nil
}

// Process подставляет сохранённую дату в токены, которые не несут своей,
// и обрабатывает их как Picker.Process.
func (s *Session) Process(ctx context.Context, chat Chat, t Token) (Date, bool) {
	if t.Action != ActionIgnore && t.View.Valid() && !t.Action.carriesDate() {
		stored, ok, err := s.Current(ctx)
		if err != nil {
			s.picker.fail(ctx, chat, &TransitionError{View: t.View, Action: t.Action, Err: err})
			return Date{}, false
		}
		if ok {
			t.Date = stored
		}
	}
	return s.picker.process(ctx, chat, t, s.commit)
}

func (s *Session) ProcessData(ctx context.Context, chat Chat, data string) (Date, bool) {
	t, ok := s.picker.decode(ctx, chat, data)
	if !ok {
		return Date{}, false
	}
	return s.Process(ctx, chat, t)
}

func (s *Session) commit(ctx context.Context, o Outcome) error {
	if _, d, ok := o.navigation(); ok {
		return s.store.Set(ctx, s.key, d.String())
	}
	if o.Kind == Selected {
		return s.store.Set(ctx, s.key, o.Date.String())
	}
	return nil
}

// MemoryStore — StateStore в памяти процесса.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
