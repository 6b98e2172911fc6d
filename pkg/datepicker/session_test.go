package datepicker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	getErr, setErr error
}

func (s failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, s.getErr
}

func (s failingStore) Set(context.Context, string, string) error {
	return s.setErr
}

func TestSessionStartUsesStoredDate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := New(testSettings(Options{}))

	kb, err := NewSession(p, store, "42").Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "March 2024", kb[0][1].Text)
	v, ok, _ := store.Get(ctx, "42")
	require.True(t, ok)
	assert.Equal(t, "2024-03-20", v)

	require.NoError(t, store.Set(ctx, "42", "2025-07-01"))
	kb, err = NewSession(p, store, "42").Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "July 2025", kb[0][1].Text)
}

func TestSessionStartIgnoresCorruptState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "42", "garbage"))

	kb, err := NewSession(New(testSettings(Options{})), store, "42").Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "March 2024", kb[0][1].Text)
}

func TestSessionTracksNavigation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := NewSession(New(testSettings(Options{})), store, "42")
	chat := &fakeChat{}

	_, err := s.Start(ctx)
	require.NoError(t, err)

	_, ok := s.ProcessData(ctx, chat, "day:set-day:2024:3:9")
	assert.False(t, ok)
	v, _, _ := store.Get(ctx, "42")
	assert.Equal(t, "2024-03-09", v)

	// токен со старой клавиатуры: дата берётся из хранилища
	_, ok = s.ProcessData(ctx, chat, "day:next-month:2024:3:20")
	assert.False(t, ok)
	v, _, _ = store.Get(ctx, "42")
	assert.Equal(t, "2024-04-09", v)
	assert.Equal(t, "April 2024", chat.lastEdit()[0][1].Text)

	d, ok := s.ProcessData(ctx, chat, "day:select:2024:3:20")
	require.True(t, ok)
	assert.Equal(t, MustDate(2024, 4, 9), d)
}

func TestSessionIgnoreDoesNotTouchStore(t *testing.T) {
	s := NewSession(New(testSettings(Options{})), failingStore{getErr: errBoom, setErr: errBoom}, "42")
	chat := &fakeChat{}

	_, ok := s.ProcessData(context.Background(), chat, IgnoreData)
	assert.False(t, ok)
	assert.Equal(t, []int{IgnoreCacheTime}, chat.acks)
}

func TestSessionStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("read", func(t *testing.T) {
		s := NewSession(New(testSettings(Options{})), failingStore{getErr: errBoom}, "42")
		chat := &fakeChat{}
		_, ok := s.ProcessData(ctx, chat, "day:next-month:2024:3:20")
		assert.False(t, ok)
		assert.Empty(t, chat.edits)
		assert.Equal(t, []int{IgnoreCacheTime}, chat.acks)

		_, err := s.Start(ctx)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("write happens before edit", func(t *testing.T) {
		s := NewSession(New(testSettings(Options{})), failingStore{setErr: errBoom}, "42")
		chat := &fakeChat{}
		_, ok := s.ProcessData(ctx, chat, "day:next-month:2024:3:20")
		assert.False(t, ok)
		assert.Empty(t, chat.edits, "nothing is rendered when the state write fails")
		assert.Equal(t, []int{IgnoreCacheTime}, chat.acks)
	})
}
