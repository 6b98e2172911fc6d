package datepicker

import (
	"context"
	"errors"
	"time"
)

type fakeChat struct {
	edits   []Keyboard
	acks    []int
	editErr error
}

func (c *fakeChat) Edit(_ context.Context, kb Keyboard) error {
	if c.editErr != nil {
		return c.editErr
	}
	c.edits = append(c.edits, kb)
	return nil
}

func (c *fakeChat) Acknowledge(_ context.Context, cacheTime int) error {
	c.acks = append(c.acks, cacheTime)
	return nil
}

func (c *fakeChat) lastEdit() Keyboard {
	if len(c.edits) == 0 {
		return nil
	}
	return c.edits[len(c.edits)-1]
}

var errBoom = errors.New("boom")

// fixedNow — 20 марта 2024, среда.
var fixedNow = FixedClock(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC))

func testSettings(opts Options) *Settings {
	if opts.Clock == nil {
		opts.Clock = fixedNow
	}
	s, err := NewSettings(opts)
	if err != nil {
		panic(err)
	}
	return s
}

func findButton(kb Keyboard, text string) (Button, bool) {
	for _, row := range kb {
		for _, b := range row {
			if b.Text == text {
				return b, true
			}
		}
	}
	return Button{}, false
}

func texts(row []Button) []string {
	out := make([]string, 0, len(row))
	for _, b := range row {
		out = append(out, b.Text)
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}
