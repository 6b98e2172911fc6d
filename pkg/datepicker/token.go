package datepicker

import (
	"fmt"
	"strconv"
	"strings"
)

const tokenSep = ":"

// IgnoreData — токен кнопки, которая ничего не делает.
const IgnoreData = ":ignore:-1:-1:-1"

// Token — раскодированные данные кнопки: вид, действие и дата.
// У токена ignore дата нулевая.
type Token struct {
	View   ViewKind
	Action ActionID
	Date   Date
}

// EncodeToken собирает строку "view:action:year:month:day".
func EncodeToken(t Token) string {
	if t.Action == ActionIgnore {
		return IgnoreData
	}
	return encodeFields(string(t.View), string(t.Action), t.Date.Year, t.Date.Month, t.Date.Day)
}

func encodeFields(view, action string, year, month, day int) string {
	return strings.Join([]string{
		view,
		action,
		strconv.Itoa(year),
		strconv.Itoa(month),
		strconv.Itoa(day),
	}, tokenSep)
}

// DecodeToken разбирает строку токена. Для ignore дата не проверяется.
func DecodeToken(data string) (Token, error) {
	parts := strings.Split(data, tokenSep)
	if len(parts) != 5 {
		return Token{}, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedToken, len(parts))
	}
	var nums [3]int
	for i, p := range parts[2:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Token{}, fmt.Errorf("%w: field %d: %v", ErrMalformedToken, i+2, err)
		}
		nums[i] = n
	}
	view, action := ViewKind(parts[0]), ActionID(parts[1])
	if action == ActionIgnore {
		if view != "" && !view.Valid() {
			return Token{}, fmt.Errorf("%w: unknown view %q", ErrMalformedToken, view)
		}
		return Token{View: view, Action: ActionIgnore}, nil
	}
	if !view.Valid() {
		return Token{}, fmt.Errorf("%w: unknown view %q", ErrMalformedToken, view)
	}
	if action == "" {
		return Token{}, fmt.Errorf("%w: empty action", ErrMalformedToken)
	}
	d, err := NewDate(nums[0], nums[1], nums[2])
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return Token{View: view, Action: action, Date: d}, nil
}

// Button — подпись и токен одной inline-кнопки.
type Button struct {
	Text string
	Data string
}

// NewButton кодирует токен в кнопку.
func NewButton(text string, t Token) Button {
	return Button{Text: text, Data: EncodeToken(t)}
}

// IgnoreButton — неактивная кнопка (пустые ячейки, подписи дней недели).
func IgnoreButton(text string) Button {
	return Button{Text: text, Data: IgnoreData}
}

// Keyboard — сетка кнопок: строки сверху вниз, кнопки слева направо.
type Keyboard [][]Button
