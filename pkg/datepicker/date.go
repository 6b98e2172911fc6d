package datepicker

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date — календарная дата без времени и часового пояса.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate создаёт дату и проверяет, что она существует в григорианском календаре.
func NewDate(year, month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate как NewDate, но паникует на несуществующей дате.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf отбрасывает время и зону.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return DateOf(t), nil
}

// DaysIn возвращает количество дней в месяце.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// AddYears сдвигает год, не трогая месяц и день. 29 февраля в невисокосный год даёт ошибку.
func (d Date) AddYears(n int) (Date, error) {
	return NewDate(d.Year+n, d.Month, d.Day)
}

// AddMonths сдвигает месяц с переносом через границу года, день не ограничивается.
func (d Date) AddMonths(n int) (Date, error) {
	idx := d.Year*12 + (d.Month - 1) + n
	return NewDate(idx/12, idx%12+1, d.Day)
}

// withClampedDay подставляет год и месяц, ограничивая день длиной целевого месяца.
func (d Date) withClampedDay(year, month int) (int, int, int) {
	day := d.Day
	if month >= 1 && month <= 12 {
		if n := DaysIn(year, month); day > n {
			day = n
		}
	}
	return year, month, day
}

// Clock позволяет подменять "сегодня" в тестах.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock всегда возвращает один и тот же момент.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
