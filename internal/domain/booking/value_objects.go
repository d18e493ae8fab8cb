package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf drops the clock part, keeping the calendar date as written.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange keeps inverted ranges as given; callers enforcing order use
// RequireOrdered.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: DateOf(start), end: DateOf(end)}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) IsInverted() bool {
	return r.end.Before(r.start)
}

func (r DateRange) RequireOrdered() error {
	if r.IsInverted() {
		return ErrInvalidDateRange
	}
	return nil
}

func (r DateRange) Days() int {
	return DurationDays(r.start, r.end)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + "/" + r.end.Format(DateLayout)
}

// Money is an integral XOF amount.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

// Format renders the amount the way the site displays it, e.g. "75 000 FCFA".
func (m Money) Format() string {
	return FormatXOF(m.amount)
}

func FormatXOF(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(" FCFA")
	return b.String()
}

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) Contact {
	return Contact{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Note struct {
	value *string
}

func NewNote(s *string) Note {
	if s == nil {
		return Note{}
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return Note{}
	}
	return Note{value: &trimmed}
}

func (n Note) Value() *string {
	return n.value
}
