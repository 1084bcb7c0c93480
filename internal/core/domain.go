package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Morning TimeOfDay = "Morning"
	Evening TimeOfDay = "Evening"

	dateLayout = "2006-01-02"
)

type (
	// TimeOfDay is the collection slot of a delivery. The set is closed:
	// Morning or Evening, with Morning ordering first on a given date.
	TimeOfDay string

	// Date is a calendar date with no time-of-day component, held at UTC
	// midnight. It is stored and exchanged as YYYY-MM-DD.
	Date struct {
		time.Time
	}

	Customer struct {
		ID      int64
		Name    string
		Phone   string
		Address string
	}

	// Transaction records one milk delivery. MilkKg and MilkMound are both
	// stored; the caller keeps them consistent (mound = kg / 40) at entry
	// time and the store does not recompute either. Amount is derived.
	Transaction struct {
		ID         int64
		CustomerID int64
		Date       Date
		MilkKg     float64
		MilkMound  float64
		Rate       float64
		TimeOfDay  TimeOfDay
	}

	Payment struct {
		ID         int64
		CustomerID int64
		Date       Date
		Amount     float64
	}
)

var (
	// ErrValidation is the class wrapped by every validation sentinel below.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals that the targeted id does not exist. A missing row
	// is a normal outcome, never a silent no-op that looks like success.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a customer delete blocked by existing
	// transactions or payments.
	ErrConflict = errors.New("conflict with dependent records")

	ErrEmptyName       = fmt.Errorf("%w: empty customer name", ErrValidation)
	ErrNoCustomer      = fmt.Errorf("%w: missing customer reference", ErrValidation)
	ErrInvalidDate     = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: milk quantity must be positive", ErrValidation)
	ErrNegativeRate    = fmt.Errorf("%w: rate must not be negative", ErrValidation)
	ErrInvalidTime     = fmt.Errorf("%w: time of day must be Morning or Evening", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: payment amount must be positive", ErrValidation)
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// IsEmpty reports whether the date is unset (used for open range bounds).
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (t TimeOfDay) Validate() error {
	switch t {
	case Morning, Evening:
		return nil
	default:
		return ErrInvalidTime
	}
}

// SortKey orders Morning before Evening on the same date. Note the plain
// lexicographic order of the two labels is the opposite.
func (t TimeOfDay) SortKey() int {
	if t == Morning {
		return 0
	}
	return 1
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Amount is the value of the delivery, derived on read and never stored.
func (t Transaction) Amount() float64 {
	return t.MilkKg * t.Rate
}

func (t Transaction) Validate() error {
	if t.CustomerID <= 0 {
		return ErrNoCustomer
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.MilkKg <= 0 {
		return ErrInvalidQuantity
	}
	if t.Rate < 0 {
		return ErrNegativeRate
	}
	return t.TimeOfDay.Validate()
}

func (p Payment) Validate() error {
	if p.CustomerID <= 0 {
		return ErrNoCustomer
	}
	if err := p.Date.Validate(); err != nil {
		return err
	}
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
