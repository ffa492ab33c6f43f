package models

import (
	"fmt"
	"time"
)

// BirthdayFormat is the only accepted input and display format for birthdays.
const BirthdayFormat = "02.01.2006"

// Birthday is a validated calendar date.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates a strict DD.MM.YYYY calendar date. Nonexistent
// dates (30.02, 32.01) return ErrInvalidDate.
func ParseBirthday(s string) (*Birthday, error) {
	t, err := time.Parse(BirthdayFormat, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (want DD.MM.YYYY)", ErrInvalidDate, s)
	}
	return &Birthday{date: t}, nil
}

// Date returns the birthday as a time.Time (midnight UTC).
func (b *Birthday) Date() time.Time {
	return b.date
}

func (b *Birthday) String() string {
	return b.date.Format(BirthdayFormat)
}
