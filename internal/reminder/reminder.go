// Package reminder computes upcoming birthday congratulations.
package reminder

import (
	"sort"
	"time"

	"contactbook/internal/book"
)

// DefaultWindowDays is the default lookahead for Upcoming.
const DefaultWindowDays = 7

// Greeting is one upcoming congratulation. Congratulation is the date to
// reach out on, which may differ from the actual birthday occurrence when it
// falls on a weekend.
type Greeting struct {
	Name           string
	GroupID        string
	Congratulation time.Time
}

// Upcoming returns the contacts, across every group, whose birthday occurs
// within days of today (inclusive on both ends; today itself counts).
//
// The inclusion test runs against the actual occurrence date. A Saturday or
// Sunday occurrence is then rolled forward to the following Monday for the
// reported congratulation date only — the rolled date may land past the
// window and is still reported. Contacts without a birthday are skipped.
func Upcoming(b *book.Book, days int, today time.Time) []Greeting {
	today = midnight(today)
	var out []Greeting
	for _, e := range b.IterAll() {
		bd := e.Record.Birthday
		if bd == nil {
			continue
		}
		occ := occurrence(bd.Date(), today)
		until := int(occ.Sub(today).Hours() / 24)
		if until < 0 || until > days {
			continue
		}
		out = append(out, Greeting{
			Name:           e.Key.Name,
			GroupID:        e.Key.GroupID,
			Congratulation: rollToWeekday(occ),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Congratulation.Equal(out[j].Congratulation) {
			return out[i].Congratulation.Before(out[j].Congratulation)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// occurrence is this year's month/day of the birthday, or next year's if it
// has already passed. Feb 29 normalizes to Mar 1 in non-leap years.
func occurrence(birthday, today time.Time) time.Time {
	occ := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// rollToWeekday moves a Saturday or Sunday date to the following Monday.
func rollToWeekday(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
