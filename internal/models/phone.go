package models

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Phone is a parsed phone number. Canonical is the E.164 form and the only
// value used for equality and duplicate checks; the display forms exist for
// presentation only.
type Phone struct {
	Canonical     string
	International string
	National      string
}

// ParsePhone parses free-form input (spaces, dashes, parentheses, optional
// leading plus) against defaultRegion. Input that cannot be parsed, or that
// is not at least a possible number for its region, returns ErrInvalidPhone.
//
// Parsing is idempotent over the canonical form: feeding a Canonical value
// back in reproduces the same Canonical regardless of region, because E.164
// carries its own country code.
func ParsePhone(raw, defaultRegion string) (Phone, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return Phone{
		Canonical:     phonenumbers.Format(num, phonenumbers.E164),
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
	}, nil
}

func (p Phone) String() string {
	return p.International
}
