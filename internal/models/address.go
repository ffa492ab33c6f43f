package models

import "strings"

// Address is a structured postal address. An address is empty iff all three
// sub-fields are blank.
type Address struct {
	// Country is an ISO country code (e.g. "UA", "PL").
	Country string

	// City is the city name.
	City string

	// Line is the street address line.
	Line string
}

// NewAddress builds an Address with each field trimmed.
func NewAddress(country, city, line string) Address {
	return Address{
		Country: strings.TrimSpace(country),
		City:    strings.TrimSpace(city),
		Line:    strings.TrimSpace(line),
	}
}

// Empty reports whether all three sub-fields are blank.
func (a Address) Empty() bool {
	return a.Country == "" && a.City == "" && a.Line == ""
}

// String formats the non-empty parts as "line, city, country".
func (a Address) String() string {
	parts := make([]string, 0, 3)
	if a.Line != "" {
		parts = append(parts, a.Line)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.Country != "" {
		parts = append(parts, a.Country)
	}
	return strings.Join(parts, ", ")
}
