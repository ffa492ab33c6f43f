// Package locations provides the country and city catalog backing address
// entry and autocompletion.
//
// The predefined catalog is compiled into the binary; cities added by the
// user are kept separately in a JSON file next to the config, so predefined
// and user data never mix. The catalog is plain process state injected into
// whoever needs it — there is no package-level singleton.
package locations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "embed"
)

//go:embed catalog.json
var catalogJSON []byte

type country struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Catalog is the country/city lookup. Safe for sequential use only, like the
// rest of the core.
type Catalog struct {
	countries  map[string]country
	userCities map[string][]string
	userPath   string
}

// New loads the embedded catalog and, if userPath names an existing file,
// the user-added cities from it. An empty userPath disables persistence of
// user cities.
func New(userPath string) (*Catalog, error) {
	c := &Catalog{
		countries:  make(map[string]country),
		userCities: make(map[string][]string),
		userPath:   userPath,
	}

	var data struct {
		Countries map[string]country `json:"countries"`
	}
	if err := json.Unmarshal(catalogJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	c.countries = data.Countries

	if userPath != "" {
		raw, err := os.ReadFile(userPath)
		if err == nil {
			if err := json.Unmarshal(raw, &c.userCities); err != nil {
				return nil, fmt.Errorf("failed to parse user cities %s: %w", userPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read user cities %s: %w", userPath, err)
		}
	}
	return c, nil
}

// Countries returns (code, name) pairs sorted by country name.
func (c *Catalog) Countries() [][2]string {
	out := make([][2]string, 0, len(c.countries))
	for code, info := range c.countries {
		out = append(out, [2]string{code, info.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][1] < out[j][1] })
	return out
}

// CountryName returns the display name for an ISO country code, or "".
func (c *Catalog) CountryName(code string) string {
	return c.countries[normalizeCode(code)].Name
}

// HasCountry reports whether the catalog knows the country code.
func (c *Catalog) HasCountry(code string) bool {
	_, ok := c.countries[normalizeCode(code)]
	return ok
}

// Cities returns the sorted, de-duplicated city list for a country,
// including user-added cities when includeUser is set. Unknown countries
// return nil.
func (c *Catalog) Cities(code string, includeUser bool) []string {
	code = normalizeCode(code)
	info, ok := c.countries[code]
	if !ok {
		return nil
	}
	cities := append([]string(nil), info.Cities...)
	if includeUser {
		cities = append(cities, c.userCities[code]...)
	}
	sort.Strings(cities)
	return dedupe(cities)
}

// SearchCities returns the cities of a country matching query as a
// case-insensitive substring.
func (c *Catalog) SearchCities(code, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, city := range c.Cities(code, true) {
		if strings.Contains(strings.ToLower(city), q) {
			out = append(out, city)
		}
	}
	return out
}

// AddUserCity records a user-defined city for a country and persists the
// user list. Adding a city already known (predefined or user) is a no-op.
func (c *Catalog) AddUserCity(code, city string) error {
	code = normalizeCode(code)
	city = strings.TrimSpace(city)
	if city == "" {
		return fmt.Errorf("city name cannot be empty")
	}
	if !c.HasCountry(code) {
		return fmt.Errorf("unknown country code %q", code)
	}
	for _, known := range c.Cities(code, true) {
		if strings.EqualFold(known, city) {
			return nil
		}
	}
	c.userCities[code] = append(c.userCities[code], city)
	return c.saveUserCities()
}

func (c *Catalog) saveUserCities() error {
	if c.userPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.userPath), 0755); err != nil {
		return fmt.Errorf("failed to create user cities directory: %w", err)
	}
	data, err := json.MarshalIndent(c.userCities, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user cities: %w", err)
	}
	if err := os.WriteFile(c.userPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user cities: %w", err)
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
