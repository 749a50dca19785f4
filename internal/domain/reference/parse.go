package reference

import "strings"

const (
	DefaultCountry  = "Kenya"
	DefaultCategory = "General"
	remoteCity      = "Remote"
)

// ParseLocation derives a Location from a free-text "city, country" string.
// Empty or whitespace-only input maps to the remote sentinel; a city that
// lowercases to "remote" forces the remote flag regardless of country.
func ParseLocation(raw string) Location {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return Location{City: remoteCity, Country: DefaultCountry, Remote: true}
	}
	loc := Location{City: parts[0], Country: DefaultCountry}
	if len(parts) > 1 {
		loc.Country = parts[1]
	}
	loc.Remote = strings.EqualFold(loc.City, remoteCity)
	return loc
}

// Slugify derives a category slug: lowercase with spaces replaced by
// hyphens.  Computed once at insert time; renames keep the original slug.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
