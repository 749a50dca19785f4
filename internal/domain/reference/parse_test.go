package reference

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		city    string
		country string
		remote  bool
	}{
		{"city and country", "Nairobi, Kenya", "Nairobi", "Kenya", false},
		{"city only defaults country", "Mombasa", "Mombasa", "Kenya", false},
		{"empty maps to remote sentinel", "", "Remote", "Kenya", true},
		{"whitespace only maps to remote sentinel", "   ", "Remote", "Kenya", true},
		{"commas only maps to remote sentinel", " , , ", "Remote", "Kenya", true},
		{"remote city forces flag", "Remote, Kenya", "Remote", "Kenya", true},
		{"remote is case-insensitive", "remote, Germany", "remote", "Germany", true},
		{"REMOTE uppercase", "REMOTE", "REMOTE", "Kenya", true},
		{"whitespace trimmed", "  Kisumu ,  Kenya ", "Kisumu", "Kenya", false},
		{"extra parts ignored", "Lagos, Nigeria, West Africa", "Lagos", "Nigeria", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := ParseLocation(tt.raw)
			if loc.City != tt.city || loc.Country != tt.country || loc.Remote != tt.remote {
				t.Errorf("ParseLocation(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.raw, loc.City, loc.Country, loc.Remote, tt.city, tt.country, tt.remote)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"General", "general"},
		{"Software Engineering", "software-engineering"},
		{"UI UX Design", "ui-ux-design"},
		{"sales", "sales"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
