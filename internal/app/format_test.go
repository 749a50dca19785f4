package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/job"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     float64
		max     float64
		wantErr bool
	}{
		{"range", "80000-120000", 80000, 120000, false},
		{"single value sets both bounds", "50000", 50000, 50000, false},
		{"currency prefix and separators", "KSh 50,000-90,000", 50000, 90000, false},
		{"spaces inside range", "80000 - 120000", 80000, 120000, false},
		{"garbage", "a lot", 0, 0, true},
		{"empty range part", "80000-", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, err := parseSalary(tt.raw, "KSh")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSalary(%q) expected error, got (%v, %v)", tt.raw, low, high)
				}
				if !common.Is(err, common.CodeValidation) {
					t.Errorf("parseSalary(%q) error code = %v, want validation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSalary(%q) unexpected error: %v", tt.raw, err)
			}
			if low != tt.min || high != tt.max {
				t.Errorf("parseSalary(%q) = (%v, %v), want (%v, %v)", tt.raw, low, high, tt.min, tt.max)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50000, "50,000"},
		{1234567, "1,234,567"},
		{999, "999"},
		{1000, "1,000"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestFormatJobSalaryString(t *testing.T) {
	base := job.View{
		Job: job.Job{
			ID:             7,
			Title:          "Backend Engineer",
			SalaryCurrency: "KSh",
			PostedAt:       time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Company: "Tech Innovations Ltd",
		City:    "Nairobi",
		Country: "Kenya",
	}

	t.Run("equal bounds collapse to one figure", func(t *testing.T) {
		v := base
		v.SalaryMin = floatPtr(50000)
		v.SalaryMax = floatPtr(50000)
		got := FormatJob(&v)
		if got.Salary != "KSh 50,000" {
			t.Errorf("Salary = %q, want %q", got.Salary, "KSh 50,000")
		}
	})

	t.Run("distinct bounds render a range", func(t *testing.T) {
		v := base
		v.SalaryMin = floatPtr(50000)
		v.SalaryMax = floatPtr(90000)
		got := FormatJob(&v)
		if got.Salary != "KSh 50,000-90,000" {
			t.Errorf("Salary = %q, want %q", got.Salary, "KSh 50,000-90,000")
		}
	})

	t.Run("missing bound omits the string", func(t *testing.T) {
		v := base
		v.SalaryMin = floatPtr(50000)
		got := FormatJob(&v)
		if got.Salary != "" {
			t.Errorf("Salary = %q, want empty", got.Salary)
		}
	})
}

func TestFormatJobLocationAndLinks(t *testing.T) {
	v := job.View{
		Job: job.Job{
			ID:             3,
			ApplicationURL: "https://apply.example.com/role",
			PostedAt:       time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC),
		},
		Company: "Digital Solutions Africa",
		City:    "Nairobi",
		Country: "Kenya",
	}
	got := FormatJob(&v)
	if got.Location != "Nairobi, Kenya" {
		t.Errorf("Location = %q, want %q", got.Location, "Nairobi, Kenya")
	}
	if got.ApplicationLink != got.ApplicationURL || got.ApplicationURL != "https://apply.example.com/role" {
		t.Errorf("link echo mismatch: link=%q url=%q", got.ApplicationLink, got.ApplicationURL)
	}
	if got.ID != "3" {
		t.Errorf("ID = %q, want %q", got.ID, "3")
	}
	if got.DatePosted != "2025-01-02 15:04" {
		t.Errorf("DatePosted = %q, want %q", got.DatePosted, "2025-01-02 15:04")
	}

	v.Remote = true
	if got := FormatJob(&v); got.Location != "Remote" {
		t.Errorf("remote Location = %q, want %q", got.Location, "Remote")
	}

	// Location join gone entirely (reference deleted).
	v.Remote = false
	v.City = ""
	if got := FormatJob(&v); got.Location != "Remote" {
		t.Errorf("missing-city Location = %q, want %q", got.Location, "Remote")
	}
}

func TestDecodeSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["Python", "Django"]`, []string{"Python", "Django"}},
		{"legacy comma string", "Python, Django, ,REST", []string{"Python", "Django", "REST"}},
		{"empty", "", []string{}},
		{"empty json array", "[]", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeSkills(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeSkills(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCreate(t *testing.T) {
	t.Run("salary string wins over bounds", func(t *testing.T) {
		out, err := normalizeCreate(JobInput{
			Title: "t", Company: "c", Location: "l", Description: "d", Requirements: "r",
			Salary: "80000-120000", SalaryMin: floatPtr(1), SalaryMax: floatPtr(2),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *out.SalaryMin != 80000 || *out.SalaryMax != 120000 {
			t.Errorf("bounds = (%v, %v), want (80000, 120000)", *out.SalaryMin, *out.SalaryMax)
		}
	})

	t.Run("application_link overrides url", func(t *testing.T) {
		out, err := normalizeCreate(JobInput{
			Title: "t", Company: "c", Location: "l", Description: "d", Requirements: "r",
			ApplicationLink: "https://link.example.com", ApplicationURL: "https://url.example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ApplicationURL != "https://link.example.com" {
			t.Errorf("ApplicationURL = %q, want the link value", out.ApplicationURL)
		}
	})

	t.Run("inverted bounds rejected", func(t *testing.T) {
		_, err := normalizeCreate(JobInput{
			Title: "t", Company: "c", Location: "l", Description: "d", Requirements: "r",
			SalaryMin: floatPtr(120000), SalaryMax: floatPtr(80000),
		})
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestNormalizePatch(t *testing.T) {
	t.Run("type alias wins over job_type", func(t *testing.T) {
		patch, err := normalizePatch(JobPatchInput{JobType: strPtr("contract"), Type: strPtr("part-time")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Type == nil || *patch.Type != "part-time" {
			t.Errorf("Type = %v, want part-time", patch.Type)
		}
	})

	t.Run("salary string fills both bounds", func(t *testing.T) {
		patch, err := normalizePatch(JobPatchInput{Salary: strPtr("65000")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.SalaryMin == nil || patch.SalaryMax == nil || *patch.SalaryMin != 65000 || *patch.SalaryMax != 65000 {
			t.Errorf("bounds = (%v, %v), want both 65000", patch.SalaryMin, patch.SalaryMax)
		}
	})

	t.Run("empty input yields zero patch", func(t *testing.T) {
		patch, err := normalizePatch(JobPatchInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !patch.IsZero() {
			t.Errorf("expected zero patch, got %+v", patch)
		}
	})

	t.Run("inverted explicit bounds rejected", func(t *testing.T) {
		_, err := normalizePatch(JobPatchInput{SalaryMin: floatPtr(120000), SalaryMax: floatPtr(80000)})
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
