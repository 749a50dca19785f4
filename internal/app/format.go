package app

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/job"
)

// JobInput is the public create shape.  Clients historically sent salary
// either as a free-text range or as explicit bounds, and the application
// URL under two names; normalization reconciles both before anything
// reaches the repository.
type JobInput struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location" validate:"required"`
	Type             string   `json:"type"`
	Description      string   `json:"description" validate:"required"`
	Requirements     string   `json:"requirements" validate:"required"`
	Salary           string   `json:"salary"`
	SalaryMin        *float64 `json:"salary_min"`
	SalaryMax        *float64 `json:"salary_max"`
	SalaryCurrency   string   `json:"salary_currency"`
	Tags             string   `json:"tags"`
	ApplicationEmail string   `json:"application_email" validate:"omitempty,email"`
	ApplicationLink  string   `json:"application_link" validate:"omitempty,url"`
	ApplicationURL   string   `json:"application_url" validate:"omitempty,url"`
	Category         string   `json:"category"`
}

// JobPatchInput is the public partial-update shape; nil means the field
// was not supplied.  Both "type" and "job_type" are accepted, the alias
// winning when both appear.
type JobPatchInput struct {
	Title            *string  `json:"title"`
	Company          *string  `json:"company"`
	Location         *string  `json:"location"`
	Type             *string  `json:"type"`
	JobType          *string  `json:"job_type"`
	Description      *string  `json:"description"`
	Requirements     *string  `json:"requirements"`
	Salary           *string  `json:"salary"`
	SalaryMin        *float64 `json:"salary_min"`
	SalaryMax        *float64 `json:"salary_max"`
	SalaryCurrency   *string  `json:"salary_currency"`
	Tags             *string  `json:"tags"`
	ApplicationEmail *string  `json:"application_email"`
	ApplicationLink  *string  `json:"application_link"`
	ApplicationURL   *string  `json:"application_url"`
	Category         *string  `json:"category"`
}

type JobResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Salary           string   `json:"salary,omitempty"`
	SalaryMin        *float64 `json:"salary_min,omitempty"`
	SalaryMax        *float64 `json:"salary_max,omitempty"`
	SalaryCurrency   string   `json:"salary_currency"`
	Tags             []string `json:"tags"`
	DatePosted       string   `json:"date_posted,omitempty"`
	ApplicationEmail string   `json:"application_email"`
	ApplicationLink  string   `json:"application_link"`
	ApplicationURL   string   `json:"application_url"`
	Category         string   `json:"category"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Remote           bool     `json:"remote"`
}

type JobListResponse struct {
	Results []JobResponse `json:"results"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Total   int           `json:"total"`
}

// parseSalary turns a free-text salary ("80000-120000", "KSh 50,000") into
// bounds.  A single value sets both bounds to the same number.
func parseSalary(raw, currency string) (float64, float64, error) {
	cleaned := strings.ReplaceAll(raw, job.DefaultCurrency, "")
	if currency != "" {
		cleaned = strings.ReplaceAll(cleaned, currency, "")
	}
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, ",", ""))

	parts := strings.SplitN(cleaned, "-", 2)
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, common.NewError(common.CodeValidation, `invalid salary format, use "min-max" or a single value`, err)
	}
	if len(parts) == 1 {
		return low, low, nil
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, common.NewError(common.CodeValidation, `invalid salary format, use "min-max" or a single value`, err)
	}
	return low, high, nil
}

func validateSalaryBounds(min, max *float64) error {
	if min != nil && max != nil && *max < *min {
		return common.NewValidationError("invalid salary range", map[string]string{
			"salary_max": "salary_max must be greater than or equal to salary_min",
		})
	}
	return nil
}

// FormatJob renders a joined row into the API's public shape.
func FormatJob(v *job.View) *JobResponse {
	if v == nil {
		return nil
	}

	location := "Remote"
	if v.City != "" && !v.Remote {
		location = v.City + ", " + v.Country
	}

	var salary string
	if v.SalaryMin != nil && v.SalaryMax != nil {
		if *v.SalaryMin == *v.SalaryMax {
			salary = fmt.Sprintf("%s %s", v.SalaryCurrency, formatAmount(*v.SalaryMin))
		} else {
			salary = fmt.Sprintf("%s %s-%s", v.SalaryCurrency, formatAmount(*v.SalaryMin), formatAmount(*v.SalaryMax))
		}
	}

	var datePosted string
	if !v.PostedAt.IsZero() {
		datePosted = v.PostedAt.Format("2006-01-02 15:04")
	}

	return &JobResponse{
		ID:               strconv.FormatInt(v.ID, 10),
		Title:            v.Title,
		Company:          v.Company,
		Location:         location,
		Type:             v.Type,
		Description:      v.Description,
		Requirements:     v.Requirements,
		Salary:           salary,
		SalaryMin:        v.SalaryMin,
		SalaryMax:        v.SalaryMax,
		SalaryCurrency:   v.SalaryCurrency,
		Tags:             decodeSkills(v.SkillsRaw),
		DatePosted:       datePosted,
		ApplicationEmail: v.ApplicationEmail,
		ApplicationLink:  v.ApplicationURL,
		ApplicationURL:   v.ApplicationURL,
		Category:         v.Category,
		City:             v.City,
		Country:          v.Country,
		Remote:           v.Remote,
	}
}

// decodeSkills accepts either the canonical JSON array or a legacy bare
// comma-separated string.
func decodeSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err == nil {
		return tags
	}
	tags = []string{}
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// formatAmount renders a number with digit-group commas and no decimals,
// e.g. 50000 -> "50,000".
func formatAmount(amount float64) string {
	digits := strconv.FormatFloat(math.Round(amount), 'f', -1, 64)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
