package job

import "time"

const (
	DefaultType     = "full-time"
	DefaultCurrency = "KSh"
)

type Job struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	Type             string    `json:"job_type"`
	SalaryMin        *float64  `json:"salary_min,omitempty"`
	SalaryMax        *float64  `json:"salary_max,omitempty"`
	SalaryCurrency   string    `json:"salary_currency"`
	Skills           []string  `json:"skills_required"`
	CompanyID        int64     `json:"company_id"`
	CategoryID       *int64    `json:"category_id,omitempty"`
	LocationID       *int64    `json:"location_id,omitempty"`
	ApplicationEmail string    `json:"application_email"`
	ApplicationURL   string    `json:"application_url"`
	PostedAt         time.Time `json:"posted_at"`
	IsActive         bool      `json:"is_active"`
}

// View is the denormalized read shape: a job row joined with the names of
// its company, category, and location.  Category and location joins are
// optional, so their fields stay zero-valued when the reference is gone.
type View struct {
	Job
	Company  string `json:"company"`
	Category string `json:"category"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Remote   bool   `json:"remote"`
	// SkillsRaw carries skills_required exactly as stored.  Historically
	// that column held either a JSON array or a bare comma-separated
	// string; decoding is the formatter's job.
	SkillsRaw string `json:"-"`
}

// CreateInput carries the canonical create fields after boundary
// normalization: references still by name, tags still a comma-separated
// string the repository splits and serializes.
type CreateInput struct {
	Title            string
	Company          string
	Location         string
	Category         string
	Type             string
	Description      string
	Requirements     string
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   string
	Tags             string
	ApplicationEmail string
	ApplicationURL   string
}

// Patch is a sparse update: nil means "leave untouched".  Keeping each
// field an explicit pointer makes the set-clause statically enumerable.
type Patch struct {
	Title            *string
	Description      *string
	Requirements     *string
	Type             *string
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   *string
	ApplicationEmail *string
	ApplicationURL   *string
	Company          *string
	Location         *string
	Category         *string
	Tags             *string
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Requirements == nil &&
		p.Type == nil && p.SalaryMin == nil && p.SalaryMax == nil &&
		p.SalaryCurrency == nil && p.ApplicationEmail == nil &&
		p.ApplicationURL == nil && p.Company == nil && p.Location == nil &&
		p.Category == nil && p.Tags == nil
}
