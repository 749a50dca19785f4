package app

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/job"
)

type JobService struct {
	repo     job.Repository
	validate *validator.Validate
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo, validate: validator.New()}
}

func (s *JobService) Create(ctx context.Context, input JobInput) (*JobResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	canonical, err := normalizeCreate(input)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, canonical)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return FormatJob(created), nil
}

func (s *JobService) List(ctx context.Context, page, limit int, search string) (*JobListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	views, err := s.repo.List(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	results := make([]JobResponse, 0, len(views))
	for i := range views {
		results = append(results, *FormatJob(&views[i]))
	}
	// Total is the row count of this page, not a corpus count.
	return &JobListResponse{Results: results, Page: page, Limit: limit, Total: len(results)}, nil
}

func (s *JobService) Get(ctx context.Context, id int64) (*JobResponse, error) {
	view, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return FormatJob(view), nil
}

func (s *JobService) Update(ctx context.Context, id int64, input JobPatchInput) (*JobResponse, error) {
	patch, err := normalizePatch(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return FormatJob(updated), nil
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

// normalizeCreate reconciles the synonym fields into the canonical create
// shape: the salary string wins over explicit bounds, application_link
// wins over application_url.
func normalizeCreate(input JobInput) (job.CreateInput, error) {
	out := job.CreateInput{
		Title:            input.Title,
		Company:          input.Company,
		Location:         input.Location,
		Category:         input.Category,
		Type:             input.Type,
		Description:      input.Description,
		Requirements:     input.Requirements,
		SalaryMin:        input.SalaryMin,
		SalaryMax:        input.SalaryMax,
		SalaryCurrency:   input.SalaryCurrency,
		Tags:             input.Tags,
		ApplicationEmail: input.ApplicationEmail,
		ApplicationURL:   input.ApplicationURL,
	}
	if input.Salary != "" {
		low, high, err := parseSalary(input.Salary, input.SalaryCurrency)
		if err != nil {
			return job.CreateInput{}, err
		}
		out.SalaryMin = &low
		out.SalaryMax = &high
	}
	if err := validateSalaryBounds(out.SalaryMin, out.SalaryMax); err != nil {
		return job.CreateInput{}, err
	}
	if input.ApplicationLink != "" {
		out.ApplicationURL = input.ApplicationLink
	}
	return out, nil
}

func normalizePatch(input JobPatchInput) (job.Patch, error) {
	patch := job.Patch{
		Title:            input.Title,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Type:             input.JobType,
		SalaryMin:        input.SalaryMin,
		SalaryMax:        input.SalaryMax,
		SalaryCurrency:   input.SalaryCurrency,
		ApplicationEmail: input.ApplicationEmail,
		ApplicationURL:   input.ApplicationURL,
		Company:          input.Company,
		Location:         input.Location,
		Category:         input.Category,
		Tags:             input.Tags,
	}
	// "type" is the historical alias and wins over "job_type".
	if input.Type != nil {
		patch.Type = input.Type
	}
	if input.Salary != nil && *input.Salary != "" {
		currency := ""
		if input.SalaryCurrency != nil {
			currency = *input.SalaryCurrency
		}
		low, high, err := parseSalary(*input.Salary, currency)
		if err != nil {
			return job.Patch{}, err
		}
		patch.SalaryMin = &low
		patch.SalaryMax = &high
	}
	if err := validateSalaryBounds(patch.SalaryMin, patch.SalaryMax); err != nil {
		return job.Patch{}, err
	}
	if input.ApplicationLink != nil && *input.ApplicationLink != "" {
		patch.ApplicationURL = input.ApplicationLink
	}
	return patch, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewError(common.CodeValidation, "invalid job payload", err)
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "url":
			fields[fe.Field()] = "must be a valid URL"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return common.NewValidationError("invalid job payload", fields)
}
