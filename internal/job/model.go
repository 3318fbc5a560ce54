package job

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

var (
	WorkPolicies     = []string{"Remote", "Hybrid", "On-site"}
	EmploymentTypes  = []string{"Full-time", "Part-time", "Contract", "Freelance"}
	ExperienceLevels = []string{"Entry-level", "Mid-level", "Senior", "Lead", "Executive"}
	JobTypes         = []string{"Permanent", "Contract", "Internship", "Temporary"}
)

// Job is a single opening scoped to a tenant. Jobs are independent of the
// page's block sequence: they are managed as their own list and merged in at
// render time.
type Job struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	WorkPolicy      string    `json:"work_policy"`
	Department      string    `json:"department"`
	EmploymentType  string    `json:"employment_type"`
	ExperienceLevel string    `json:"experience_level"`
	JobType         string    `json:"job_type"`
	SalaryRange     string    `json:"salary_range,omitempty"`
	JobSlug         string    `json:"job_slug"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// JobRq is the create request. There is no update request: jobs are only
// inserted and deleted.
type JobRq struct {
	Title           string `json:"title"`
	Location        string `json:"location"`
	WorkPolicy      string `json:"work_policy"`
	Department      string `json:"department"`
	EmploymentType  string `json:"employment_type"`
	ExperienceLevel string `json:"experience_level"`
	JobType         string `json:"job_type"`
	SalaryRange     string `json:"salary_range,omitempty"`
	JobSlug         string `json:"job_slug,omitempty"`
	Description     string `json:"description,omitempty"`
}

// FieldError reports a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks required fields and enum membership, one error per field.
func (rq JobRq) Validate() []FieldError {
	var errs []FieldError
	req := func(field, val string) {
		if val == "" {
			errs = append(errs, FieldError{field, "is required"})
		}
	}
	oneOf := func(field, val string, allowed []string) {
		if val == "" {
			errs = append(errs, FieldError{field, "is required"})
			return
		}
		for _, a := range allowed {
			if a == val {
				return
			}
		}
		errs = append(errs, FieldError{field, fmt.Sprintf("must be one of %v", allowed)})
	}
	req("title", rq.Title)
	req("location", rq.Location)
	req("department", rq.Department)
	oneOf("work_policy", rq.WorkPolicy, WorkPolicies)
	oneOf("employment_type", rq.EmploymentType, EmploymentTypes)
	oneOf("experience_level", rq.ExperienceLevel, ExperienceLevels)
	oneOf("job_type", rq.JobType, JobTypes)
	return errs
}

// MakeSlug derives a URL slug from a job title: lowercased, non-alphanumerics
// stripped, spaces to hyphens, hyphens collapsed and trimmed. Slugs are not
// guaranteed unique per tenant.
func MakeSlug(title string) string {
	return slug.Make(title)
}

// PostedAgo renders how long ago a job was posted, with floor semantics on
// whole days: "Today" for under a day, "1 day ago", then "N days ago".
func PostedAgo(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff.Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
