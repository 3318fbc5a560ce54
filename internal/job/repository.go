package job

import (
	"database/sql"
	"time"

	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// JobsByCompanyID returns all jobs for a tenant, newest first.
func (r *Repository) JobsByCompanyID(companyID string) ([]Job, error) {
	jobs := []Job{}
	rows, err := r.db.Query(`SELECT id, company_id, title, location, work_policy, department, employment_type, experience_level, job_type, salary_range, job_slug, description, created_at
	FROM job WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err == sql.ErrNoRows {
		return jobs, nil
	}
	if err != nil {
		return jobs, err
	}
	defer rows.Close()
	for rows.Next() {
		var j Job
		var salaryRange, description sql.NullString
		if err := rows.Scan(
			&j.ID,
			&j.CompanyID,
			&j.Title,
			&j.Location,
			&j.WorkPolicy,
			&j.Department,
			&j.EmploymentType,
			&j.ExperienceLevel,
			&j.JobType,
			&salaryRange,
			&j.JobSlug,
			&description,
			&j.CreatedAt,
		); err != nil {
			return jobs, err
		}
		j.SalaryRange = salaryRange.String
		j.Description = description.String
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// SaveJob inserts a new job for the tenant. The slug is derived from the
// title unless the request carries an explicit override. Slug uniqueness is
// deliberately not enforced.
func (r *Repository) SaveJob(companyID string, rq JobRq) (Job, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return Job{}, err
	}
	jobSlug := rq.JobSlug
	if jobSlug == "" {
		jobSlug = MakeSlug(rq.Title)
	}
	j := Job{
		ID:              id.String(),
		CompanyID:       companyID,
		Title:           rq.Title,
		Location:        rq.Location,
		WorkPolicy:      rq.WorkPolicy,
		Department:      rq.Department,
		EmploymentType:  rq.EmploymentType,
		ExperienceLevel: rq.ExperienceLevel,
		JobType:         rq.JobType,
		SalaryRange:     rq.SalaryRange,
		JobSlug:         jobSlug,
		Description:     rq.Description,
		CreatedAt:       time.Now().UTC(),
	}
	stmt := `INSERT INTO job (id, company_id, title, location, work_policy, department, employment_type, experience_level, job_type, salary_range, job_slug, description, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, NULLIF($12, ''), $13)`
	_, err = r.db.Exec(
		stmt,
		j.ID,
		j.CompanyID,
		j.Title,
		j.Location,
		j.WorkPolicy,
		j.Department,
		j.EmploymentType,
		j.ExperienceLevel,
		j.JobType,
		j.SalaryRange,
		j.JobSlug,
		j.Description,
		j.CreatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	return j, nil
}

// DeleteJob removes a job. The delete is scoped to the tenant so one company
// cannot remove another's posting.
func (r *Repository) DeleteJob(companyID, jobID string) error {
	res, err := r.db.Exec(`DELETE FROM job WHERE id = $1 AND company_id = $2`, jobID, companyID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
