package render

import (
	"sort"
	"strings"

	"github.com/orbit-careers/page-builder/internal/job"
)

// Filter narrows the job list shown on a page. Search is a case-insensitive
// substring match over title, description and department; Location and
// SalaryRange are exact matches. All three combine with AND and an empty
// value matches everything.
type Filter struct {
	Search      string
	Location    string
	SalaryRange string
}

func (f Filter) Empty() bool {
	return f.Search == "" && f.Location == "" && f.SalaryRange == ""
}

func (f Filter) matches(j job.Job) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) &&
			!strings.Contains(strings.ToLower(j.Department), q) {
			return false
		}
	}
	if f.Location != "" && j.Location != f.Location {
		return false
	}
	if f.SalaryRange != "" && j.SalaryRange != f.SalaryRange {
		return false
	}
	return true
}

func FilterJobs(jobs []job.Job, f Filter) []job.Job {
	out := []job.Job{}
	for _, j := range jobs {
		if f.matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// Locations returns the distinct job locations, sorted, for the location
// filter dropdown.
func Locations(jobs []job.Job) []string {
	return distinct(jobs, func(j job.Job) string { return j.Location })
}

// SalaryRanges returns the distinct non-empty salary ranges, sorted.
func SalaryRanges(jobs []job.Job) []string {
	return distinct(jobs, func(j job.Job) string { return j.SalaryRange })
}

func distinct(jobs []job.Job, key func(job.Job) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, j := range jobs {
		k := key(j)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
