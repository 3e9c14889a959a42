// Package search derives the visible job list from the full in-memory job
// collection, a free-text query and a set of typed filter selections. The
// pipeline is pure: it never mutates its input and identical inputs always
// produce identical output.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/sand1027/careerConnect/internal/model"
)

// Sort keys
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortSalaryDesc = "salary-desc"
	SortSalaryAsc  = "salary-asc"
)

// anyFilter is the placeholder selection meaning "no constraint" on a
// dropdown-backed dimension.
const anyFilter = "Any"

// Experience bands
const (
	BandAny   = anyFilter
	Band0To2  = "0-2"
	Band2To5  = "2-5"
	Band5Plus = "5+"
)

// MaxSalaryCeiling is the salary slider maximum (LPA); a ceiling at or
// above it means "no salary constraint".
const MaxSalaryCeiling = 50

// Filters are the typed filter selections. Zero values (or "Any") mean the
// dimension is inactive; active dimensions combine with logical AND.
type Filters struct {
	SalaryCeiling  float64
	ExperienceBand string
	State          string
	City           string
	Skill          string
	Role           string
}

// Result is one page of the filtered, ordered job view.
type Result struct {
	Jobs       []*model.Job
	Total      int
	Page       int
	TotalPages int
}

// Run filters jobs by query and filters, orders them by sortKey and returns
// the requested page. pageSize must be positive.
func Run(jobs []*model.Job, query string, filters Filters, sortKey string, page, pageSize int) Result {
	filtered := Filter(jobs, query, filters)
	Sort(filtered, sortKey)
	return Paginate(filtered, page, pageSize)
}

// Filter returns the jobs satisfying the text query and every active filter
// dimension. The input slice is left untouched.
func Filter(jobs []*model.Job, query string, filters Filters) []*model.Job {
	words := queryWords(query)
	out := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job == nil {
			continue
		}
		if !matchesQuery(job, words) {
			continue
		}
		if !matchesFilters(job, filters) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// Sort orders jobs in place by the given key. Date keys compare createdAt
// timestamps, salary keys compare numeric salary with missing salary as 0.
// Unknown keys fall back to date-desc. The sort is stable so equal keys
// keep their incoming order.
func Sort(jobs []*model.Job, key string) {
	switch key {
	case SortDateAsc:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
		})
	case SortSalaryDesc:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Salary > jobs[j].Salary
		})
	case SortSalaryAsc:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Salary < jobs[j].Salary
		})
	default: // SortDateDesc
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		})
	}
}

// Paginate slices one page out of the filtered set. Out-of-range pages are
// clamped rather than rejected; an empty set reports zero total pages.
func Paginate(jobs []*model.Job, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = 1
	}
	total := len(jobs)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Jobs:       jobs[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func queryWords(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// matchesQuery applies the permissive text match: a job is retained when
// any query word is a substring of any searchable field. An empty query
// matches everything.
func matchesQuery(job *model.Job, words []string) bool {
	if len(words) == 0 {
		return true
	}
	fields := []string{
		strings.ToLower(job.Title),
		strings.ToLower(job.Description),
		strings.ToLower(strings.Join(job.Requirements, " ")),
		strings.ToLower(job.Location),
	}
	for _, word := range words {
		for _, field := range fields {
			if strings.Contains(field, word) {
				return true
			}
		}
	}
	return false
}

func matchesFilters(job *model.Job, f Filters) bool {
	if f.SalaryCeiling > 0 && f.SalaryCeiling < MaxSalaryCeiling {
		if job.Salary > f.SalaryCeiling {
			return false
		}
	}

	if f.ExperienceBand != "" && f.ExperienceBand != BandAny {
		min, max := bandBounds(f.ExperienceBand)
		exp := leadingInt(job.Experience)
		if exp < min || exp > max {
			return false
		}
	}

	if active(f.State) {
		location := strings.ToLower(job.Location)
		if !strings.Contains(location, strings.ToLower(f.State)) {
			return false
		}
		if active(f.City) && !strings.Contains(location, strings.ToLower(f.City)) {
			return false
		}
	}

	if active(f.Skill) {
		found := false
		for _, req := range job.Requirements {
			if strings.Contains(strings.ToLower(req), strings.ToLower(f.Skill)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if active(f.Role) {
		if !strings.Contains(strings.ToLower(job.Title), strings.ToLower(f.Role)) {
			return false
		}
	}

	return true
}

func active(v string) bool {
	return v != "" && v != anyFilter
}

func bandBounds(band string) (int, int) {
	switch band {
	case Band0To2:
		return 0, 2
	case Band2To5:
		return 2, 5
	case Band5Plus:
		return 5, math.MaxInt
	}
	return 0, math.MaxInt
}

// leadingInt parses the leading integer of a free-text experience range
// ("2-5 years" -> 2). Missing or unparsable input defaults to 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
