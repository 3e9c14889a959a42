package search

import (
	"testing"
	"time"

	"github.com/sand1027/careerConnect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeJob(title string, salary float64, experience, location string, requirements []string, createdAt time.Time) *model.Job {
	return &model.Job{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Description:  title + " role",
		Requirements: requirements,
		Salary:       salary,
		Location:     location,
		Experience:   experience,
		CreatedAt:    createdAt,
	}
}

func fixtureJobs() []*model.Job {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := makeJob("Backend Engineer", 10, "0-2 years", "Pune, Maharashtra",
		[]string{"Go", "MongoDB"}, base)
	b := makeJob("Staff Engineer", 40, "5+ years", "Bangalore, Karnataka",
		[]string{"Java", "Kubernetes"}, base.Add(24*time.Hour))
	return []*model.Job{a, b}
}

func titles(jobs []*model.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestFilterSalaryCeiling(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "", Filters{SalaryCeiling: 20})
	assert.Equal(t, []string{"Backend Engineer"}, titles(got))
}

func TestFilterSalaryCeilingAtMaxIsNoop(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "", Filters{SalaryCeiling: MaxSalaryCeiling})
	assert.Len(t, got, 2)
}

func TestFilterState(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "", Filters{State: "Karnataka"})
	assert.Equal(t, []string{"Staff Engineer"}, titles(got))
}

func TestFilterStateAndCity(t *testing.T) {
	jobs := fixtureJobs()
	jobs = append(jobs, makeJob("Platform Engineer", 25, "2-5 years",
		"Mysore, Karnataka", []string{"Go"}, time.Now()))

	got := Filter(jobs, "", Filters{State: "Karnataka", City: "Bangalore"})
	assert.Equal(t, []string{"Staff Engineer"}, titles(got))
}

func TestFilterExperienceBand(t *testing.T) {
	jobs := fixtureJobs()

	assert.Equal(t, []string{"Backend Engineer"}, titles(Filter(jobs, "", Filters{ExperienceBand: Band0To2})))
	assert.Equal(t, []string{"Staff Engineer"}, titles(Filter(jobs, "", Filters{ExperienceBand: Band5Plus})))
	assert.Len(t, Filter(jobs, "", Filters{ExperienceBand: BandAny}), 2)
}

func TestFilterExperienceMissingDefaultsToZero(t *testing.T) {
	jobs := []*model.Job{
		makeJob("Intern", 3, "", "Pune, Maharashtra", nil, time.Now()),
	}

	got := Filter(jobs, "", Filters{ExperienceBand: Band0To2})
	assert.Len(t, got, 1)

	got = Filter(jobs, "", Filters{ExperienceBand: Band5Plus})
	assert.Empty(t, got)
}

func TestFilterSkillMatchesRequirements(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "", Filters{Skill: "mongodb"})
	assert.Equal(t, []string{"Backend Engineer"}, titles(got))
}

func TestFilterRoleMatchesTitle(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "", Filters{Role: "staff"})
	assert.Equal(t, []string{"Staff Engineer"}, titles(got))
}

func TestFilterCombinesDimensionsWithAnd(t *testing.T) {
	jobs := fixtureJobs()

	// Salary passes for A only, state passes for B only: intersection empty.
	got := Filter(jobs, "", Filters{SalaryCeiling: 20, State: "Karnataka"})
	assert.Empty(t, got)
}

func TestTextQueryMatchesAnyWordInAnyField(t *testing.T) {
	jobs := fixtureJobs()

	// "kubernetes" appears only in B's requirements, "pune" only in A's
	// location; either word alone retains a job, together they retain both.
	assert.Equal(t, []string{"Staff Engineer"}, titles(Filter(jobs, "kubernetes", Filters{})))
	assert.Equal(t, []string{"Backend Engineer"}, titles(Filter(jobs, "pune", Filters{})))
	assert.Len(t, Filter(jobs, "kubernetes pune", Filters{}), 2)
}

func TestTextQueryCaseInsensitive(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "BACKEND", Filters{})
	assert.Equal(t, []string{"Backend Engineer"}, titles(got))
}

func TestEmptyQueryIsNoop(t *testing.T) {
	jobs := fixtureJobs()

	got := Filter(jobs, "   ", Filters{})
	assert.Len(t, got, 2)
}

func TestFilterNoFalseNegatives(t *testing.T) {
	jobs := fixtureJobs()
	filters := Filters{SalaryCeiling: 45}

	got := Filter(jobs, "", filters)
	for _, job := range jobs {
		if job.Salary <= filters.SalaryCeiling {
			assert.Contains(t, got, job)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	jobs := fixtureJobs()
	filters := Filters{State: "Maharashtra"}

	once := Filter(jobs, "engineer", filters)
	twice := Filter(once, "engineer", filters)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	jobs := fixtureJobs()
	before := titles(jobs)

	Filter(jobs, "staff", Filters{SalaryCeiling: 20})
	assert.Equal(t, before, titles(jobs))
}

func TestSortDateKeysReverseEachOther(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jobs := []*model.Job{
		makeJob("first", 1, "", "x", nil, base),
		makeJob("second", 2, "", "x", nil, base.Add(time.Hour)),
		makeJob("third", 3, "", "x", nil, base.Add(2*time.Hour)),
	}

	desc := append([]*model.Job(nil), jobs...)
	Sort(desc, SortDateDesc)
	asc := append([]*model.Job(nil), jobs...)
	Sort(asc, SortDateAsc)

	require.Len(t, desc, 3)
	for i := range desc {
		assert.Equal(t, desc[i].Title, asc[len(asc)-1-i].Title)
	}
}

func TestSortSalary(t *testing.T) {
	jobs := fixtureJobs()

	Sort(jobs, SortSalaryAsc)
	assert.Equal(t, []string{"Backend Engineer", "Staff Engineer"}, titles(jobs))

	Sort(jobs, SortSalaryDesc)
	assert.Equal(t, []string{"Staff Engineer", "Backend Engineer"}, titles(jobs))
}

func TestSortSalaryMissingTreatedAsZero(t *testing.T) {
	jobs := []*model.Job{
		makeJob("paid", 12, "", "x", nil, time.Now()),
		makeJob("undisclosed", 0, "", "x", nil, time.Now()),
	}

	Sort(jobs, SortSalaryAsc)
	assert.Equal(t, []string{"undisclosed", "paid"}, titles(jobs))
}

func TestRunScenarioSalaryAsc(t *testing.T) {
	jobs := fixtureJobs()

	result := Run(jobs, "", Filters{}, SortSalaryAsc, 1, 5)
	assert.Equal(t, []string{"Backend Engineer", "Staff Engineer"}, titles(result.Jobs))
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	jobs := fixtureJobs()

	result := Paginate(jobs, 99, 1)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, []string{jobs[1].Title}, titles(result.Jobs))

	result = Paginate(jobs, -3, 1)
	assert.Equal(t, 1, result.Page)
}

func TestPaginateEmptyCollection(t *testing.T) {
	result := Paginate(nil, 1, 5)
	assert.Empty(t, result.Jobs)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.Equal(t, 1, result.Page)
}

func TestPaginatePageCount(t *testing.T) {
	base := time.Now()
	var jobs []*model.Job
	for i := 0; i < 11; i++ {
		jobs = append(jobs, makeJob("job", 1, "", "x", nil, base))
	}

	result := Paginate(jobs, 3, 5)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Jobs, 1)
}

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{
		"2-5 years": 2,
		"5+":        5,
		"10 years":  10,
		"":          0,
		"senior":    0,
		" 3-4":      3,
	}
	for in, want := range cases {
		assert.Equal(t, want, leadingInt(in), "input %q", in)
	}
}
