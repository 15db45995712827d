package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventConsole/internal/models"
)

func sampleRoster() []models.Registration {
	return []models.Registration{
		{RegistrationID: 1, Attended: true, Student: models.Student{
			StudentID: "CSE001", Name: "Ravi Kumar", Email: "ravi@college.edu", Department: "CSE",
		}},
		{RegistrationID: 2, Student: models.Student{
			StudentID: "ECE007", Name: "Anita Sharma", Email: "anita@college.edu", Department: "ECE",
		}},
		{RegistrationID: 3, Student: models.Student{
			StudentID: "ME003", Name: "Deepak Ravindran", Email: "deepak@college.edu", Department: "ME",
		}},
		{RegistrationID: 4, Student: models.Student{
			StudentID: "CSE014", Name: "Priya Nair", Email: "priya@college.edu",
		}},
	}
}

func TestCacheReplaceAndRoster(t *testing.T) {
	t.Parallel()

	c := NewCache()

	_, ok := c.Roster(5)
	assert.False(t, ok)

	src := sampleRoster()
	c.Replace(5, src)

	got, ok := c.Roster(5)
	require.True(t, ok)
	assert.Equal(t, src, got)

	// The mirror is a copy: mutating the returned slice must not leak back.
	got[0].Attended = false
	again, _ := c.Roster(5)
	assert.True(t, again[0].Attended)
}

func TestCacheAttendedAcrossEvents(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.Replace(5, sampleRoster())
	c.Replace(6, []models.Registration{{RegistrationID: 9, Attended: true}})

	attended, ok := c.Attended(9)
	assert.True(t, ok)
	assert.True(t, attended)

	attended, ok = c.Attended(2)
	assert.True(t, ok)
	assert.False(t, attended)

	_, ok = c.Attended(999)
	assert.False(t, ok)
}

func TestCacheSetAttended(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.Replace(5, sampleRoster())

	assert.True(t, c.SetAttended(2, true))

	attended, ok := c.Attended(2)
	require.True(t, ok)
	assert.True(t, attended)

	assert.False(t, c.SetAttended(999, true))
}

func TestDepartments(t *testing.T) {
	t.Parallel()

	// Sorted, distinct, empty departments skipped.
	assert.Equal(t, []string{"CSE", "ECE", "ME"}, Departments(sampleRoster()))
	assert.Empty(t, Departments(nil))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	regs := sampleRoster()

	testCases := []struct {
		name       string
		search     string
		department string
		wantIDs    []int64
	}{
		{name: "No filters returns everything", wantIDs: []int64{1, 2, 3, 4}},
		{name: "Department alone", department: "CSE", wantIDs: []int64{1}},
		{name: "Search is case-insensitive", search: "RAVI", wantIDs: []int64{1, 3}},
		{name: "Search matches student id", search: "cse014", wantIDs: []int64{4}},
		{name: "Search matches email", search: "anita@", wantIDs: []int64{2}},
		{name: "Department and search compose with AND", search: "ravi", department: "CSE", wantIDs: []int64{1}},
		{name: "No matches", search: "nobody", wantIDs: []int64{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(regs, tc.search, tc.department)

			ids := make([]int64, 0, len(got))
			for _, reg := range got {
				ids = append(ids, reg.RegistrationID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
