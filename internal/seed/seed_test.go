package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathwayplanner/planner/internal/planner"
)

func TestDefaultCourses_Consistent(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range DefaultCourses {
		assert.False(t, seen[c.ID], "duplicate course %s", c.ID)
		seen[c.ID] = true
		assert.Equal(t, planner.Concrete, planner.ParseToken(c.ID).Kind, c.ID)
		for _, term := range c.Terms() {
			assert.True(t, planner.IsValidTerm(term), "%s offers %q", c.ID, term)
		}
	}

	for _, p := range defaultPrerequisites {
		assert.True(t, seen[p.dependent], "prerequisite for unknown course %s", p.dependent)
		assert.LessOrEqual(t, p.minCourses, len(p.members))
	}
}

func TestBuildBatch_RealignsSequences(t *testing.T) {
	batch := buildBatch()

	var setvals int
	for _, q := range batch.QueuedQueries {
		if strings.Contains(q.SQL, "setval") {
			setvals++
		}
	}
	assert.Equal(t, len(serialTables), setvals)
	assert.Greater(t, batch.Len(), len(defaultPrerequisites))
}
