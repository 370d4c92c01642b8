package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

func sampleGoals() []quest.GoalInfo {
	return []quest.GoalInfo{
		{Kind: quest.KindSimple, Name: "Run a marathon", Description: "42km", Points: 1000},
		{Kind: quest.KindEternal, Name: "Read", Description: "scriptures", Points: 100},
		{Kind: quest.KindChecklist, Name: "Temple", Description: "attend", Points: 50, Target: 10, Current: 3, Bonus: 500},
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleGoals())
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i, r.Index)
	}
	assert.Equal(t, "1", rows[0].Number)
	assert.Equal(t, "3", rows[2].Number)
	assert.Equal(t, "Temple", rows[2].Goal.Name)
}

func TestFilterRows(t *testing.T) {
	rows := BuildRows(sampleGoals())

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Run a marathon", "Read", "Temple"}},
		{"READ", []string{"Read"}},
		{"r", []string{"Run a marathon", "Read"}},
		{"42", []string{"Run a marathon"}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, r := range FilterRows(rows, tt.query) {
				got = append(got, r.Goal.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterRowsKeepsManagerIndex(t *testing.T) {
	rows := FilterRows(BuildRows(sampleGoals()), "temple")
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "3", rows[0].Number)
}

func TestProgressLabel(t *testing.T) {
	goals := sampleGoals()
	assert.Equal(t, "1000 pts", progressLabel(goals[0]))
	assert.Equal(t, "+100", progressLabel(goals[1]))
	assert.Equal(t, "3/10", progressLabel(goals[2]))

	goals[0].Complete = true
	assert.Equal(t, "done", progressLabel(goals[0]))
}
