package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleGoalPaysOnce(t *testing.T) {
	g := NewSimpleGoal("Run a marathon", "42km", 1000)
	assert.False(t, g.IsComplete())

	assert.Equal(t, 1000, g.RecordEvent())
	assert.True(t, g.IsComplete())

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, g.RecordEvent())
		assert.True(t, g.IsComplete())
	}
}

func TestEternalGoalNeverCompletes(t *testing.T) {
	g := NewEternalGoal("Read scriptures", "daily", 100)

	total := 0
	for i := 0; i < 7; i++ {
		total += g.RecordEvent()
		assert.False(t, g.IsComplete())
	}
	assert.Equal(t, 700, total)
}

func TestChecklistGoalBonusOnCompletion(t *testing.T) {
	g := NewChecklistGoal("Temple", "attend", 5, 3, 10)

	assert.Equal(t, 5, g.RecordEvent())
	assert.False(t, g.IsComplete())
	assert.Equal(t, 5, g.RecordEvent())
	assert.False(t, g.IsComplete())
	assert.Equal(t, 15, g.RecordEvent())
	assert.True(t, g.IsComplete())

	assert.Equal(t, 0, g.RecordEvent())
	assert.Equal(t, 3, g.Current, "count stops at the target")
	assert.True(t, g.IsComplete())
}

func TestChecklistGoalWithoutTargetIsComplete(t *testing.T) {
	g := NewChecklistGoal("Nothing", "", 5, 0, 10)
	assert.True(t, g.IsComplete())
	assert.Equal(t, 0, g.RecordEvent())
	assert.Equal(t, 0, g.Current)
}

func TestDisplayText(t *testing.T) {
	simple := NewSimpleGoal("Run", "5k", 50)
	assert.Equal(t, "[ ] Run (Simple) - 5k - 50 pts", simple.DisplayText())
	simple.RecordEvent()
	assert.Equal(t, "[X] Run (Simple) - 5k - 50 pts", simple.DisplayText())

	eternal := NewEternalGoal("Pray", "morning", 10)
	assert.Equal(t, "[∞] Pray (Eternal) - morning - 10 pts per event", eternal.DisplayText())

	checklist := NewChecklistGoal("Gym", "lift", 20, 5, 100)
	checklist.RecordEvent()
	checklist.RecordEvent()
	checklist.RecordEvent()
	assert.Equal(t, "[ ] Gym (Checklist) - lift - 3/5 done - 20 pts each, bonus 100", checklist.DisplayText())
}

func TestSerializedRecord(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		want []string
	}{
		{
			name: "simple",
			goal: NewSimpleGoal("a|b", "desc", 10),
			want: []string{"Simple", "a|b", "desc", "10", "false"},
		},
		{
			name: "eternal",
			goal: NewEternalGoal("pray", "", 5),
			want: []string{"Eternal", "pray", "", "5"},
		},
		{
			name: "checklist keeps target, current, bonus order",
			goal: &ChecklistGoal{
				goalBase: goalBase{Name: "gym", Description: "lift", Points: 20},
				Target:   5,
				Current:  2,
				Bonus:    100,
			},
			want: []string{"Checklist", "gym", "lift", "20", "5", "2", "100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.goal.SerializedRecord())
		})
	}
}

func TestDetails(t *testing.T) {
	g := NewEternalGoal("Pray", "morning", 10)
	assert.Equal(t, "Pray: morning (Points: 10)", g.Details())
}

func TestInfoOfChecklist(t *testing.T) {
	g := NewChecklistGoal("Gym", "lift", 20, 2, 50)
	g.RecordEvent()

	info := infoOf(g)
	assert.Equal(t, KindChecklist, info.Kind)
	assert.Equal(t, "Gym", info.Name)
	assert.Equal(t, 2, info.Target)
	assert.Equal(t, 1, info.Current)
	assert.Equal(t, 50, info.Bonus)
	assert.False(t, info.Complete)
	assert.Equal(t, g.DisplayText(), info.Display)
}
