package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

// answer types value into the current step and submits it.
func answer(t *testing.T, f *goalForm, value string) (bool, error) {
	t.Helper()
	f.input.SetValue(value)
	return f.submit()
}

func TestGoalFormSimple(t *testing.T) {
	f := newGoalForm()

	for _, v := range []string{"1", "Run a marathon", "42km"} {
		done, err := answer(t, &f, v)
		require.NoError(t, err)
		require.False(t, done)
	}
	done, err := answer(t, &f, "1000")
	require.NoError(t, err)
	require.True(t, done)

	g, err := f.build()
	require.NoError(t, err)
	simple, ok := g.(*quest.SimpleGoal)
	require.True(t, ok)
	assert.Equal(t, "Run a marathon", simple.Name)
	assert.Equal(t, 1000, simple.Points)
	assert.Len(t, f.answered, 4)
	assert.Equal(t, [2]string{"Type", "Simple"}, f.answered[0])
}

func TestGoalFormChecklistAsksForTargetAndBonus(t *testing.T) {
	f := newGoalForm()

	for _, v := range []string{"checklist", "Temple", "", "50", "10"} {
		done, err := answer(t, &f, v)
		require.NoError(t, err)
		require.False(t, done)
	}
	assert.Equal(t, stepBonus, f.step)

	done, err := answer(t, &f, "500")
	require.NoError(t, err)
	require.True(t, done)

	g, err := f.build()
	require.NoError(t, err)
	checklist, ok := g.(*quest.ChecklistGoal)
	require.True(t, ok)
	assert.Equal(t, 10, checklist.Target)
	assert.Equal(t, 500, checklist.Bonus)
	assert.Equal(t, "", checklist.Description)
}

func TestGoalFormRejectsBadInputAndStays(t *testing.T) {
	f := newGoalForm()

	_, err := answer(t, &f, "9")
	assert.Error(t, err)
	assert.Equal(t, stepKind, f.step)

	_, err = answer(t, &f, "2")
	require.NoError(t, err)

	_, err = answer(t, &f, "  ")
	assert.EqualError(t, err, "name is required")
	assert.Equal(t, stepName, f.step)

	_, err = answer(t, &f, "Read")
	require.NoError(t, err)
	_, err = answer(t, &f, "")
	require.NoError(t, err)

	_, err = answer(t, &f, "lots")
	assert.EqualError(t, err, "points must be a whole number")
	assert.Equal(t, stepPoints, f.step)
}

func TestGoalFormRewindsToInvalidStep(t *testing.T) {
	f := newGoalForm()
	for _, v := range []string{"3", "Gym", "lift", "20", "0"} {
		_, err := answer(t, &f, v)
		require.NoError(t, err)
	}

	done, err := answer(t, &f, "5")
	assert.False(t, done)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target is required")
	assert.Equal(t, stepTarget, f.step)
	assert.Equal(t, "0", f.input.Value())
	assert.Len(t, f.answered, 4, "answers before the target step are kept")

	done, err = answer(t, &f, "4")
	require.NoError(t, err)
	require.False(t, done)
	done, err = answer(t, &f, "5")
	require.NoError(t, err)
	require.True(t, done)

	g, err := f.build()
	require.NoError(t, err)
	checklist, ok := g.(*quest.ChecklistGoal)
	require.True(t, ok)
	assert.Equal(t, "Gym", checklist.Name)
	assert.Equal(t, "lift", checklist.Description)
	assert.Equal(t, 4, checklist.Target)
	assert.Equal(t, 5, checklist.Bonus)
}

func TestGoalFormRewindsToName(t *testing.T) {
	f := newGoalForm()
	for _, v := range []string{"1", `C:\`, "drive"} {
		_, err := answer(t, &f, v)
		require.NoError(t, err)
	}

	done, err := answer(t, &f, "10")
	assert.False(t, done)
	require.Error(t, err)
	assert.Equal(t, stepName, f.step)
	assert.Equal(t, `C:\`, f.input.Value())
	assert.Len(t, f.answered, 1)
}
