package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

type formStep int

const (
	stepKind formStep = iota
	stepName
	stepDescription
	stepPoints
	stepTarget
	stepBonus
	stepDone
)

var stepLabels = map[formStep]string{
	stepKind:        "Type",
	stepName:        "Name",
	stepDescription: "Description",
	stepPoints:      "Points",
	stepTarget:      "Target count",
	stepBonus:       "Bonus points",
}

var fieldSteps = map[string]formStep{
	"Kind":        stepKind,
	"Name":        stepName,
	"Description": stepDescription,
	"Points":      stepPoints,
	"Target":      stepTarget,
	"Bonus":       stepBonus,
}

var stepPlaceholders = map[formStep]string{
	stepKind:        "1 simple, 2 eternal, 3 checklist",
	stepName:        "goal name",
	stepDescription: "short description (optional)",
	stepPoints:      "points per event",
	stepTarget:      "times to complete",
	stepBonus:       "bonus on completion",
}

// goalForm walks the user through the fields of a new goal, one prompt at a time.
type goalForm struct {
	step  formStep
	input textinput.Model
	goal  quest.GoalInput
	// answered holds the echo of every completed step, for display.
	answered [][2]string
}

func newGoalForm() goalForm {
	ti := textinput.New()
	ti.CharLimit = 120
	f := goalForm{input: ti}
	f.prepare()
	return f
}

func (f *goalForm) prepare() {
	f.input.Reset()
	f.input.Placeholder = stepPlaceholders[f.step]
	f.input.Focus()
}

// submit consumes the current input. It returns an error, and stays on the
// step, when the value does not parse. After the last step it validates the
// whole goal: on failure it returns to the first offending step with the
// earlier answer filled in, otherwise it reports done.
func (f *goalForm) submit() (done bool, err error) {
	raw := strings.TrimSpace(f.input.Value())

	switch f.step {
	case stepKind:
		kind, err := quest.ParseKind(raw)
		if err != nil {
			return false, err
		}
		f.goal.Kind = kind
		raw = string(kind)
	case stepName:
		if raw == "" {
			return false, fmt.Errorf("name is required")
		}
		f.goal.Name = raw
	case stepDescription:
		f.goal.Description = raw
	case stepPoints, stepTarget, stepBonus:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return false, fmt.Errorf("%s must be a whole number", strings.ToLower(stepLabels[f.step]))
		}
		switch f.step {
		case stepPoints:
			f.goal.Points = n
		case stepTarget:
			f.goal.Target = n
		default:
			f.goal.Bonus = n
		}
	}

	f.answered = append(f.answered, [2]string{stepLabels[f.step], raw})
	f.step = f.next()
	if f.step == stepDone {
		err := f.goal.Validate()
		if err != nil {
			f.rewind(err)
			return false, err
		}
		return true, nil
	}
	f.prepare()
	return false, nil
}

// rewind moves back to the step of the first field err blames, keeping the
// answers before it.
func (f *goalForm) rewind(err error) {
	step := stepKind
	var ierr *quest.InputError
	if errors.As(err, &ierr) && len(ierr.Fields) > 0 {
		if s, ok := fieldSteps[ierr.Fields[0]]; ok {
			step = s
		}
	}
	prev := ""
	if int(step) < len(f.answered) {
		prev = f.answered[step][1]
		f.answered = f.answered[:step]
	}
	f.step = step
	f.prepare()
	f.input.SetValue(prev)
}

func (f *goalForm) next() formStep {
	if f.step == stepPoints && f.goal.Kind != quest.KindChecklist {
		return stepDone
	}
	return f.step + 1
}

// build returns the finished goal. Only valid after submit reported done without error.
func (f *goalForm) build() (quest.Goal, error) {
	return quest.NewGoal(f.goal)
}
