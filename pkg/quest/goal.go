package quest

import (
	"fmt"
	"strconv"
)

// Kind identifies a goal variant. The values double as the persisted record tags.
type Kind string

const (
	KindSimple    Kind = "Simple"
	KindEternal   Kind = "Eternal"
	KindChecklist Kind = "Checklist"
)

// Goal is one of *SimpleGoal, *EternalGoal or *ChecklistGoal.
// The set is closed: code that dispatches on goals type-switches over exactly those three.
type Goal interface {
	// RecordEvent registers one occurrence and returns the points it earned.
	RecordEvent() int
	IsComplete() bool
	DisplayText() string
	Details() string
	// SerializedRecord returns the unescaped record fields, tag first.
	SerializedRecord() []string
	Kind() Kind

	base() *goalBase
}

type goalBase struct {
	Name        string
	Description string
	Points      int
}

func (b *goalBase) base() *goalBase { return b }

// Details returns "name: description (Points: n)".
func (b *goalBase) Details() string {
	return fmt.Sprintf("%s: %s (Points: %d)", b.Name, b.Description, b.Points)
}

func (b *goalBase) record(kind Kind) []string {
	return []string{string(kind), b.Name, b.Description, strconv.Itoa(b.Points)}
}

// SimpleGoal pays out once and is then complete.
type SimpleGoal struct {
	goalBase
	Complete bool
}

// NewSimpleGoal returns an incomplete simple goal.
func NewSimpleGoal(name, description string, points int) *SimpleGoal {
	return &SimpleGoal{goalBase: goalBase{Name: name, Description: description, Points: points}}
}

func (g *SimpleGoal) Kind() Kind { return KindSimple }

func (g *SimpleGoal) RecordEvent() int {
	if g.Complete {
		return 0
	}
	g.Complete = true
	return g.Points
}

func (g *SimpleGoal) IsComplete() bool { return g.Complete }

func (g *SimpleGoal) DisplayText() string {
	return fmt.Sprintf("%s %s (Simple) - %s - %d pts", checkMark(g.Complete), g.Name, g.Description, g.Points)
}

func (g *SimpleGoal) SerializedRecord() []string {
	return append(g.record(KindSimple), strconv.FormatBool(g.Complete))
}

// EternalGoal pays out on every event and never completes.
type EternalGoal struct {
	goalBase
}

// NewEternalGoal returns an eternal goal.
func NewEternalGoal(name, description string, points int) *EternalGoal {
	return &EternalGoal{goalBase: goalBase{Name: name, Description: description, Points: points}}
}

func (g *EternalGoal) Kind() Kind { return KindEternal }

func (g *EternalGoal) RecordEvent() int { return g.Points }

func (g *EternalGoal) IsComplete() bool { return false }

func (g *EternalGoal) DisplayText() string {
	return fmt.Sprintf("[∞] %s (Eternal) - %s - %d pts per event", g.Name, g.Description, g.Points)
}

func (g *EternalGoal) SerializedRecord() []string {
	return g.record(KindEternal)
}

// ChecklistGoal pays Points per event until Current reaches Target,
// and Bonus on top for the event that gets it there.
type ChecklistGoal struct {
	goalBase
	Target  int
	Current int
	Bonus   int
}

// NewChecklistGoal returns a checklist goal with no progress.
func NewChecklistGoal(name, description string, points, target, bonus int) *ChecklistGoal {
	return &ChecklistGoal{
		goalBase: goalBase{Name: name, Description: description, Points: points},
		Target:   target,
		Bonus:    bonus,
	}
}

func (g *ChecklistGoal) Kind() Kind { return KindChecklist }

func (g *ChecklistGoal) RecordEvent() int {
	if g.IsComplete() {
		return 0
	}
	g.Current++
	if g.Current == g.Target {
		return g.Points + g.Bonus
	}
	return g.Points
}

func (g *ChecklistGoal) IsComplete() bool { return g.Current >= g.Target }

func (g *ChecklistGoal) DisplayText() string {
	return fmt.Sprintf("%s %s (Checklist) - %s - %d/%d done - %d pts each, bonus %d",
		checkMark(g.IsComplete()), g.Name, g.Description, g.Current, g.Target, g.Points, g.Bonus)
}

func (g *ChecklistGoal) SerializedRecord() []string {
	return append(g.record(KindChecklist),
		strconv.Itoa(g.Target),
		strconv.Itoa(g.Current),
		strconv.Itoa(g.Bonus),
	)
}

func checkMark(done bool) string {
	if done {
		return "[X]"
	}
	return "[ ]"
}

// GoalInfo is a read-only snapshot of a goal for renderers.
type GoalInfo struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Complete    bool   `json:"complete"`
	Target      int    `json:"target,omitempty"`
	Current     int    `json:"current,omitempty"`
	Bonus       int    `json:"bonus,omitempty"`
	Display     string `json:"display"`
	Details     string `json:"details"`
}

func infoOf(g Goal) GoalInfo {
	b := g.base()
	info := GoalInfo{
		Kind:        g.Kind(),
		Name:        b.Name,
		Description: b.Description,
		Points:      b.Points,
		Complete:    g.IsComplete(),
		Display:     g.DisplayText(),
		Details:     g.Details(),
	}
	switch v := g.(type) {
	case *SimpleGoal, *EternalGoal:
	case *ChecklistGoal:
		info.Target = v.Target
		info.Current = v.Current
		info.Bonus = v.Bonus
	default:
		panic(fmt.Sprintf("quest: unknown goal type %T", g))
	}
	return info
}
