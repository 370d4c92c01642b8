package quest

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// XPPerLevel is the experience needed per level; level n needs n*XPPerLevel.
const XPPerLevel = 100

// MaxLevel is the highest level whose threshold fits in an int.
const MaxLevel = math.MaxInt / XPPerLevel

// Manager owns the goal list and the score/XP/level counters.
// It is not safe for concurrent use.
type Manager struct {
	goals []Goal
	score int
	xp    int
	level int

	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes level-up and persistence logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager returns an empty manager at level 1.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		level:  1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EventResult reports what RecordEventForGoal did.
type EventResult struct {
	Applied      bool `json:"applied"` // false when the index was out of range
	Points       int  `json:"points"`
	LevelsGained int  `json:"levels_gained"`
	Completed    bool `json:"completed"` // the event completed the goal
}

func (m *Manager) Score() int         { return m.score }
func (m *Manager) XP() int            { return m.xp }
func (m *Manager) Level() int         { return m.level }
func (m *Manager) XPToNextLevel() int { return m.level * XPPerLevel }
func (m *Manager) Len() int           { return len(m.goals) }

// AddGoal appends g to the end of the list.
func (m *Manager) AddGoal(g Goal) {
	m.goals = append(m.goals, g)
}

// RecordEventForGoal records an event on the goal at the 0-based index.
// An out-of-range index is a no-op reported only through EventResult.Applied.
func (m *Manager) RecordEventForGoal(index int) EventResult {
	if index < 0 || index >= len(m.goals) {
		m.logger.Debug("record event ignored", "index", index, "goals", len(m.goals))
		return EventResult{}
	}
	g := m.goals[index]
	wasComplete := g.IsComplete()
	points := g.RecordEvent()
	m.score += points
	levels := m.gainXP(points)
	return EventResult{
		Applied:      true,
		Points:       points,
		LevelsGained: levels,
		Completed:    !wasComplete && g.IsComplete(),
	}
}

// gainXP adds amount and rolls over as many levels as it covers.
// Non-positive amounts are ignored.
func (m *Manager) gainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	m.xp += amount
	gained := 0
	for m.level < MaxLevel && m.xp >= m.XPToNextLevel() {
		m.xp -= m.XPToNextLevel()
		m.level++
		gained++
		m.logger.Info("level up", "new_level", m.level)
	}
	return gained
}

// ListGoals returns the display line of every goal in order.
func (m *Manager) ListGoals() []string {
	lines := make([]string, len(m.goals))
	for i, g := range m.goals {
		lines[i] = g.DisplayText()
	}
	return lines
}

// Goals returns snapshots of every goal in order.
func (m *Manager) Goals() []GoalInfo {
	infos := make([]GoalInfo, len(m.goals))
	for i, g := range m.goals {
		infos[i] = infoOf(g)
	}
	return infos
}

// Completed returns how many goals are complete.
func (m *Manager) Completed() int {
	n := 0
	for _, g := range m.goals {
		if g.IsComplete() {
			n++
		}
	}
	return n
}

// Summary is the one-line status banner.
func (m *Manager) Summary() string {
	return fmt.Sprintf("Score: %d | Level: %d | XP: %d/%d", m.score, m.level, m.xp, m.XPToNextLevel())
}

// snapshot returns the persisted state. The goals are shared with m.
func (m *Manager) snapshot() State {
	return State{
		Score: m.score,
		XP:    m.xp,
		Level: m.level,
		Goals: append([]Goal(nil), m.goals...),
	}
}

// replace swaps in a decoded state wholesale.
func (m *Manager) replace(st State) {
	m.goals = st.Goals
	m.score = st.Score
	m.xp = st.XP
	m.level = st.Level
}
