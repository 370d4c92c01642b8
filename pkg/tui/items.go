package tui

import (
	"strconv"
	"strings"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

// Row is one goal line in the list panel.
type Row struct {
	Index  int    // 0-based position in the manager
	Number string // 1-based label shown to the user
	Goal   quest.GoalInfo
}

// BuildRows converts manager snapshots into rows, keeping manager order.
func BuildRows(goals []quest.GoalInfo) []Row {
	rows := make([]Row, len(goals))
	for i, g := range goals {
		rows[i] = Row{Index: i, Number: strconv.Itoa(i + 1), Goal: g}
	}
	return rows
}

// FilterRows keeps rows whose name or description contains query, case-insensitively.
func FilterRows(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	var result []Row
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Goal.Name), q) ||
			strings.Contains(strings.ToLower(r.Goal.Description), q) {
			result = append(result, r)
		}
	}
	return result
}

// progressLabel is the short progress hint shown next to a row.
func progressLabel(g quest.GoalInfo) string {
	switch g.Kind {
	case quest.KindChecklist:
		return strconv.Itoa(g.Current) + "/" + strconv.Itoa(g.Target)
	case quest.KindEternal:
		return "+" + strconv.Itoa(g.Points)
	default:
		if g.Complete {
			return "done"
		}
		return strconv.Itoa(g.Points) + " pts"
	}
}
