package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

const minWidth = 40
const minHeight = 10

const xpBarWidth = 20

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.size()

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}
	if m.showQuitConfirm {
		return placeOverlay(m.renderQuitModal(), w, h)
	}
	if m.isAdding {
		return placeOverlay(m.renderFormModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(m.renderXPBar(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	headerLines := 3
	footerLines := 2

	searchActive := m.isSearching || m.searchQuery != ""
	if searchActive {
		headerLines++
		b.WriteString(m.renderSearchBar(w))
		b.WriteString("\n")
	}

	contentHeight := h - headerLines - footerLines

	leftWidth := m.listWidth()
	rightWidth := m.detailWidth()

	leftPanel := m.renderGoalList(leftWidth, contentHeight)
	rightPanel := m.renderDetailPanel(rightWidth, contentHeight)

	sep := lipgloss.NewStyle().Foreground(ColorGrayDim).Render("│")
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(leftPanel, i, leftWidth))
		b.WriteString(sep)
		b.WriteString(getLine(rightPanel, i, rightWidth))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}
	return w, h
}

func (m Model) listWidth() int {
	w, _ := m.size()
	left := w * 2 / 5
	if left < 20 {
		left = 20
	}
	return left
}

func (m Model) detailWidth() int {
	w, _ := m.size()
	right := w - m.listWidth() - 1 // 1 char for divider
	if right < 20 {
		right = 20
	}
	return right
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("Eternal Quest")

	stats := HeaderCountStyle.Render(fmt.Sprintf("%d/%d goals complete", m.manager.Completed(), m.manager.Len()))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = m.statusStyle.Render(m.statusMsg) + "  "
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + status + stats
}

func (m Model) renderXPBar(width int) string {
	level := LevelStyle.Render(fmt.Sprintf("Level %d", m.manager.Level()))
	bar := xpBar(m.manager.XP(), m.manager.XPToNextLevel(), xpBarWidth)
	xp := HeaderCountStyle.Render(fmt.Sprintf("XP %d/%d", m.manager.XP(), m.manager.XPToNextLevel()))
	score := HeaderCountStyle.Render(fmt.Sprintf("Score %d", m.manager.Score()))

	line := level + "  " + bar + " " + xp
	gap := width - lipgloss.Width(line) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	return line + strings.Repeat(" ", gap) + score
}

// xpBar renders progress toward the next level as a fixed-width bar.
func xpBar(xp, threshold, width int) string {
	filled := 0
	if threshold > 0 && xp > 0 {
		filled = xp * width / threshold
	}
	if filled > width {
		filled = width
	}
	return XPFilledStyle.Render(strings.Repeat("█", filled)) +
		XPEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) renderSearchBar(width int) string {
	prefix := SearchBarStyle.Render(" / ")
	query := SearchBarStyle.Render(m.searchQuery)
	cursor := ""
	if m.isSearching {
		cursor = SearchBarStyle.Render("█")
	}

	countStr := ""
	if m.searchQuery != "" {
		countStr = SearchCountStyle.Render(fmt.Sprintf(" %d matches", len(m.visible)))
	}

	left := prefix + query + cursor
	padWidth := width - lipgloss.Width(left) - lipgloss.Width(countStr)
	if padWidth < 1 {
		padWidth = 1
	}
	return left + strings.Repeat(" ", padWidth) + countStr
}

func (m Model) renderGoalList(width, height int) string {
	var lines []string

	// Reserve last line for the save file path
	listHeight := height - 1
	if listHeight < 1 {
		listHeight = 1
	}

	if len(m.visible) == 0 {
		if m.searchQuery != "" {
			lines = append(lines, FooterStyle.Render("No goals match."))
		} else {
			lines = append(lines, FooterStyle.Render("No goals yet. Press 'a' to add one."))
		}
	}

	// Scrolling window centered on the cursor
	startIdx := 0
	endIdx := len(m.visible)
	if len(m.visible) > listHeight {
		startIdx = m.cursor - listHeight/2
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx = startIdx + listHeight
		if endIdx > len(m.visible) {
			endIdx = len(m.visible)
			startIdx = endIdx - listHeight
		}
	}

	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, m.renderRow(m.visible[i], i == m.cursor, width))
	}

	for len(lines) < listHeight {
		lines = append(lines, "")
	}

	pathLine := lipgloss.NewStyle().Foreground(ColorGrayDim).Render(fileHyperlink(m.opts.SavePath))
	lines = append(lines, pathLine)

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row Row, isSelected bool, width int) string {
	var icon string
	switch {
	case row.Goal.Complete:
		icon = CompleteStyle.Render(IconComplete)
	case row.Goal.Kind == quest.KindEternal:
		icon = EternalStyle.Render(IconEternal)
	default:
		icon = IncompleteStyle.Render(IconIncomplete)
	}

	number := fmt.Sprintf("%3s. ", row.Number)
	progress := ProgressStyle.Render(" " + progressLabel(row.Goal))
	line := number + icon + " " + row.Goal.Name + progress

	if lineWidth := lipgloss.Width(line); lineWidth < width {
		line += strings.Repeat(" ", width-lineWidth)
	}

	if isSelected {
		line = SelectedStyle.Render(line)
	}
	return line
}

func (m Model) renderDetailPanel(width, height int) string {
	row, ok := m.selected()
	if !ok {
		return FooterStyle.Render(" Select a goal to see its details")
	}

	md := goalMarkdown(row.Goal)
	rendered := md
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(md); err == nil {
			rendered = out
		}
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n "), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// goalMarkdown describes a goal for the detail panel.
func goalMarkdown(g quest.GoalInfo) string {
	var md strings.Builder

	md.WriteString("# " + g.Name + "\n\n")

	status := "in progress"
	switch {
	case g.Kind == quest.KindEternal:
		status = "never ends"
	case g.Complete:
		status = "complete"
	}
	md.WriteString(fmt.Sprintf("**Type:** %s | **Status:** %s\n\n", g.Kind, status))

	if g.Description != "" {
		md.WriteString(g.Description + "\n\n")
	}

	md.WriteString("> " + g.Details + "\n\n")

	md.WriteString(fmt.Sprintf("- **Points per event:** %d\n", g.Points))
	if g.Kind == quest.KindChecklist {
		md.WriteString(fmt.Sprintf("- **Progress:** %d/%d done\n", g.Current, g.Target))
		md.WriteString(fmt.Sprintf("- **Completion bonus:** %d\n", g.Bonus))
	}

	return md.String()
}

func (m Model) renderFooter() string {
	help := m.keys.ShortHelp()
	if m.isSearching {
		help = "type to filter  enter/↓ keep filter  esc clear"
	} else if m.searchQuery != "" {
		help = "esc clear filter  ↑↓ nav  space record"
	}
	if m.dirty && !m.opts.Autosave {
		help = "● unsaved  " + help
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderQuitModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Unsaved Changes"))
	b.WriteString("\n\n")
	b.WriteString("Save before quitting?\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render("[y]") + " Save  ")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorRed).Render("[n]") + " Discard  ")
	b.WriteString(FooterStyle.Render("[esc] Cancel"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderFormModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("New Goal"))
	b.WriteString("\n\n")

	for _, a := range m.form.answered {
		b.WriteString(FormLabelStyle.Render(a[0]))
		b.WriteString(FormValueStyle.Render(a[1]))
		b.WriteString("\n")
	}
	b.WriteString(FormLabelStyle.Render(stepLabels[m.form.step]))
	b.WriteString(InputPromptStyle.Render("> "))
	b.WriteString(m.form.input.View())
	b.WriteString("\n\n")

	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		b.WriteString(m.statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(FooterStyle.Render("enter next  esc cancel"))

	return ModalStyle.Render(b.String())
}

// fileHyperlink wraps a file path in an OSC 8 terminal hyperlink so it's clickable.
func fileHyperlink(path string) string {
	url := "file://" + path
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, path)
}

// Helper functions

func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		line := lines[idx]
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			return line + strings.Repeat(" ", width-lineWidth)
		}
		return line
	}
	return strings.Repeat(" ", width)
}

func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := (height - len(modalLines)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	leftPadding := (width - lipgloss.Width(modalLines[0])) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
