// Package ui renders plans for the terminal. Output only; all editing
// happens through files and flags.
package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/nsharma/studyblocks/internal/allocate"
	"github.com/nsharma/studyblocks/internal/syllabus"
)

var (
	dateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	assignmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#14B8A6"))

	testStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))
)

// RenderPlan formats blocks grouped by date, in chronological order,
// with per-kind coloring. The planner emits blocks in priority order;
// the rendering re-sorts for reading without touching the plan itself.
func RenderPlan(blocks []allocate.Block) string {
	if len(blocks) == 0 {
		return dimStyle.Render("No study blocks to schedule.")
	}

	byDate := make(map[string][]allocate.Block)
	var dates []string
	for _, b := range blocks {
		d := b.Date()
		if _, seen := byDate[d]; !seen {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], b)
	}
	sort.Strings(dates)

	var sections []string
	for _, d := range dates {
		day := byDate[d]
		lines := []string{dateStyle.Render(headerFor(d))}
		for _, b := range day {
			style := assignmentStyle
			if b.Kind == syllabus.KindTest {
				style = testStyle
			}
			lines = append(lines, fmt.Sprintf("  %s  %s",
				dimStyle.Render(b.Clock()), style.Render(b.Title)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, summaryStyle.Render(
		fmt.Sprintf("%d blocks across %d days", len(blocks), len(dates))))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderItems summarizes the extracted work items with their hour
// budgets before the plan itself.
func RenderItems(items []syllabus.WorkItem, hours func(syllabus.WorkItem) int) string {
	if len(items) == 0 {
		return dimStyle.Render("No assignments or tests found.")
	}

	var lines []string
	for _, it := range items {
		due := "no due date"
		if it.HasDue() {
			due = "due " + it.Due.Format(syllabus.DateLayout)
		}
		label := assignmentStyle
		if it.Kind == syllabus.KindTest {
			label = testStyle
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			label.Render(fmt.Sprintf("%-10s", it.Kind)),
			it.Title,
			dimStyle.Render(fmt.Sprintf("(%s, %dh)", due, hours(it)))))
	}
	return strings.Join(lines, "\n")
}

// headerFor prefixes the date with its weekday name.
func headerFor(date string) string {
	t, err := time.Parse(syllabus.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %s", t.Weekday(), date)
}
