package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/verte-zerg/cryptodet/internal/game"
	"github.com/verte-zerg/cryptodet/internal/model"
	"github.com/verte-zerg/cryptodet/internal/stats"
)

func (m *Model) renderAchievements(width int) string {
	sections := []string{
		focusStyle.Render("Ваши достижения"),
		achievementsTable(game.Achievements(m.session)),
		"",
		focusStyle.Render("Журнал попыток"),
	}
	switch {
	case m.reportErr != "":
		sections = append(sections, errorStyle.Render("Не удалось загрузить журнал: "+m.reportErr))
	case len(m.report.Aggregates) == 0:
		sections = append(sections, mutedStyle.Render("Попыток пока нет."))
	default:
		sections = append(sections, journalTable(m.report.Aggregates))
		sections = append(sections, "", mutedStyle.Render("Последние ответы:"))
		for _, a := range m.report.Recent {
			mark := errorStyle.Render("✗")
			if a.Correct {
				mark = successStyle.Render("✓")
			}
			line := fmt.Sprintf("%s %s  миссия %d  %s", mark, a.CreatedAt.Format("15:04:05"), a.MissionID, stats.KindLabel(a.Kind))
			sections = append(sections, line)
		}
	}
	out := strings.Join(sections, "\n")
	if width <= 0 {
		return out
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(out)
}

func achievementsTable(list []game.Achievement) string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		status := "закрыто"
		if a.Unlocked {
			status = "открыто"
		}
		rows = append(rows, []string{a.Name, a.Description, status})
	}
	unlocked := make(map[int]bool, len(list))
	for i, a := range list {
		unlocked[i] = a.Unlocked
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Достижение", "Условие", "Статус").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cardTitleStyle.Padding(0, 1)
			case unlocked[row]:
				return successStyle.Padding(0, 1)
			default:
				return mutedStyle.Padding(0, 1)
			}
		})
	return t.Render()
}

// journalTable shows per-cipher attempts; counts are right-aligned and the
// totals row, when present, is highlighted.
func journalTable(aggs []model.KindAggregate) string {
	rows := stats.KindRows(aggs)
	totalsRow := -1
	if len(aggs) > 1 {
		totalsRow = len(rows) - 1
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(stats.KindHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch row {
			case table.HeaderRow:
				style = cardTitleStyle.Padding(0, 1)
			case totalsRow:
				style = focusStyle.Padding(0, 1)
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
	return t.Render()
}
