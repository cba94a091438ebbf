// Package stats contains attempt statistics and their display rows.
package stats

import (
	"fmt"

	"github.com/verte-zerg/cryptodet/internal/model"
)

var kindLabels = map[string]string{
	"caesar":   "Цезарь",
	"vigenere": "Виженер",
	"mixed":    "Смешанный",
}

// Totals sums attempts across cipher kinds.
type Totals struct {
	Attempts  int
	Solved    int
	WithHints int
}

// Accuracy returns the solved share of attempts, or 0 without attempts.
func Accuracy(solved, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(solved) / float64(attempts)
}

// Summarize adds up per-kind aggregates.
func Summarize(aggs []model.KindAggregate) Totals {
	var t Totals
	for _, agg := range aggs {
		t.Attempts += agg.Attempts
		t.Solved += agg.Solved
		t.WithHints += agg.WithHints
	}
	return t
}

// Accuracy returns the overall solved share.
func (t Totals) Accuracy() float64 {
	return Accuracy(t.Solved, t.Attempts)
}

// KindLabel returns the display name for a cipher kind.
func KindLabel(kind string) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return kind
}

// KindHeaders are the column titles for KindRows.
var KindHeaders = []string{"Шифр", "Попытки", "Решено", "С подсказкой", "Точность"}

// KindRows formats per-kind aggregates for display. A totals row is added
// when more than one kind is present.
func KindRows(aggs []model.KindAggregate) [][]string {
	rows := make([][]string, 0, len(aggs)+1)
	for _, agg := range aggs {
		rows = append(rows, kindRow(KindLabel(agg.Kind), Totals{
			Attempts:  agg.Attempts,
			Solved:    agg.Solved,
			WithHints: agg.WithHints,
		}))
	}
	if len(aggs) > 1 {
		rows = append(rows, kindRow("Всего", Summarize(aggs)))
	}
	return rows
}

func kindRow(label string, t Totals) []string {
	return []string{
		label,
		fmt.Sprintf("%d", t.Attempts),
		fmt.Sprintf("%d", t.Solved),
		fmt.Sprintf("%d", t.WithHints),
		formatPercent(t.Accuracy()),
	}
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
