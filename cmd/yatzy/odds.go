package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// OddsCmd prints single-throw odds for each category
type OddsCmd struct {
	Sort    string `kong:"default='sheet',enum='sheet,probability,mean',help='Sort order: sheet, probability or mean'"`
	NoColor bool   `kong:"help='Disable coloured output'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *OddsCmd) Run() error {
	logger := setupConsoleLogger(c.Debug)
	display.SetColor(!c.NoColor)

	odds, err := statistics.ComputeOdds(context.Background(), logger)
	if err != nil {
		return fmt.Errorf("computing odds: %w", err)
	}

	rows := slices.Clone(odds.Categories)
	switch c.Sort {
	case "probability":
		slices.SortStableFunc(rows, func(a, b statistics.CategoryOdds) int {
			return cmp.Compare(b.Probability(), a.Probability())
		})
	case "mean":
		slices.SortStableFunc(rows, func(a, b statistics.CategoryOdds) int {
			return cmp.Compare(b.Mean(), a.Mean())
		})
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Single throw odds over %d hands", odds.Hands)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Category\tScores\tMean\tStdDev\tMax")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\n",
			categoryStyle.Render(row.Category.String()),
			percentStyle.Render(fmt.Sprintf("%6.2f%%", row.Probability()*100)),
			row.Mean(),
			row.StdDev(),
			row.Max)
	}
	return w.Flush()
}
