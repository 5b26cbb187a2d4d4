package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Summary box layout constants.
const (
	boxWidth       = 60
	progressBarLen = 30
	percentOKMax   = 90.0  // at or below: on budget
	percentWarnMax = 100.0 // at or below: approaching the target
)

// boxBorderColor returns the lipgloss.Color used for the summary box border.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the lipgloss.Color used for the summary box title.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("39") }

// progressColor maps the percent-of-target to a bar color: green while on
// budget, amber when approaching the target, red when over.
func progressColor(percent float64) lipgloss.Color {
	switch {
	case percent <= percentOKMax:
		return lipgloss.Color("42")
	case percent <= percentWarnMax:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

// DaySummary is one day's plan totals against the daily feeding target.
type DaySummary struct {
	Day        time.Time
	PetName    string
	TotalKJ    float64
	TotalKcal  float64
	TotalCost  float64
	TargetKcal float64
}

// PercentOfTarget returns energy fed as a percentage of the daily target,
// or zero when no target is set.
func (s DaySummary) PercentOfTarget() float64 {
	if s.TargetKcal <= 0 {
		return 0
	}
	return s.TotalKcal / s.TargetKcal * 100.0
}

// progressBar renders a fixed-width bar filled to percent, capped at 100%.
func progressBar(percent float64) string {
	capped := math.Min(percent, percentWarnMax)
	filled := int(math.Round(capped / percentWarnMax * progressBarLen))

	filledStyle := lipgloss.NewStyle().Foreground(progressColor(percent))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", progressBarLen-filled))
}

// DaySummaryBox renders a bordered one-day summary: totals, cost, and a
// progress bar of energy fed against the daily target.
func DaySummaryBox(w io.Writer, s DaySummary) error {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(boxTitleColor())
	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Width(boxWidth).
		Padding(0, 1)

	title := fmt.Sprintf("%s, %s", s.PetName, s.Day.Format("Mon Jan 2, 2006"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Energy  %s  (%s)\n", Energy(s.TotalKJ, "kJ"), Energy(s.TotalKcal, "kcal"))
	fmt.Fprintf(&b, "Cost    %s\n", Currency(s.TotalCost))

	if s.TargetKcal > 0 {
		percent := s.PercentOfTarget()
		fmt.Fprintf(&b, "Target  %s\n\n", Energy(s.TargetKcal, "kcal"))
		fmt.Fprintf(&b, "%s %s of target", progressBar(percent), Percent(percent))
	}

	_, err := fmt.Fprintln(w, borderStyle.Render(b.String()))
	return err
}
