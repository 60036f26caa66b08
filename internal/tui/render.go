package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/holocron/internal/catalog"
)

const (
	detailLabelWidth = 12
	unknownValue     = "unknown"
	fieldSeparator   = " · "
)

// TableHeaders are the columns of RenderTable.
//
//nolint:gochecknoglobals // Read-only column list.
var TableHeaders = []string{"#", "Name", "Gender", "Birth year", "Height", "Mass"}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownValue
	}
	return s
}

// formatMeasure appends unit to parseable values and passes others through.
func formatMeasure(v catalog.NumericString, unit string) string {
	if _, ok := v.Float(); ok {
		return strings.TrimSpace(v.String()) + " " + unit
	}
	return orUnknown(v.String())
}

// Summary is the one-line attribute summary shown under a card's name.
func Summary(e catalog.Entity) string {
	return strings.Join([]string{
		orUnknown(e.Gender),
		"born " + orUnknown(e.BirthYear),
		formatMeasure(e.Height, "cm"),
		formatMeasure(e.Mass, "kg"),
	}, fieldSeparator)
}

// RenderCard renders one entity as a two-line card.
func RenderCard(e catalog.Entity, selected bool, width int) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(NameStyle.Render(e.Name) + "\n" + MutedStyle.Render(Summary(e)))
}

// RenderDetail renders every field of an entity.
func RenderDetail(e catalog.Entity, width int) string {
	rows := []struct{ label, value string }{
		{"Name", e.Name},
		{"Gender", orUnknown(e.Gender)},
		{"Birth year", orUnknown(e.BirthYear)},
		{"Height", formatMeasure(e.Height, "cm")},
		{"Mass", formatMeasure(e.Mass, "kg")},
		{"Eye colour", orUnknown(e.EyeColor)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, LabelStyle.Render(r.label)+r.value)
	}

	style := DetailStyle
	if width > minWidth {
		style = style.MaxWidth(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderTable renders a page of entities as a table. Row numbers start at
// offset+1. styled selects rounded borders and colours; otherwise ASCII.
func RenderTable(entities []catalog.Entity, offset int, styled bool) string {
	rows := make([][]string, 0, len(entities))
	for i, e := range entities {
		rows = append(rows, []string{
			strconv.Itoa(offset + i + 1),
			e.Name,
			orUnknown(e.Gender),
			orUnknown(e.BirthYear),
			formatMeasure(e.Height, "cm"),
			formatMeasure(e.Mass, "kg"),
		})
	}

	t := table.New().Headers(TableHeaders...).Rows(rows...)
	if styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style {
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}
	return t.Render()
}

// RenderStatusLine summarises a Display for the footer of both outputs.
func RenderStatusLine(d catalog.Display) string {
	if d.Normalized == "" {
		return fmt.Sprintf("%d entities · page %d of %d", d.BaselineSize, d.Page, d.TotalPages)
	}
	return fmt.Sprintf("%d of %d match %q (%d by name) · page %d of %d",
		d.TotalMatches, d.BaselineSize, d.Query, d.ExactMatches, d.Page, d.TotalPages)
}

// RenderNoMatches renders the empty-result message with any suggestions.
func RenderNoMatches(d catalog.Display) string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "No entities match %q.", d.Query)
	if len(d.Suggestions) > 0 {
		quoted := make([]string, len(d.Suggestions))
		for i, s := range d.Suggestions {
			quoted[i] = MatchStyle.Render(s)
		}
		_, _ = fmt.Fprintf(&sb, "\nDid you mean: %s?", strings.Join(quoted, ", "))
	}
	return sb.String()
}
