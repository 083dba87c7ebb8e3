package formatter

import (
	"fmt"
	"strings"

	"github.com/omarzaki/boqplan/internal/catalog"
	"github.com/omarzaki/boqplan/internal/domain"
)

// FormatCodes formats the catalogue listing.
func FormatCodes(cat *catalog.Catalogue) string {
	headers := []string{"CODE", "DESCRIPTION", "CATEGORY", "STEPS"}
	rows := make([][]string, 0, len(cat.ListCodes()))

	for _, code := range cat.ListCodes() {
		b, err := cat.Get(code)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			Bold(b.BOQCode),
			StyleFg.Render(b.Description),
			StylePurple.Render(b.Category),
			fmt.Sprintf("%d", len(b.SubActivities)),
		})
	}

	return RenderBox("Catalogue", RenderTable(headers, rows))
}

// FormatBreakdown formats one catalogue entry in full: the BOQ line item
// and its sub-activity table with crews and logic links.
func FormatBreakdown(b *domain.Breakdown) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("%s  %s\n", Bold(b.BOQCode), StyleFg.Render(b.Description)))
	out.WriteString(Dim(fmt.Sprintf("%g %s, %s", b.TotalQuantity, b.Unit, b.Category)) + "\n\n")

	headers := []string{"CODE", "SUB-ACTIVITY", "RATE", "CREW", "TYPE", "DEPENDS ON"}
	rows := make([][]string, 0, len(b.SubActivities))
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]

		links := make([]string, 0, len(sub.Links))
		for _, l := range sub.Links {
			links = append(links, LinkLabel(l))
		}
		depends := Dim("--")
		if len(links) > 0 {
			depends = StyleBlue.Render(strings.Join(links, ", "))
		}

		rows = append(rows, []string{
			Bold(sub.Code),
			StyleFg.Render(sub.Name),
			Dim(fmt.Sprintf("%g %s", sub.Productivity.RatePerDay, sub.Productivity.Unit)),
			StyleFg.Render(CrewLabel(sub.Productivity.Crew)),
			TypeBadge(sub.Type),
			depends,
		})
	}
	out.WriteString(RenderTable(headers, rows))

	return RenderBox("Breakdown", out.String())
}
