// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package tripplan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws the trip-planning views as styled terminal text.
type Renderer struct {
	width int

	card        lipgloss.Style
	cardFocus   lipgloss.Style
	title       lipgloss.Style
	subtitle    lipgloss.Style
	price       lipgloss.Style
	muted       lipgloss.Style
	badgeGood   lipgloss.Style
	badgeWarn   lipgloss.Style
	badgeBad    lipgloss.Style
	tag         lipgloss.Style
	dayHeader   lipgloss.Style
	mustDo      lipgloss.Style
	canSkip     lipgloss.Style
	tip         lipgloss.Style
	tableHeader lipgloss.Style
}

// NewRenderer builds a renderer for terminals of the given width.
// Widths below 40 columns are clamped to 40.
func NewRenderer(width int) *Renderer {
	if width < 40 {
		width = 40
	}
	green := lipgloss.Color("42")
	amber := lipgloss.Color("214")
	red := lipgloss.Color("203")
	cyan := lipgloss.Color("86")
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")

	return &Renderer{
		width: width,
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(gray).
			Padding(0, 1).
			Width(width - 2),
		cardFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(0, 1).
			Width(width - 2),
		title:       lipgloss.NewStyle().Foreground(purple).Bold(true),
		subtitle:    lipgloss.NewStyle().Foreground(gray),
		price:       lipgloss.NewStyle().Foreground(cyan).Bold(true),
		muted:       lipgloss.NewStyle().Foreground(gray),
		badgeGood:   lipgloss.NewStyle().Foreground(green).Bold(true),
		badgeWarn:   lipgloss.NewStyle().Foreground(amber).Bold(true),
		badgeBad:    lipgloss.NewStyle().Foreground(red).Bold(true),
		tag:         lipgloss.NewStyle().Foreground(cyan),
		dayHeader:   lipgloss.NewStyle().Foreground(purple).Bold(true),
		mustDo:      lipgloss.NewStyle().Foreground(green),
		canSkip:     lipgloss.NewStyle().Foreground(gray),
		tip:         lipgloss.NewStyle().Foreground(amber).Italic(true),
		tableHeader: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func (r *Renderer) badge(rec Recommendation, text string) string {
	switch rec {
	case Recommended:
		return r.badgeGood.Render("✓ " + text)
	case Rushed:
		return r.badgeWarn.Render("⚠ " + text)
	default:
		return r.badgeBad.Render("✗ " + text)
	}
}

// Card renders a destination summary card. focused switches the border
// accent.
func (r *Renderer) Card(d *Destination, tier PriceTier, origin OriginCity, focused bool) string {
	var b strings.Builder
	b.WriteString(r.title.Render(d.Name) + "  " + r.subtitle.Render(d.Country) + "\n")
	b.WriteString(r.badge(d.Recommendation, d.RecommendationText) + "\n")
	b.WriteString(fmt.Sprintf("%s per person  ·  %s\n",
		r.price.Render(FormatINRCompact(d.PerPerson(tier))), d.Duration))
	b.WriteString(r.muted.Render(fmt.Sprintf("Flight from %s %s · Stay %s · %s %s",
		origin, FormatINR(d.FlightCost(origin)), d.StayCost, d.Weather.Temp, d.Weather.Condition)) + "\n")
	b.WriteString(r.tag.Render(strings.Join(d.Highlights, " · ")))
	if d.SeasonInfo != "" {
		b.WriteString("\n" + r.badgeBad.Render(d.SeasonInfo))
	}
	style := r.card
	if focused {
		style = r.cardFocus
	}
	return style.Render(b.String())
}

// CardList renders every destination card stacked vertically, with the
// card at focus highlighted. A negative focus highlights nothing.
func (r *Renderer) CardList(tier PriceTier, origin OriginCity, focus int) string {
	cards := make([]string, 0, len(destinations))
	for i, d := range destinations {
		cards = append(cards, r.Card(d, tier, origin, i == focus))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Itinerary renders the full day-by-day plan for a destination.
func (r *Renderer) Itinerary(d *Destination, tier PriceTier, withMotorcycle bool) string {
	var b strings.Builder
	b.WriteString(r.title.Render(d.Name+" Itinerary") + "  " +
		r.subtitle.Render(fmt.Sprintf("%s · %d days", d.Duration, d.Days())) + "\n")
	if len(d.Notes) > 0 {
		for _, n := range d.Notes {
			b.WriteString(r.muted.Render("• "+n) + "\n")
		}
	}
	if withMotorcycle && d.ID == "ladakh" {
		b.WriteString(r.badgeWarn.Render("Motorcycle rental added (~₹1,500/day for Royal Enfield)") + "\n")
	}
	for _, day := range d.Itinerary {
		b.WriteString("\n" + r.dayHeader.Render(fmt.Sprintf("Day %d · %s", day.Day, day.Title)) +
			"  " + r.muted.Render(DayDate(day.Day)) + "\n")
		for _, a := range day.Activities {
			b.WriteString(r.activity(d, a, tier, withMotorcycle))
		}
	}
	b.WriteString("\n" + r.price.Render("Approx. total: "+FormatINR(d.PerPerson(tier))+" per person") +
		r.muted.Render(fmt.Sprintf("  (%s for %d)", FormatINR(d.GroupTotal(tier)), GroupSize)) + "\n")
	return b.String()
}

func (r *Renderer) activity(d *Destination, a Activity, tier PriceTier, withMotorcycle bool) string {
	var b strings.Builder
	flag := ""
	if a.MustDo {
		flag = "  " + r.mustDo.Render("[must do]")
	} else if a.CanSkip {
		flag = "  " + r.canSkip.Render("[can skip]")
	}
	b.WriteString(fmt.Sprintf("  %-9s %s%s\n", a.Time, a.Title, flag))
	b.WriteString("            " + r.muted.Render(a.Description) + "\n")
	meta := []string{a.Duration, FormatINR(a.Cost.ForTier(tier))}
	if t := d.DisplayTransport(a, withMotorcycle); t != "" {
		meta = append(meta, t)
	}
	b.WriteString("            " + r.tag.Render(strings.Join(meta, " · ")) + "\n")
	if a.Tip != "" {
		b.WriteString("            " + r.tip.Render("tip: "+a.Tip) + "\n")
	}
	return b.String()
}

// Comparison renders the side-by-side table for two or more
// destinations.
func (r *Renderer) Comparison(dests []*Destination, tier PriceTier, origin OriginCity) string {
	if len(dests) < 2 {
		return r.muted.Render("Pick at least two destinations to compare.")
	}
	rows := [][]string{
		{"Status"}, {"Total cost"}, {"Flight from " + string(origin)},
		{"Duration"}, {"Weather"}, {"Highlights"},
		{fmt.Sprintf("Group cost (%d ppl)", GroupSize)},
	}
	for _, d := range dests {
		rows[0] = append(rows[0], string(d.Recommendation))
		rows[1] = append(rows[1], FormatINRCompact(d.PerPerson(tier))+"/person")
		rows[2] = append(rows[2], FormatINR(d.FlightCost(origin))+" RT")
		rows[3] = append(rows[3], d.Duration)
		rows[4] = append(rows[4], d.Weather.Temp)
		rows[5] = append(rows[5], strings.Join(d.Highlights[:min(3, len(d.Highlights))], ", "))
		rows[6] = append(rows[6], FormatINRCompact(d.GroupTotal(tier))+" total")
	}

	colWidth := (r.width - 16) / len(dests)
	if colWidth < 12 {
		colWidth = 12
	}
	var b strings.Builder
	header := fmt.Sprintf("%-16s", "Feature")
	for _, d := range dests {
		header += fmt.Sprintf("%-*s", colWidth, d.Name)
	}
	b.WriteString(r.tableHeader.Render(header) + "\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-16s", row[0]))
		for _, cell := range row[1:] {
			if rs := []rune(cell); len(rs) > colWidth-1 {
				cell = string(rs[:colWidth-1])
			}
			b.WriteString(fmt.Sprintf("%-*s", colWidth, cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}
