package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhuels/starrecap/pkg/snapshot"
	"github.com/mhuels/starrecap/pkg/stars"
)

// Panel interior widths. Every content line inside a panel is padded so its
// measured display width equals the panel's interior width.
const (
	headerWidth  = 70 // header and the three 70-wide ranking panels
	panelWidth   = 50 // languages and topics panels
	statsWidth   = 40 // quick stats panel
	listingWidth = 78 // full listing header and footer rules
)

// Truncation limits applied before padding.
const (
	popularNameMax = 45 // repo names in the popularity panel
	listingNameMax = 55 // repo names in the recency and listing panels
	descMax        = 74 // descriptions in the full listing
	barMax         = 20 // language histogram bar cap
)

// Top-N cutoffs per panel.
const (
	topLanguages = 10
	topRepos     = 10
	topTopics    = 15
)

// numPrinter renders integers with thousands separators (1,234,567).
var numPrinter = message.NewPrinter(language.English)

// Render produces the full console report as an ordered sequence of lines:
// header, top languages, most popular, recently updated, top topics (omitted
// when no record has topics), quick stats, full listing, footer. It is a
// pure function of the snapshot document; callers decide where the lines go.
func Render(doc *snapshot.Document) []string {
	repos := doc.Repositories

	var lines []string
	lines = append(lines, renderHeader(doc)...)
	lines = append(lines, renderLanguages(repos)...)
	lines = append(lines, renderPopular(repos)...)
	lines = append(lines, renderRecent(repos)...)
	lines = append(lines, renderTopics(repos)...)
	lines = append(lines, renderStats(repos)...)
	lines = append(lines, renderListing(repos)...)
	return lines
}

func renderHeader(doc *snapshot.Document) []string {
	rule := border("=", headerWidth)
	return []string{
		"",
		"",
		rule,
		row(PadLine("  ⭐ GITHUB STARRED REPOS RECAP", headerWidth)),
		rule,
		row(PadLine(fmt.Sprintf("  Total: %d repositories", len(doc.Repositories)), headerWidth)),
		row(PadLine(fmt.Sprintf("  Exported: %s", truncate(doc.ExportedAt, 19)), headerWidth)),
		rule,
	}
}

func renderLanguages(repos []stars.Record) []string {
	hist := stars.LanguageHistogram(repos)

	rule := border("-", panelWidth)
	lines := []string{
		"",
		rule,
		row(PadLine("  📊 TOP LANGUAGES", panelWidth)),
		rule,
	}
	for _, e := range topN(hist, topLanguages) {
		bar := strings.Repeat("█", min(e.Count, barMax))
		content := fmt.Sprintf("  %s: %d %s", e.Value, e.Count, bar)
		lines = append(lines, row(PadLine(content, panelWidth)))
	}
	return append(lines, rule)
}

func renderPopular(repos []stars.Record) []string {
	rule := border("-", headerWidth)
	lines := []string{
		"",
		rule,
		row(PadLine("  🔥 MOST POPULAR REPOS YOU'VE STARRED", headerWidth)),
		rule,
	}
	for _, r := range topN(stars.ByStars(repos), topRepos) {
		name := leftJust(truncate(r.Name, popularNameMax), popularNameMax)
		count := rightJust(commas(r.Stars), 10)
		content := fmt.Sprintf("  %s ⭐ %s", name, count)
		lines = append(lines, row(PadLine(content, headerWidth)))
	}
	return append(lines, rule)
}

func renderRecent(repos []stars.Record) []string {
	rule := border("-", headerWidth)
	lines := []string{
		"",
		rule,
		row(PadLine("  🕐 RECENTLY UPDATED", headerWidth)),
		rule,
	}
	for _, r := range topN(stars.ByUpdated(repos), topRepos) {
		updated := ""
		if r.UpdatedAt != nil {
			updated = truncate(*r.UpdatedAt, 10)
		}
		name := leftJust(truncate(r.Name, listingNameMax), listingNameMax)
		content := fmt.Sprintf("  %s %s", name, updated)
		lines = append(lines, row(PadLine(content, headerWidth)))
	}
	return append(lines, rule)
}

func renderTopics(repos []stars.Record) []string {
	hist := stars.TopicHistogram(repos)
	if len(hist) == 0 {
		return nil
	}

	rule := border("-", panelWidth)
	lines := []string{
		"",
		rule,
		row(PadLine("  🔖 TOP TOPICS", panelWidth)),
		rule,
	}
	for _, e := range topN(hist, topTopics) {
		content := fmt.Sprintf("  %s: %d", e.Value, e.Count)
		lines = append(lines, row(PadLine(content, panelWidth)))
	}
	return append(lines, rule)
}

func renderStats(repos []stars.Record) []string {
	s := stars.Summarize(repos)

	rule := border("-", statsWidth)
	lines := []string{
		"",
		rule,
		row(PadLine("  📈 QUICK STATS", statsWidth)),
		rule,
	}
	for _, content := range []string{
		fmt.Sprintf("  👥 Organizations: %d", s.Organizations),
		fmt.Sprintf("  👤 Users: %d", s.Users),
		fmt.Sprintf("  📦 Archived: %d", s.Archived),
		fmt.Sprintf("  💻 Languages: %d", s.Languages),
		fmt.Sprintf("  🔖 Topics: %d", s.Topics),
	} {
		lines = append(lines, row(PadLine(content, statsWidth)))
	}
	return append(lines, rule)
}

func renderListing(repos []stars.Record) []string {
	rule := border("=", listingWidth)
	lines := []string{
		"",
		"",
		rule,
		row(PadLine("  📋 ALL STARRED REPOS", listingWidth)),
		rule,
	}

	sorted := make([]stars.Record, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	for _, r := range sorted {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("  📁 %s", truncate(r.Name, listingNameMax)))
		if r.Description != nil && *r.Description != "" {
			desc := truncate(*r.Description, descMax)
			// Ellipsis only when the raw character length exceeded the cut,
			// not the display width.
			if len([]rune(*r.Description)) > descMax {
				desc += "..."
			}
			lines = append(lines, fmt.Sprintf("     %s", desc))
		}
		lang := "N/A"
		if r.Language != nil {
			lang = *r.Language
		}
		statsLine := fmt.Sprintf("     ⭐ %s  🍴 %s  💻 %s", commas(r.Stars), commas(r.Forks), lang)
		if r.Archived {
			statsLine += "  📦 ARCHIVED"
		}
		lines = append(lines, statsLine)
		lines = append(lines, fmt.Sprintf("     🔗 %s", r.URL))
	}

	footer := strings.Repeat("-", listingWidth)
	lines = append(lines, "", footer)
	lines = append(lines, fmt.Sprintf("⭐ Total: %d starred repositories", len(repos)))
	return append(lines, footer)
}

func border(ch string, interior int) string {
	return "+" + strings.Repeat(ch, interior) + "+"
}

func row(padded string) string {
	return "|" + padded + "|"
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// leftJust pads s with trailing spaces to n characters (runes, not columns).
func leftJust(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// rightJust pads s with leading spaces to n characters.
func rightJust(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func commas(n int) string {
	return numPrinter.Sprintf("%d", n)
}
