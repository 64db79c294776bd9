package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/pathfinder/internal/career"
)

const (
	quickTop         = 3
	conversationTop  = 5
	shortSkills      = 4
	shortRelated     = 3
	assistantSpeaker = "PathFinder"
)

var quitWords = map[string]struct{}{
	"quit": {},
	"exit": {},
	"bye":  {},
}

func isQuit(text string) bool {
	_, ok := quitWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

func renderMessage(w io.Writer, speaker, text string) {
	fmt.Fprintf(w, "\n%s: %s\n", speaker, strings.TrimSpace(text))
}

// renderCards prints the full card for each of the first n recommendations.
func renderCards(w io.Writer, title string, recs []career.Scored, n int) {
	fmt.Fprintf(w, "\nTop career matches for %s:\n", title)
	for i, rec := range head(recs, n) {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, rec.Title)
		fmt.Fprintf(w, "   Match score: %s\n", rec.Percent())
		fmt.Fprintf(w, "   %s\n", rec.Description)
		fmt.Fprintf(w, "   Salary: %s\n", rec.Salary)
		fmt.Fprintf(w, "   Job outlook: %s\n", rec.Outlook)
		fmt.Fprintf(w, "   Education: %s\n", rec.Education)
		if rec.Explanation != "" {
			fmt.Fprintf(w, "   Why this matches: %s\n", rec.Explanation)
		}
	}
}

// renderDetails prints every skill and related career of one record.
func renderDetails(w io.Writer, rec career.Record) {
	fmt.Fprintf(w, "\nRequired skills for %s:\n", rec.Title)
	for _, skill := range rec.RequiredSkills {
		fmt.Fprintf(w, "  - %s\n", skill)
	}
	if len(rec.Related) > 0 {
		fmt.Fprintf(w, "Related careers: %s\n", strings.Join(rec.Related, ", "))
	}
}

// renderSummaries prints the compact listing shown at the end of a conversation.
func renderSummaries(w io.Writer, recs []career.Scored, n int) {
	fmt.Fprintln(w, "\nYour personalized career recommendations:")
	for i, rec := range head(recs, n) {
		fmt.Fprintf(w, "\n%d. %s - %s match\n", i+1, rec.Title, rec.Percent())
		fmt.Fprintf(w, "   Description: %s\n", rec.Description)
		fmt.Fprintf(w, "   Salary range: %s\n", rec.Salary)
		fmt.Fprintf(w, "   Job outlook: %s\n", rec.Outlook)
		fmt.Fprintf(w, "   Education: %s\n", rec.Education)
		if rec.Explanation != "" {
			fmt.Fprintf(w, "   Why it matches: %s\n", rec.Explanation)
		}
		fmt.Fprintf(w, "   Key skills: %s\n", shortList(rec.RequiredSkills, shortSkills))
		if len(rec.Related) > 0 {
			fmt.Fprintf(w, "   Related careers: %s\n", shortList(rec.Related, shortRelated))
		}
	}
}

func renderCatalog(w io.Writer, records []career.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No careers found.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s [%s]\n", rec.Title, rec.Category)
		fmt.Fprintf(w, "  %s\n", rec.Description)
		fmt.Fprintf(w, "  Salary: %s | Outlook: %s\n", rec.Salary, rec.Outlook)
	}
	fmt.Fprintf(w, "\n%d careers\n", len(records))
}

func shortList(items []string, n int) string {
	out := strings.Join(head(items, n), ", ")
	if len(items) > n {
		out += "..."
	}
	return out
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
