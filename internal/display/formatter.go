package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/export"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	shelfTag     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// ItemJSON is the JSON output shape for a resolved item. Shelf is null when
// the product was not found.
type ItemJSON struct {
	Product string `json:"product"`
	Shelf   *int   `json:"shelf"`
	Found   bool   `json:"found"`
}

// ReplyJSON is the JSON output shape for one assistant reply.
type ReplyJSON struct {
	Kind     string              `json:"kind"`
	Category string              `json:"category,omitempty"`
	Message  string              `json:"message"`
	Items    []ItemJSON          `json:"items"`
	Stats    *assistant.Stats    `json:"stats,omitempty"`
	Hints    map[string][]string `json:"hints,omitempty"`
}

// PrintReply renders an assistant reply to the writer. Product replies show
// the summary text followed by the stats line and any hints.
func PrintReply(w io.Writer, reply assistant.Reply) {
	switch reply.Kind {
	case assistant.KindProducts:
		fmt.Fprintf(w, "\n%s\n\n", wordWrap(strings.TrimRight(reply.Text, "\n"), 72, ""))
		fmt.Fprintf(w, "%s\n", StatsLine(assistant.ListStats(reply.Items)))
		printHints(w, reply.Items, reply.Hints)
		fmt.Fprintln(w)
	case assistant.KindUnrecognized:
		fmt.Fprintf(w, "\n%s\n\n", warningStyle.Render(wordWrap(reply.Text, 72, "")))
	case assistant.KindFailure:
		PrintError(w, reply.Text)
	default:
		fmt.Fprintf(w, "\n%s\n\n", wordWrap(reply.Text, 72, ""))
	}
}

// PrintReplyJSON renders a reply as JSON.
func PrintReplyJSON(w io.Writer, reply assistant.Reply) error {
	return json.NewEncoder(w).Encode(ToReplyJSON(reply))
}

// ToReplyJSON converts a reply to its JSON shape.
func ToReplyJSON(reply assistant.Reply) ReplyJSON {
	out := ReplyJSON{
		Kind:    reply.Kind.String(),
		Message: reply.Text,
		Items:   ToItemsJSON(reply.Items),
		Hints:   reply.Hints,
	}
	if reply.Kind == assistant.KindIntent {
		out.Category = reply.Category.String()
	}
	if reply.Kind == assistant.KindProducts {
		stats := assistant.ListStats(reply.Items)
		out.Stats = &stats
	}
	return out
}

// ToItemsJSON converts resolved items to their JSON shape. It never returns nil.
func ToItemsJSON(items []matcher.ResolvedItem) []ItemJSON {
	out := make([]ItemJSON, 0, len(items))
	for _, item := range items {
		doc := ItemJSON{Product: item.Product, Found: item.Found}
		if item.Found {
			shelf := item.Shelf
			doc.Shelf = &shelf
		}
		out = append(out, doc)
	}
	return out
}

// PrintItems renders a shopping list with a stats header, found items first.
func PrintItems(w io.Writer, items []matcher.ResolvedItem) {
	stats := assistant.ListStats(items)
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Shopping List"),
		StatsLine(stats),
	)

	for _, item := range items {
		if item.Found {
			fmt.Fprintf(w, "  %s  %s\n",
				shelfTag.Render(fmt.Sprintf("Shelf %-2d", item.Shelf)),
				foundStyle.Render(assistant.Capitalize(item.Product)),
			)
		}
	}
	for _, item := range items {
		if !item.Found {
			fmt.Fprintf(w, "  %s  %s\n",
				dimStyle.Render("--------"),
				missingStyle.Render(assistant.Capitalize(item.Product)+" (not found)"),
			)
		}
	}
	fmt.Fprintln(w)
}

// StatsLine renders "N Items · N Found · N Missing".
func StatsLine(stats assistant.Stats) string {
	return cyanStyle.Render(fmt.Sprintf("%d Items · %d Found · %d Missing", stats.Total, stats.Found, stats.Missing))
}

// PrintCatalog renders every shelf and its products.
func PrintCatalog(w io.Writer, shelves []catalog.Shelf) {
	total := 0
	for _, s := range shelves {
		total += len(s.Products)
	}
	fmt.Fprintf(w, "\n%s — %s\n\n",
		titleStyle.Render("Store catalog"),
		cyanStyle.Render(fmt.Sprintf("%d products on %d shelves", total, len(shelves))),
	)
	for _, s := range shelves {
		label := ""
		if s.Label != "" {
			label = " " + dimStyle.Render("("+s.Label+")")
		}
		fmt.Fprintf(w, "  %s%s\n", shelfTag.Render(fmt.Sprintf("Shelf %d", s.Number)), label)
		fmt.Fprintf(w, "    %s\n", wordWrap(strings.Join(s.Products, ", "), 72, "    "))
	}
	fmt.Fprintln(w)
}

// PrintCatalogJSON renders shelves as JSON.
func PrintCatalogJSON(w io.Writer, shelves []catalog.Shelf) error {
	if shelves == nil {
		shelves = []catalog.Shelf{}
	}
	return json.NewEncoder(w).Encode(shelves)
}

// PrintPlan renders the shelf walk order for found items.
func PrintPlan(w io.Writer, plan []export.ShelfGroup) {
	fmt.Fprintf(w, "%s\n", titleStyle.Render("Route:"))
	for _, group := range plan {
		names := make([]string, len(group.Products))
		for i, p := range group.Products {
			names[i] = assistant.Capitalize(p)
		}
		fmt.Fprintf(w, "  %s %s\n", shelfTag.Render(fmt.Sprintf("Shelf %d:", group.Shelf)), strings.Join(names, ", "))
	}
	fmt.Fprintln(w)
}

// PrintNotice prints a dim informational line.
func PrintNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func printHints(w io.Writer, items []matcher.ResolvedItem, hints map[string][]string) {
	if len(hints) == 0 {
		return
	}
	seen := map[string]bool{}
	for _, item := range items {
		suggestions, ok := hints[item.Product]
		if !ok || seen[item.Product] {
			continue
		}
		seen[item.Product] = true
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(fmt.Sprintf("%q: did you mean %s?", item.Product, strings.Join(suggestions, ", "))))
	}
	fmt.Fprintln(w)
}

func wordWrap(text string, width int, indent string) string {
	paragraphs := strings.Split(text, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wrapLine(p, width, indent)
	}
	return strings.Join(paragraphs, "\n"+indent)
}

func wrapLine(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
