package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

// ErrEmptyList is returned when an export is requested with no current list.
var ErrEmptyList = errors.New("no shopping list to export; search for items first")

// TimestampLayout is the human-readable date used in reports.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

const rule = "====================================="

// Report is a transaction record of one shopping list.
type Report struct {
	TransactionID string
	GeneratedAt   time.Time
	Items         []matcher.ResolvedItem
}

// NewReport snapshots items into a report stamped with now.
func NewReport(items []matcher.ResolvedItem, now time.Time) (Report, error) {
	if len(items) == 0 {
		return Report{}, ErrEmptyList
	}
	snapshot := make([]matcher.ResolvedItem, len(items))
	copy(snapshot, items)
	return Report{
		TransactionID: fmt.Sprintf("TXN-%d", now.UnixMilli()),
		GeneratedAt:   now,
		Items:         snapshot,
	}, nil
}

// Text renders the plain-text transaction report.
func (r Report) Text() string {
	var b strings.Builder
	b.WriteString("SUPERMARKET SHOPPING TRANSACTION\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Transaction ID: %s\n", r.TransactionID)
	fmt.Fprintf(&b, "Date & Time: %s\n", r.GeneratedAt.Format(TimestampLayout))
	b.WriteString(rule + "\n\n")

	b.WriteString("SHOPPING LIST:\n")
	for i, item := range r.Items {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, assistant.Capitalize(item.Product), availability(item))
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString("Generated by: Supermarket Assistant Chatbot\n")
	return b.String()
}

// FileNameFor names the report file for format.
func (r Report) FileNameFor(format Format) string {
	return fmt.Sprintf("shopping-list-%d%s", r.GeneratedAt.UnixMilli(), format.Extension())
}

// WriteFile encodes the report into dir and returns the file path.
func (r Report) WriteFile(dir string, format Format) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, r.FileNameFor(format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	if err := r.Encode(f, format); err != nil {
		f.Close()
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func availability(item matcher.ResolvedItem) string {
	if item.Found {
		return fmt.Sprintf("Shelf %d", item.Shelf)
	}
	return "Not Available"
}
