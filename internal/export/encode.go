package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tayloree/shelfhelp/internal/assistant"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text/txt, json and yaml/yml.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use text, json, or yaml)", raw)
	}
}

// ItemDoc is the structured shape of one list entry.
type ItemDoc struct {
	Product string `json:"product" yaml:"product"`
	Shelf   *int   `json:"shelf" yaml:"shelf"`
	Found   bool   `json:"found" yaml:"found"`
}

// ReportDoc is the structured shape of a report.
type ReportDoc struct {
	TransactionID string          `json:"transactionId" yaml:"transaction_id"`
	GeneratedAt   string          `json:"generatedAt" yaml:"generated_at"`
	Items         []ItemDoc       `json:"items" yaml:"items"`
	Stats         assistant.Stats `json:"stats" yaml:"stats"`
	Route         []ShelfGroup    `json:"route" yaml:"route"`
}

// Doc converts r into its structured shape.
func (r Report) Doc() ReportDoc {
	items := make([]ItemDoc, 0, len(r.Items))
	for _, item := range r.Items {
		doc := ItemDoc{Product: item.Product, Found: item.Found}
		if item.Found {
			shelf := item.Shelf
			doc.Shelf = &shelf
		}
		items = append(items, doc)
	}
	return ReportDoc{
		TransactionID: r.TransactionID,
		GeneratedAt:   r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Items:         items,
		Stats:         assistant.ListStats(r.Items),
		Route:         ShelfPlan(r.Items),
	}
}

// Encode writes r to w in the given format.
func (r Report) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(r.Doc())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Doc()); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, r.Text())
		return err
	}
}

// Extension returns the file extension for format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}
