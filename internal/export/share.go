package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

// ErrClipboardUnavailable is returned by ClipboardSharer when the platform
// has no clipboard utility.
var ErrClipboardUnavailable = errors.New("clipboard is not available")

// Sharer hands share text to some outside channel.
type Sharer interface {
	Share(text string) error
}

// ClipboardSharer copies share text to the system clipboard.
type ClipboardSharer struct{}

// Share implements Sharer.
func (ClipboardSharer) Share(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// ShareMethod reports where the share text ended up.
type ShareMethod string

const (
	ShareClipboard ShareMethod = "clipboard"
	SharePrinted   ShareMethod = "printed"
)

// ShareText renders found items only, one bullet per item.
func ShareText(items []matcher.ResolvedItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyList
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		if !item.Found {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s - Shelf %d", assistant.Capitalize(item.Product), item.Shelf))
	}
	return "My Shopping List:\n\n" + strings.Join(lines, "\n") + "\n\nGenerated by Smart Supermarket Assistant", nil
}

// Share sends the share text through sharer and falls back to writing it
// to fallback when sharing fails.
func Share(items []matcher.ResolvedItem, sharer Sharer, fallback io.Writer) (ShareMethod, error) {
	text, err := ShareText(items)
	if err != nil {
		return "", err
	}

	if sharer != nil {
		if err := sharer.Share(text); err == nil {
			return ShareClipboard, nil
		}
	}

	if _, err := fmt.Fprintln(fallback, text); err != nil {
		return "", fmt.Errorf("writing share text: %w", err)
	}
	return SharePrinted, nil
}
