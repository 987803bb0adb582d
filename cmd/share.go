package cmd

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/display"
	"github.com/tayloree/shelfhelp/internal/export"
)

// newSharer picks the share channel; tests swap it out.
var newSharer = func() export.Sharer { return export.ClipboardSharer{} }

var shareCmd = &cobra.Command{
	Use:   "share [message...]",
	Short: "Copy the found items of a shopping list to the clipboard",
	Long: "Copy the found items of a shopping list to the clipboard. When no clipboard\n" +
		"is available the share text is printed instead.",
	Example: `  shelfhelp share "milk, bread and eggs"
  shelfhelp share apples and rice --stdout`,
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Print the share text instead of copying it")
}

type shareJSON struct {
	Method string `json:"method"`
	Text   string `json:"text"`
}

func runShare(cmd *cobra.Command, args []string) error {
	env, items, err := listFromMessage(cmd, args, "share")
	if err != nil {
		return err
	}

	var sharer export.Sharer
	if !flagStdout {
		sharer = newSharer()
	}

	out := cmd.OutOrStdout()
	var fallback io.Writer = out
	var printed bytes.Buffer
	if flagJSON {
		fallback = &printed
	}

	method, err := export.Share(items, sharer, fallback)
	if err != nil {
		return ioError("sharing list", err)
	}
	env.logger.Debug().Str("method", string(method)).Msg("list shared")

	if flagJSON {
		text, err := export.ShareText(items)
		if err != nil {
			return err
		}
		return writeJSON(out, shareJSON{Method: string(method), Text: text})
	}
	switch {
	case method == export.ShareClipboard:
		display.PrintNotice(out, assistant.CopiedMessage)
	case sharer != nil:
		display.PrintWarning(cmd.ErrOrStderr(), "Clipboard unavailable; printed the list instead.")
	}
	return nil
}
