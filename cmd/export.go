package cmd

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/display"
	"github.com/tayloree/shelfhelp/internal/export"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

var (
	flagFormat string
	flagDir    string
	flagStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export [message...]",
	Short: "Save a shopping list as a transaction report",
	Example: `  shelfhelp export "milk, bread and eggs"
  shelfhelp export toilet paper and rice --format yaml --dir ./lists
  shelfhelp export "milk" --format json --stdout`,
	RunE: runExport,
}

var printCmd = &cobra.Command{
	Use:   "print [message...]",
	Short: "Render a printable shopping list with a shelf route",
	Example: `  shelfhelp print "milk, bread and eggs"
  shelfhelp print apples bananas --json`,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(printCmd)

	f := exportCmd.Flags()
	f.StringVarP(&flagFormat, "format", "f", "text", "Report format: text, json, or yaml")
	f.StringVarP(&flagDir, "dir", "d", "", "Directory to write the report to (default from config, else .)")
	f.BoolVar(&flagStdout, "stdout", false, "Write the report to stdout instead of a file")
}

type exportResultJSON struct {
	TransactionID string          `json:"transactionId"`
	Format        string          `json:"format"`
	Path          string          `json:"path"`
	Stats         assistant.Stats `json:"stats"`
}

type printJSON struct {
	GeneratedAt string              `json:"generatedAt"`
	Items       []display.ItemJSON  `json:"items"`
	Route       []export.ShelfGroup `json:"route"`
}

// listFromMessage runs the assistant on the command's message and returns
// the resulting shopping list, or an EMPTY_LIST error when there is none.
func listFromMessage(cmd *cobra.Command, args []string, action string) (*appEnv, []matcher.ResolvedItem, error) {
	message, err := readMessage(cmd, args, `shelfhelp `+action+` "milk, bread and eggs"`)
	if err != nil {
		return nil, nil, err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return nil, nil, err
	}

	var session assistant.Session
	if !session.Apply(env.assistant.Respond(message)) || session.Len() == 0 {
		return nil, nil, emptyListError(action)
	}
	return env, session.List(), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(flagFormat)
	if err != nil {
		return invalidArgsError(err.Error(), `shelfhelp export "milk" --format yaml`)
	}

	env, items, err := listFromMessage(cmd, args, "export")
	if err != nil {
		return err
	}

	report, err := export.NewReport(items, nowFunc())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flagStdout {
		if err := report.Encode(out, format); err != nil {
			return ioError("writing report", err)
		}
		return nil
	}

	dir := flagDir
	if dir == "" {
		dir = env.cfg.Export.Dir
	}
	path, err := report.WriteFile(dir, format)
	if err != nil {
		return ioError("saving report", err)
	}
	env.logger.Info().Str("transaction_id", report.TransactionID).Str("path", path).Msg("report saved")

	if flagJSON {
		return writeJSON(out, exportResultJSON{
			TransactionID: report.TransactionID,
			Format:        string(format),
			Path:          path,
			Stats:         assistant.ListStats(items),
		})
	}
	display.PrintNotice(out, assistant.SavedMessage+" "+filepath.Clean(path))
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	_, items, err := listFromMessage(cmd, args, "print")
	if err != nil {
		return err
	}

	now := nowFunc()
	out := cmd.OutOrStdout()

	if flagJSON {
		return writeJSON(out, printJSON{
			GeneratedAt: now.Format(export.TimestampLayout),
			Items:       display.ToItemsJSON(items),
			Route:       export.ShelfPlan(items),
		})
	}

	view, err := export.PrintView(items, now)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, view)
	return err
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
