package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/config"
	"github.com/tayloree/shelfhelp/internal/display"
	"github.com/tayloree/shelfhelp/internal/export"
	"github.com/tayloree/shelfhelp/internal/logging"
)

var (
	flagJSON      bool
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagPlan      bool
)

// nowFunc stamps reports; tests pin it.
var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "shelfhelp",
	Short: "Find which shelf your groceries are on",
	Long: "Supermarket assistant that reads a free-text shopping message, picks out the\n" +
		"products it mentions (fixing small typos) and tells you which shelf each one is on.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -json, --jsn, catalg).",
	Example: `  shelfhelp ask "I need aples and milk"
  shelfhelp ask toilet paper and rice --plan
  shelfhelp chat
  shelfhelp catalog --json
  shelfhelp export "milk, bread" --format yaml --dir ./lists
  shelfhelp share "milk, bread"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printQuickStart(cmd.OutOrStdout(), flagJSON)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [message...]",
	Short: "Answer one message and exit",
	Long: "Answer one message: a greeting, thanks, a help request or a shopping list.\n" +
		"Words are joined with spaces; with no words the message is read from stdin.",
	Example: `  shelfhelp ask "I need aples and milk"
  shelfhelp ask hello
  echo "bread, eggs" | shelfhelp ask --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVarP(&flagConfig, "config", "c", "", "Config file (yaml, json or toml)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config, else warn)")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: console or json (default from config, else console)")

	rootCmd.AddCommand(askCmd)
	registerPlanFlag(askCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = withFlag(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdin, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdin io.Reader, stdout, stderr io.Writer) {
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdin, stdout, stderr)
	}
}

func resetCLIState() {
	flagJSON = false
	flagConfig = ""
	flagLogLevel = ""
	flagLogFormat = ""
	flagPlan = false
	flagFormat = ""
	flagDir = ""
	flagStdout = false

	// cobra keeps parsed flag values, --help included, between Execute calls.
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func registerPlanFlag(f *pflag.FlagSet) {
	f.BoolVar(&flagPlan, "plan", false, "Also print found items grouped by shelf, in walking order")
}

// appEnv is what every command needs after config and flags are resolved.
type appEnv struct {
	cfg       *config.Config
	logger    zerolog.Logger
	assistant *assistant.Assistant
}

func loadEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, configError(err)
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		if !logging.ValidLevel(flagLogLevel) {
			return nil, invalidArgsError(
				fmt.Sprintf("invalid value for --log-level: %q", flagLogLevel),
				"shelfhelp ask milk --log-level debug",
			)
		}
		level = flagLogLevel
	}
	format := cfg.Log.Format
	if flagLogFormat != "" {
		switch strings.ToLower(flagLogFormat) {
		case "console", "json":
			format = flagLogFormat
		default:
			return nil, invalidArgsError(
				"invalid value for --log-format (use console or json)",
				"shelfhelp ask milk --log-format json",
			)
		}
	}

	logger := logging.New(logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()})

	c, err := cfg.BuildCatalog()
	if err != nil {
		return nil, configError(err)
	}
	logger.Debug().
		Str("config", flagConfig).
		Int("products", c.Len()).
		Int("compounds", len(c.Compounds())).
		Msg("catalog loaded")

	return &appEnv{
		cfg:    cfg,
		logger: logger,
		assistant: assistant.New(c,
			assistant.WithLogger(logger),
			assistant.WithHintLimit(cfg.Assistant.HintLimit),
		),
	}, nil
}

// readMessage joins args, or reads stdin when there are none. Blank
// messages are rejected before the assistant runs.
func readMessage(cmd *cobra.Command, args []string, usage string) (string, error) {
	message := strings.Join(args, " ")
	if len(args) == 0 {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isTerminalFile(f) {
			return "", invalidArgsError("please provide a message", usage)
		}
		data, err := io.ReadAll(bufio.NewReader(in))
		if err != nil {
			return "", ioError("reading stdin", err)
		}
		message = string(data)
	}

	if strings.TrimSpace(message) == "" {
		return "", invalidArgsError("message is empty", usage)
	}
	return message, nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	message, err := readMessage(cmd, args, `shelfhelp ask "I need apples and milk"`)
	if err != nil {
		return err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	reply := env.assistant.Respond(message)
	out := cmd.OutOrStdout()

	if flagJSON {
		if !flagPlan {
			return display.PrintReplyJSON(out, reply)
		}
		return writeJSON(out, struct {
			display.ReplyJSON
			Route []export.ShelfGroup `json:"route"`
		}{display.ToReplyJSON(reply), export.ShelfPlan(reply.Items)})
	}

	display.PrintReply(out, reply)
	if flagPlan && reply.Kind == assistant.KindProducts {
		display.PrintPlan(out, export.ShelfPlan(reply.Items))
	}
	return nil
}
