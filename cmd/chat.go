package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/display"
	"github.com/tayloree/shelfhelp/internal/export"
	"github.com/tayloree/shelfhelp/internal/logging"
	"github.com/tayloree/shelfhelp/internal/matcher"
	"golang.org/x/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant interactively",
	Long: "Chat with the assistant. Each shopping message replaces the current list.\n" +
		"Type /help for commands; quit, exit, bye or goodbye ends the session.\n" +
		"Without a terminal (or with --json) a line-per-message mode is used.",
	Example: `  shelfhelp chat
  printf 'hello\nmilk and bread\n/save\n' | shelfhelp chat`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

var chatExitWords = map[string]bool{
	"quit":    true,
	"exit":    true,
	"bye":     true,
	"goodbye": true,
}

const chatHelp = "Commands: /list show the current list • /route shelf walk order • /save [text|json|yaml] write a report • " +
	"/print printable view • /share copy found items • /clear drop the list • /reset clear the chat • /help • quit"

// chatSession is the state one chat keeps between messages.
type chatSession struct {
	assistant *assistant.Assistant
	list      assistant.Session
	exportDir string
	sharer    export.Sharer
	logger    zerolog.Logger
	now       func() time.Time
}

func newChatSession(env *appEnv) *chatSession {
	return &chatSession{
		assistant: env.assistant,
		exportDir: env.cfg.Export.Dir,
		sharer:    newSharer(),
		logger:    env.logger,
		now:       nowFunc,
	}
}

// chatOutcome is the result of a chat command.
type chatOutcome struct {
	notice          string
	items           []matcher.ResolvedItem
	quit            bool
	resetTranscript bool
}

// respond answers a message and records any new list.
func (s *chatSession) respond(text string) assistant.Reply {
	reply := s.assistant.Respond(text)
	s.list.Apply(reply)
	return reply
}

// command handles exit words and slash commands. It reports false for
// anything that should go to the assistant.
func (s *chatSession) command(text string) (chatOutcome, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if chatExitWords[lower] {
		return chatOutcome{notice: assistant.GoodbyeMessage, quit: true}, true
	}
	if !strings.HasPrefix(lower, "/") {
		return chatOutcome{}, false
	}

	fields := strings.Fields(strings.TrimPrefix(lower, "/"))
	if len(fields) == 0 {
		return chatOutcome{notice: chatHelp}, true
	}

	switch fields[0] {
	case "help", "h", "?":
		return chatOutcome{notice: chatHelp}, true
	case "list", "ls":
		if s.list.Len() == 0 {
			return chatOutcome{notice: "Your list is empty."}, true
		}
		return chatOutcome{items: s.list.List()}, true
	case "route", "plan":
		return s.route(), true
	case "save", "download":
		format := ""
		if len(fields) > 1 {
			format = fields[1]
		}
		return s.save(format), true
	case "print":
		return s.print(), true
	case "share":
		return s.share(), true
	case "clear":
		s.list.Clear()
		return chatOutcome{notice: assistant.ClearedMessage}, true
	case "reset":
		s.list.Clear()
		return chatOutcome{notice: assistant.ChatClearedMessage, resetTranscript: true}, true
	case "quit", "exit", "q":
		return chatOutcome{notice: assistant.GoodbyeMessage, quit: true}, true
	default:
		return chatOutcome{notice: fmt.Sprintf("Unknown command /%s. %s", fields[0], chatHelp)}, true
	}
}

func (s *chatSession) route() chatOutcome {
	plan := export.ShelfPlan(s.list.List())
	if len(plan) == 0 {
		return chatOutcome{notice: "Nothing on your list was found in the store."}
	}
	var b bytes.Buffer
	display.PrintPlan(&b, plan)
	return chatOutcome{notice: strings.TrimRight(b.String(), "\n")}
}

func (s *chatSession) save(rawFormat string) chatOutcome {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return chatOutcome{notice: err.Error()}
	}
	report, err := export.NewReport(s.list.List(), s.now())
	if errors.Is(err, export.ErrEmptyList) {
		return chatOutcome{notice: assistant.NothingToSaveMessage}
	}
	if err != nil {
		return chatOutcome{notice: assistant.ApologyMessage}
	}

	path, err := report.WriteFile(s.exportDir, format)
	if err != nil {
		s.logger.Error().Err(err).Msg("saving report")
		return chatOutcome{notice: assistant.ApologyMessage}
	}
	s.logger.Info().Str("transaction_id", report.TransactionID).Str("path", path).Msg("report saved")
	return chatOutcome{notice: fmt.Sprintf("%s (%s)", assistant.SavedMessage, path)}
}

func (s *chatSession) print() chatOutcome {
	view, err := export.PrintView(s.list.List(), s.now())
	if err != nil {
		return chatOutcome{notice: assistant.NothingToPrintMessage}
	}
	return chatOutcome{notice: strings.TrimRight(view, "\n")}
}

func (s *chatSession) share() chatOutcome {
	var printed bytes.Buffer
	method, err := export.Share(s.list.List(), s.sharer, &printed)
	if errors.Is(err, export.ErrEmptyList) {
		return chatOutcome{notice: assistant.NothingToShareMessage}
	}
	if err != nil {
		return chatOutcome{notice: assistant.ApologyMessage}
	}
	if method == export.ShareClipboard {
		return chatOutcome{notice: assistant.CopiedMessage}
	}
	return chatOutcome{notice: strings.TrimRight(printed.String(), "\n")}
}

func runChat(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if flagJSON || !isInteractiveSession(in, out) {
		return runChatLoop(out, in, newChatSession(env), flagJSON)
	}

	// Log lines would tear the full-screen view.
	quiet := *env
	quiet.logger = logging.Nop()
	quiet.assistant = assistant.New(env.assistant.Catalog(), assistant.WithHintLimit(env.cfg.Assistant.HintLimit))

	p := tea.NewProgram(
		newChatModel(newChatSession(&quiet)),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !isTerminalFile(inputFile) {
		return false
	}
	return isTTY(stdout)
}

func isTerminalFile(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type chatLineJSON struct {
	Input  string             `json:"input"`
	Reply  *display.ReplyJSON `json:"reply,omitempty"`
	Notice string             `json:"notice,omitempty"`
	Items  []display.ItemJSON `json:"items,omitempty"`
}

// runChatLoop reads one message per line until EOF or an exit word. With
// asJSON every answered line becomes one JSON object.
func runChatLoop(out io.Writer, in io.Reader, s *chatSession, asJSON bool) error {
	scanner := bufio.NewScanner(in)
	if !asJSON {
		display.PrintNotice(out, assistant.ReadyMessage)
		fmt.Fprint(out, "> ")
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if !asJSON {
				fmt.Fprint(out, "> ")
			}
			continue
		}

		if outcome, ok := s.command(line); ok {
			if err := renderOutcome(out, line, outcome, asJSON); err != nil {
				return err
			}
			if outcome.quit {
				return nil
			}
		} else {
			reply := s.respond(line)
			if asJSON {
				rj := display.ToReplyJSON(reply)
				if err := writeJSON(out, chatLineJSON{Input: line, Reply: &rj}); err != nil {
					return err
				}
			} else {
				display.PrintReply(out, reply)
			}
		}

		if !asJSON {
			fmt.Fprint(out, "> ")
		}
	}
	if err := scanner.Err(); err != nil {
		return ioError("reading chat input", err)
	}
	if !asJSON {
		fmt.Fprintln(out)
	}
	return nil
}

func renderOutcome(out io.Writer, input string, outcome chatOutcome, asJSON bool) error {
	if asJSON {
		line := chatLineJSON{Input: input, Notice: outcome.notice}
		if outcome.items != nil {
			line.Items = display.ToItemsJSON(outcome.items)
		}
		return writeJSON(out, line)
	}
	if outcome.items != nil {
		display.PrintItems(out, outcome.items)
	}
	if outcome.notice != "" {
		fmt.Fprintf(out, "%s\n", outcome.notice)
	}
	return nil
}
