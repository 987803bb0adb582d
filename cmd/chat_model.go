package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tayloree/shelfhelp/internal/assistant"
	"github.com/tayloree/shelfhelp/internal/matcher"
)

const (
	minChatWidth  = 72
	minChatHeight = 18
)

var (
	chatHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	chatMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chatHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	chatUserStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	chatBotStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	chatNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	chatErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type chatReplyMsg struct {
	reply assistant.Reply
}

type chatSpeaker int

const (
	speakerUser chatSpeaker = iota
	speakerAssistant
	speakerNotice
)

type chatEntry struct {
	speaker chatSpeaker
	text    string
	failed  bool
}

type chatFocus int

const (
	chatFocusInput chatFocus = iota
	chatFocusResults
)

// chatResultItem is one row of the results pane.
type chatResultItem struct {
	item matcher.ResolvedItem
}

func (r chatResultItem) FilterValue() string { return r.item.Product }
func (r chatResultItem) Title() string       { return assistant.Capitalize(r.item.Product) }
func (r chatResultItem) Description() string {
	if r.item.Found {
		return fmt.Sprintf("Shelf %d", r.item.Shelf)
	}
	return "Not found"
}

type chatModel struct {
	session *chatSession

	input      textinput.Model
	transcript viewport.Model
	results    list.Model
	spinner    spinner.Model

	entries []chatEntry
	busy    bool
	focus   chatFocus

	width, height    int
	bodyHeight       int
	transcriptWidth  int
	resultsPaneWidth int
	tooSmall         bool
}

func newChatModel(s *chatSession) chatModel {
	input := textinput.New()
	input.Placeholder = `Try "hello" or "I need apples, milk and toilet paper"`
	input.Prompt = "› "
	input.CharLimit = 500
	input.Focus()

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)

	results := list.New([]list.Item{}, delegate, 0, 0)
	results.Title = "Results"
	results.SetStatusBarItemName("item", "items")
	results.SetShowStatusBar(true)
	results.SetFilteringEnabled(true)
	results.SetShowHelp(false)
	results.DisableQuitKeybindings()

	transcript := viewport.New(0, 0)
	transcript.KeyMap.PageDown.SetKeys("pgdown")
	transcript.KeyMap.PageUp.SetKeys("pgup")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return chatModel{
		session:    s,
		input:      input,
		transcript: transcript,
		results:    results,
		spinner:    spin,
		entries:    []chatEntry{{speaker: speakerNotice, text: assistant.ReadyMessage}},
		focus:      chatFocusInput,
	}
}

func respondCmd(a *assistant.Assistant, text string) tea.Cmd {
	return func() tea.Msg {
		return chatReplyMsg{reply: a.Respond(text)}
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case chatReplyMsg:
		m.busy = false
		if m.session.list.Apply(msg.reply) {
			m.syncResults()
		}
		m.entries = append(m.entries, chatEntry{
			speaker: speakerAssistant,
			text:    msg.reply.Text,
			failed:  msg.reply.Kind == assistant.KindFailure,
		})
		m.refreshTranscript()
		return m, m.input.Focus()

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	// Input stays disabled until the pending reply lands.
	if m.busy {
		return m, nil
	}

	if m.focus == chatFocusResults {
		filtering := m.results.FilterState() == list.Filtering
		if !filtering && (key == "tab" || key == "esc") {
			m.focus = chatFocusInput
			return m, m.input.Focus()
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch key {
	case "tab":
		if len(m.results.Items()) > 0 {
			m.focus = chatFocusResults
			m.input.Blur()
		}
		return m, nil
	case "ctrl+l":
		m.resetTranscript(assistant.ChatClearedMessage)
		return m, nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	m.entries = append(m.entries, chatEntry{speaker: speakerUser, text: text})

	if outcome, ok := m.session.command(text); ok {
		return m.applyOutcome(outcome)
	}

	m.busy = true
	m.input.Blur()
	m.refreshTranscript()
	return m, tea.Batch(m.spinner.Tick, respondCmd(m.session.assistant, text))
}

func (m chatModel) applyOutcome(outcome chatOutcome) (tea.Model, tea.Cmd) {
	if outcome.resetTranscript {
		m.resetTranscript(outcome.notice)
		m.syncResults()
		return m, nil
	}

	if outcome.items != nil {
		stats := assistant.ListStats(outcome.items)
		m.entries = append(m.entries, chatEntry{
			speaker: speakerNotice,
			text:    fmt.Sprintf("%d Items · %d Found · %d Missing (tab to browse)", stats.Total, stats.Found, stats.Missing),
		})
	}
	if outcome.notice != "" {
		m.entries = append(m.entries, chatEntry{speaker: speakerNotice, text: outcome.notice})
	}
	m.syncResults()
	m.refreshTranscript()

	if outcome.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *chatModel) resetTranscript(notice string) {
	m.entries = []chatEntry{{speaker: speakerNotice, text: notice}}
	m.refreshTranscript()
}

func (m *chatModel) syncResults() {
	current := m.session.list.List()
	items := make([]list.Item, 0, len(current))
	for _, item := range current {
		items = append(items, chatResultItem{item: item})
	}
	m.results.ResetFilter()
	m.results.SetItems(items)
	if len(items) == 0 && m.focus == chatFocusResults {
		m.focus = chatFocusInput
		m.input.Focus()
	}
}

func (m *chatModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.tooSmall = m.width < minChatWidth || m.height < minChatHeight
	if m.tooSmall {
		return
	}

	headerH := 2
	inputH := 3
	footerH := 1
	m.bodyHeight = maxInt(6, m.height-headerH-inputH-footerH-2)

	m.resultsPaneWidth = maxInt(28, m.width/3)
	m.transcriptWidth = m.width - m.resultsPaneWidth - 1

	innerHeight := maxInt(4, m.bodyHeight-2)
	m.transcript.Width = maxInt(20, m.transcriptWidth-4)
	m.transcript.Height = innerHeight
	m.results.SetSize(maxInt(20, m.resultsPaneWidth-4), innerHeight)
	m.input.Width = maxInt(20, m.width-8)
	m.refreshTranscript()
}

func (m *chatModel) refreshTranscript() {
	width := m.transcript.Width
	if width <= 0 {
		width = 60
	}
	wrap := lipgloss.NewStyle().Width(width)

	blocks := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		switch entry.speaker {
		case speakerUser:
			blocks = append(blocks, chatUserStyle.Render("You")+"\n"+wrap.Render(entry.text))
		case speakerAssistant:
			body := wrap.Render(entry.text)
			if entry.failed {
				body = chatErrorStyle.Render(body)
			}
			blocks = append(blocks, chatBotStyle.Render("Assistant")+"\n"+body)
		default:
			blocks = append(blocks, chatNoticeStyle.Render(wrap.Render(entry.text)))
		}
	}
	m.transcript.SetContent(strings.Join(blocks, "\n\n"))
	m.transcript.GotoBottom()
}

func (m chatModel) View() string {
	if m.width == 0 || m.height == 0 {
		return chatMetaStyle.Render("Starting assistant...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the chat view.",
					m.width, m.height, minChatWidth, minChatHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.inputView(),
		m.footerView(),
	)
}

func (m chatModel) headerView() string {
	stats := assistant.ListStats(m.session.list.List())
	top := "shelfhelp chat  |  Smart Supermarket Assistant"
	bottom := fmt.Sprintf(
		"catalog: %d products  |  list: %d items · %d found · %d missing",
		m.session.assistant.Catalog().Len(), stats.Total, stats.Found, stats.Missing,
	)
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(chatHeaderStyle.Render(top) + "\n" + chatMetaStyle.Render(bottom))
}

func (m chatModel) bodyView() string {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	transcriptPane, resultsPane := pane, pane

	if m.focus == chatFocusInput {
		transcriptPane = transcriptPane.BorderForeground(lipgloss.Color("86"))
	} else {
		resultsPane = resultsPane.BorderForeground(lipgloss.Color("86"))
	}

	right := chatHintStyle.Render("No items yet.\nAsk for some products.")
	if len(m.results.Items()) > 0 {
		right = m.results.View()
	}

	left := transcriptPane.
		Width(m.transcriptWidth).
		Height(m.bodyHeight).
		Render(m.transcript.View())
	rightPane := resultsPane.
		Width(m.resultsPaneWidth).
		Height(m.bodyHeight).
		Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", rightPane)
}

func (m chatModel) inputView() string {
	line := m.input.View()
	if m.busy {
		line = fmt.Sprintf("%s %s", m.spinner.View(), chatMetaStyle.Render("Looking that up..."))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Width(m.width-2).
		Padding(0, 1).
		Render(line)
}

func (m chatModel) footerView() string {
	hint := "enter send • ↑/↓ scroll • tab results • ctrl+l clear chat • /help commands • ctrl+c quit"
	if m.focus == chatFocusResults {
		hint = "Results: ↑/↓ move • / filter • esc or tab back to input • ctrl+c quit"
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(chatHintStyle.Render(hint))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
