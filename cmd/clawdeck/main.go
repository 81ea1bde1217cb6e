// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Command clawdeck is the terminal mission control: a live agent
// roster, kanban board and activity feed over the Claw Control API,
// plus the static trip-planner views.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
	"github.com/clawcontrol/clawcontrol-go/client"
	"github.com/clawcontrol/clawcontrol-go/dashboard"
	"github.com/clawcontrol/clawcontrol-go/tripplan"
)

type appConfig struct {
	baseURL      string
	pollInterval time.Duration
	altScreen    bool
}

func parseConfig() appConfig {
	api := flag.String("api", "", "API base URL (overrides "+dashboard.EnvAPIBaseURL+")")
	poll := flag.Duration("poll", dashboard.DefaultPollInterval, "message poll interval")
	altScreen := flag.Bool("alt-screen", true, "run in the terminal alternate screen")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return appConfig{
		baseURL:      dashboard.ResolveBaseURL(*api),
		pollInterval: *poll,
		altScreen:    *altScreen,
	}
}

type tabID int

const (
	tabBoard tabID = iota
	tabAgents
	tabFeed
	tabTrip
)

var tabTitles = []string{"Board", "Agents", "Feed", "Trip Planner"}

type uiTheme struct {
	root        lipgloss.Style
	header      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	panel       lipgloss.Style
	panelTitle  lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	errorStatus lipgloss.Style
	connected   lipgloss.Style
	reconnect   lipgloss.Style
	column      lipgloss.Style
	columnTitle lipgloss.Style
	taskCard    lipgloss.Style
	taskPick    lipgloss.Style
	muted       lipgloss.Style
	agentName   lipgloss.Style
	msgTime     lipgloss.Style
	msgType     map[clawcontrol.MessageType]lipgloss.Style
	agentDot    map[clawcontrol.AgentStatus]lipgloss.Style
}

func newTheme() uiTheme {
	purple := lipgloss.Color("99")
	cyan := lipgloss.Color("86")
	green := lipgloss.Color("42")
	amber := lipgloss.Color("214")
	red := lipgloss.Color("203")
	gray := lipgloss.Color("245")
	text := lipgloss.Color("252")

	return uiTheme{
		root:   lipgloss.NewStyle().Padding(0, 1),
		header: lipgloss.NewStyle().Foreground(text).Bold(true),
		tabActive: lipgloss.NewStyle().
			Background(purple).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Padding(0, 1),
		tabInactive: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(gray).
			Padding(0, 1),
		panelTitle:  lipgloss.NewStyle().Foreground(cyan).Bold(true),
		footer:      lipgloss.NewStyle().Foreground(gray),
		status:      lipgloss.NewStyle().Foreground(cyan),
		errorStatus: lipgloss.NewStyle().Foreground(red).Bold(true),
		connected:   lipgloss.NewStyle().Foreground(green).Bold(true),
		reconnect:   lipgloss.NewStyle().Foreground(amber).Bold(true),
		column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(gray).
			Padding(0, 1),
		columnTitle: lipgloss.NewStyle().Foreground(purple).Bold(true),
		taskCard:    lipgloss.NewStyle().Foreground(text),
		taskPick: lipgloss.NewStyle().
			Background(purple).
			Foreground(lipgloss.Color("231")),
		muted:     lipgloss.NewStyle().Foreground(gray),
		agentName: lipgloss.NewStyle().Foreground(cyan).Bold(true),
		msgTime:   lipgloss.NewStyle().Foreground(gray),
		msgType: map[clawcontrol.MessageType]lipgloss.Style{
			clawcontrol.MessageTypeInfo:    lipgloss.NewStyle().Foreground(text),
			clawcontrol.MessageTypeWarn:    lipgloss.NewStyle().Foreground(amber),
			clawcontrol.MessageTypeError:   lipgloss.NewStyle().Foreground(red),
			clawcontrol.MessageTypeSuccess: lipgloss.NewStyle().Foreground(green),
		},
		agentDot: map[clawcontrol.AgentStatus]lipgloss.Style{
			clawcontrol.AgentStatusWorking: lipgloss.NewStyle().Foreground(green),
			clawcontrol.AgentStatusIdle:    lipgloss.NewStyle().Foreground(gray),
			clawcontrol.AgentStatusOffline: lipgloss.NewStyle().Foreground(red),
		},
	}
}

type model struct {
	cfg  appConfig
	dash *dashboard.Dashboard

	ready      bool
	startupErr error
	statusLine string

	activeTab tabID
	colIndex  int
	rowIndex  int

	tripTier   tripplan.PriceTier
	tripOrigin tripplan.OriginCity
	tripFocus  int
	tripOpen   bool
	tripMoto   bool
	tripCmp    bool

	width  int
	height int

	feed    viewport.Model
	spinner spinner.Model
	theme   uiTheme
}

type startDoneMsg struct {
	err error
}

type moveDoneMsg struct {
	taskID string
	err    error
}

type loadMoreMsg struct {
	err error
}

type tickMsg time.Time

func newModel(cfg appConfig, dash *dashboard.Dashboard) model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	feed := viewport.New(0, 0)
	feed.MouseWheelEnabled = true

	return model{
		cfg:        cfg,
		dash:       dash,
		statusLine: "connecting to " + cfg.baseURL,
		activeTab:  tabBoard,
		tripTier:   tripplan.TierMid,
		tripOrigin: tripplan.Mumbai,
		feed:       feed,
		spinner:    sp,
		theme:      newTheme(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startCmd(),
		tickEvery(),
	)
}

func (m model) startCmd() tea.Cmd {
	dash := m.dash
	return func() tea.Msg {
		return startDoneMsg{err: dash.Start(context.Background())}
	}
}

func tickEvery() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) moveTaskCmd(taskID string, target clawcontrol.TaskStatus) tea.Cmd {
	dash := m.dash
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return moveDoneMsg{taskID: taskID, err: dash.MoveTask(ctx, taskID, target)}
	}
}

func (m model) loadMoreCmd() tea.Cmd {
	dash := m.dash
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return loadMoreMsg{err: dash.LoadMore(ctx)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case startDoneMsg:
		if msg.err != nil {
			m.startupErr = msg.err
			m.statusLine = "startup failed"
			return m, nil
		}
		m.ready = true
		m.statusLine = "ready"
		m.renderFeed(true)
	case moveDoneMsg:
		if msg.err != nil {
			m.statusLine = "move failed: " + compact(msg.err.Error(), 80)
		} else {
			m.statusLine = "task moved"
		}
	case loadMoreMsg:
		if msg.err != nil {
			m.statusLine = "load older failed: " + compact(msg.err.Error(), 80)
		} else {
			m.statusLine = "older messages loaded"
		}
		m.renderFeed(false)
	case tickMsg:
		if m.ready {
			m.clampCursor()
			m.renderFeed(m.feed.AtBottom())
		}
		cmds = append(cmds, tickEvery())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.feed.Width = max(20, m.width-6)
		m.feed.Height = max(5, m.height-8)
		m.renderFeed(true)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		if m.activeTab == tabFeed {
			var cmd tea.Cmd
			m.feed, cmd = m.feed.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return nil, true
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabID(len(tabTitles))
	case "shift+tab":
		m.activeTab = (m.activeTab + tabID(len(tabTitles)) - 1) % tabID(len(tabTitles))
	case "1", "2", "3", "4":
		if m.activeTab == tabTrip && key != "4" {
			m.tripFocus = int(key[0] - '1')
			m.tripOpen = false
		} else {
			m.activeTab = tabID(key[0] - '1')
		}
	default:
		switch m.activeTab {
		case tabBoard:
			return m.handleBoardKey(key), false
		case tabFeed:
			return m.handleFeedKey(key), false
		case tabTrip:
			m.handleTripKey(key)
		}
	}
	return nil, false
}

func (m *model) handleBoardKey(key string) tea.Cmd {
	board := m.dash.Board()
	switch key {
	case "left", "h":
		if m.colIndex > 0 {
			m.colIndex--
			m.rowIndex = 0
		}
	case "right", "l":
		if m.colIndex < len(board.Columns)-1 {
			m.colIndex++
			m.rowIndex = 0
		}
	case "up", "k":
		if m.rowIndex > 0 {
			m.rowIndex--
		}
	case "down", "j":
		if m.rowIndex < len(board.Columns[m.colIndex].Tasks)-1 {
			m.rowIndex++
		}
	case "H", "shift+left":
		return m.moveSelected(board, -1)
	case "L", "shift+right":
		return m.moveSelected(board, 1)
	case "r":
		return m.refreshCmd()
	}
	return nil
}

// moveSelected shifts the task under the cursor one column left or
// right, resolving the target the same way a pointer drop would.
func (m *model) moveSelected(board clawcontrol.Board, dir int) tea.Cmd {
	col := board.Columns[m.colIndex]
	if m.rowIndex >= len(col.Tasks) {
		return nil
	}
	targetCol := m.colIndex + dir
	if targetCol < 0 || targetCol >= len(board.Columns) {
		return nil
	}
	task := col.Tasks[m.rowIndex]
	target, ok := m.dash.ResolveDrop(task.ID, string(board.Columns[targetCol].Status))
	if !ok {
		return nil
	}
	m.statusLine = fmt.Sprintf("moving %q to %s", task.Title, clawcontrol.ColumnTitle(target))
	return m.moveTaskCmd(task.ID, target)
}

func (m *model) handleFeedKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		m.feed.LineUp(1)
	case "down", "j":
		m.feed.LineDown(1)
	case "pgup":
		m.feed.HalfViewUp()
	case "pgdown":
		m.feed.HalfViewDown()
	case "G":
		m.feed.GotoBottom()
	case "o":
		if m.dash.Status().HasMore {
			m.statusLine = "loading older messages..."
			return m.loadMoreCmd()
		}
		m.statusLine = "no more messages"
	}
	return nil
}

func (m *model) handleTripKey(key string) {
	switch key {
	case "left", "h":
		if m.tripFocus > 0 {
			m.tripFocus--
			m.tripOpen = false
		}
	case "right", "l":
		if m.tripFocus < len(tripplan.Destinations())-1 {
			m.tripFocus++
			m.tripOpen = false
		}
	case "enter":
		m.tripOpen = !m.tripOpen
		m.tripCmp = false
	case "t":
		tiers := tripplan.Tiers()
		for i, tier := range tiers {
			if tier == m.tripTier {
				m.tripTier = tiers[(i+1)%len(tiers)]
				break
			}
		}
	case "f":
		origins := tripplan.Origins()
		for i, o := range origins {
			if o == m.tripOrigin {
				m.tripOrigin = origins[(i+1)%len(origins)]
				break
			}
		}
	case "m":
		m.tripMoto = !m.tripMoto
	case "c":
		m.tripCmp = !m.tripCmp
		m.tripOpen = false
	}
}

func (m model) refreshCmd() tea.Cmd {
	dash := m.dash
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		dash.RefreshAgents(ctx)
		dash.RefreshTasks(ctx)
		dash.RefreshMessages(ctx)
		return tickMsg(time.Now())
	}
}

func (m *model) clampCursor() {
	board := m.dash.Board()
	if m.colIndex >= len(board.Columns) {
		m.colIndex = 0
	}
	if n := len(board.Columns[m.colIndex].Tasks); m.rowIndex >= n {
		m.rowIndex = max(0, n-1)
	}
}

func (m *model) renderFeed(stick bool) {
	msgs := m.dash.Messages().List()
	var b strings.Builder
	for _, msg := range msgs {
		style, ok := m.theme.msgType[msg.Type]
		if !ok {
			style = m.theme.msgType[clawcontrol.MessageTypeInfo]
		}
		name := msg.AgentName
		if name == "" {
			name = msg.AgentID
		}
		b.WriteString(m.theme.msgTime.Render(msg.Timestamp.Format("15:04:05")) + " " +
			m.theme.agentName.Render(name) + " " +
			style.Render(msg.Content) + "\n")
	}
	m.feed.SetContent(b.String())
	if stick {
		m.feed.GotoBottom()
	}
}

func (m model) View() string {
	if m.startupErr != nil {
		panel := m.theme.panel.Width(max(20, m.width-4)).Render(
			m.theme.panelTitle.Render("Claw Deck failed to start") + "\n\n" +
				m.theme.errorStatus.Render(m.startupErr.Error()) + "\n\n" +
				m.theme.muted.Render("Press q or Ctrl+C to exit."),
		)
		return m.theme.root.Render(panel)
	}

	header := m.renderHeader()
	var content string
	switch m.activeTab {
	case tabBoard:
		content = m.renderBoard()
	case tabAgents:
		content = m.renderAgents()
	case tabFeed:
		content = m.renderFeedPane()
	case tabTrip:
		content = m.renderTrip()
	}
	footer := m.renderFooter()
	return m.theme.root.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m model) renderHeader() string {
	conn := m.theme.reconnect.Render("○ reconnecting")
	if m.dash.Connected() {
		conn = m.theme.connected.Render("● live")
	}
	if !m.ready {
		conn = m.spinner.View() + " starting"
	}

	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if tabID(i) == m.activeTab {
			tabs = append(tabs, m.theme.tabActive.Render(title))
		} else {
			tabs = append(tabs, m.theme.tabInactive.Render(title))
		}
	}
	return m.theme.header.Render("Claw Deck") + "  " +
		strings.Join(tabs, " ") + "  " + conn
}

func (m model) renderBoard() string {
	board := m.dash.Board()
	status := m.dash.Status()
	colWidth := max(18, (m.width-12)/len(board.Columns))
	maxRows := max(4, m.height-10)

	cols := make([]string, 0, len(board.Columns))
	for ci, col := range board.Columns {
		var b strings.Builder
		b.WriteString(m.theme.columnTitle.Render(
			fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))) + "\n")
		for ti, task := range col.Tasks {
			if ti >= maxRows {
				b.WriteString(m.theme.muted.Render(fmt.Sprintf("… %d more", len(col.Tasks)-maxRows)))
				break
			}
			line := compact(task.Title, colWidth-4)
			if task.AgentID != "" {
				if agent, ok := m.dash.Agents().Get(task.AgentID); ok {
					line += "\n" + m.theme.muted.Render("  @"+agent.Name)
				}
			}
			if ci == m.colIndex && ti == m.rowIndex {
				b.WriteString(m.theme.taskPick.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(m.theme.taskCard.Render("· "+line) + "\n")
			}
		}
		if len(col.Tasks) == 0 {
			b.WriteString(m.theme.muted.Render("(empty)"))
		}
		cols = append(cols, m.theme.column.Width(colWidth).Render(b.String()))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if status.TasksError != "" {
		out += "\n" + m.theme.errorStatus.Render("tasks: "+status.TasksError)
	}
	return out
}

func (m model) renderAgents() string {
	agents := m.dash.Agents().List()
	status := m.dash.Status()
	var b strings.Builder
	if status.AgentsLoading {
		b.WriteString(m.spinner.View() + " loading agents\n")
	}
	for _, a := range agents {
		dot, ok := m.theme.agentDot[a.Status]
		if !ok {
			dot = m.theme.muted
		}
		b.WriteString(dot.Render("●") + " " + m.theme.agentName.Render(a.Name) +
			" " + m.theme.muted.Render(string(a.Status)))
		if a.Role != "" {
			b.WriteString(m.theme.muted.Render(" · "+a.Role))
		}
		b.WriteString("\n")
		if a.Description != "" {
			b.WriteString("  " + m.theme.muted.Render(compact(a.Description, max(20, m.width-8))) + "\n")
		}
	}
	if len(agents) == 0 && !status.AgentsLoading {
		b.WriteString(m.theme.muted.Render("no agents"))
	}
	if status.AgentsError != "" {
		b.WriteString(m.theme.errorStatus.Render("agents: " + status.AgentsError))
	}
	return m.theme.panel.Width(max(24, m.width-4)).Render(b.String())
}

func (m model) renderFeedPane() string {
	status := m.dash.Status()
	title := m.theme.panelTitle.Render("Activity") + " " +
		m.theme.muted.Render(fmt.Sprintf("(%d loaded)", status.TotalLoaded))
	if status.LoadingMore {
		title += " " + m.spinner.View()
	}
	body := title + "\n" + m.feed.View()
	if status.MessagesError != "" {
		body += "\n" + m.theme.errorStatus.Render("messages: "+status.MessagesError)
	}
	return m.theme.panel.Width(max(24, m.width-4)).Render(body)
}

func (m model) renderTrip() string {
	r := tripplan.NewRenderer(max(60, m.width-4))
	head := m.theme.muted.Render(fmt.Sprintf("tier: %s · from: %s", m.tripTier, m.tripOrigin))
	if m.tripCmp {
		return head + "\n" + r.Comparison(tripplan.Destinations(), m.tripTier, m.tripOrigin)
	}
	if m.tripOpen {
		dests := tripplan.Destinations()
		return head + "\n" + r.Itinerary(dests[m.tripFocus], m.tripTier, m.tripMoto)
	}
	return head + "\n" + r.CardList(m.tripTier, m.tripOrigin, m.tripFocus)
}

func (m model) renderFooter() string {
	var keys string
	switch m.activeTab {
	case tabBoard:
		keys = "←→/hl column · ↑↓/jk task · H/L move task · r refresh"
	case tabAgents:
		keys = "tab switch pane"
	case tabFeed:
		keys = "jk scroll · o older · G bottom"
	case tabTrip:
		keys = "←→ pick · enter itinerary · t tier · f origin · m motorcycle · c compare"
	}
	line := keys + " · q quit"
	if m.statusLine != "" {
		line = m.theme.status.Render(compact(m.statusLine, 60)) + "  " + line
	}
	return m.theme.footer.Render(line)
}

func compact(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if rs := []rune(s); limit > 3 && len(rs) > limit {
		return string(rs[:limit-1]) + "…"
	}
	return s
}

func main() {
	cfg := parseConfig()

	c, err := client.New(client.WithBaseURL(cfg.baseURL))
	if err != nil {
		fmt.Fprintln(os.Stderr, "clawdeck:", err)
		os.Exit(1)
	}
	dash, err := dashboard.New(c, dashboard.WithPollInterval(cfg.pollInterval))
	if err != nil {
		fmt.Fprintln(os.Stderr, "clawdeck:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newModel(cfg, dash), opts...)
	_, runErr := p.Run()

	if err := dash.Stop(); err != nil {
		slog.Debug("dashboard stop", "error", err)
	}
	if err := c.Close(); err != nil {
		slog.Debug("client close", "error", err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "clawdeck:", runErr)
		os.Exit(1)
	}
}
