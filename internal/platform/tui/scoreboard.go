package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

const scoreHistory = 100

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	boardTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardOnTab = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("93")).Padding(0, 1)
	boardCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDim = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Player key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Player, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Player: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "player filter")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardGame is one tab of the scoreboard.
type boardGame struct {
	registry.GameInfo
	bestKey string // set for games with a persisted best score
}

// ScoreboardModel shows the score history of one game at a time. The
// history can be narrowed to one character.
type ScoreboardModel struct {
	games  []boardGame
	cursor int
	store  *storage.Store

	// filter is "" for everyone, or a character name
	filter  core.Character
	entries []storage.ScoreEntry
	best    int

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows
// empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var games []boardGame
	for _, info := range registry.List() {
		bg := boardGame{GameInfo: info}
		if g, err := registry.Create(info.ID); err == nil {
			if bs, ok := g.(registry.BestScorer); ok {
				bg.bestKey = bs.BestScoreKey()
			}
		}
		games = append(games, bg)
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 14
	if m.width > 60 {
		dateW = 20
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Player", Width: 9},
			{Title: "When", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-11)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("93")).Bold(false)
	t.SetStyles(s)
	return t
}

// reload reads the selected game's history and best score.
func (m *ScoreboardModel) reload() {
	m.entries, m.best = nil, 0
	if m.store != nil && len(m.games) > 0 {
		g := m.games[m.cursor]
		if all, err := m.store.TopScores(g.ID, scoreHistory); err == nil {
			m.entries = all
		}
		if g.bestKey != "" {
			m.best, _ = m.store.BestScore(context.Background(), g.bestKey)
		}
	}
	m.fillTable()
}

// visible is the history after the character filter.
func (m ScoreboardModel) visible() []storage.ScoreEntry {
	if m.filter == "" {
		return m.entries
	}
	var out []storage.ScoreEntry
	for _, e := range m.entries {
		if e.Character == m.filter.String() {
			out = append(out, e)
		}
	}
	return out
}

func (m *ScoreboardModel) fillTable() {
	shown := m.visible()
	rows := make([]table.Row, len(shown))
	for i, e := range shown {
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(e.Score),
			e.Character,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Best is the score shown in the header: the persisted best for games that
// keep one, otherwise the top of the visible history.
func (m ScoreboardModel) Best() int {
	if len(m.games) > 0 && m.games[m.cursor].bestKey != "" && m.filter == "" {
		return m.best
	}
	if shown := m.visible(); len(shown) > 0 {
		return shown[0].Score
	}
	return 0
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Player):
			m.filter = nextFilter(m.filter)
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(d int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + d + len(m.games)) % len(m.games)
	m.reload()
}

// nextFilter cycles everyone → default character → the other one → everyone.
func nextFilter(c core.Character) core.Character {
	switch c {
	case "":
		return core.DefaultCharacter
	case core.DefaultCharacter:
		return core.DefaultCharacter.Opponent()
	}
	return ""
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerBlock(boardTitle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.tabs(), m.width))
	b.WriteString("\n\n")

	who := "everyone"
	if m.filter != "" {
		who = m.filter.String()
	}
	header := fmt.Sprintf("Best %d  ·  %d games  ·  %s", m.Best(), len(m.visible()), who)
	if avg, ok := average(m.visible()); ok {
		header += fmt.Sprintf("  ·  avg %.0f", avg)
	}
	b.WriteString(centerBlock(boardDim.Render(header), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.visible()) == 0 {
		body = boardDim.Italic(true).Padding(1, 2).Render("No scores yet.\nPlay a round to get on the board!")
	}
	b.WriteString(centerBlock(boardCard.Render(body), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the game titles, or just the current one when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return boardDim.Render("no games")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			parts[i] = boardOnTab.Render(g.Title)
		} else {
			parts[i] = boardTab.Render(g.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(row) > m.width {
		row = boardOnTab.Render("◀ " + m.games[m.cursor].Title + " ▶")
	}
	return row
}

func average(entries []storage.ScoreEntry) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	return float64(sum) / float64(len(entries)), true
}

// centerBlock centers every line of a styled block.
func centerBlock(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard and reports whether to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
