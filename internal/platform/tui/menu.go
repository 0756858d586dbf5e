package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

var (
	menuLogo   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("93")).Padding(0, 2)
	menuPicked = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuItem   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuScore  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuFeed   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("109"))
)

// MenuItem is one game on the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// MenuModel is the game picker. It ends (tea.Quit) once the player picks a
// game, opens the scoreboard or quits; the caller reads the outcome.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig

	keyMapper *KeyMapper
	help      help.Model
	feedLine  string

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered game with its best score. A nil store
// shows no scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	if !cfg.Character.Valid() {
		cfg.Character = core.DefaultCharacter
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Best: menuBest(store, g.ID)}
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// menuBest is the persisted best for games that keep one, otherwise the top
// of the score history.
func menuBest(store *storage.Store, id string) int {
	if store == nil {
		return 0
	}
	if g, err := registry.Create(id); err == nil {
		if bs, ok := g.(registry.BestScorer); ok {
			best, _ := store.BestScore(context.Background(), bs.BestScoreKey())
			return best
		}
	}
	best, _ := store.HighScore(id)
	return best
}

// WithFeedLine returns the menu showing line as the latest arcade event.
func (m MenuModel) WithFeedLine(line string) MenuModel {
	m.feedLine = line
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.move(-1)
	case MenuActionDown:
		m.move(1)
	case MenuActionCharacter:
		m.config.Character = m.config.Character.Opponent()
	case MenuActionSelect:
		if len(m.items) > 0 {
			picked := m.items[m.cursor]
			m.selected = &picked
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// move steps the cursor, wrapping past either end.
func (m *MenuModel) move(d int) {
	if n := len(m.items); n > 0 {
		m.cursor = (m.cursor + d + n) % n
	}
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	var list strings.Builder
	for i, item := range m.items {
		line := "  " + menuItem.Render(item.Title)
		if i == m.cursor {
			line = menuPicked.Render("▸ " + item.Title)
		}
		if item.Best > 0 {
			line += menuScore.Render(fmt.Sprintf("  best %d", item.Best))
		}
		list.WriteString(line + "\n")
	}
	if len(m.items) == 0 {
		list.WriteString(menuScore.Render("no games installed") + "\n")
	}

	parts := []string{
		"",
		centerBlock(menuLogo.Render("A R C A D E"), w),
		"",
		centerBlock("Playing as "+menuPicked.Render(m.config.Character.String()), w),
		"",
		centerBlock(strings.TrimSuffix(list.String(), "\n"), w),
	}
	if m.feedLine != "" {
		parts = append(parts, "", centerBlock(menuFeed.Render("Latest: "+m.feedLine), w))
	}
	parts = append(parts, "", centerBlock(menuScore.Render(m.help.View(m.keyMapper.menu)), w))
	return strings.Join(parts, "\n") + "\n"
}

// Selected returns the picked game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config with the latest size and character.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is the outcome of a standalone menu run.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result turns the final menu state into a MenuResult. A menu that ended
// without a choice counts as quitting.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case m.selected != nil && !m.quitting:
		r.GameID = m.selected.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the picker on the local terminal.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
