package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bdaygames/internal/core"
)

func menuKey(m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuShowsBestScores(t *testing.T) {
	m := NewMenuModel(boardStore(t), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	best := map[string]int{}
	for _, it := range m.items {
		best[it.GameID] = it.Best
	}
	if best["bestscript"] != 50 {
		t.Errorf("bestscript best = %d, expected the stored best 50", best["bestscript"])
	}
	if best["script"] != 9 {
		t.Errorf("script best = %d, expected the top score 9", best["script"])
	}
	view := m.View()
	for _, want := range []string{"A R C A D E", "Playing as Armando", "best 50", "best 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	m, _ = menuKey(m, up)
	if m.cursor != len(m.items)-1 {
		t.Errorf("up from the top should wrap to the last game, at %d", m.cursor)
	}
	m, _ = menuKey(m, down)
	if m.cursor != 0 {
		t.Errorf("down from the last game should wrap to the top, at %d", m.cursor)
	}

	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.Config().Character != core.Ananya {
		t.Errorf("c should switch to Ananya, got %s", m.Config().Character)
	}

	m, _ = menuKey(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("resize not kept: %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuResult(t *testing.T) {
	base := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	tests := []struct {
		name string
		key  tea.KeyMsg
		want MenuResult
	}{
		{"enter picks the game", tea.KeyMsg{Type: tea.KeyEnter}, MenuResult{GameID: base.items[0].GameID}},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{WantsScoreboard: true}},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuResult{Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := menuKey(base, tt.key)
			if cmd == nil {
				t.Fatal("the menu should end")
			}
			got := m.Result()
			if got.GameID != tt.want.GameID || got.WantsScoreboard != tt.want.WantsScoreboard || got.Quit != tt.want.Quit {
				t.Errorf("result = %+v, expected %+v", got, tt.want)
			}
			if got.Config.Character != core.DefaultCharacter {
				t.Errorf("character = %s", got.Config.Character)
			}
		})
	}

	if r := base.Result(); !r.Quit {
		t.Error("a menu that ends without a choice counts as quitting")
	}
}
