package tui

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// OverlayData is what overlay templates can reference.
type OverlayData struct {
	Title   string
	Pending int
	Score   int
	Best    int
	HasBest bool
	Hint    string
	Summary string
}

// Overlays renders the boxed messages shown over a game for each phase.
type Overlays struct {
	width int
	tmpl  map[string]*template.Template
	box   lipgloss.Style
}

// NewOverlays parses the configured templates. Empty templates disable
// the overlay for that phase.
func NewOverlays(cfg config.OverlayConfig) (*Overlays, error) {
	o := &Overlays{
		width: cfg.Width,
		tmpl:  make(map[string]*template.Template),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Align(lipgloss.Center),
	}

	sources := map[string]string{
		"loading":   cfg.Loading,
		"ready":     cfg.Ready,
		"game_over": cfg.GameOver,
		"win":       cfg.Win,
		"paused":    cfg.Paused,
	}
	for name, src := range sources {
		if strings.TrimSpace(src) == "" {
			continue
		}
		t, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("tui: parse %s overlay: %w", name, err)
		}
		o.tmpl[name] = t
	}
	return o, nil
}

// overlayName picks the template for a session's phase.
func overlayName(phase core.Phase, paused bool) string {
	if paused {
		return "paused"
	}
	switch phase {
	case core.PhaseLoading:
		return "loading"
	case core.PhaseReady:
		return "ready"
	case core.PhaseGameOver:
		return "game_over"
	case core.PhaseWin:
		return "win"
	}
	return ""
}

// Render returns the boxed overlay for the phase, or "" when the phase has none.
func (o *Overlays) Render(phase core.Phase, paused bool, data OverlayData) (string, error) {
	t, ok := o.tmpl[overlayName(phase, paused)]
	if !ok {
		return "", nil
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("tui: render %s overlay: %w", t.Name(), err)
	}

	// Border and padding take four columns.
	text := wordwrap.String(strings.TrimSpace(buf.String()), o.width-4)
	return o.box.Width(o.width - 2).Render(text), nil
}

// stamp draws a rendered overlay centered on the screen, replacing what is under it.
func stamp(dst *core.Screen, box string) {
	if box == "" {
		return
	}
	lines := strings.Split(box, "\n")
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		x := (dst.Width() - utf8.RuneCountInString(line)) / 2
		dst.DrawTextColor(x, top+i, line, core.ColorBrightWhite)
	}
}
