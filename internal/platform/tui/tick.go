// Package tui provides the Bubble Tea integration for the arcade platform.
// It owns the terminal: key and mouse input, the frame loop, overlays,
// the menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bdaygames/internal/assets"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick chain; ticks from a cancelled chain are ignored.
type TickMsg struct {
	Gen int
	At  time.Time
}

var chains atomic.Int64

// nextGen allocates a tick chain id, unique across every model in the process.
func nextGen() int {
	return int(chains.Add(1))
}

// tickCmd returns a Bubble Tea command that sends one tick after the frame interval.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// assetsLoadedMsg reports that every sprite in the batch has settled.
type assetsLoadedMsg struct {
	batch *assets.Batch
}

// waitAssets blocks on the batch in a Cmd goroutine.
func waitAssets(b *assets.Batch) tea.Cmd {
	return func() tea.Msg {
		<-b.Done()
		return assetsLoadedMsg{batch: b}
	}
}
