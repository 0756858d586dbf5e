// Package feed broadcasts session lifecycle events, such as a game being
// started or finished, to whoever is watching. The SSH server uses it to
// show players what everyone else is doing.
package feed

import (
	"fmt"
	"time"
)

// Kind identifies an event type.
type Kind string

const (
	KindStarted Kind = "session.started"
	KindEnded   Kind = "session.ended"
)

// Event is one lifecycle notification. It is JSON-encoded on the wire.
type Event struct {
	Kind      Kind      `json:"kind"`
	SessionID string    `json:"session_id"`
	GameID    string    `json:"game_id"`
	Character string    `json:"character"`
	Outcome   string    `json:"outcome,omitempty"`
	Score     int       `json:"score"`
	Best      int       `json:"best,omitempty"`
	NewBest   bool      `json:"new_best,omitempty"`
	At        time.Time `json:"at"`
}

// SessionStarted builds the event sent when a session leaves loading.
func SessionStarted(sessionID, gameID, character string, at time.Time) Event {
	return Event{Kind: KindStarted, SessionID: sessionID, GameID: gameID, Character: character, At: at}
}

// SessionEnded builds the event sent when a session reaches game over or win.
func SessionEnded(sessionID, gameID, character, outcome string, score int, at time.Time) Event {
	return Event{
		Kind:      KindEnded,
		SessionID: sessionID,
		GameID:    gameID,
		Character: character,
		Outcome:   outcome,
		Score:     score,
		At:        at,
	}
}

// Summary is a one-line description for status bars.
func (e Event) Summary() string {
	switch e.Kind {
	case KindStarted:
		return fmt.Sprintf("%s started %s", e.Character, e.GameID)
	case KindEnded:
		s := fmt.Sprintf("%s: %s %s with %d", e.GameID, e.Character, e.Outcome, e.Score)
		if e.NewBest {
			s += " (new best!)"
		}
		return s
	}
	return string(e.Kind)
}

// Subject is the NATS subject an event is published on.
func (e Event) Subject(prefix string) string {
	return prefix + "." + e.GameID
}
