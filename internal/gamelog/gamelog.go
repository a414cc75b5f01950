// Package gamelog holds the player-facing narration of a run.
package gamelog

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"
)

// Message formats. They double as translation keys; without a loaded
// locale gotext returns them unchanged.
const (
	MsgWelcome    = "Welcome to Rusty Roguelike"
	MsgHits       = "%s hits %s, for %d hp."
	MsgCannotHurt = "%s is unable to hurt %s"
	MsgDead       = "%s is dead"
	MsgPlayerDied = "You are dead!"
	MsgDrinks     = "%s drinks the %s, healing %d hp."
	MsgNothing    = "There is nothing here to use."
)

var translate = gotext.Get

// Log is an append-only list of narration lines, oldest first.
type Log struct {
	entries []string
}

func New() *Log {
	return &Log{}
}

// Add appends one message, translating the format before applying args.
func (l *Log) Add(format string, args ...any) {
	msg := translate(format)
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.entries = append(l.entries, msg)
}

// Len returns the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of every entry.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Window returns up to the n newest entries, newest first, each cut to fit
// width terminal cells. A width <= 0 disables truncation.
func (l *Log) Window(n, width int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]string, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		line := l.entries[i]
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		out = append(out, line)
	}
	return out
}
