// Package message is the narrative sink: every combat, pickup, drop and heal
// event is appended here in order and never discarded.
package message

import "github.com/gdamore/tcell/v2"

// Message is one line of narrative with its colors.
type Message struct {
	Text string
	FG   tcell.Color
	BG   tcell.Color
}

// Log is an ordered, unbounded message history.
type Log struct {
	entries []Message
}

// NewLog creates an empty Log.
func NewLog() *Log { return &Log{} }

// Add appends text in fg on the default black background.
func (l *Log) Add(text string, fg tcell.Color) {
	l.AddColored(text, fg, ColorBlack)
}

// Info appends text in the default grey.
func (l *Log) Info(text string) {
	l.Add(text, ColorGrey)
}

// AddColored appends text with explicit colors.
func (l *Log) AddColored(text string, fg, bg tcell.Color) {
	l.entries = append(l.entries, Message{Text: text, FG: fg, BG: bg})
}

// Len returns the number of messages ever logged.
func (l *Log) Len() int { return len(l.entries) }

// All returns the full history, oldest first.
func (l *Log) All() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the newest message, or false if the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.entries) == 0 {
		return Message{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Recent returns up to n of the newest messages, oldest first.
func (l *Log) Recent(n int) []Message {
	if n <= 0 {
		return nil
	}
	start := max(len(l.entries)-n, 0)
	out := make([]Message, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}
