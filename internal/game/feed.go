package game

import (
	"log"
	"sync"
	"time"
)

// Line is one user-facing status message
type Line struct {
	ActorID string
	Text    string
	At      time.Time
}

// MessageFeed collects user-facing status lines in order. A UI layer
// would drain it; tests read it directly.
type MessageFeed struct {
	lines []Line
	mu    sync.RWMutex
}

// NewMessageFeed creates an empty feed
func NewMessageFeed() *MessageFeed {
	return &MessageFeed{}
}

// Say appends a line attributed to an actor
func (f *MessageFeed) Say(text, actorID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lines = append(f.lines, Line{
		ActorID: actorID,
		Text:    text,
		At:      time.Now(),
	})
	log.Printf("[%s] %s", actorID, text)
}

// Lines returns a copy of all recorded lines
func (f *MessageFeed) Lines() []Line {
	f.mu.RLock()
	defer f.mu.RUnlock()

	lines := make([]Line, len(f.lines))
	copy(lines, f.lines)
	return lines
}

// LinesFor returns the lines attributed to one actor
func (f *MessageFeed) LinesFor(actorID string) []Line {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var lines []Line
	for _, l := range f.lines {
		if l.ActorID == actorID {
			lines = append(lines, l)
		}
	}
	return lines
}
