package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultConsoleSize is the number of render log lines the server retains
const DefaultConsoleSize = 256

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
	RenderID  string    `json:"renderId"`
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.renderID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     messageLevel(message),
			RenderID:  wl.renderID,
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "panic") || strings.Contains(lower, "error"):
		return "error"
	case strings.Contains(lower, "failed") || strings.Contains(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}

// consoleBuffer keeps the most recent console messages across renders
type consoleBuffer struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	next     int
	full     bool
}

func newConsoleBuffer(size int) *consoleBuffer {
	if size < 1 {
		size = 1
	}
	return &consoleBuffer{messages: make([]ConsoleMessage, size)}
}

// Add appends a message, overwriting the oldest once the buffer is full
func (b *consoleBuffer) Add(msg ConsoleMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.messages[b.next] = msg
	b.next = (b.next + 1) % len(b.messages)
	if b.next == 0 {
		b.full = true
	}
}

// Messages returns the retained messages, oldest first
func (b *consoleBuffer) Messages() []ConsoleMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		out := make([]ConsoleMessage, b.next)
		copy(out, b.messages[:b.next])
		return out
	}
	out := make([]ConsoleMessage, 0, len(b.messages))
	out = append(out, b.messages[b.next:]...)
	return append(out, b.messages[:b.next]...)
}
