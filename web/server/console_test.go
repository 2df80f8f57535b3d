package server

import (
	"fmt"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	testMessage := "Test log message"
	logger.Printf("%s\n", testMessage)

	select {
	case msg := <-messageChan:
		expectedMessage := testMessage + "\n"
		if msg.Message != expectedMessage {
			t.Errorf("Expected message '%s', got '%s'", expectedMessage, msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if msg.RenderID != "test-render-123" {
			t.Errorf("Expected render id 'test-render-123', got '%s'", msg.RenderID)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-456", messageChan)

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	for i, expected := range messages {
		select {
		case msg := <-messageChan:
			if msg.Message != expected+"\n" {
				t.Errorf("Message %d: expected '%s', got '%s'", i, expected+"\n", msg.Message)
			}
		case <-time.After(200 * time.Millisecond):
			t.Fatalf("Timeout waiting for message %d", i+1)
		}
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	// The second and third messages are dropped rather than blocking
	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if len(messageChan) != 1 {
		t.Fatalf("Expected 1 buffered message, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "Message 1\n" {
		t.Errorf("Expected first message to be kept, got %q", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil channel\n")
}

func TestWebLogger_Levels(t *testing.T) {
	tests := []struct {
		message string
		level   string
	}{
		{"Rendering 4x4 with 2 workers\n", "info"},
		{"Recovered from panic: boom\n", "error"},
		{"Render finished with 3 failed pixels\n", "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			messageChan := make(chan ConsoleMessage, 1)
			NewWebLogger("levels", messageChan).Printf("%s", tt.message)
			if msg := <-messageChan; msg.Level != tt.level {
				t.Errorf("Level for %q = %q, want %q", tt.message, msg.Level, tt.level)
			}
		})
	}
}

func TestConsoleBuffer(t *testing.T) {
	buf := newConsoleBuffer(3)
	if got := buf.Messages(); len(got) != 0 {
		t.Fatalf("Expected empty buffer, got %d messages", len(got))
	}

	for i := 1; i <= 2; i++ {
		buf.Add(ConsoleMessage{Message: fmt.Sprintf("m%d", i)})
	}
	assertMessages(t, buf.Messages(), "m1", "m2")

	for i := 3; i <= 5; i++ {
		buf.Add(ConsoleMessage{Message: fmt.Sprintf("m%d", i)})
	}
	assertMessages(t, buf.Messages(), "m3", "m4", "m5")
}

func assertMessages(t *testing.T, got []ConsoleMessage, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Message != want[i] {
			t.Errorf("Message %d = %q, want %q", i, got[i].Message, want[i])
		}
	}
}
