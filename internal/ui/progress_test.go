package ui

import (
	"strings"
	"testing"

	"aera/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.aera", 20, "short.aera"},
		{"src/very/long/path/main.aera", 12, "src/ve..."},
		{"abcdef", 3, "abc"},
		{"文字文字.aera", 9, "文..."},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestApplyEventTracksStatus(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("parsing", []string{"a.aera", "b.aera"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.aera", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Errorf("a.aera status = %q", m.items[0].status)
	}
	m.applyEvent(driver.Event{File: "a.aera", Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.aera", Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.aera", Status: driver.StatusDone})
	if m.finished() != 2 {
		t.Errorf("finished = %d, want 2", m.finished())
	}

	view := m.View()
	if !strings.Contains(view, "(2/2)") || !strings.Contains(view, "a.aera") {
		t.Errorf("view = %q", view)
	}
}

func TestModelQuitsWhenEventsClose(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("x", []string{"a.aera"}, events).(*progressModel)
	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	if _, cmd := m.Update(msg); cmd == nil || !m.done {
		t.Error("model must stop after events close")
	}
}
