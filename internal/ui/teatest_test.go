package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/google/go-cmp/cmp"
)

// TestModel_Teatest_AddThenSortByEmail drives the full program: add Eve
// through the form, switch the sort to Email, and quit.
func TestModel_Teatest_AddThenSortByEmail(t *testing.T) {
	m := NewModel()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))

	tm.Type("a")
	tm.Type("Eve Adams")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("555-000-1111")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("eve@x.com")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(msgAdded))
	}, teatest.WithDuration(2*time.Second))

	// Name -> Phone -> Email.
	tm.Type("s")
	tm.Type("s")
	tm.Type("q")

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	want := []string{
		"alice@example.com",
		"bob@example.com",
		"charlie@example.com",
		"david@example.com",
		"eve@x.com",
	}
	if diff := cmp.Diff(want, rowEmails(final)); diff != "" {
		t.Errorf("final rows mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_Teatest_SearchRendersMatches(t *testing.T) {
	m := NewModel()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 30))

	tm.Type("/")
	tm.Type("123-456")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("/123-456: 2"))
	}, teatest.WithDuration(2*time.Second))

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	if diff := cmp.Diff([]string{"Alice Smith", "David Lee"}, rowNames(final)); diff != "" {
		t.Errorf("final rows mismatch (-want +got):\n%s", diff)
	}
}
