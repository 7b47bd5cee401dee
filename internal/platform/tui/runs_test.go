package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/storage"
)

func TestRunsModelListsJournal(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Seed: 11, Score: 3, Cause: "fall", DurationMs: 61_000},
		{Seed: 22, Score: 9, Cause: "danger", Source: "serve"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewRunsModel(store, 120, 30)
	if len(m.table.Rows()) != 2 {
		t.Fatalf("table rows = %d, expected 2", len(m.table.Rows()))
	}
	sel, ok := m.Selected()
	if !ok || sel.Seed != 22 {
		t.Errorf("Selected() = %+v, %v; expected the newest run", sel, ok)
	}

	view := m.View()
	for _, want := range []string{"RECENT CLIMBS", "danger", "replay with: climber play --seed 22"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(RunsModel)
	if sel, _ := m.Selected(); sel.Seed != 11 {
		t.Errorf("after down, selected seed = %d, expected 11", sel.Seed)
	}
}

func TestRunsModelWithoutStore(t *testing.T) {
	m := NewRunsModel(nil, 60, 20)
	if !strings.Contains(m.View(), "disabled") {
		t.Error("view should say the journal is disabled")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{61_000, "1:01"},
		{599_999, "9:59"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.ms); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, expected %q", tt.ms, got, tt.want)
		}
	}
}
