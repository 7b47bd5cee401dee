package config

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.climber/runs.db", filepath.Join(home, ".climber", "runs.db")},
		{"./runs.db", "./runs.db"},
		{"/var/lib/climber.db", "/var/lib/climber.db"},
		{"~other/runs.db", "~other/runs.db"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DataDir("configs", ConfigFileName)
	if err != nil {
		t.Fatalf("DataDir() failed: %v", err)
	}
	if want := filepath.Join(home, ".climber", "configs", "climber.yaml"); got != want {
		t.Errorf("DataDir() = %q, expected %q", got, want)
	}
}
