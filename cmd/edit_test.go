package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/chronon/internal/config"
	"github.com/papapumpkin/chronon/internal/scene"
)

func TestEditCmd_RequiresTTY(t *testing.T) {
	// Not parallel: runs the shared editCmd.
	path := writeScene(t, scene.Default())

	err := runEdit(editCmd, []string{path})
	if err == nil {
		t.Fatal("expected error when not on a TTY")
	}
	if want := "chronon edit requires a TTY (terminal)"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestEditCmd_InvalidScene(t *testing.T) {
	sc := scene.Default()
	sc.Tracks[0].Items[0].End = sc.Tracks[0].Items[0].Start
	path := writeScene(t, sc)

	err := runEdit(editCmd, []string{path})
	if err == nil || !strings.Contains(err.Error(), "validation failed with 1 error(s)") {
		t.Errorf("error = %v, want a validation failure", err)
	}
}

func TestEditCmd_MissingExplicitScene(t *testing.T) {
	err := runEdit(editCmd, []string{filepath.Join(t.TempDir(), "nope.toml")})
	if err == nil || !strings.Contains(err.Error(), "failed to load scene") {
		t.Errorf("error = %v, want a load failure", err)
	}
}

func TestResolveScene(t *testing.T) {
	t.Parallel()
	existing := writeScene(t, &scene.Scene{
		Meta:   scene.Meta{Name: "file", EndTime: 10},
		Tracks: []scene.Track{{Name: "only"}},
	})
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name     string
		cfg      config.Config
		args     []string
		wantName string
		wantPath string
		wantErr  bool
		wantEnd  float64
	}{
		{"argument wins", config.Config{Scene: missing}, []string{existing}, "file", existing, false, 10},
		{"configured file", config.Config{Scene: existing}, nil, "file", existing, false, 10},
		{"demo when configured file is missing", config.Config{Scene: missing}, nil, "demo", "", false, 200},
		{"missing argument fails", config.Config{}, []string{missing}, "", "", true, 0},
		{"range override", config.Config{Scene: existing, StartTime: 2, EndTime: 8}, nil, "file", existing, false, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sc, path, err := resolveScene(tt.cfg, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveScene: %v", err)
			}
			if sc.Meta.Name != tt.wantName || path != tt.wantPath {
				t.Errorf("got scene %q at %q, want %q at %q", sc.Meta.Name, path, tt.wantName, tt.wantPath)
			}
			if sc.Meta.EndTime != tt.wantEnd {
				t.Errorf("end time = %v, want %v", sc.Meta.EndTime, tt.wantEnd)
			}
		})
	}
}

func TestApplyEditFlags(t *testing.T) {
	// Not parallel: modifies shared editCmd flag state.
	for flag, value := range map[string]string{"journal": "edits.jsonl", "no-watch": "true", "track-height": "3"} {
		if err := editCmd.Flags().Set(flag, value); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() {
		for flag, value := range map[string]string{"journal": "", "no-watch": "false", "track-height": "0"} {
			_ = editCmd.Flags().Set(flag, value)
			editCmd.Flags().Lookup(flag).Changed = false
		}
	})

	cfg := config.Config{Watch: true, TrackHeight: 2, JournalPath: "other.jsonl"}
	applyEditFlags(editCmd, &cfg)
	if cfg.JournalPath != "edits.jsonl" || cfg.Watch || cfg.TrackHeight != 3 {
		t.Errorf("config after flags = %+v", cfg)
	}
}
