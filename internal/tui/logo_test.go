package tui

import (
	"strings"
	"testing"
)

func TestLogo(t *testing.T) {
	t.Parallel()

	t.Run("contains CHRONON text", func(t *testing.T) {
		t.Parallel()
		if got := Logo(); !strings.Contains(got, "CHRONON") {
			t.Errorf("Logo() should contain CHRONON, got: %s", got)
		}
	})

	t.Run("contains tick characters", func(t *testing.T) {
		t.Parallel()
		if got := Logo(); !strings.Contains(got, "┼") {
			t.Errorf("Logo() should contain tick character ┼, got: %s", got)
		}
	})

	t.Run("is single line", func(t *testing.T) {
		t.Parallel()
		if got := Logo(); strings.Contains(got, "\n") {
			t.Errorf("Logo() should be a single line, got: %s", got)
		}
	})
}

func TestLogoPlain(t *testing.T) {
	t.Parallel()
	want := "├┼┤ CHRONON"
	got := LogoPlain()
	if got != want {
		t.Errorf("LogoPlain() = %q, want %q", got, want)
	}
	if strings.Contains(got, "\033") {
		t.Errorf("LogoPlain() should not contain ANSI escapes, got: %s", got)
	}
}
