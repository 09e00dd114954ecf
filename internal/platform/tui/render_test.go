package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov87/snakepit/internal/core"
	"github.com/akarpov87/snakepit/internal/engine"
)

func TestSnakeGradientLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100} {
		colors := SnakeGradient(n)
		if len(colors) != n {
			t.Errorf("SnakeGradient(%d) returned %d colors", n, len(colors))
		}
		for i, c := range colors {
			if !strings.HasPrefix(c, "#") || len(c) != 7 {
				t.Errorf("SnakeGradient(%d)[%d] = %q, expected a hex color", n, i, c)
			}
		}
	}

	if SnakeGradient(0) != nil {
		t.Error("SnakeGradient(0) should be nil")
	}
}

func TestSnakeGradientEndpoints(t *testing.T) {
	colors := SnakeGradient(8)

	if colors[0] != gradientHead.Hex() {
		t.Errorf("head color = %q, expected %q", colors[0], gradientHead.Hex())
	}
	if colors[len(colors)-1] != gradientTail.Hex() {
		t.Errorf("tail color = %q, expected %q", colors[len(colors)-1], gradientTail.Hex())
	}
}

func TestRenderScreenPreservesRunes(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")
	s.DrawTextColored(0, 1, "fg", core.ColorGreen)
	s.SetCellHex(2, 1, 'h', "#5af78e")

	out := RenderScreen(s)

	// Styling must not drop or reorder any glyphs.
	for _, want := range []string{"abcde", "fg", "h"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one newline, got %d", strings.Count(out, "\n"))
	}
}

func TestKeyMapperSteering(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action engine.Action
	}{
		{"w", engine.Up},
		{"up", engine.Up},
		{"k", engine.Up},
		{"s", engine.Down},
		{"down", engine.Down},
		{"a", engine.Left},
		{"left", engine.Left},
		{"d", engine.Right},
		{"right", engine.Right},
	}

	for _, tc := range tests {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
		if len(tc.key) > 1 {
			msg = keyMsgFor(tc.key)
		}
		action, ok, isQuit := km.MapKey(msg)
		if isQuit {
			t.Errorf("key %q should not quit", tc.key)
		}
		if !ok || action != tc.action {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, true)", tc.key, action, ok, tc.action)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		if _, _, isQuit := km.MapKey(msg); !isQuit {
			t.Errorf("MapKey(%q) should report quit", msg.String())
		}
	}
}

func TestKeyMapperIgnoresOtherKeys(t *testing.T) {
	km := NewKeyMapper()

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	if _, ok, isQuit := km.MapKey(msg); ok || isQuit {
		t.Error("unbound key should map to nothing")
	}
}

// keyMsgFor builds key messages for the named special keys.
func keyMsgFor(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
