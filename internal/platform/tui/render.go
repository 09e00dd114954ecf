package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/akarpov87/snakepit/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Snake gradient endpoints, head to tail.
var (
	gradientHead, _ = colorful.Hex("#5af78e")
	gradientTail, _ = colorful.Hex("#1c5c38")
)

// SnakeGradient returns per-segment hex colors for a snake of the given
// length, blended head to tail in Luv space so the ramp stays perceptually
// even as the snake grows.
func SnakeGradient(length int) []string {
	if length <= 0 {
		return nil
	}
	colors := make([]string, length)
	if length == 1 {
		colors[0] = gradientHead.Hex()
		return colors
	}
	colors[0] = gradientHead.Hex()
	colors[length-1] = gradientTail.Hex()
	for i := 1; i < length-1; i++ {
		t := float64(i) / float64(length-1)
		colors[i] = gradientHead.BlendLuv(gradientTail, t).Clamped().Hex()
	}
	return colors
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color
			startHex := cell.Hex

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor || cell.Hex != startHex {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			sb.WriteString(styleFor(startColor, startHex).Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor resolves the style for a cell. An exact truecolor value takes
// precedence over the palette color.
func styleFor(c core.Color, hex string) lipgloss.Style {
	if hex != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style
}
