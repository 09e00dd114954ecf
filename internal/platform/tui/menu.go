package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov87/snakepit/internal/config"
)

// MenuChoice identifies a top-level menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceBenchmark
	ChoiceLeaderboard
	ChoiceQuit
)

var menuEntries = []struct {
	choice MenuChoice
	title  string
}{
	{ChoicePlay, "Play"},
	{ChoiceBenchmark, "Benchmark"},
	{ChoiceLeaderboard, "Leaderboards"},
	{ChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu. Selecting Play
// opens a speed preset submenu before the choice is finalized.
type MenuModel struct {
	cursor         int
	presetCursor   int
	inPresetSelect bool
	width          int
	height         int
	keyMapper      *KeyMapper
	choice         MenuChoice
	preset         config.SpeedPreset
	quitting       bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		preset:    config.SpeedMedium,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inPresetSelect {
		return m.handlePresetKey(action)
	}
	return m.handleTopKey(action)
}

func (m MenuModel) handleTopKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := menuEntries[m.cursor].choice
		if selected == ChoicePlay {
			m.inPresetSelect = true
			return m, nil
		}
		if selected == ChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.choice = selected
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.inPresetSelect = false
		return m, nil

	case MenuActionUp:
		if m.presetCursor > 0 {
			m.presetCursor--
		}

	case MenuActionDown:
		if m.presetCursor < len(config.Presets)-1 {
			m.presetCursor++
		}

	case MenuActionSelect:
		m.choice = ChoicePlay
		m.preset = config.Presets[m.presetCursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  S N A K E P I T  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.inPresetSelect {
		b.WriteString(centerText("Select speed", m.width))
		b.WriteString("\n\n")
		for i, p := range config.Presets {
			cursor := "  "
			if i == m.presetCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Main menu", m.width))
		b.WriteString("\n\n")
		for i, entry := range menuEntries {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, entry.title), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	if m.inPresetSelect {
		controls = "Up/Down: Navigate  |  Enter: Select  |  Esc: Back"
	}
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the confirmed menu choice, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the speed preset chosen in the Play submenu.
func (m MenuModel) Preset() config.SpeedPreset {
	return m.preset
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.SpeedPreset
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return MenuResult{Choice: ChoiceQuit}, nil
	}

	return MenuResult{Choice: m.Choice(), Preset: m.Preset()}, nil
}
