package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/storage"
	"github.com/vovakirdan/snake-tui/internal/variant"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuScoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []variant.Variant
	highs          map[string]int // Best recorded score per variant
	cursor         int
	store          *storage.Store
	config         core.RuntimeConfig
	keys           *KeyMapper
	quitting       bool
	selected       *variant.Variant
	openScoreboard bool
}

// NewMenuModel creates a menu listing all registered variants.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := variant.List()

	highs := make(map[string]int, len(items))
	if store != nil {
		for _, v := range items {
			if high, err := store.HighScore(v.ID); err == nil {
				highs[v.ID] = high
			}
		}
	}

	return MenuModel{
		items:  items,
		highs:  highs,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
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
	b.WriteString("\n")
	b.WriteString("  " + menuTitleStyle.Render("SNAKE") + "\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := menuItemStyle
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			style = menuSelectedStyle
		}

		line := fmt.Sprintf("  %s%s", cursor, style.Render(item.Title))
		if high, ok := m.highs[item.ID]; ok && high > 0 {
			line += "  " + menuScoreStyle.Render(fmt.Sprintf("best %d", high))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + menuHelpStyle.Render("↑/↓ navigate · enter play · tab scores · q quit") + "\n")

	return b.String()
}

// IsQuitting reports whether the user quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *variant.Variant {
	return m.selected
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the (possibly resized) runtime config.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what RunMenu reports back to the caller.
type MenuResult struct {
	Config          core.RuntimeConfig
	VariantID       string
	Quit            bool
	WantsScoreboard bool
}

// RunMenu shows the variant picker and blocks until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	menu, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{
		Config:          menu.Config(),
		Quit:            menu.IsQuitting(),
		WantsScoreboard: menu.WantsScoreboard(),
	}
	if sel := menu.Selected(); sel != nil {
		result.VariantID = sel.ID
	}
	return result, nil
}
