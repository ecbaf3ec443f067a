package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/polygon"
	"github.com/vovakirdan/flippy/internal/registry"
	"github.com/vovakirdan/flippy/internal/storage"
	"github.com/vovakirdan/flippy/internal/tween"
)

// Shape canvas layout
const (
	menuCanvasTop  = 5  // Screen row of the canvas: blank, title, blank, subtitle, blank
	menuCanvasMinH = 5  // Below this the shapes are hidden
	menuCanvasMaxH = 12 // Rows, titles included
	menuSlotMinW   = 8  // Minimum columns per shape
)

// eventPicked is attached to the disappear animation of a picked shape.
const eventPicked tween.Kind = "menu.picked"

// MenuItem represents a selectable shape in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	Vertices  int
	HighScore float64
	BestLevel int
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the shape picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a shape
	openScoreboard bool      // True if user pressed Tab for scoreboard

	viewport config.ViewportConfig
	rng      *rand.Rand
	anim     *tween.Manager
	canvas   *core.Screen       // nil while the window is too small for shapes
	shapes   []*polygon.Polygon // One per item
	labels   []int              // Canvas row of each shape's title
	picking  int                // Item whose shape is disappearing, -1 if none
}

// NewMenuModel creates a new menu model listing the registered shapes
// from fewest to most vertices.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		// Missing stats only hide the best column
		stats, _ = store.GetAllGamesStats()
	}

	items := make([]MenuItem, 0, len(flippy.Shapes))
	for _, s := range flippy.Shapes {
		if !registry.Exists(s.ID) {
			continue
		}
		item := MenuItem{GameID: s.ID, Title: s.Title, Vertices: s.Vertices}
		if st, ok := stats[s.ID]; ok {
			item.HighScore = st.HighScore
			item.BestLevel = st.BestLevel
		}
		items = append(items, item)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		viewport:  config.DefaultFlippyConfig().Viewport,
		rng:       rand.New(rand.NewSource(seed)),
		anim:      tween.NewManager(nil),
		picking:   -1,
	}
	m.layout()
	return m
}

// layout sizes the canvas and places one fresh shape per item, side by side.
func (m *MenuModel) layout() {
	m.anim.Clear()
	m.shapes, m.labels = nil, nil

	n := len(m.items)
	h := min(m.height-menuCanvasTop-n-4, menuCanvasMaxH)
	if n == 0 || h < menuCanvasMinH || m.width/n < menuSlotMinW {
		m.canvas = nil
		return
	}
	if m.canvas == nil {
		m.canvas = core.NewScreen(m.width, h)
	} else {
		m.canvas.Resize(m.width, h)
	}

	// The bottom row holds the titles
	slotW := m.width / n
	scale := 0.45 * min(float64(slotW)*m.viewport.CellWidth, float64(h-1)*m.viewport.CellHeight)

	for i, item := range m.items {
		col, row := m.slotCenter(i)
		p, err := polygon.New(m.rng, item.Vertices, m.worldAt(col, row), scale)
		if err != nil {
			m.canvas, m.shapes, m.labels = nil, nil, nil
			return
		}
		bottom := m.cellAt(p.Bounds().Min).Y
		m.shapes = append(m.shapes, p)
		m.labels = append(m.labels, core.Clamp(int(bottom)+1, 0, h-1))
	}
}

// slotCenter returns the canvas cell at the center of item i's slot.
func (m MenuModel) slotCenter(i int) (col, row int) {
	slotW := m.width / len(m.items)
	return i*slotW + slotW/2, (m.canvas.Height() - 1) / 2
}

// worldAt returns the world position of the center of a canvas cell.
func (m MenuModel) worldAt(col, row int) geom.Coord {
	return geom.Coord{
		X: (float64(col) + 0.5) * m.viewport.CellWidth,
		Y: (float64(m.canvas.Height()-row) - 0.5) * m.viewport.CellHeight,
	}
}

// cellAt maps a world position to canvas cell space.
func (m MenuModel) cellAt(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: p.X / m.viewport.CellWidth,
		Y: float64(m.canvas.Height()) - p.Y/m.viewport.CellHeight,
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

	case tea.MouseMsg:
		frame := core.NewInputFrame()
		if m.keyMapper.MapMouseToFrame(msg, &frame) {
			return m.handleClick(frame.Click.X, frame.Click.Y-menuCanvasTop)
		}
		return m, nil

	case menuTickMsg:
		return m.handleTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The animation can't survive a new layout
		if m.picking >= 0 {
			return m.choose(m.picking)
		}
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.picking >= 0 {
		return m, nil
	}

	switch action {
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
			return m.pick(m.cursor)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// handleClick picks the shape under a canvas cell, if any.
func (m MenuModel) handleClick(col, row int) (tea.Model, tea.Cmd) {
	if m.canvas == nil || m.picking >= 0 {
		return m, nil
	}
	pt := m.worldAt(col, row)
	for i, p := range m.shapes {
		if p.Contains(pt) {
			m.cursor = i
			return m.pick(i)
		}
	}
	return m, nil
}

// pick shrinks item i's shape away; the selection is made once it is gone.
func (m MenuModel) pick(i int) (tea.Model, tea.Cmd) {
	if m.shapes == nil {
		return m.choose(i)
	}
	m.picking = i
	note := tween.Event{Kind: eventPicked, Owner: m.shapes[i]}
	m.shapes[i].RequestDisappear(note, m.anim, polygon.DisappearDuration)
	return m, menuTickCmd(m.config)
}

// handleTick advances the pick animation.
func (m MenuModel) handleTick() (tea.Model, tea.Cmd) {
	if m.picking < 0 {
		return m, nil
	}
	// Every vertex reports; the first report is enough
	for _, ev := range m.anim.Update(m.config.TickDuration()) {
		if ev.Kind == eventPicked {
			return m.choose(m.picking)
		}
	}
	return m, menuTickCmd(m.config)
}

// choose records item i as the selection and ends the menu.
func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	selected := m.items[i]
	m.selected = &selected
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F L I P P Y"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Flip the shape onto its outline", m.width))
	b.WriteString("\n\n")

	if m.canvas != nil {
		m.renderShapes()
		b.WriteString(RenderScreen(m.canvas))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		best := "-"
		if item.BestLevel > 0 {
			best = fmt.Sprintf("%.2f (L%d)", item.HighScore, item.BestLevel)
		}
		line := fmt.Sprintf("%-10s %d sides   best %s", item.Title, item.Vertices, best)

		if i == m.cursor {
			line = menuCursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Click a shape or Up/Down + Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDim.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderShapes draws every shape with its title underneath, the one under
// the cursor highlighted.
func (m MenuModel) renderShapes() {
	m.canvas.Clear()
	for i, p := range m.shapes {
		color := core.ColorCyan
		if i == m.cursor {
			color = core.ColorYellow
		}

		verts := p.Vertices()
		for j, v := range verts {
			verts[j] = m.cellAt(v)
		}
		m.canvas.FillPolygon(verts, flippy.ShapeChar, color)

		col, _ := m.slotCenter(i)
		title := m.items[i].Title
		m.canvas.DrawTextColored(col-len(title)/2, m.labels[i], title, color)
	}
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its
// printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
