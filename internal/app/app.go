package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/dock/internal/config"
	"github.com/kmacinski/dock/internal/dock"
	"github.com/kmacinski/dock/internal/keys"
	"github.com/kmacinski/dock/internal/layout"
	"github.com/kmacinski/dock/internal/ui"
	"github.com/kmacinski/dock/internal/watcher"
	"github.com/kmacinski/dock/internal/window"
)

// App is the main application model
type App struct {
	state  *State
	dock   *dock.DockState
	layout *layout.Manager
	styles ui.Styles
	help   *window.Help
	logger *slog.Logger

	cfg        config.Config
	configPath string

	// Per-frame state. Removals are queued while input is handled and
	// applied before the floating windows are materialized.
	removals   dock.RemovalQueue
	placements []layout.Placement
	drag       dragState

	// Dimensions
	width  int
	height int

	// Status message
	statusMessage string
	tabCounter    int

	// Config watcher
	watcher *watcher.FileWatcher
	program *tea.Program
}

type dragState struct {
	active  bool
	surface dock.SurfaceIndex
	grab    dock.Vec2 // pointer offset from the window's top-left corner
}

// New creates a new application
func New(cfg config.Config, configPath string, d *dock.DockState, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	styles := ui.NewStyles(ui.ColorsFrom(cfg.Colors))

	a := &App{
		state:      NewState(),
		dock:       d,
		layout:     layout.NewManager(cfg.Layout, styles),
		styles:     styles,
		help:       window.NewHelp(styles),
		logger:     logger,
		cfg:        cfg,
		configPath: configPath,
	}
	a.state.ClampFocus(d)
	return a
}

// SetProgram sets the tea.Program reference for sending messages from watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.configPath == "" {
		return
	}

	w, err := watcher.New(a.configPath, 300*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(ConfigChangedMsg{})
		}
	}, a.logger)
	if err != nil {
		a.logger.Warn("config watcher disabled", "path", a.configPath, "error", err)
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher and saves the layout
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.cfg.StateFile == "" {
		return
	}
	if err := a.dock.Save(a.cfg.StateFile); err != nil {
		a.logger.Error("failed to save layout", "path", a.cfg.StateFile, "error", err)
	}
}

// Dock returns the layout owned by the app
func (a *App) Dock() *dock.DockState {
	return a.dock
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages. Every message is one frame: input may queue
// removals and window overrides, and endFrame then applies them.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.handle(msg)
	a.endFrame()
	return model, cmd
}

func (a *App) handle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Handle modal first
		if a.state.ActiveModal != "" {
			return a.handleModalKey(msg)
		}
		return a.handleKey(msg)

	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil

	case StateSavedMsg:
		a.statusMessage = fmt.Sprintf("Saved: %s", msg.Path)
		return a, nil

	case ConfigChangedMsg:
		a.reloadConfig()
		return a, nil

	case ErrorMsg:
		a.state.Error = msg.Err.Error()
		a.logger.Error("command failed", "error", msg.Err)
		return a, nil
	}

	return a, nil
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		return a, tea.Quit
	}

	// Close modal on ? or Escape
	if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
		a.state.CloseModal()
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.DefaultKeyMap
	focus := a.state.Focus
	a.state.Error = ""

	switch {
	case key.Matches(msg, km.Quit):
		return a, tea.Quit

	case key.Matches(msg, km.Help):
		a.state.ToggleModal(a.help.Name())

	case key.Matches(msg, km.Tab):
		a.state.CycleFocus(FocusTargets(a.dock), false)

	case key.Matches(msg, km.ShiftTab):
		a.state.CycleFocus(FocusTargets(a.dock), true)

	case key.Matches(msg, km.NextTab):
		a.selectTab(1)

	case key.Matches(msg, km.PrevTab):
		a.selectTab(-1)

	case key.Matches(msg, km.NewTab):
		a.tabCounter++
		tab := dock.Tab{
			Title: fmt.Sprintf("tab %d", a.tabCounter),
			Body:  "New tab. Press d to float it, x to close it.",
		}
		a.dock.PushTab(focus.Surface, focus.Node, tab)

	case key.Matches(msg, km.Split):
		if node := a.dock.Node(focus.Surface, focus.Node); node != nil {
			if n, ok := a.dock.SplitTab(focus.Surface, focus.Node, node.Active); ok {
				a.state.Focus.Node = n
			}
		}

	case key.Matches(msg, km.Detach):
		if node := a.dock.Node(focus.Surface, focus.Node); node != nil {
			if s, ok := a.dock.DetachTab(focus.Surface, focus.Node, node.Active); ok {
				a.state.Focus = layout.Focus{Surface: s}
				a.logger.Debug("tab detached", "surface", s)
			}
		}

	case key.Matches(msg, km.CloseTab):
		if node := a.dock.Node(focus.Surface, focus.Node); node != nil && len(node.Tabs) > 0 {
			a.removals.Push(dock.RemoveTab(focus.Surface, focus.Node, node.Active))
		}

	case key.Matches(msg, km.CloseOther):
		// queued lowest index first; Compact takes care of the order
		if node := a.dock.Node(focus.Surface, focus.Node); node != nil {
			for i := range node.Tabs {
				if dock.TabIndex(i) != node.Active {
					a.removals.Push(dock.RemoveTab(focus.Surface, focus.Node, dock.TabIndex(i)))
				}
			}
		}

	case key.Matches(msg, km.CloseLeaf):
		if a.dock.Node(focus.Surface, focus.Node) != nil {
			a.removals.Push(dock.RemoveLeaf(focus.Surface, focus.Node))
		}

	case key.Matches(msg, km.CloseFloat):
		if a.dock.Surface(focus.Surface).IsFloating() {
			a.removals.Push(dock.RemoveWindow(focus.Surface))
		}

	case key.Matches(msg, km.Minimize):
		a.toggleMinimized()

	case key.Matches(msg, km.MoveUp):
		a.moveFocused(0, -1)
	case key.Matches(msg, km.MoveDown):
		a.moveFocused(0, 1)
	case key.Matches(msg, km.MoveLeft):
		a.moveFocused(-1, 0)
	case key.Matches(msg, km.MoveRight):
		a.moveFocused(1, 0)

	case key.Matches(msg, km.Grow):
		a.resizeFocused(1)
	case key.Matches(msg, km.Shrink):
		a.resizeFocused(-1)

	case key.Matches(msg, km.Yank):
		data, err := a.dock.Marshal()
		if err == nil {
			err = clipboard.WriteAll(string(data))
		}
		if err != nil {
			a.state.Error = err.Error()
		} else {
			a.statusMessage = "Copied layout"
		}

	case key.Matches(msg, km.Save):
		return a, a.saveState()

	default:
		if note := a.focusedNote(); note != nil {
			_, cmd := note.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	p := dock.Pos2{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if s, ok := layout.HitTest(a.placements, p); ok {
			rect := a.dock.Surface(s).Window.Rect()
			a.state.Focus = layout.Focus{Surface: s}
			if pl, ok := a.placement(s); ok {
				if n, ok := a.layout.FloatingNodeAt(a.dock, pl, msg.X); ok {
					a.state.Focus.Node = n
				}
			}
			a.drag = dragState{
				active:  true,
				surface: s,
				grab:    dock.Vec2{X: p.X - rect.Min.X, Y: p.Y - rect.Min.Y},
			}
			return
		}
		if n, ok := a.layout.MainNodeAt(a.dock, msg.X); ok {
			a.state.Focus = layout.Focus{Surface: dock.MainSurface, Node: n}
		}

	case tea.MouseActionMotion:
		if !a.drag.active {
			return
		}
		if surface := a.dock.Surface(a.drag.surface); surface.IsFloating() {
			surface.Window.SetPosition(dock.Pos2{X: p.X - a.drag.grab.X, Y: p.Y - a.drag.grab.Y})
		}

	case tea.MouseActionRelease:
		a.drag = dragState{}
	}
}

func (a *App) placement(s dock.SurfaceIndex) (layout.Placement, bool) {
	for _, p := range a.placements {
		if p.Surface == s {
			return p, true
		}
	}
	return layout.Placement{}, false
}

// endFrame applies queued removals, then materializes the floating
// windows and reports drag state back into them
func (a *App) endFrame() {
	if records := a.removals.Drain(); len(records) > 0 {
		a.dock.Compact(records)
		a.logger.Debug("removals applied", "count", len(records))
		if a.drag.active && a.dock.Surface(a.drag.surface) == nil {
			a.drag = dragState{}
		}
	}
	a.state.ClampFocus(a.dock)

	if a.width == 0 || a.height == 0 {
		return
	}
	a.placements = a.layout.Frame(a.dock)
	for _, p := range a.placements {
		dragged := a.drag.active && a.drag.surface == p.Surface
		a.dock.Surface(p.Surface).Window.SetDragged(dragged)
	}
}

func (a *App) focusedWindow() *dock.WindowState {
	surface := a.dock.Surface(a.state.Focus.Surface)
	if !surface.IsFloating() {
		return nil
	}
	return surface.Window
}

// focusedNote wraps the active tab of the focused node
func (a *App) focusedNote() *window.Note {
	tab := a.dock.Node(a.state.Focus.Surface, a.state.Focus.Node).Selected()
	if tab == nil {
		return nil
	}
	note := window.NewNote(tab, a.styles)
	note.SetFocus(true)
	return note
}

func (a *App) selectTab(delta int) {
	node := a.dock.Node(a.state.Focus.Surface, a.state.Focus.Node)
	if node == nil || len(node.Tabs) == 0 {
		return
	}
	n := len(node.Tabs)
	node.Active = dock.TabIndex((int(node.Active) + delta + n) % n)
}

func (a *App) toggleMinimized() {
	ws := a.focusedWindow()
	if ws == nil {
		return
	}
	if !ws.IsMinimized() {
		ws.SetExpandedHeight(ws.Rect().Height())
	}
	ws.ToggleMinimized()
	if !ws.IsMinimized() {
		// one frame pinned to the height it had before collapsing
		ws.SetNew(true)
	}
}

func (a *App) moveFocused(dx, dy int) {
	ws := a.focusedWindow()
	if ws == nil {
		return
	}
	step := float64(a.cfg.Layout.MoveStep)
	r := ws.Rect()
	ws.SetPosition(dock.Pos2{X: r.Min.X + float64(dx)*step, Y: r.Min.Y + float64(dy)*step})
}

func (a *App) resizeFocused(delta int) {
	ws := a.focusedWindow()
	if ws == nil || ws.IsMinimized() {
		return
	}
	step := float64(a.cfg.Layout.MoveStep)
	size := ws.Rect().Size()
	ws.SetSize(dock.Vec2{X: size.X + float64(delta)*2*step, Y: size.Y + float64(delta)*step})
}

func (a *App) reloadConfig() {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.state.Error = err.Error()
		a.logger.Warn("config reload failed", "path", a.configPath, "error", err)
		return
	}
	a.cfg.Layout = cfg.Layout
	a.cfg.Colors = cfg.Colors
	a.styles = ui.NewStyles(ui.ColorsFrom(cfg.Colors))
	a.help.SetStyles(a.styles)
	a.layout.SetStyles(a.styles)
	a.layout.Configure(cfg.Layout)
	a.statusMessage = "Config reloaded"
	a.logger.Info("config reloaded", "path", a.configPath)
}

func (a *App) saveState() tea.Cmd {
	path := a.cfg.StateFile
	if path == "" {
		return func() tea.Msg {
			return ErrorMsg{Err: errors.New("no state file configured")}
		}
	}
	// encode now; the command runs off the update loop
	data, err := a.dock.Marshal()
	return func() tea.Msg {
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if err := dock.WriteFile(path, data); err != nil {
			return ErrorMsg{Err: err}
		}
		return StateSavedMsg{Path: path}
	}
}

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	mainView := a.layout.Render(a.dock, a.placements, a.state.Focus, a.renderStatusBar())

	// Render modal overlay if active
	if a.state.ActiveModal == a.help.Name() {
		mainView = a.renderWithModal(mainView, a.help)
	}

	return mainView
}

func (a *App) renderStatusBar() string {
	focus := a.state.Focus
	where := fmt.Sprintf("[main:%d]", focus.Node)
	if ws := a.focusedWindow(); ws != nil {
		where = fmt.Sprintf("[window %d:%d]", focus.Surface, focus.Node)
		if ws.IsMinimized() {
			where += " [min]"
		}
		if ws.Dragged() {
			where += " [drag]"
		}
	}
	if note := a.focusedNote(); note != nil {
		where += " " + note.Name()
	}

	windows := fmt.Sprintf("%d floating", len(a.placements))

	// Status message (temporary)
	statusMsg := ""
	if a.state.Error != "" {
		statusMsg = a.styles.Muted.Render(" │ error: " + a.state.Error)
	} else if a.statusMessage != "" {
		statusMsg = a.styles.Muted.Render(" │ " + a.statusMessage)
		a.statusMessage = "" // Clear after showing
	}

	left := fmt.Sprintf(" dock  %s  %s", where, windows) + statusMsg

	// Pad to full width
	padding := a.width - lipgloss.Width(left)
	if padding < 0 {
		padding = 0
	}

	return a.styles.StatusBar.
		Width(a.width).
		MaxWidth(a.width).
		Render(left + strings.Repeat(" ", padding))
}

func (a *App) renderWithModal(background string, modal window.Window) string {
	modalWidth := min(50, a.width-4)
	modalHeight := min(26, a.height-4)

	modalContent := modal.View(modalWidth, modalHeight)

	return layout.Overlay(background, modalContent,
		max(0, (a.width-lipgloss.Width(modalContent))/2),
		max(0, (a.height-lipgloss.Height(modalContent))/2))
}
