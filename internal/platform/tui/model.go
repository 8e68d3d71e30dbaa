// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH via Wish. It maps keys and mouse buttons to actions and paces frames.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/secret-kiss/internal/core"
	"github.com/vovakirdan/secret-kiss/internal/games/kiss"
	"github.com/vovakirdan/secret-kiss/internal/storage"
)

// Muter toggles audio output.
type Muter interface {
	ToggleMute() bool
}

// Options holds the platform collaborators of a Model. All are optional.
type Options struct {
	Store         *storage.Store // Round history; nil skips saving
	Muter         Muter          // nil disables the mute key
	Log           *log.Logger
	Preset        string // Recorded with each round
	ScreenshotDir string // Defaults to ~/.secretkiss/screenshots
}

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game       *kiss.Game
	screen     *core.Screen
	opts       Options
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	status     string
	quitting   bool
	scoreSaved bool // Whether the round has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *kiss.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".secretkiss", "screenshots")
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldHeight leaves the last terminal row for the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// holding reports whether the hold key is engaged, counting actions queued
// for the next frame.
func (m Model) holding() bool {
	for i := len(m.inputFrame.Actions) - 1; i >= 0; i-- {
		switch m.inputFrame.Actions[i] {
		case core.ActionPress:
			return true
		case core.ActionRelease:
			return false
		}
	}
	return m.game.Session().Active()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg, m.holding()); action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	case core.ActionMute:
		if m.opts.Muter != nil {
			if m.opts.Muter.ToggleMute() {
				m.status = "muted"
			} else {
				m.status = ""
			}
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)
	m.lastTick = now

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save the round on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveRound() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	snap := m.game.Session().Snapshot()
	_, err := m.opts.Store.SaveRound(storage.Round{
		Preset: m.opts.Preset,
		Score:  snap.Score,
		Held:   snap.Held,
	})
	if err != nil {
		m.opts.Log.Warn("round not saved", "score", snap.Score, "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Log.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Log.Warn("screenshot failed", "err", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
}

var (
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := helpBarStyle.Render(m.help.View(m.keys.Keys()))
	if m.status != "" {
		bar += "  " + statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + bar
}

// Run starts the Bubble Tea program with the given game.
func Run(game *kiss.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press and release events drive the kiss
	)

	_, err := p.Run()
	game.Close()
	return err
}
