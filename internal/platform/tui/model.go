package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sunny-days/internal/config"
	"sunny-days/internal/core"
	"sunny-days/internal/npc"
	"sunny-days/internal/storage"
	"sunny-days/internal/world"
)

const (
	// moveCooldown throttles held movement keys so the player crosses one
	// tile per repeat, not one per terminal key event.
	moveCooldown = 90 * time.Millisecond

	// battlePenalty is how long the player may deliberate before the enemy
	// gets first initiative on the next turn.
	battlePenalty = 10 * time.Second
)

// Model is the Bubble Tea model for a single play session.
type Model struct {
	w      *world.World
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	lastMove   time.Time // last accepted movement key
	battleMark time.Time // when the current battle prompt appeared
	started    time.Time

	quitting bool
	runSaved bool // whether the run has been journaled
}

// NewModel creates a play-session model. A zero seed is replaced with a
// time-based one.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, game config.GameConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return Model{
		w:       world.New(cfg.Seed, game),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		started: time.Now(),
	}
}

// Init starts the idle tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps terminal input to world actions based on the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m.apply(core.Simple(core.KindQuit))
	}

	switch m.w.Phase() {
	case world.PhaseTitle, world.PhaseIntro:
		switch key {
		case "enter", " ":
			return m.apply(core.Simple(core.KindConfirm))
		case "q", "esc":
			return m.apply(core.Simple(core.KindQuit))
		}

	case world.PhasePlaying:
		return m.handlePlayingKey(msg)

	case world.PhaseDialogue:
		switch key {
		case "enter", " ":
			return m.apply(core.Simple(core.KindConfirm))
		default:
			if r := singleRune(msg); r != 0 {
				return m.apply(core.Choice(r))
			}
		}

	case world.PhaseBattle:
		return m.handleBattleKey(msg)

	case world.PhaseEnding:
		switch key {
		case "enter", " ", "q", "esc":
			return m.apply(core.Simple(core.KindQuit))
		}
	}

	return m, nil
}

// handlePlayingKey handles exploration input, including the inventory and
// stats overlays.
func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.w.StatsOpen() {
		switch key {
		case "q", "esc":
			return m.apply(core.Simple(core.KindToggleStats))
		}
		return m, nil
	}

	if m.w.InventoryOpen() {
		switch key {
		case "i", "esc":
			return m.apply(core.Simple(core.KindToggleInventory))
		case "t", "tab":
			return m.apply(core.Simple(core.KindToggleInvTab))
		case "up", "w":
			return m.apply(core.Simple(core.KindInventoryUp))
		case "down", "s":
			return m.apply(core.Simple(core.KindInventoryDown))
		case " ", "enter":
			return m.apply(core.Simple(core.KindUseConsumable))
		case "q":
			return m.apply(core.Simple(core.KindToggleStats))
		}
		return m, nil
	}

	switch key {
	case "up", "w":
		return m.applyMove(0, -1)
	case "down", "s":
		return m.applyMove(0, 1)
	case "left", "a":
		return m.applyMove(-1, 0)
	case "right", "d":
		return m.applyMove(1, 0)
	case "e", "enter":
		return m.apply(core.Simple(core.KindInteract))
	case "i":
		return m.apply(core.Simple(core.KindToggleInventory))
	case "q":
		return m.apply(core.Simple(core.KindToggleStats))
	case "esc":
		return m.apply(core.Simple(core.KindQuit))
	}

	return m, nil
}

// handleBattleKey handles combat input. Taking too long to pick an option
// hands the enemy first initiative for that turn.
func (m Model) handleBattleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.w.InventoryOpen() {
		switch key {
		case "i", "esc":
			return m.apply(core.Simple(core.KindToggleInventory))
		case "up", "w":
			return m.apply(core.Simple(core.KindInventoryUp))
		case "down", "s":
			return m.apply(core.Simple(core.KindInventoryDown))
		case " ", "enter":
			return m.apply(core.Simple(core.KindUseConsumable))
		}
		return m, nil
	}

	option := 0
	switch key {
	case "1", "f":
		option = 1
	case "2", "i":
		option = 2
	case "3", "r":
		option = 3
	}
	if option == 0 {
		return m, nil
	}

	penalty := time.Since(m.battleMark) >= battlePenalty
	m.battleMark = time.Now()
	return m.apply(core.BattleOption(option, penalty))
}

// applyMove throttles movement to one tile per cooldown window.
func (m Model) applyMove(dx, dy int) (tea.Model, tea.Cmd) {
	now := time.Now()
	if now.Sub(m.lastMove) < moveCooldown {
		return m, nil
	}
	m.lastMove = now
	return m.apply(core.Move(dx, dy))
}

// apply feeds one action to the world and reacts to phase transitions.
func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	prev := m.w.Phase()
	alive := m.w.Apply(a)

	if prev != world.PhaseBattle && m.w.Phase() == world.PhaseBattle {
		m.battleMark = time.Now()
	}

	if m.w.Dead() {
		m.saveRun("died")
	}

	if !alive {
		if !m.w.Dead() {
			m.saveRun(m.quitOutcome())
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// quitOutcome distinguishes walking away from a finished run.
func (m Model) quitOutcome() string {
	if m.w.Roster().Defeated(npc.IDWarden) {
		return "won"
	}
	return "quit"
}

// handleTick advances idle time so timed buffs expire without input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.w.Apply(core.Simple(core.KindNone))

	if m.w.Dead() {
		m.saveRun("died")
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun journals the finished run once. Best effort; play is unaffected
// by storage failures.
func (m *Model) saveRun(outcome string) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveRun(storage.RunRecord{
		Seed:     m.w.Seed(),
		Outcome:  outcome,
		Turns:    m.w.Turns(),
		Defeated: m.w.Roster().DefeatedCount(),
		Duration: int(time.Since(m.started).Seconds()),
	})
}

// View renders the current world state to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Render(m.w, m.screen)
	return RenderScreen(m.screen)
}

// singleRune extracts the rune of a plain character key, 0 otherwise.
func singleRune(msg tea.KeyMsg) rune {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0]
	}
	return 0
}

// Run starts a local play session in the terminal.
func Run(store *storage.Store, cfg core.RuntimeConfig, game config.GameConfig) error {
	model := NewModel(store, cfg, game)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
