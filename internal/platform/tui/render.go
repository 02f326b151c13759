package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sunny-days/internal/core"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/entity"
	"sunny-days/internal/item"
	"sunny-days/internal/world"
)

// Viewport limits for the zoomed map window.
const (
	viewportMaxW = 35
	viewportMaxH = 20
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
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Render draws the world into the screen buffer for the current phase.
func Render(w *world.World, s *core.Screen) {
	s.Clear()

	switch w.Phase() {
	case world.PhaseTitle:
		renderTitle(w, s)
	case world.PhaseIntro:
		renderIntro(s)
	case world.PhaseBattle:
		renderBattle(w, s)
	case world.PhaseEnding:
		renderEnding(w, s)
	default:
		renderPlaying(w, s)
	}
}

func renderTitle(w *world.World, s *core.Screen) {
	mid := s.Height() / 2

	s.DrawTextCentered(mid-4, "S U N N Y   D A Y S")
	s.DrawTextCentered(mid-2, "a small dungeon under a bright sky")
	s.DrawTextCentered(mid+1, fmt.Sprintf("Seed: %d", w.Seed()))
	s.DrawTextCentered(mid+3, "Press Enter to begin")
}

func renderIntro(s *core.Screen) {
	mid := s.Height() / 2

	lines := []string{
		"The sun is high and the village is quiet.",
		"Something stirs in the cellars below the old keep.",
		"Elder Rowan asked for someone brave. You came.",
	}
	for i, line := range lines {
		s.DrawTextCentered(mid-3+i*2, line)
	}
	s.DrawTextCentered(mid+4, "Press Enter to continue")
}

// renderPlaying draws the map viewport, sidebar and log pane, then any
// open overlay on top.
func renderPlaying(w *world.World, s *core.Screen) {
	logH := 8 // six log lines plus borders
	vw := core.Clamp(s.Width()-45, 20, viewportMaxW)
	vh := core.Clamp(s.Height()-logH-2, 8, viewportMaxH)

	renderMap(w, s, 1, 1, vw, vh)
	s.DrawBox(0, 0, vw+2, vh+2)

	renderSidebar(w, s, vw+4)
	renderLog(w, s, logH)

	switch {
	case w.InventoryOpen():
		renderInventory(&w.Player().Inv, s)
	case w.StatsOpen():
		renderStats(w, s)
	}

	if w.Phase() == world.PhaseDialogue {
		renderDialogue(w, s)
	}
}

// renderMap draws a (vw x vh) window of the current level centered on the
// player, clamped to the map bounds.
func renderMap(w *world.World, s *core.Screen, ox, oy, vw, vh int) {
	lvl := w.Level()
	p := w.Player()

	camX := core.Clamp(p.X-vw/2, 0, core.Max(0, lvl.Map.Width-vw))
	camY := core.Clamp(p.Y-vh/2, 0, core.Max(0, lvl.Map.Height-vh))

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			t := lvl.Map.At(camX+x, camY+y)
			s.SetCell(ox+x, oy+y, t.Rune(), tileColor(t))
		}
	}

	for _, n := range w.NPCs() {
		if n.X >= camX && n.X < camX+vw && n.Y >= camY && n.Y < camY+vh {
			c := core.ColorCyan
			if n.Hostile() {
				c = core.ColorRed
			}
			s.SetCell(ox+n.X-camX, oy+n.Y-camY, n.Symbol, c)
		}
	}

	s.SetCell(ox+p.X-camX, oy+p.Y-camY, '@', core.ColorBrightYellow)
}

func tileColor(t dungeon.Tile) core.Color {
	switch t {
	case dungeon.TileWall:
		return core.ColorGray
	case dungeon.TileDoor:
		return core.ColorBrightWhite
	case dungeon.TileChest:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

func renderSidebar(w *world.World, s *core.Screen, x int) {
	p := w.Player()
	now := w.Now()

	room := "Upper Halls"
	if w.CurrentIndex() == 1 {
		room = "Sun Vault"
	}

	s.DrawTextColor(x, 1, "Sunny Days", core.ColorBrightYellow)
	s.DrawText(x, 3, fmt.Sprintf("HP  %s %d/%d", hpBar(p.HP, p.MaxHP, 10), p.HP, p.MaxHP))
	s.DrawText(x, 4, fmt.Sprintf("Atk %-3d Def %-3d Spd %-3d", p.Attack(now), p.Defense(now), p.Speed(now)))
	s.DrawText(x, 6, "Room: "+room)
	s.DrawText(x, 7, fmt.Sprintf("Turns: %d", w.Turns()))

	s.DrawText(x, 9, "Sword:  "+equipName(p.Inv.Sword))
	s.DrawText(x, 10, "Shield: "+equipName(p.Inv.Shield))

	s.DrawTextColor(x, 12, "move wasd/arrows", core.ColorGray)
	s.DrawTextColor(x, 13, "e interact  i inventory", core.ColorGray)
	s.DrawTextColor(x, 14, "q stats  esc quit", core.ColorGray)
}

func equipName(eq *item.Equipment) string {
	if eq == nil {
		return "-"
	}
	return eq.Name
}

// hpBar renders a fixed-width bar colored by remaining fraction.
func hpBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		maxHP = 1
	}
	filled := core.Clamp(hp*width/maxHP, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func renderLog(w *world.World, s *core.Screen, logH int) {
	top := s.Height() - logH
	s.DrawBox(0, top, s.Width(), logH)
	s.DrawText(2, top, " Log ")

	for i, line := range w.Logs() {
		s.DrawTextColor(2, top+1+i, line, core.ColorGray)
	}
}

// renderInventory draws the tabbed inventory overlay. The battle view
// reuses it with the tab locked to consumables.
func renderInventory(inv *entity.Inventory, s *core.Screen) {
	bw, bh := 44, 16
	bx := (s.Width() - bw) / 2
	by := (s.Height() - bh) / 2

	s.FillRect(bx, by, bw, bh, ' ')
	s.DrawBox(bx, by, bw, bh)
	s.DrawText(bx+2, by, " Inventory ")

	tabs := []entity.Tab{entity.TabWeapons, entity.TabConsumables, entity.TabBackpack}
	tx := bx + 2
	for _, t := range tabs {
		label := " " + t.String() + " "
		c := core.ColorGray
		if t == inv.Tab() {
			c = core.ColorBrightYellow
		}
		s.DrawTextColor(tx, by+1, label, c)
		tx += len(label) + 1
	}

	listTop := by + 3
	switch inv.Tab() {
	case entity.TabWeapons:
		drawInvLine(s, bx+3, listTop, inv.Cursor() == 0, "Sword:  "+equipName(inv.Sword))
		drawInvLine(s, bx+3, listTop+1, inv.Cursor() == 1, "Shield: "+equipName(inv.Shield))
	case entity.TabConsumables:
		if len(inv.Consumables) == 0 {
			s.DrawTextColor(bx+3, listTop, "(nothing edible)", core.ColorGray)
		}
		for i, c := range inv.Consumables {
			drawInvLine(s, bx+3, listTop+i, inv.Cursor() == i, consumableLabel(c))
		}
	case entity.TabBackpack:
		if len(inv.Backpack) == 0 {
			s.DrawTextColor(bx+3, listTop, "(empty)", core.ColorGray)
		}
		for i, eq := range inv.Backpack {
			drawInvLine(s, bx+3, listTop+i, inv.Cursor() == i, equipLabel(eq))
		}
	}

	hint := "t tab  up/down select  space use  i close"
	s.DrawTextColor(bx+2, by+bh-2, hint, core.ColorGray)
}

func drawInvLine(s *core.Screen, x, y int, selected bool, text string) {
	if selected {
		s.DrawTextColor(x-1, y, ">"+text, core.ColorBrightWhite)
		return
	}
	s.DrawText(x, y, text)
}

func consumableLabel(c item.Consumable) string {
	parts := []string{fmt.Sprintf("%s (heal %+d", c.Name, c.Heal)}
	if c.AtkBonus != 0 {
		parts = append(parts, fmt.Sprintf("atk %+d", c.AtkBonus))
	}
	if c.DefBonus != 0 {
		parts = append(parts, fmt.Sprintf("def %+d", c.DefBonus))
	}
	return strings.Join(parts, ", ") + ")"
}

func equipLabel(eq item.Equipment) string {
	return fmt.Sprintf("%s (atk %+d def %+d spd %+d hp %+d)", eq.Name, eq.Atk, eq.Def, eq.Spd, eq.HP)
}

func renderStats(w *world.World, s *core.Screen) {
	p := w.Player()
	now := w.Now()

	bw, bh := 36, 12
	bx := (s.Width() - bw) / 2
	by := (s.Height() - bh) / 2

	s.FillRect(bx, by, bw, bh, ' ')
	s.DrawBox(bx, by, bw, bh)
	s.DrawText(bx+2, by, " Character ")

	s.DrawText(bx+3, by+2, fmt.Sprintf("HP      %d/%d", p.HP, p.MaxHP))
	s.DrawText(bx+3, by+3, fmt.Sprintf("Attack  %d (base %d)", p.Attack(now), p.BaseAtk))
	s.DrawText(bx+3, by+4, fmt.Sprintf("Defense %d (base %d)", p.Defense(now), p.BaseDef))
	s.DrawText(bx+3, by+5, fmt.Sprintf("Speed   %d (base %d)", p.Speed(now), p.BaseSpd))
	s.DrawText(bx+3, by+7, fmt.Sprintf("Enemies beaten: %d", w.Roster().DefeatedCount()))

	active := 0
	for _, b := range p.Buffs {
		if b.Active(now) {
			active++
		}
	}
	s.DrawText(bx+3, by+8, fmt.Sprintf("Active buffs:   %d", active))

	s.DrawTextColor(bx+2, by+bh-2, "q close", core.ColorGray)
}

func renderDialogue(w *world.World, s *core.Screen) {
	d := w.Dialogue()
	if d == nil {
		return
	}

	bw := core.Min(s.Width()-4, 60)
	bh := 8
	bx := (s.Width() - bw) / 2
	by := s.Height() - bh - 1

	s.FillRect(bx, by, bw, bh, ' ')
	s.DrawBox(bx, by, bw, bh)
	s.DrawText(bx+2, by, " "+d.Title+" ")

	for i, line := range wrapText(d.Current(), bw-6) {
		if i >= bh-4 {
			break
		}
		s.DrawText(bx+3, by+2+i, line)
	}

	hint := "enter next"
	if d.Pending != dialogue.ChoiceNone && d.Page == len(d.Pages)-1 {
		hint = "answer with a letter"
	}
	s.DrawTextColor(bx+2, by+bh-2, hint, core.ColorGray)
}

// renderBattle draws the combat screen: enemy panel, player panel, the
// three options and the shared log.
func renderBattle(w *world.World, s *core.Screen) {
	b := w.Battle()
	if b == nil {
		renderPlaying(w, s)
		return
	}
	p := w.Player()
	now := w.Now()

	s.DrawTextCentered(1, "B A T T L E")

	s.DrawTextColor(4, 3, b.Name, core.ColorRed)
	s.DrawText(4, 4, fmt.Sprintf("HP  %s %d/%d", hpBar(b.HP, b.MaxHP, 14), b.HP, b.MaxHP))
	s.DrawText(4, 5, fmt.Sprintf("Atk %-3d Def %-3d Spd %-3d", b.Atk, b.Def, b.Spd))

	s.DrawTextColor(4, 8, "You", core.ColorBrightYellow)
	s.DrawText(4, 9, fmt.Sprintf("HP  %s %d/%d", hpBar(p.HP, p.MaxHP, 14), p.HP, p.MaxHP))
	s.DrawText(4, 10, fmt.Sprintf("Atk %-3d Def %-3d Spd %-3d", p.Attack(now), p.Defense(now), p.Speed(now)))

	s.DrawText(4, 12, "1) Fight    2) Inventory    3) Run")
	if b.Penalty {
		s.DrawTextColor(4, 13, "You hesitated. The enemy moves first.", core.ColorOrange)
	}

	renderLog(w, s, 8)

	if w.InventoryOpen() {
		renderInventory(&p.Inv, s)
	}
}

func renderEnding(w *world.World, s *core.Screen) {
	mid := s.Height() / 2

	s.DrawTextCentered(mid-3, "You fall. The sun sets early today.")
	s.DrawTextCentered(mid-1, fmt.Sprintf("Turns taken: %d", w.Turns()))
	s.DrawTextCentered(mid, fmt.Sprintf("Enemies beaten: %d", w.Roster().DefeatedCount()))
	s.DrawTextCentered(mid+3, "Press Enter to exit")
}

// wrapText splits text into lines no wider than width, breaking on spaces.
func wrapText(text string, width int) []string {
	if width < 1 {
		return nil
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
