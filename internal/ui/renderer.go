package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/luckybattlefield/internal/combat"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/game"
	"github.com/samdwyer/luckybattlefield/internal/gamedata"
	"github.com/samdwyer/luckybattlefield/internal/world"
)

// Layout.
const (
	marginX = 2
	marginY = 1
	cellW   = 2 // Grid cells are drawn two columns wide
	slotW   = 6 // Inventory slot width including brackets
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(gamedata.ColorPlayer)).Bold(true)
	styleEnemy  = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(gamedata.ColorEnemy))
	styleChest  = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(gamedata.ColorChest))
	styleBeam   = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(gamedata.ColorBeam)).Bold(true)
	styleSelect = tcell.StyleDefault.Background(gamedata.MustParseHexColor(gamedata.ColorSelect)).Foreground(tcell.ColorWhite)

	itemTable = gamedata.MustLoadItemRegistry()
)

// Renderer handles drawing snapshots to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one snapshot. pending is the text typed so far on the name
// and avatar screens.
func (r *Renderer) Render(snap game.Snapshot, pending string) {
	r.screen.Clear()

	switch snap.State {
	case game.StateStart:
		r.title()
		r.prompt("Enter your name:", pending)
	case game.StateChooseAvatar:
		r.title()
		r.text(marginX, marginY+2, "Welcome, "+snap.Name+"!", styleText)
		r.prompt("Choose your avatar (1 character):", pending)
	case game.StateLoading:
		r.loading(snap)
	case game.StateWorld:
		r.world(snap)
	case game.StateBattle:
		r.battle(snap)
	case game.StateInventory:
		r.inventory(snap)
	case game.StateChest:
		r.chest(snap)
	case game.StateData:
		r.data(snap)
	case game.StateGameOver:
		r.gameOver(snap)
	}

	if snap.Annotation != "" {
		_, h := r.screen.Size()
		style := styleText
		if snap.Annotation == game.AvatarError {
			style = styleError
		}
		r.text(marginX, h-2, snap.Annotation, style)
	}

	r.screen.Show()
}

// =============================================================================
// Screens
// =============================================================================

func (r *Renderer) title() {
	r.text(marginX, marginY, "LUCKY BATTLEFIELD", styleTitle)
}

func (r *Renderer) prompt(label, pending string) {
	r.text(marginX, marginY+4, label, styleText)
	x := r.text(marginX, marginY+5, "> "+pending, styleText)
	r.screen.SetContent(x, marginY+5, '_', styleDim)
}

func (r *Renderer) loading(snap game.Snapshot) {
	r.text(marginX, marginY+2, snap.Loading, styleTitle)
	r.bar(marginX, marginY+4, snap.Progress, game.LoadingSteps, game.LoadingSteps, styleText)
}

func (r *Renderer) world(snap game.Snapshot) {
	p := snap.Player
	r.status(p, marginY)

	top := marginY + 2
	size := len(snap.Grid)
	for y := 0; y < size; y++ {
		// Up is +y, so the highest row is drawn first.
		row := top + size - 1 - y
		for x := 0; x < size; x++ {
			tile := snap.Grid.At(x, y)
			r.screen.SetContent(marginX+x*cellW, row, tile.Rune(), tileStyle(tile))
		}
	}
	r.text(marginX+p.View.X*cellW, top+size-1-p.View.Y, p.Symbol, stylePlayer)

	r.text(marginX, top+size+1, fmt.Sprintf("World (%d, %d)", p.World.X, p.World.Y), styleDim)
	r.text(marginX, top+size+2, "arrows move  i inventory  d data  q quit", styleDim)
}

func (r *Renderer) battle(snap game.Snapshot) {
	p, t := snap.Player, snap.Target
	targetStyle := tcell.StyleDefault.Foreground(t.Color)

	r.text(marginX, marginY, fmt.Sprintf("%s  Lv %d", p.Name, p.Level), stylePlayer)
	r.bar(marginX, marginY+1, p.HP, p.MaxHP, combat.BarWidth, stylePlayer)
	r.text(marginX+combat.BarWidth+3, marginY+1, fmt.Sprintf("%d/%d", p.HP, p.MaxHP), styleText)

	r.text(marginX, marginY+3, fmt.Sprintf("%s  Lv %d", t.Name, t.Level), targetStyle)
	r.bar(marginX, marginY+4, t.HP, t.MaxHP, combat.BarWidth, targetStyle)
	r.text(marginX+combat.BarWidth+3, marginY+4, fmt.Sprintf("%d/%d", t.HP, t.MaxHP), styleText)

	line := marginY + 6
	r.text(marginX, line, combat.Line(p.Symbol, t.Symbol, snap.Shot), styleText)
	if t.Beam > 0 {
		beam := combat.Beam(t.Beam)
		start := max(marginX, marginX+combat.EnemyColumn-len(beam))
		r.text(start, line+1, beam, styleBeam)
	}

	for i, a := range p.Attacks {
		y := line + 3 + i
		style := styleDim
		if a.Ready() {
			style = styleText
		}
		r.text(marginX, y, fmt.Sprintf("[%s] %-9s", a.Key, a.Name), style)
		r.bar(marginX+16, y, a.Charge, a.MaxCharge, a.MaxCharge, style)
	}
	r.text(marginX, line+4+len(p.Attacks), "key attacks  esc items  q quit", styleDim)
}

func (r *Renderer) inventory(snap game.Snapshot) {
	r.text(marginX, marginY, "INVENTORY", styleTitle)
	r.slots(marginX, marginY+2, snap.Inventory)
	r.text(marginX, marginY+6, r.itemLabel(snap.Inventory.SelectedItem()), styleText)
	r.text(marginX, marginY+8, "arrows select  enter use  i back", styleDim)
}

func (r *Renderer) chest(snap game.Snapshot) {
	r.text(marginX, marginY, "CHEST", styleTitle)
	items := make([]string, 0, len(snap.ChestItems))
	for _, it := range snap.ChestItems {
		items = append(items, string(it))
	}
	contents := "(empty)"
	if len(items) > 0 {
		contents = strings.Join(items, " ")
	}
	r.text(marginX, marginY+1, contents, styleChest)

	r.slots(marginX, marginY+3, snap.Inventory)
	r.text(marginX, marginY+7, "arrows select  enter take  esc leave", styleDim)
}

func (r *Renderer) data(snap game.Snapshot) {
	p := snap.Player
	rows := []string{
		"PLAYER DATA",
		"",
		"Name:    " + p.Name,
		"Avatar:  " + p.Symbol,
		fmt.Sprintf("Level:   %d", p.Level),
		fmt.Sprintf("XP:      %d/%d", p.XP, entity.XPPerLevel),
		fmt.Sprintf("HP:      %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("Defense: %d", p.Defense),
		fmt.Sprintf("Attack:  +%d", p.AttackMod),
	}
	for i, row := range rows {
		style := styleText
		if i == 0 {
			style = styleTitle
		}
		r.text(marginX, marginY+i, row, style)
	}
	r.text(marginX, marginY+len(rows)+1, "d back", styleDim)
}

func (r *Renderer) gameOver(snap game.Snapshot) {
	r.text(marginX, marginY, "GAME OVER", styleError)
	if p := snap.Player; p != nil {
		r.text(marginX, marginY+2, fmt.Sprintf("%s fell at level %d", p.Name, p.Level), styleText)
	}
	r.text(marginX, marginY+4, "r restart  q quit", styleDim)
}

// =============================================================================
// Widgets
// =============================================================================

func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	return r.screen.DrawText(x, y, s, style)
}

// status draws the one-line player summary.
func (r *Renderer) status(p *game.PlayerView, y int) {
	r.text(marginX, y, fmt.Sprintf("%s %s  Lv %d  HP %d/%d  XP %d",
		p.Name, p.Symbol, p.Level, p.HP, p.MaxHP, p.XP), styleText)
}

// bar draws a bracketed bar of width cells filled in proportion to value/limit.
func (r *Renderer) bar(x, y, value, limit, width int, style tcell.Style) {
	filled := combat.Bar(value, limit, width)
	s := "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
	r.text(x, y, s, style)
}

// slots draws the 3x3 inventory with the selected slot highlighted.
func (r *Renderer) slots(x, y int, inv entity.Inventory) {
	for i, item := range inv.Slots {
		col, row := i%entity.InventoryColumns, i/entity.InventoryColumns
		label := string(item)
		if item == entity.ItemEmpty {
			label = " "
		}
		style := styleText
		if i == inv.Selected {
			style = styleSelect
		}
		r.text(x+col*slotW, y+row, "[ "+label+" ]", style)
	}
}

func (r *Renderer) itemLabel(item entity.ItemKind) string {
	if item == entity.ItemEmpty {
		return "Empty slot"
	}
	if def := itemTable.GetByCode(string(item)); def != nil {
		return def.Name
	}
	return string(item)
}

func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileEnemy:
		return styleEnemy
	case world.TileChest:
		return styleChest
	case world.TileGate:
		return styleBeam
	default:
		return styleDim
	}
}
