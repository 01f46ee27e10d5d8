package ui

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/luckybattlefield/internal/game"
	"github.com/samdwyer/luckybattlefield/internal/world"
)

// Input turns key events into session commands. It buffers typed text on
// the name and avatar screens until Enter.
type Input struct {
	buf strings.Builder
}

// Pending returns the text typed so far.
func (in *Input) Pending() string {
	return in.buf.String()
}

// Translate maps ev to a command for the given state. It returns false when
// the key means nothing there or only edited the text buffer.
func (in *Input) Translate(ev *tcell.EventKey, state game.State) (game.Command, bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return game.Quit{}, true
	}

	switch state {
	case game.StateStart, game.StateChooseAvatar:
		return in.edit(ev)
	case game.StateWorld:
		if dir, ok := direction(ev); ok {
			return game.Move{Dir: dir}, true
		}
		switch runeOf(ev) {
		case 'i':
			return game.ToggleInventory{}, true
		case 'd':
			return game.ToggleData{}, true
		case 'q':
			return game.Quit{}, true
		}
	case game.StateBattle:
		if ev.Key() == tcell.KeyEscape {
			return game.Escape{}, true
		}
		switch r := runeOf(ev); r {
		case 'q':
			return game.Quit{}, true
		case 'i':
			return game.ToggleInventory{}, true
		case 0:
		default:
			return game.SelectAttack{Key: string(unicode.ToUpper(r))}, true
		}
	case game.StateInventory:
		if dir, ok := direction(ev); ok {
			return game.Move{Dir: dir}, true
		}
		if ev.Key() == tcell.KeyEnter || runeOf(ev) == 'e' {
			return game.UseItem{}, true
		}
		if ev.Key() == tcell.KeyEscape || runeOf(ev) == 'i' {
			return game.ToggleInventory{}, true
		}
	case game.StateChest:
		if dir, ok := direction(ev); ok {
			return game.Move{Dir: dir}, true
		}
		if ev.Key() == tcell.KeyEnter || runeOf(ev) == 't' {
			return game.TakeChestItem{}, true
		}
		if ev.Key() == tcell.KeyEscape || runeOf(ev) == 'x' {
			return game.ExitChest{}, true
		}
	case game.StateData:
		if ev.Key() == tcell.KeyEscape || runeOf(ev) == 'd' {
			return game.ToggleData{}, true
		}
	case game.StateGameOver:
		switch runeOf(ev) {
		case 'r':
			return game.Restart{}, true
		case 'q':
			return game.Quit{}, true
		}
	}
	return nil, false
}

// edit applies a key to the text buffer and submits it on Enter.
func (in *Input) edit(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		text := in.buf.String()
		in.buf.Reset()
		return game.SubmitText{Text: text}, true
	case tcell.KeyEscape:
		return game.Quit{}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.dropLast()
	case tcell.KeyRune:
		in.buf.WriteRune(ev.Rune())
	}
	return nil, false
}

// dropLast removes the last grapheme cluster from the buffer.
func (in *Input) dropLast() {
	text := in.buf.String()
	if text == "" {
		return
	}
	cut := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		from, _ := gr.Positions()
		cut = from
	}
	in.buf.Reset()
	in.buf.WriteString(text[:cut])
}

func direction(ev *tcell.EventKey) (world.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.DirUp, true
	case tcell.KeyDown:
		return world.DirDown, true
	case tcell.KeyLeft:
		return world.DirLeft, true
	case tcell.KeyRight:
		return world.DirRight, true
	}
	return 0, false
}

// runeOf returns the lower-cased rune of a character key, or 0.
func runeOf(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return unicode.ToLower(ev.Rune())
}
