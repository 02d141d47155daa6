package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is a logical input the dashboard reacts to. One action can be bound
// to several physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionHelp
	ActionSetup
	ActionTogglePause
	ActionPriorityUp
	ActionPriorityDown
	ActionReverseSort
	ActionNextSort
	ActionPreviousSort
	ActionSelectSort
	ActionRemoveAsk
	ActionToggleExpand
	ActionToggleExpandAll
	ActionAutoClear
	ActionFollowRow
	ActionSearch
	ActionFilter
	ActionToggleSelect
	ActionUnselectAll
	ActionQuit
	ActionCancel
	ActionEnter
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// keystroke identifies one physical key: either a named tcell key or a
// printable rune.
type keystroke struct {
	name string
	key  tcell.Key
	ch   rune
}

func named(name string, key tcell.Key) keystroke {
	return keystroke{name: name, key: key}
}

func char(ch rune) keystroke {
	name := string(ch)
	if ch == ' ' {
		name = "space"
	}
	return keystroke{name: name, key: tcell.KeyRune, ch: ch}
}

// bindings maps each action to its alternative keys. Function keys follow
// the classic htop-style layout; letters mirror them for keyboards where
// F-keys are awkward.
var bindings = map[Action][]keystroke{
	ActionHelp:            {named("F1", tcell.KeyF1), char('h')},
	ActionSetup:           {named("F2", tcell.KeyF2)},
	ActionTogglePause:     {char(' ')},
	ActionPriorityUp:      {named("F7", tcell.KeyF7), char('u'), char('[')},
	ActionPriorityDown:    {named("F8", tcell.KeyF8), char('d'), char(']')},
	ActionReverseSort:     {char('I')},
	ActionNextSort:        {char('n'), char('>')},
	ActionPreviousSort:    {char('p'), char('<')},
	ActionSelectSort:      {named("F6", tcell.KeyF6)},
	ActionRemoveAsk:       {named("F9", tcell.KeyF9), named("del", tcell.KeyDelete)},
	ActionToggleExpand:    {char('x')},
	ActionToggleExpandAll: {char('X')},
	ActionAutoClear:       {char('c')},
	ActionFollowRow:       {char('F')},
	ActionSearch:          {named("F3", tcell.KeyF3), char('/')},
	ActionFilter:          {named("F4", tcell.KeyF4), char('\\')},
	ActionToggleSelect:    {char('s')},
	ActionUnselectAll:     {char('U')},
	ActionQuit:            {named("F10", tcell.KeyF10), char('q'), named("ctrl+c", tcell.KeyCtrlC)},
	ActionCancel:          {named("esc", tcell.KeyEscape)},
	ActionEnter:           {named("enter", tcell.KeyEnter)},
	ActionUp:              {named("up", tcell.KeyUp)},
	ActionDown:            {named("down", tcell.KeyDown)},
	ActionLeft:            {named("left", tcell.KeyLeft)},
	ActionRight:           {named("right", tcell.KeyRight)},
}

// Matches reports whether the incoming key event triggers this action.
func (a Action) Matches(ev *tcell.EventKey) bool {
	for _, k := range bindings[a] {
		if k.key == tcell.KeyRune {
			if ev.Key() == tcell.KeyRune && ev.Rune() == k.ch {
				return true
			}
		} else if ev.Key() == k.key {
			return true
		}
	}
	return false
}

// KeyNames returns the display names of the action's keys, for the help
// screen.
func (a Action) KeyNames() string {
	names := make([]string, 0, len(bindings[a]))
	for _, k := range bindings[a] {
		names = append(names, k.name)
	}
	return strings.Join(names, " ")
}
