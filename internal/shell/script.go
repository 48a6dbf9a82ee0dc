package shell

import (
	"fmt"

	"github.com/sigma/mirage/internal/config"
)

// Action is one injectable shell operation. Scripted events, the control
// socket and the interactive driver all funnel through the same actions.
type Action int

const (
	ActionSearchShow Action = iota
	ActionSearchHide
	ActionSearchType
	ActionSearchBackspace
	ActionSearchNext
	ActionSearchPrev
	ActionSwitcherShow
	ActionSwitcherHide
	ActionSwitcherNext
	ActionSwitcherPrev
	ActionModalShow
	ActionModalHide
	ActionNotify
	ActionWindowFocus
	ActionWindowClose
	ActionWindowMinimize
	ActionWindowMaximize
	ActionWindowOpen
)

var actionNames = map[string]Action{
	"search-show":      ActionSearchShow,
	"search-hide":      ActionSearchHide,
	"search-type":      ActionSearchType,
	"search-backspace": ActionSearchBackspace,
	"search-next":      ActionSearchNext,
	"search-prev":      ActionSearchPrev,
	"switcher-show":    ActionSwitcherShow,
	"switcher-hide":    ActionSwitcherHide,
	"switcher-next":    ActionSwitcherNext,
	"switcher-prev":    ActionSwitcherPrev,
	"modal-show":       ActionModalShow,
	"modal-hide":       ActionModalHide,
	"notify":           ActionNotify,
	"window-focus":     ActionWindowFocus,
	"window-close":     ActionWindowClose,
	"window-minimize":  ActionWindowMinimize,
	"window-maximize":  ActionWindowMaximize,
	"window-open":      ActionWindowOpen,
}

// ParseAction maps a config or wire string to an Action.
func ParseAction(s string) (Action, error) {
	a, ok := actionNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}

// Event is one scheduled action: at Tick, apply Action with Arg.
type Event struct {
	Tick   uint32
	Action Action
	Arg    string
}

// Script is the scheduled-event list driving the demo storyline. It replaces
// hardcoded tick comparisons so that real input can drive the same shell
// entry points.
type Script struct {
	events []Event
}

// NewScript compiles the config event list, rejecting unknown actions.
func NewScript(events []config.ScriptEventConfig) (*Script, error) {
	s := &Script{events: make([]Event, 0, len(events))}
	for i, ev := range events {
		action, err := ParseAction(ev.Action)
		if err != nil {
			return nil, fmt.Errorf("script event %d: %w", i, err)
		}
		s.events = append(s.events, Event{Tick: ev.Tick, Action: action, Arg: ev.Arg})
	}
	return s, nil
}

// Due returns the events scheduled exactly at tick, in list order.
func (s *Script) Due(tick uint32) []Event {
	var due []Event
	for _, ev := range s.events {
		if ev.Tick == tick {
			due = append(due, ev)
		}
	}
	return due
}

// Len returns the number of scheduled events.
func (s *Script) Len() int { return len(s.events) }
