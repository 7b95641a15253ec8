package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/minerunner/ecs/component"
)

// duckHoldTicks stands in for key-up events, which terminals do not send.
const duckHoldTicks = 12

// termInput folds terminal events into one input sample per tick.
type termInput struct {
	pending component.Input
	duckFor int
	pressed bool
}

func newTermInput() *termInput {
	return &termInput{}
}

func (in *termInput) Sample() component.Input {
	out := in.pending
	in.pending = component.Input{}
	if in.duckFor > 0 {
		out.DuckHeld = true
		in.duckFor--
	}
	return out
}

func (in *termInput) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		in.pending.JumpPressed = true
	case tcell.KeyDown:
		in.duckFor = duckHoldTicks
	case tcell.KeyEnter:
		in.pending.PointerPressed = true
		in.pending.PointerReleased = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', ' ':
			in.pending.JumpPressed = true
		case 's':
			in.duckFor = duckHoldTicks
		}
	}
}

func (in *termInput) mouse(ev *tcell.EventMouse, v *view) {
	_, row := ev.Position()
	y := v.worldY(row)
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !in.pressed:
		in.pressed = true
		in.pending.PointerPressed = true
		in.pending.PressY = y
	case !down && in.pressed:
		in.pressed = false
		in.pending.PointerReleased = true
		in.pending.ReleaseY = y
	}
}
