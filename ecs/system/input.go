package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// InputSource produces one input sample per tick.
type InputSource interface {
	Sample() component.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Input

func (f InputFunc) Sample() component.Input {
	return f()
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var sample component.Input
	if i.source != nil {
		sample = i.source.Sample()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = sample
	})
}

// EbitenInput reads keyboard, mouse and touch state from ebiten. Pointer
// coordinates are in the game's logical screen space.
type EbitenInput struct {
	touches []ebiten.TouchID
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Sample() component.Input {
	var out component.Input

	out.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	out.DuckHeld = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		out.PointerPressed = true
		out.PressY = float64(y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		out.PointerReleased = true
		out.ReleaseY = float64(y)
	}

	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		_, y := ebiten.TouchPosition(id)
		out.PointerPressed = true
		out.PressY = float64(y)
		break
	}
	in.touches = inpututil.AppendJustReleasedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		_, y := inpututil.TouchPositionInPreviousTick(id)
		out.PointerReleased = true
		out.ReleaseY = float64(y)
		break
	}

	return out
}
