package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input samples the keyboard once per frame. Movement keys hold intents,
// mode keys fire on press.
type Input struct {
	Forward  bool
	Backward bool
	StrafeL  bool
	StrafeR  bool
	TurnL    bool
	TurnR    bool

	MoveReleased bool
	TurnReleased bool

	Jump       bool
	ToggleWalk bool
	ToggleSnk  bool
	ToggleFist bool
	Teleport   bool
	Patrol     bool

	ObserverX float64
	ObserverZ float64

	anyMovePrev bool
	anyTurnPrev bool
}

// NewInput creates the keyboard sampler.
func NewInput() *Input {
	return &Input{}
}

// Update reads the current keyboard state.
func (i *Input) Update() {
	if i == nil {
		return
	}
	i.Forward = ebiten.IsKeyPressed(ebiten.KeyW)
	i.Backward = ebiten.IsKeyPressed(ebiten.KeyS)
	i.StrafeL = ebiten.IsKeyPressed(ebiten.KeyQ)
	i.StrafeR = ebiten.IsKeyPressed(ebiten.KeyE)
	i.TurnL = ebiten.IsKeyPressed(ebiten.KeyA)
	i.TurnR = ebiten.IsKeyPressed(ebiten.KeyD)

	anyMove := i.Forward || i.Backward || i.StrafeL || i.StrafeR
	anyTurn := i.TurnL || i.TurnR
	i.MoveReleased = i.anyMovePrev && !anyMove
	i.TurnReleased = i.anyTurnPrev && !anyTurn
	i.anyMovePrev = anyMove
	i.anyTurnPrev = anyTurn

	i.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.ToggleWalk = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	i.ToggleSnk = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ToggleFist = inpututil.IsKeyJustPressed(ebiten.KeyF)
	i.Teleport = inpututil.IsKeyJustPressed(ebiten.KeyT)
	i.Patrol = inpututil.IsKeyJustPressed(ebiten.KeyG)

	i.ObserverX = 0
	i.ObserverZ = 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.ObserverX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.ObserverX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		i.ObserverZ += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		i.ObserverZ -= 1
	}
}
