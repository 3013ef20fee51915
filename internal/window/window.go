//go:build !headless

// Package window presents frames in a desktop window and reads wheel and
// keyboard input from it.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/olivier-w/wavescope/internal/frame"
	"github.com/olivier-w/wavescope/internal/view"
	"golang.org/x/image/font/basicfont"
)

// game adapts a frame.Loop to ebiten. It is both the loop's input source
// and its presenter.
type game struct {
	loop   *frame.Loop
	width  int
	height int
	pix    []byte
	image  *ebiten.Image
	dirty  bool
	status string
}

// Run opens a window scaled by scale and drives loop from ebiten's update
// cycle until the window is closed or a quit key is pressed.
func Run(loop *frame.Loop, title string, scale int) error {
	b := loop.Buffer()
	g := &game{
		loop:   loop,
		width:  b.Width,
		height: b.Height,
		pix:    make([]byte, 4*b.Width*b.Height),
	}

	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	if title == "" {
		title = "wavescope"
	}
	ebiten.SetWindowTitle(title + " - wavescope")
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	quit, err := g.loop.Step(g, g)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Poll implements frame.Source.
func (g *game) Poll() (view.Input, bool) {
	wx, wy := ebiten.Wheel()
	return translate(keyState{
		wheelX: wx,
		wheelY: wy,
		shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
		ctrl:   ebiten.IsKeyPressed(ebiten.KeyControl),
		left:   inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		right:  inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		up:     inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		down:   inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		reset:  inpututil.IsKeyJustPressed(ebiten.KeyDigit0) || inpututil.IsKeyJustPressed(ebiten.KeyHome),
		quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	})
}

// Present implements frame.Presenter. Pixels are only converted when the
// frame changed.
func (g *game) Present(f frame.Frame) error {
	if f.Changed {
		fillRGBA(g.pix, f.Buffer)
		g.dirty = true
		g.status = statusLine(f, g.loop.Store())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(g.width, g.height)
		g.dirty = true
	}
	if g.dirty {
		g.image.WritePixels(g.pix)
		g.dirty = false
	}
	screen.DrawImage(g.image, nil)
	if g.status != "" {
		text.Draw(screen, g.status, basicfont.Face7x13, 4, 14, statusColor)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
