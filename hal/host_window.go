//go:build !tinygo && cgo

package hal

import (
	"context"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"
	"tinygo.org/x/tinyfont"

	"msgpanel/hal/lcdfont"
	"msgpanel/internal/buildinfo"
)

const (
	windowScale  = 3
	lcdBorder    = 4
	windowHelpPx = 48
)

var (
	lcdBacklight = color.RGBA{R: 0x9c, G: 0xc4, B: 0x2a, A: 0xff}
	lcdInk       = color.RGBA{R: 0x1c, G: 0x2a, B: 0x10, A: 0xff}
	ledOn        = color.RGBA{R: 0x30, G: 0xe0, B: 0x30, A: 0xff}
	ledOff       = color.RGBA{R: 0x20, G: 0x40, B: 0x20, A: 0xff}
)

const windowHelp = "<- -> prev/next   H half   Enter ok\nSpace broadcast   Up/Down/wheel encoder"

// RunWindow starts a desktop window that shows the LCD and maps the keyboard onto the
// panel. It blocks until the window closes.
func RunWindow(ctx context.Context, h *Host, app Runner) error {
	cols, rows := h.lcd.Size()
	g := &hostGame{
		h:   h,
		app: app,
		lcd: image.NewRGBA(image.Rect(0, 0, lcdBorder*2+cols*lcdfont.Pitch, lcdBorder*2+rows*(lcdfont.CellHeight+1))),
	}
	g.w = g.lcd.Bounds().Dx() * windowScale
	g.hgt = g.lcd.Bounds().Dy()*windowScale + windowHelpPx

	eg, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	g.ctx = ctx
	eg.Go(func() error {
		return app.Pump(ctx, h.t.Ticks())
	})

	// ebiten needs the calling (main) goroutine.
	ebiten.SetWindowTitle("msgpanel (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(g.w*2, g.hgt*2)
	ebiten.SetTPS(60)
	runErr := ebiten.RunGame(g)
	stop()
	if err := eg.Wait(); err != nil {
		return err
	}
	return runErr
}

type hostGame struct {
	ctx   context.Context
	h     *Host
	app   Runner
	lcd   *image.RGBA
	lcdIm *ebiten.Image
	w     int
	hgt   int
	tick  uint64
}

func (g *hostGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	pollKeys(g.h.Controls())
	g.tick = g.h.t.step()
	return g.app.Step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	snap := g.h.lcd.Snapshot()
	canvas := lcdCanvas{img: g.lcd}
	canvas.fill(lcdBacklight)
	for r := 0; r < snap.Rows; r++ {
		for c, b := range snap.Row(r) {
			x, y := cellOrigin(c, r)
			tinyfont.DrawChar(canvas, lcdfont.Font, x, y+lcdfont.CellHeight-1, lcdfont.Rune(b), lcdInk)
		}
	}
	if snap.CursorVisible && (g.tick/400)%2 == 0 {
		x, y := cellOrigin(snap.CursorCol, snap.CursorRow)
		for i := int16(0); i < lcdfont.CellWidth; i++ {
			canvas.SetPixel(x+i, y+lcdfont.CellHeight-1, lcdInk)
		}
	}

	if g.lcdIm == nil {
		g.lcdIm = ebiten.NewImage(g.lcd.Bounds().Dx(), g.lcd.Bounds().Dy())
	}
	g.lcdIm.WritePixels(g.lcd.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(g.lcdIm, op)

	led := ledOff
	if g.h.LEDOn() {
		led = ledOn
	}
	top := g.lcd.Bounds().Dy() * windowScale
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			screen.Set(g.w-12+x, top+6+y, led)
		}
	}
	ebitenutil.DebugPrintAt(screen, windowHelp, 4, top+4)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.hgt
}

func cellOrigin(col, row int) (int16, int16) {
	return int16(lcdBorder + col*lcdfont.Pitch), int16(lcdBorder + row*(lcdfont.CellHeight+1))
}

// lcdCanvas adapts an RGBA image to drivers.Displayer for tinyfont.
type lcdCanvas struct {
	img *image.RGBA
}

func (c lcdCanvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c lcdCanvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c lcdCanvas) Display() error { return nil }

func (c lcdCanvas) fill(col color.RGBA) {
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i+0] = col.R
		c.img.Pix[i+1] = col.G
		c.img.Pix[i+2] = col.B
		c.img.Pix[i+3] = col.A
	}
}
