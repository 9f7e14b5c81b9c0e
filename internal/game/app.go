package game

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 16

// hudHeight is the strip above the board reserved for score and controls.
const hudHeight = 48

// speedStep is the speed change per arrow keypress or wheel notch.
const speedStep = 5

// noticeTicks is how long a transient HUD notice stays visible.
const noticeTicks = 120

var (
	windowBG  = color.RGBA{R: 18, G: 20, B: 24, A: 255}
	boardBG   = color.RGBA{R: 30, G: 34, B: 40, A: 255}
	borderCol = color.RGBA{R: 90, G: 110, B: 140, A: 255}
	dotFill   = color.RGBA{R: 235, G: 120, B: 60, A: 255}
	dotStroke = color.RGBA{R: 250, G: 245, B: 235, A: 255}
	scoreCol  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// App adapts an Engine to Ebiten: it drives one engine tick per update,
// translates mouse and touch presses into board-local pointer events, and
// renders the board plus HUD. Ebiten's update loop is single-threaded, so
// the engine needs no lock here.
type App struct {
	engine *Engine
	cfg    Config

	// board is the offscreen play surface; the engine renders into it each
	// tick and Draw blits it at the board offset.
	board    *ebiten.Image
	face     text.Face
	touchIDs []ebiten.TouchID

	// Pending window size from Layout, reconciled at the top of Update.
	layoutW, layoutH int

	notice     string
	noticeLeft int
}

// boardSurface renders engine draw calls onto the offscreen board image.
type boardSurface struct {
	dst *ebiten.Image
}

func (s boardSurface) Clear() {
	s.dst.Fill(boardBG)
}

func (s boardSurface) FillCircle(cx, cy, r float64) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), dotFill, true)
}

func (s boardSurface) StrokeCircle(cx, cy, r, strokeWidth float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(strokeWidth), dotStroke, true)
}

// NewApp builds the Ebiten front end around a fresh engine session.
func NewApp(cfg Config) (*App, error) {
	cfg.BoardOffsetX = borderWidth
	cfg.BoardOffsetY = hudHeight
	eng, err := New(cfg)
	if err != nil {
		return nil, err
	}
	eng.Start()
	a := &App{
		engine: eng,
		cfg:    cfg,
		board:  ebiten.NewImage(int(cfg.BoardWidth), int(cfg.BoardHeight)),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	return a, nil
}

// WindowSize returns the initial window dimensions for the configured board.
func (a *App) WindowSize() (int, int) {
	return int(a.cfg.BoardWidth) + 2*borderWidth, int(a.cfg.BoardHeight) + hudHeight + borderWidth
}

func (a *App) Update() error {
	a.handleKeys()
	a.applyResize()
	a.handlePointer()

	a.engine.Tick(boardSurface{a.board})

	if a.noticeLeft > 0 {
		a.noticeLeft--
	}
	return nil
}

// handleKeys processes speed control, restart and report copy.
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.engine.SetSpeed(a.engine.Speed() + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.engine.SetSpeed(a.engine.Speed() - speedStep)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.engine.SetSpeed(a.engine.Speed() + int(wy)*speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.engine.Start()
		a.setNotice("restarted")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.engine.Report()); err != nil {
			a.setNotice("clipboard unavailable")
		} else {
			a.setNotice("report copied")
		}
	}
}

// applyResize reconciles the window size reported by Layout with the board
// geometry. The engine applies the change at the start of its next tick.
func (a *App) applyResize() {
	if a.layoutW == 0 || a.layoutH == 0 {
		return
	}
	bw := float64(a.layoutW - 2*borderWidth)
	bh := float64(a.layoutH - hudHeight - borderWidth)
	// Never let the spawn range invert: the board keeps room for the
	// largest dot even if the window shrinks below it.
	minW := float64(a.cfg.MaxDiameter) + 2*(a.cfg.StrokeWidth+a.cfg.Padding)
	if bw < minW {
		bw = minW
	}
	if bh < 1 {
		bh = 1
	}
	curW, curH := a.engine.BoardSize()
	if bw == curW && bh == curH {
		return
	}
	a.engine.NotifyResize(bw, bh, borderWidth, hudHeight)
	a.board = ebiten.NewImage(int(bw), int(bh))
}

// handlePointer forwards just-pressed mouse buttons and touches to the
// engine in board-local coordinates. Ebiten already suppresses the
// browser's default handling for these events on the wasm target.
func (a *App) handlePointer() {
	offX, offY := a.engine.BoardOffset()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		a.engine.HandlePointer(float64(mx)-offX, float64(my)-offY)
	}
	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		a.engine.HandlePointer(float64(tx)-offX, float64(ty)-offY)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(windowBG)

	offX, offY := a.engine.BoardOffset()
	bw, bh := a.engine.BoardSize()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offX, offY)
	screen.DrawImage(a.board, op)
	vector.StrokeRect(screen, float32(offX)-1, float32(offY)-1, float32(bw)+2, float32(bh)+2, 2, borderCol, false)

	a.drawHUD(screen)
}

// drawHUD renders the score, speed readout and key legend above the board.
func (a *App) drawHUD(screen *ebiten.Image) {
	scoreOp := &text.DrawOptions{}
	scoreOp.GeoM.Scale(2, 2)
	scoreOp.GeoM.Translate(borderWidth, 10)
	scoreOp.ColorScale.ScaleWithColor(scoreCol)
	text.Draw(screen, fmt.Sprintf("score: %d", a.engine.Score()), a.face, scoreOp)

	status := fmt.Sprintf("speed: %d  (up/down or wheel)  R: restart  C: copy report", a.engine.Speed())
	ebitenutil.DebugPrintAt(screen, status, borderWidth, hudHeight-16)
	if a.noticeLeft > 0 {
		ebitenutil.DebugPrintAt(screen, a.notice, a.layoutW-borderWidth-8*len(a.notice), hudHeight-16)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW = outsideWidth
	a.layoutH = outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) setNotice(s string) {
	a.notice = s
	a.noticeLeft = noticeTicks
}
