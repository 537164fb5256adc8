package ui

import (
	"image/color"
	"log"
	"sync"

	"StrawBoard/internal/control"
	"StrawBoard/internal/ink"
	"StrawBoard/internal/render"
	"StrawBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var (
	backgroundColor = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	gridColor       = color.NRGBA{R: 220, G: 220, B: 220, A: 100}
)

// BoardWidget shows a board and turns pointer input into controller events.
// Dragging with the primary button draws. Scrolling, or a drag that did not
// start with a primary press, pans the view.
type BoardWidget struct {
	widget.BaseWidget
	board *state.Board
	post  func(control.Event) bool

	mu         sync.Mutex
	panX, panY float32
	showGrid   bool
	gridSize   float32
	drawing    bool
	// held are modifiers reported by key events, used while dragging since
	// drag events do not carry them.
	held control.Modifier
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget creates a widget showing board. Input events are handed to
// post, normally control.Loop.Post.
func NewBoardWidget(board *state.Board, post func(control.Event) bool) *BoardWidget {
	b := &BoardWidget{
		board:    board,
		post:     post,
		showGrid: true,
		gridSize: 50,
	}
	b.ExtendBaseWidget(b)
	return b
}

// BoardChanged refreshes the widget from any goroutine. It has the shape of
// state.Board.OnChange.
func (b *BoardWidget) BoardChanged(uint64) {
	fyne.Do(b.Refresh)
}

// SetHeld records whether modifier m is held down.
func (b *BoardWidget) SetHeld(m control.Modifier, down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if down {
		b.held |= m
	} else {
		b.held &^= m
	}
}

func (b *BoardWidget) ToggleGrid() {
	b.mu.Lock()
	b.showGrid = !b.showGrid
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) ResetView() {
	b.mu.Lock()
	b.panX, b.panY = 0, 0
	b.mu.Unlock()
	b.Refresh()
}

// toBoard converts a widget position to board coordinates. b.mu must be
// held.
func (b *BoardWidget) toBoard(p fyne.Position) ink.Point {
	return ink.Pt(float64(p.X-b.panX), float64(p.Y-b.panY))
}

func (b *BoardWidget) send(kind control.Kind, p ink.Point, mods control.Modifier) {
	ev := control.Event{Kind: kind, Pos: p, Mods: mods}
	if !b.post(ev) {
		log.Printf("[UI] Dropped %s event: controller stopped", kind)
	}
}

// modsOf merges the modifiers of a mouse event with those held on the
// keyboard.
func modsOf(m fyne.KeyModifier, held control.Modifier) control.Modifier {
	mods := held
	if m&fyne.KeyModifierShift != 0 {
		mods |= control.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		mods |= control.ModCtrl
	}
	return mods
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mu.Lock()
	b.drawing = true
	mods, p := modsOf(e.Modifier, b.held), b.toBoard(e.Position)
	b.mu.Unlock()
	b.send(control.Down, p, mods)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	b.mu.Lock()
	if e.Button != desktop.MouseButtonPrimary || !b.drawing {
		b.mu.Unlock()
		return
	}
	b.drawing = false
	mods, p := modsOf(e.Modifier, b.held), b.toBoard(e.Position)
	b.mu.Unlock()
	b.send(control.Up, p, mods)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.mu.Lock()
	if b.drawing {
		mods, p := b.held, b.toBoard(e.Position)
		b.mu.Unlock()
		b.send(control.Move, p, mods)
		return
	}
	b.panX += e.Dragged.DX
	b.panY += e.Dragged.DY
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.mu.Lock()
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b, rev: ^uint64(0)}
	r.background = canvas.NewRectangle(backgroundColor)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	size       fyne.Size

	grid    []fyne.CanvasObject
	strokes lineSurface
	objects []fyne.CanvasObject

	// what the cached objects were built from
	rev        uint64
	panX, panY float32
}

// rebuild regenerates the canvas objects when the board, the view or the
// size changed since the last call.
func (r *boardWidgetRenderer) rebuild() {
	b := r.board
	b.mu.Lock()
	panX, panY, showGrid, gridSize := b.panX, b.panY, b.showGrid, b.gridSize
	b.mu.Unlock()
	rev := b.board.Revision()

	viewChanged := panX != r.panX || panY != r.panY
	if rev != r.rev || viewChanged {
		r.strokes.dx, r.strokes.dy = panX, panY
		if err := render.Draw(&r.strokes, b.board.Snapshot()); err != nil {
			log.Printf("[UI] Render failed: %v", err)
		}
	}
	if showGrid {
		r.grid = gridLines(r.size, gridSize, panX, panY, r.grid[:0])
	} else {
		r.grid = r.grid[:0]
	}
	r.rev, r.panX, r.panY = rev, panX, panY

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)
	r.objects = append(r.objects, r.grid...)
	r.objects = append(r.objects, r.strokes.objects...)
}

// gridLines covers size with grid lines that move with the pan offset.
func gridLines(size fyne.Size, step, panX, panY float32, lines []fyne.CanvasObject) []fyne.CanvasObject {
	if step <= 0 {
		return lines
	}
	offset := func(pan float32) float32 {
		o := pan - step*float32(int(pan/step))
		if o < 0 {
			o += step
		}
		return o
	}
	for x := offset(panX); x < size.Width; x += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := offset(panY); y < size.Height; y += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.rebuild()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
