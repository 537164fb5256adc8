package ui

import (
	"StrawBoard/internal/config"
	"StrawBoard/internal/control"
	"StrawBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Session is what the window drives.
type Session struct {
	Board  *state.Board
	Loop   *control.Loop
	Config config.Config
	// Post receives input events. Nil means Loop.Post.
	Post func(control.Event) bool
	// Title defaults to "StrawBoard".
	Title string
	// Status is the initial status bar text.
	Status string
}

// App is the main window.
type App struct {
	fyne   fyne.App
	window fyne.Window
	board  *BoardWidget
	status *widget.Label
	sess   Session

	brushColor string
	brushSize  float64
}

// NewApp builds the window for s and subscribes it to board changes. Call it
// before s.Loop starts running.
func NewApp(s Session) *App {
	if s.Post == nil {
		s.Post = s.Loop.Post
	}
	if s.Title == "" {
		s.Title = "StrawBoard"
	}
	if s.Status == "" {
		s.Status = "Ready"
	}

	a := &App{
		fyne:       app.New(),
		sess:       s,
		status:     widget.NewLabel(s.Status),
		brushColor: s.Config.Brush.Color,
		brushSize:  s.Config.Brush.Size,
	}
	a.window = a.fyne.NewWindow(s.Title)
	a.window.Resize(fyne.NewSize(1024, 768))

	a.board = NewBoardWidget(s.Board, s.Post)
	s.Board.OnChange = a.board.BoardChanged

	a.bindKeys()

	toolbar := NewToolbar(a)
	content := container.NewBorder(toolbar, a.status, nil, nil, a.board)
	a.window.SetContent(content)
	return a
}

// SetStatus shows text in the status bar. It is safe to call from any
// goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.window.ShowAndRun()
}

func (a *App) straighten() {
	a.sess.Post(control.Event{Kind: control.Key, Code: control.KeyStraighten})
}

func (a *App) bindKeys() {
	a.window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyS {
			a.straighten()
		}
	})

	dc, ok := a.window.Canvas().(desktop.Canvas)
	if !ok {
		return
	}
	dc.SetOnKeyDown(func(e *fyne.KeyEvent) {
		if m, ok := modifierKey(e.Name); ok {
			a.board.SetHeld(m, true)
		}
	})
	dc.SetOnKeyUp(func(e *fyne.KeyEvent) {
		if m, ok := modifierKey(e.Name); ok {
			a.board.SetHeld(m, false)
		}
	})
}

func modifierKey(k fyne.KeyName) (control.Modifier, bool) {
	switch k {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return control.ModShift, true
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return control.ModCtrl, true
	}
	return 0, false
}
