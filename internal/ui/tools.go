package ui

import (
	"image/color"
	"log"

	"StrawBoard/internal/control"
	"StrawBoard/internal/export"
	"StrawBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette holds the swatch colours as stored on strokes.
var palette = []string{
	"rgba(0,0,0,0.2)",
	"black",
	"red",
	"green",
	"blue",
	"orange",
}

const (
	eraserColor = "white"
	eraserSize  = 20.0
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	c, err := render.ParseColor(s.Name)
	if err != nil {
		log.Printf("[UI] Swatch %q: %v", s.Name, err)
		c = color.Black
	}
	rect := canvas.NewRectangle(c)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// setBrush hands the brush to the controller for the next stroke.
func (a *App) setBrush(name string, size float64) {
	a.brushColor, a.brushSize = name, size
	a.sess.Loop.Do(func(c *control.Controller) {
		c.SetBrush(name, size)
	})
}

// clearBoard removes every stroke. It runs on the loop so no event is
// applied to a stroke that is already gone.
func (a *App) clearBoard() {
	a.sess.Loop.Do(func(c *control.Controller) {
		c.Forget()
		a.sess.Board.Reset()
		a.SetStatus("Cleared")
	})
}

// --- The Main Toolbar ---
func NewToolbar(a *App) fyne.CanvasObject {
	lastColor := a.brushColor
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(a.brushSize)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			size := a.brushSize
			if a.brushColor == eraserColor {
				size = a.sess.Config.Brush.Size
				strokeSlider.SetValue(size)
			}
			a.setBrush(lastColor, size)
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			strokeSlider.SetValue(eraserSize)
			a.setBrush(eraserColor, eraserSize)
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), a.clearBoard),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.saveBoard),
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.openBoard),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			a.exportBoard("board.pdf", export.WritePDF)
		}), // PDF
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			a.exportBoard("board.png", export.WritePNG)
		}), // PNG
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.GridIcon(), a.board.ToggleGrid),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), a.board.ResetView),
	)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, name := range palette {
		colorBox.Add(newColorSwatch(name, func(name string) {
			lastColor = name
			size := a.brushSize
			if a.brushColor == eraserColor {
				size = a.sess.Config.Brush.Size
				strokeSlider.SetValue(size)
			}
			a.setBrush(name, size)
		}))
	}

	// --- Stroke Width Slider ---
	strokeSlider.OnChanged = func(val float64) {
		a.setBrush(a.brushColor, val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Shape tools ---
	straighten := widget.NewButton("Straighten (S)", a.straighten)
	densify := widget.NewCheck("Densify", func(on bool) {
		a.sess.Loop.Do(func(c *control.Controller) {
			c.SetDensify(on)
		})
	})
	densify.SetChecked(a.sess.Config.DensifyOnRelease)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		straighten,
		densify,
		layout.NewSpacer(),
	)
}
