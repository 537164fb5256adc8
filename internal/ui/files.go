package ui

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"StrawBoard/internal/control"
	"StrawBoard/internal/export"
	"StrawBoard/internal/ink"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fail reports a failed file operation. It must run on the UI goroutine.
func (a *App) fail(op string, err error) {
	log.Printf("[UI] %s failed: %v", op, err)
	a.status.SetText(op + " failed")
	dialog.ShowError(err, a.window)
}

func closeLogged(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("[UI] Error closing file: %v", err)
	}
}

func (a *App) saveBoard() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			a.fail("Save", err)
			return
		}
		if w == nil {
			return
		}
		defer closeLogged(w)

		if err := a.sess.Board.Save(w); err != nil {
			a.fail("Save", err)
			return
		}
		a.status.SetText(fmt.Sprintf("Saved %d strokes to %s", a.sess.Board.Len(), w.URI().Name()))
	}, a.window)
	d.SetFileName("board.json")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (a *App) openBoard() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			a.fail("Load", err)
			return
		}
		if r == nil {
			return
		}
		defer closeLogged(r)

		data, err := io.ReadAll(r)
		if err != nil {
			a.fail("Load", err)
			return
		}
		name := r.URI().Name()
		a.sess.Loop.Do(func(c *control.Controller) {
			if err := a.sess.Board.Load(bytes.NewReader(data)); err != nil {
				fyne.Do(func() { a.fail("Load", err) })
				return
			}
			c.Forget()
			a.SetStatus(fmt.Sprintf("Loaded %d strokes from %s", a.sess.Board.Len(), name))
		})
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

type writeFunc func(io.Writer, []*ink.Stroke, export.Options) error

func (a *App) exportBoard(name string, write writeFunc) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			a.fail("Export", err)
			return
		}
		if w == nil {
			return
		}
		defer closeLogged(w)

		opts := export.Options{Margin: a.sess.Config.Export.Margin}
		if err := write(w, a.sess.Board.Snapshot(), opts); err != nil {
			a.fail("Export", err)
			return
		}
		a.status.SetText("Exported " + w.URI().Name())
	}, a.window)
	d.SetFileName(name)
	d.Show()
}
