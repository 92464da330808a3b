package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tsawler/gridmark/extract"
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/source"
)

// EditorWindow is the interactive grid editor: the page strip in a
// scroll container, a toolbar for zoom, column count, and row
// detection, and a status bar reporting selections and exports.
type EditorWindow struct {
	fyne.Window
	app  fyne.App
	view *TableWidget

	columnsEntry *widget.Entry
	statusBar    *widget.Label
}

// NewEditorWindow creates the editor window on the given app
func NewEditorWindow(fyneApp fyne.App, title string) *EditorWindow {
	win := fyneApp.NewWindow(title)

	ew := &EditorWindow{
		Window: win,
		app:    fyneApp,
		view:   NewTableWidget(),
	}

	ew.setupUI()
	win.Resize(fyne.NewSize(900, 700))
	return ew
}

// View returns the page strip widget
func (ew *EditorWindow) View() *TableWidget {
	return ew.view
}

// setupUI assembles the toolbar, scrolling page strip, and status bar
func (ew *EditorWindow) setupUI() {
	ew.statusBar = widget.NewLabel("Ready")

	scroll := container.NewScroll(ew.view)
	scroll.Direction = container.ScrollBoth

	content := container.NewBorder(
		ew.createToolbar(),                // top
		container.NewPadded(ew.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		scroll,                            // center
	)

	ew.SetContent(content)
}

// createToolbar builds the zoom, grid, and export controls
func (ew *EditorWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		ew.view.ZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		ew.view.ZoomIn()
	})

	ew.columnsEntry = widget.NewEntry()
	ew.columnsEntry.SetPlaceHolder("cols")
	applyBtn := widget.NewButton("Apply", ew.onApplyColumns)

	detectBtn := widget.NewButton("Detect Rows", ew.onDetectRows)
	exportBtn := widget.NewButton("Export CSV", ew.onExport)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		widget.NewLabel("Columns:"),
		ew.columnsEntry,
		applyBtn,
		detectBtn,
		exportBtn,
	)
}

// LoadDocument decodes the document at path and attaches one grid page
// per document page.
func (ew *EditorWindow) LoadDocument(path string) error {
	inputs, err := source.Load(path)
	if err != nil {
		return err
	}

	for i, input := range inputs {
		page := grid.NewPage(input)
		pageNum := i + 1
		_, ctrl := ew.view.AddPage(page, nil)
		ctrl.OnSelection(func(count int, bounds model.Rect) {
			ew.statusBar.SetText(fmt.Sprintf("Page %d: %d words in selection", pageNum, count))
		})
	}

	ew.statusBar.SetText(fmt.Sprintf("Loaded %d pages from %s", len(inputs), path))
	return nil
}

// onApplyColumns applies the entered column count to every page
func (ew *EditorWindow) onApplyColumns() {
	n, err := strconv.Atoi(ew.columnsEntry.Text)
	if err != nil || n < 1 {
		ew.statusBar.SetText("Columns: enter a positive number")
		return
	}

	reg := ew.view.Registry()
	for _, h := range reg.Handles() {
		page := reg.Page(h)
		if page == nil {
			continue
		}
		applied := page.SetColumnCount(n)
		if ctrl := reg.Controller(h); ctrl != nil {
			ctrl.Redraw()
		}
		if applied != n {
			ew.statusBar.SetText(fmt.Sprintf("Columns: page fit only %d of %d", applied, n))
		}
	}
	ew.view.Refresh()
}

// onDetectRows runs row detection on every page
func (ew *EditorWindow) onDetectRows() {
	reg := ew.view.Registry()
	rows := 0
	for _, h := range reg.Handles() {
		page := reg.Page(h)
		if page == nil {
			continue
		}
		report := page.DetectRows()
		rows += report.Rows
		if ctrl := reg.Controller(h); ctrl != nil {
			ctrl.Redraw()
		}
	}
	ew.view.Refresh()
	ew.statusBar.SetText(fmt.Sprintf("Detected %d rows across %d pages", rows, reg.Len()))
}

// onExport writes the aggregated CSV to a file picked by the user
func (ew *EditorWindow) onExport() {
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ew.Window)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer wc.Close()

		if err := extract.WriteCSV(wc, ew.view.Pages()); err != nil {
			dialog.ShowError(err, ew.Window)
			return
		}
		ew.statusBar.SetText("Exported " + wc.URI().Name())
	}, ew.Window)
}
