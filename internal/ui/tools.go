package ui

import (
	"image/color"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/logging"
	"sketchboard/internal/sketch"
)

// Palette and weights offered by the toolbar.
var (
	paletteColors  = []string{"000000", "ff0000", "00ff00", "0000ff"}
	paletteWeights = []float64{1, 2, 4, 8}
)

type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	var fill color.Color = color.Black
	if c, err := sketch.ParseColor(s.Hex); err == nil {
		fill = c
	}
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func weightLabel(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// NewToolbar builds the pen, undo and file controls for board. Dialogs are
// shown on win.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	report := func(err error) {
		logging.Logger().Error("ui: toolbar action", "err", err)
		dialog.ShowError(err, win)
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			saveDialog(win, "sketch.png", func(out io.Writer) error {
				return board.SavePNG(out)
			}, board, report)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			saveDialog(win, "sketch.pdf", func(out io.Writer) error {
				return board.ExportPDF(out)
			}, board, report)
		}),
	)

	swatches := make([]fyne.CanvasObject, 0, len(paletteColors))
	for _, hex := range paletteColors {
		swatches = append(swatches, newColorSwatch(hex, func(hex string) {
			if err := board.SetColor(hex); err != nil {
				report(err)
			}
		}))
	}

	labels := make([]string, len(paletteWeights))
	for i, w := range paletteWeights {
		labels[i] = weightLabel(w)
	}
	weights := widget.NewSelect(labels, func(s string) {
		w, err := strconv.ParseFloat(s, 64)
		if err == nil {
			err = board.SetWeight(w)
		}
		if err != nil {
			report(err)
		}
	})
	weights.SetSelected(weightLabel(board.Board().Tool().Weight))

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		container.NewHBox(swatches...),
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		weights,
		layout.NewSpacer(),
	)
}

func saveDialog(win fyne.Window, name string, write func(io.Writer) error, board *BoardWidget, report func(error)) {
	d := dialog.NewFileSave(func(out fyne.URIWriteCloser, err error) {
		if err != nil {
			report(err)
			return
		}
		if out == nil {
			return
		}
		werr := write(out)
		if cerr := out.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			report(werr)
			return
		}
		board.SetStatus("Saved " + out.URI().Name())
	}, win)
	d.SetFileName(name)
	d.Show()
}
