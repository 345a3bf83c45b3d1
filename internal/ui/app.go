package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"sketchboard/internal/board"
)

// RunApp opens a window with a board built from cfg and blocks until the
// window is closed.
func RunApp(cfg board.Config) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sketchboard")

	boardWidget, err := NewBoardWidget(cfg)
	if err != nil {
		return err
	}
	toolbar := NewToolbar(boardWidget, myWindow)

	content := container.NewBorder(toolbar, boardWidget.StatusBar(), nil, nil, boardWidget)
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight)).
		AddWidthHeight(0, toolbar.MinSize().Height+boardWidget.StatusBar().MinSize().Height))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := boardWidget.Start(ctx); err != nil {
		return err
	}
	myWindow.SetOnClosed(boardWidget.Close)

	myWindow.ShowAndRun()
	return nil
}
