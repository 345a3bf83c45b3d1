// Package export writes sketch snapshots to documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const snapshotName = "sketch"

// WritePDF writes a one page A4 PDF with img scaled to fit inside the page
// margins. Landscape is used for images wider than tall.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("export: empty image")
	}

	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}
	p := gofpdf.New(orientation, "mm", "A4", "")
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export: encode snapshot: %w", err)
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(snapshotName, opt, &buf)

	pageW, pageH := p.GetPageSize()
	left, top, right, bottom := p.GetMargins()
	boxW, boxH := pageW-left-right, pageH-top-bottom
	scale := min(boxW/float64(b.Dx()), boxH/float64(b.Dy()))
	imgW, imgH := float64(b.Dx())*scale, float64(b.Dy())*scale

	p.ImageOptions(snapshotName, left+(boxW-imgW)/2, top+(boxH-imgH)/2, imgW, imgH, false, opt, 0, "")
	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
