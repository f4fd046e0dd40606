package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// TypeQR is the barcode type the flow accepts.
const TypeQR = "qr"

// Event is one decode result from a barcode source.
type Event struct {
	Type string
	Data string
}

// Scanner yields one decode event. The camera on a device would produce a
// stream of these; the CLI decodes a single image file per scan.
type Scanner interface {
	Scan(ctx context.Context) (Event, error)
}

// ImageScanner decodes a QR code from a PNG or JPEG file.
type ImageScanner struct {
	path string
}

func NewImageScanner(path string) *ImageScanner {
	return &ImageScanner{path: path}
}

func (s *ImageScanner) Scan(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return Event{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Event{}, fmt.Errorf("decoding image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Event{}, fmt.Errorf("preparing bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return Event{}, fmt.Errorf("no QR code found: %w", err)
	}
	return Event{Type: TypeQR, Data: result.GetText()}, nil
}
