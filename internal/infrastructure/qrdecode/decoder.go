package qrdecode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/webp"
)

// ErrNotFound means the image is readable but carries no decodable QR code.
// Callers treat this as a normal outcome, not a failure.
var ErrNotFound = errors.New("no QR code found in image")

// Decoder extracts a QR payload from raw image bytes
type Decoder interface {
	Decode(imageData []byte) (string, error)
}

// GozxingDecoder decodes QR codes with the zxing port. Supported formats are
// PNG, JPEG and WEBP; anything else fails at image decode.
type GozxingDecoder struct{}

// New creates a new QR decoder
func New() *GozxingDecoder {
	return &GozxingDecoder{}
}

// Decode returns the text payload of the first QR code in the image
func (d *GozxingDecoder) Decode(imageData []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to binarize image: %w", err)
	}

	// zxing readers keep decode state, so use a fresh one per call
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", ErrNotFound
	}

	return result.GetText(), nil
}
