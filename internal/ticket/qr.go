// Package ticket renders a booking for the outside world: its code as a
// scannable QR, and a printable PDF embedding that QR next to the booking
// details.  The QR payload is the booking code string and nothing else, so
// scanning a ticket and looking the code up are the same operation.
package ticket

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the rendered side length in pixels.  256 scans reliably from
// both screens and paper.
const qrSize = 256

// QRPNG encodes a booking code into a PNG image.  The payload is exactly
// the code string: decoding the image yields the code byte for byte.
func QRPNG(code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("ticket: empty booking code")
	}
	png, err := qrcode.Encode(code, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("ticket: encode qr: %w", err)
	}
	return png, nil
}
