package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// PDF builds the printable A4 ticket: header, booking code, the details
// the entrance staff need, and the QR on the right.
func PDF(b *model.Booking) ([]byte, error) {
	if b == nil || b.Code == "" {
		return nil, fmt.Errorf("ticket: booking without code")
	}
	qr, err := QRPNG(b.Code)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// Header.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Ticket - NetCinema", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Code and generation timestamp.
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 8, fmt.Sprintf("Código: %s", b.Code), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Details on the left, QR on the right.
	yStart := pdf.GetY()
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(34, 34, 34)

	line := func(s string) {
		pdf.CellFormat(130, 7, s, "", 1, "L", false, 0, "")
	}
	if st := b.Showtime; st != nil {
		if st.Movie != nil {
			line(fmt.Sprintf("Película: %s", st.Movie.Title))
		}
		if st.Room != nil {
			line(fmt.Sprintf("Sala: %s (%s)", st.Room.Name, st.Room.Kind))
		}
		if !st.StartsAt.IsZero() {
			line(fmt.Sprintf("Fecha y hora: %s", st.StartsAt.Format("02/01/2006 15:04")))
		}
	}
	line(fmt.Sprintf("Asientos: %s", strings.Join(b.Seats, ", ")))
	line(fmt.Sprintf("Cliente: %s", b.CustomerName))
	line(fmt.Sprintf("Email: %s", b.CustomerEmail))
	line(fmt.Sprintf("Total: $%.2f", b.Total))

	const qrSide = 50.0
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 195-qrSide-15, yStart, qrSide, qrSide, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	// Footer note.
	bottom := pdf.GetY()
	if qrBottom := yStart + qrSide; qrBottom > bottom {
		bottom = qrBottom
	}
	pdf.SetY(bottom + 8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.MultiCell(0, 5, "Presenta este ticket con el QR en la entrada del cine. No compartas tu código si quieres evitar usos no autorizados.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ticket: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
