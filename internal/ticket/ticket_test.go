package ticket

import (
	"testing"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRPNG_ProducesPNG(t *testing.T) {
	png, err := QRPNG("RES-ABC12345")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, pngMagic, png[:4])
}

func TestQRPNG_EmptyCodeRejected(t *testing.T) {
	_, err := QRPNG("")
	assert.Error(t, err)
}

func TestQR_PayloadIsExactlyTheCode(t *testing.T) {
	// The symbol's content must be the code string unchanged, so a scan
	// at the entrance yields exactly what the lookup endpoint expects.
	const code = "RES-ABC12345"
	q, err := qrcode.New(code, qrcode.Medium)
	require.NoError(t, err)
	assert.Equal(t, code, q.Content)
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:            "r1",
		Code:          "RES-ABC12345",
		CustomerName:  "Ana Torres",
		CustomerEmail: "ana@example.com",
		Seats:         []string{"A2", "A3"},
		Total:         17.00,
		Status:        model.BookingConfirmed,
		Showtime: &model.Showtime{
			ID:       "f1",
			Price:    8.50,
			StartsAt: model.NewLocalTime(time.Date(2026, 12, 24, 20, 0, 0, 0, time.Local)),
			Movie:    &model.Movie{Title: "Dune"},
			Room:     &model.Room{Name: "Sala 1", Kind: "2D", Rows: 5, Columns: 8},
		},
	}
}

func TestPDF_ProducesDocument(t *testing.T) {
	out, err := PDF(testBooking())
	require.NoError(t, err)
	require.Greater(t, len(out), 1000)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDF_RequiresCode(t *testing.T) {
	b := testBooking()
	b.Code = ""
	_, err := PDF(b)
	assert.Error(t, err)

	_, err = PDF(nil)
	assert.Error(t, err)
}

func TestPDF_SurvivesSparseBooking(t *testing.T) {
	// Lookup by code can return a booking whose showtime reference was
	// deleted; the ticket still renders with what is left.
	out, err := PDF(&model.Booking{Code: "RES-00000000", Seats: []string{"B1"}})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
