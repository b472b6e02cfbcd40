// Package seatmap derives the seat grid a browser renders for one showtime.
// The derivation is pure: the same geometry and occupancy sets always yield
// the same sequence, so callers can rebuild on every poll without diffing.
package seatmap

import (
	"fmt"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Seat is one derived grid cell.  It is never stored anywhere; it exists
// only in the response of a snapshot.
//
// Fields:
//  ID        – row letter + 1-based column, e.g. "C12".
//  Row       – row letter ("A".."Z").
//  Number    – 1-based column number.
//  Occupied  – permanently booked.
//  Held      – temporarily held by some user, expiry pending.
//  Selected  – part of this session's tentative pick; only meaningful
//              while the seat is still available.
//  Available – !Occupied && !Held.
type Seat struct {
	ID        string `json:"id"`
	Row       string `json:"fila"`
	Number    int    `json:"numero"`
	Occupied  bool   `json:"ocupado"`
	Held      bool   `json:"bloqueado"`
	Selected  bool   `json:"seleccionado"`
	Available bool   `json:"disponible"`
}

// SeatID builds the canonical identifier for a zero-based row index and a
// 1-based column number.
func SeatID(row, number int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(row), number)
}

// Build produces the full seat matrix for a rows × cols room in row-major
// order (row A left to right, then row B, ...).  Membership in the three
// sets decides each seat's flags; occupied wins over everything else.
// Geometry outside 1..model.MaxRows rows or with non-positive columns is
// rejected, since row labels are single letters.
func Build(rows, cols int, occupied, held, selected map[string]struct{}) ([]Seat, error) {
	if rows < 1 || rows > model.MaxRows {
		return nil, fmt.Errorf("seatmap: rows must be 1..%d, got %d", model.MaxRows, rows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("seatmap: columns must be positive, got %d", cols)
	}

	seats := make([]Seat, 0, rows*cols)
	for i := 0; i < rows; i++ {
		row := string(rune('A' + i))
		for j := 1; j <= cols; j++ {
			id := row + fmt.Sprint(j)
			_, occ := occupied[id]
			_, hld := held[id]
			_, sel := selected[id]
			seats = append(seats, Seat{
				ID:        id,
				Row:       row,
				Number:    j,
				Occupied:  occ,
				Held:      hld,
				Selected:  sel,
				Available: !occ && !hld,
			})
		}
	}
	return seats, nil
}
