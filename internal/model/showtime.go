package model

// Showtime mirrors the backend's función document: one scheduled screening
// of a movie in a room, with its own price and seat-occupancy state.
// OccupiedSeats holds permanently booked identifiers; HeldSeats maps a seat
// identifier to the unix-millisecond expiry of its temporary hold.  Both
// sets are refreshed by polling since other users occupy seats concurrently.
//
// Fields:
//  ID            – document identifier.
//  Movie         – embedded movie reference.
//  Room          – embedded room reference (geometry source).
//  StartsAt      – screening date and time.
//  Price         – price per seat.
//  OccupiedSeats – seat identifiers booked for good ("A1", "C12").
//  HeldSeats     – temporarily held identifiers with expiry metadata.
//  Active        – deactivated showtimes are hidden from the billboard.
type Showtime struct {
	ID            string           `json:"id,omitempty"`
	Movie         *Movie           `json:"pelicula,omitempty"`
	Room          *Room            `json:"sala,omitempty"`
	StartsAt      LocalTime        `json:"fechaHora"`
	Price         float64          `json:"precio"`
	OccupiedSeats []string         `json:"asientosOcupados,omitempty"`
	HeldSeats     map[string]int64 `json:"asientosBloqueados,omitempty"`
	Active        *bool            `json:"activa,omitempty"`
}

// ShowtimeInput is the create/update payload: references by id instead of
// embedded documents.
type ShowtimeInput struct {
	MovieID  string    `json:"peliculaId"`
	RoomID   string    `json:"salaId"`
	StartsAt LocalTime `json:"fechaHora"`
	Price    float64   `json:"precio"`
}

// SeatIDs returns the occupied and held identifier sets as maps for O(1)
// membership checks when building the seat grid.
func (s *Showtime) SeatIDs() (occupied, held map[string]struct{}) {
	occupied = make(map[string]struct{}, len(s.OccupiedSeats))
	for _, id := range s.OccupiedSeats {
		occupied[id] = struct{}{}
	}
	held = make(map[string]struct{}, len(s.HeldSeats))
	for id := range s.HeldSeats {
		held[id] = struct{}{}
	}
	return occupied, held
}
