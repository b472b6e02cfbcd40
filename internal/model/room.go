package model

// MaxRows caps room height: seat identifiers use a single row letter, so a
// room can never have more rows than the alphabet.
const MaxRows = 26

// Room mirrors the backend's sala document.  Geometry is rows × columns;
// Capacity is derived by the backend and carried along for display.
//
// Fields:
//  ID       – document identifier.
//  Name     – unique room name ("Sala 1", "Sala VIP A").
//  Kind     – projection type (2D, 3D, IMAX, VIP).
//  Rows     – number of seat rows, 1..MaxRows.
//  Columns  – seats per row.
//  Capacity – rows × columns, computed backend-side.
//  Active   – deactivated rooms are hidden from scheduling.
type Room struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"nombre"`
	Kind     string `json:"tipo"`
	Rows     int    `json:"filas"`
	Columns  int    `json:"columnas"`
	Capacity int    `json:"capacidad,omitempty"`
	Active   *bool  `json:"activa,omitempty"`
}
