package model

// Booking status values as the backend writes them.
const (
	BookingPending   = "PENDIENTE"
	BookingConfirmed = "CONFIRMADA"
	BookingCancelled = "CANCELADA"
)

// Payment methods accepted on confirmation.
const (
	PayCash     = "EFECTIVO"
	PayCard     = "TARJETA"
	PayTransfer = "TRANSFERENCIA"
)

// Booking mirrors the backend's reserva document.  A booking is created
// PENDIENTE from a seat selection, becomes CONFIRMADA after a payment-method
// confirmation call, and may become CANCELADA by the customer (while at
// least two hours remain before the showtime) or by an administrator.
//
// Fields:
//  ID            – document identifier.
//  Showtime      – embedded showtime the seats belong to.
//  User          – embedded account, nil for guest purchases.
//  CustomerName  – name captured on the checkout form.
//  CustomerEmail – email captured on the checkout form.
//  Seats         – seat identifiers, in the order they were picked.
//  Total         – price × seat count as computed at hold time.
//  Status        – PENDIENTE, CONFIRMADA or CANCELADA.
//  Code          – unique shareable code ("RES-AB12CD34"), also the QR payload.
//  CreatedAt     – creation timestamp.
//  PaymentMethod – set on confirmation.
type Booking struct {
	ID            string    `json:"id,omitempty"`
	Showtime      *Showtime `json:"funcion,omitempty"`
	User          *User     `json:"usuario,omitempty"`
	CustomerName  string    `json:"nombreCliente"`
	CustomerEmail string    `json:"emailCliente"`
	Seats         []string  `json:"asientos"`
	Total         float64   `json:"total"`
	Status        string    `json:"estado,omitempty"`
	Code          string    `json:"codigoReserva,omitempty"`
	CreatedAt     LocalTime `json:"fechaCreacion,omitempty"`
	PaymentMethod string    `json:"metodoPago,omitempty"`
}

// BookingInput is the create payload the backend expects.
type BookingInput struct {
	ShowtimeID    string   `json:"funcionId"`
	UserID        string   `json:"usuarioId,omitempty"`
	CustomerName  string   `json:"nombreCliente"`
	CustomerEmail string   `json:"emailCliente"`
	Seats         []string `json:"asientos"`
}
