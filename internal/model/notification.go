package model

import "encoding/json"

// Notification types sent by the backend over /ws/notifications.  These are
// advisory only: they trigger a re-fetch or a toast, never a state mutation,
// so lost or duplicated messages are harmless.
const (
	NotifyConnected        = "CONNECTED"
	NotifyNewBooking       = "NUEVA_RESERVA"
	NotifyBookingCancelled = "RESERVA_CANCELADA"
	NotifyBookingConfirmed = "RESERVA_CONFIRMADA"
	NotifyPong             = "PONG"

	// NotifyRegister is the only message the client sends: it associates
	// the connection with a user id.
	NotifyRegister = "REGISTER"
)

// Notification is the {tipo, data} envelope used in both directions on the
// notification channel.  Data stays raw; most consumers only care about the
// type and relay the payload untouched.
type Notification struct {
	Type   string          `json:"tipo"`
	UserID string          `json:"userId,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}
