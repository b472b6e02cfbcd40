package model

import "encoding/json"

// Envelope is the response wrapper every NetCinema endpoint uses.  Data is
// kept raw so each client method can decode it into the right type after
// checking Success.
//
// Fields:
//  Success – whether the backend accepted the request.
//  Data    – resource payload, shape depends on the endpoint.
//  Message – human-readable detail, present mostly on failures.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}
