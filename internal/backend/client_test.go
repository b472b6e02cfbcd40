package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func envelope(success bool, data any, message string) []byte {
	raw, _ := json.Marshal(data)
	out, _ := json.Marshal(map[string]any{
		"success": success,
		"data":    json.RawMessage(raw),
		"message": message,
	})
	return out
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/peliculas/cartelera", r.URL.Path)
		w.Write(envelope(true, []map[string]any{
			{"id": "p1", "titulo": "Dune", "duracion": 155},
		}, ""))
	})

	movies, err := c.Billboard(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Dune", movies[0].Title)
	assert.Equal(t, 155, movies[0].DurationMin)
}

func TestClient_RejectionCarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write(envelope(false, nil, "Asiento A1 ya no está disponible"))
	})

	err := c.HoldSeats(context.Background(), "f1", []string{"A1", "A2"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Asiento A1 ya no está disponible", apiErr.UserMessage())
	assert.True(t, Conflict(err))
}

func TestClient_RejectionWithoutMessageFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Showtime(context.Background(), "f1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.UserMessage())
}

func TestClient_EnvelopeFailureBeatsStatus200(t *testing.T) {
	// Some backend endpoints answer 200 with success=false.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelope(false, nil, "código no encontrado"))
	})

	_, err := c.BookingByCode(context.Background(), "RES-NOPE0000")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "código no encontrado", apiErr.Message)
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := New(srv.URL, time.Second)

	_, err := c.Billboard(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_WithTokenSendsBearer(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write(envelope(true, []any{}, ""))
	})

	_, err := c.WithToken("tok-123").Bookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)

	// The base client must stay anonymous.
	_, err = c.Movies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_RoomPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/salas/s1" {
			w.Write(envelope(true, map[string]any{"id": "s1", "nombre": "Sala 1", "filas": 5, "columnas": 8}, ""))
			return
		}
		w.Write(envelope(true, []map[string]any{{"id": "s1", "nombre": "Sala 1"}}, ""))
	})

	rooms, err := c.ActiveRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	room, err := c.Room(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, room.Rows)

	assert.Equal(t, []string{"/salas/activas", "/salas/s1"}, paths)
}

func TestClient_HoldSendsWholeSelection(t *testing.T) {
	var body seatsBody
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/funciones/f9/bloquear-asientos", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write(envelope(true, nil, ""))
	})

	err := c.HoldSeats(context.Background(), "f9", []string{"A2", "A3", "B1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "A3", "B1"}, body.Seats)
}
