package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/notify"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The gateway serves the UI itself; cross-origin WS is not a thing here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades browsers onto the notification hub.  The browser
// sends a REGISTER message after connecting to receive user-targeted
// events; until then it only gets broadcasts.
type WSHandler struct {
	Hub *notify.Hub
}

func (h *WSHandler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	notify.NewClient(h.Hub, conn)
	return nil
}
