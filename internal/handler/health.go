package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/notify"
)

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// StatusHandler exposes the state of the notification pipeline so the UI
// can show a "live updates unavailable" banner when the backend feed gave
// up reconnecting.
type StatusHandler struct {
	Listener *notify.Listener // nil when no feed is configured
	Hub      *notify.Hub
}

func (h *StatusHandler) Notifications(c echo.Context) error {
	feed := "disabled"
	if h.Listener != nil {
		feed = h.Listener.Status().String()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"feed":    feed,
		"clients": h.Hub.ClientCount(),
	})
}
