// Package router wires the gateway's handlers onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/config"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/handler"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

// Handlers bundles everything the routes need.
type Handlers struct {
	Browse   *handler.BrowseHandler
	Seats    *handler.SeatHandler
	Checkout *handler.CheckoutHandler
	Lookup   *handler.LookupHandler
	Auth     *handler.AuthHandler
	Admin    *handler.AdminHandler
	Status   *handler.StatusHandler
	WS       *handler.WSHandler
}

// RegisterRoutes registers the health check and the WebSocket endpoint.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", handler.Health)
	e.GET("/ws", h.WS.Serve)
	e.GET("/v1/notificaciones/estado", h.Status.Notifications)
}

// RegisterPublic registers the guest-facing flows: browsing (behind the
// response cache), seat sessions, checkout and booking lookup.  Browsing
// is cacheable; everything touching selection or booking state is not.
// Checkout resolves the session when one is present so bookings land on
// the logged-in account, but never requires one.
func RegisterPublic(e *echo.Echo, h Handlers, cacheCfg config.CacheConfig, rdb *redis.Client, store *session.AuthStore) {
	browse := e.Group("/v1", middleware.ResponseCache(cacheCfg, rdb))
	browse.GET("/peliculas", h.Browse.Billboard)
	browse.GET("/peliculas/buscar", h.Browse.SearchMovies)
	browse.GET("/peliculas/:id", h.Browse.Movie)
	browse.GET("/funciones", h.Browse.Showtimes)
	browse.GET("/funciones/:id", h.Browse.Showtime)

	seats := e.Group("/v1/asientos")
	seats.POST("", h.Seats.Open)
	seats.GET("/:id", h.Seats.Snapshot)
	seats.POST("/:id/toggle", h.Seats.Toggle)
	seats.POST("/:id/limpiar", h.Seats.Clear)
	seats.POST("/:id/continuar", h.Seats.Continue)
	seats.POST("/:id/liberar", h.Seats.Release)
	seats.DELETE("/:id", h.Seats.Close)

	checkout := e.Group("/v1/reservas", middleware.OptionalSession(store))
	checkout.POST("", h.Checkout.Create)
	checkout.POST("/:id/confirmar", h.Checkout.Confirm)
	checkout.POST("/codigo/:code/cancelar", h.Checkout.Cancel)

	e.GET("/v1/reservas/codigo/:code", h.Lookup.ByCode)
	e.GET("/v1/reservas/codigo/:code/qr", h.Lookup.QR)
	e.GET("/v1/reservas/codigo/:code/ticket", h.Lookup.Ticket)
}

// RegisterAuth registers login, registration and the authenticated
// customer routes.
func RegisterAuth(e *echo.Echo, h Handlers, store *session.AuthStore) {
	g := e.Group("/v1/auth")
	g.POST("/login", h.Auth.Login)
	g.POST("/register", h.Auth.Register)
	g.POST("/logout", h.Auth.Logout)

	me := e.Group("/v1", middleware.SessionAuth(store))
	me.GET("/me", h.Auth.Me)
	me.GET("/mis-reservas", h.Lookup.Mine)
}

// RegisterAdmin registers the management console behind session auth and
// the ADMIN role.
func RegisterAdmin(e *echo.Echo, h Handlers, store *session.AuthStore) {
	g := e.Group("/v1/admin",
		middleware.SessionAuth(store),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/peliculas", h.Admin.Movies)
	g.POST("/peliculas", h.Admin.CreateMovie)
	g.PUT("/peliculas/:id", h.Admin.UpdateMovie)
	g.PATCH("/peliculas/:id/desactivar", h.Admin.DeactivateMovie)
	g.DELETE("/peliculas/:id", h.Admin.DeleteMovie)

	g.GET("/salas", h.Admin.Rooms)
	g.POST("/salas", h.Admin.CreateRoom)
	g.PUT("/salas/:id", h.Admin.UpdateRoom)
	g.PATCH("/salas/:id/desactivar", h.Admin.DeactivateRoom)
	g.DELETE("/salas/:id", h.Admin.DeleteRoom)

	g.GET("/funciones", h.Admin.Showtimes)
	g.POST("/funciones", h.Admin.CreateShowtime)
	g.PUT("/funciones/:id", h.Admin.UpdateShowtime)
	g.PATCH("/funciones/:id/desactivar", h.Admin.DeactivateShowtime)
	g.DELETE("/funciones/:id", h.Admin.DeleteShowtime)

	g.GET("/reservas", h.Admin.Bookings)
	g.POST("/reservas/:id/cancelar", h.Admin.CancelBooking)
}
