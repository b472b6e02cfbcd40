package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/config"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/handler"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/notify"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/router"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

func main() {
	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	client := backend.New(cfg.BackendBaseURL, cfg.HTTPTimeout)
	sessions := session.NewManager(client, cfg.PollInterval, cfg.SessionTTL)
	authStore := session.NewAuthStore(cfg.JWTSecret)

	hub := notify.NewHub()
	go hub.Run()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var listener *notify.Listener
	if cfg.BackendWSURL != "" {
		listener = notify.NewListener(cfg.BackendWSURL, "gateway", cfg.WSRetryDelay, cfg.WSMaxRetries, hub.Dispatch)
		go listener.Run(ctx)
	} else {
		log.Println("BACKEND_WS_URL not set; notification feed disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	h := router.Handlers{
		Browse:   &handler.BrowseHandler{Backend: client},
		Seats:    &handler.SeatHandler{Sessions: sessions},
		Checkout: &handler.CheckoutHandler{Backend: client},
		Lookup:   &handler.LookupHandler{Backend: client},
		Auth:     &handler.AuthHandler{Backend: client, Store: authStore},
		Admin:    &handler.AdminHandler{Backend: client},
		Status:   &handler.StatusHandler{Listener: listener, Hub: hub},
		WS:       &handler.WSHandler{Hub: hub},
	}
	router.RegisterRoutes(e, h)
	router.RegisterPublic(e, h, config.LoadCacheConfig(), rdb, authStore)
	router.RegisterAuth(e, h, authStore)
	router.RegisterAdmin(e, h, authStore)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendBaseURL)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	sessions.Shutdown()
	if rdb != nil {
		_ = rdb.Close()
	}
}
