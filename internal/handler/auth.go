package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

// AuthHandler bridges browser sessions and the backend's JWT auth: login
// exchanges credentials for a backend token, which the gateway keeps
// server-side and represents to the browser as an opaque session cookie.
type AuthHandler struct {
	Backend *backend.Client
	Store   *session.AuthStore
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerReq struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmarPassword"`
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellido"`
	Phone           string `json:"telefono"`
}

// Login authenticates against the backend, stores the issued token in a
// gateway session and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password required"})
	}

	ctx := c.Request().Context()
	resp, err := h.Backend.Login(ctx, req.Username, req.Password)
	if err != nil {
		return writeErr(c, err)
	}

	user, err := h.Backend.WithToken(resp.Token).UserByUsername(ctx, resp.Username)
	if err != nil {
		// Token is good but the profile fetch failed; a thin profile from
		// the login response still lets the session work.
		user = &model.User{Username: resp.Username, Role: resp.Role}
	}

	id, err := h.Store.Login(resp.Token, *user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "backend issued an unverifiable token"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"usuario": user, "sesionId": id})
}

// Register creates a customer account.  Admin accounts are provisioned
// through the admin console, never here.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	switch {
	case req.Username == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username required"})
	case !emailRe.MatchString(req.Email):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email required"})
	case len(req.Password) < 6:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
	case req.Password != req.ConfirmPassword:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passwords do not match"})
	case req.FirstName == "" || req.LastName == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and last name required"})
	case req.Phone != "" && !phoneRe.MatchString(req.Phone):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone must be 10 digits"})
	}

	user, err := h.Backend.Register(c.Request().Context(), model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.RoleCustomer,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Logout drops the gateway session and expires the cookie.  Logging out
// without a session is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(middleware.SessionCookie); err == nil && ck.Value != "" {
		h.Store.Logout(ck.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the logged-in user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	auth := middleware.Auth(c)
	if auth == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
	}
	return c.JSON(http.StatusOK, auth.User)
}
