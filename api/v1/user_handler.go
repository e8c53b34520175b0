package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/TypingSite/api/middleware"
	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/session"
	"github.com/thesrcielos/TypingSite/internal/user"
)

const INVALID_REQUEST = "invalid request"

type AuthService interface {
	Signup(ctx context.Context, req user.SignupRequest) (*user.User, error)
	Login(ctx context.Context, req user.LoginRequest) (*user.LoginResult, error)
	ResolveSession(ctx context.Context, token string) (*session.Snapshot, error)
	Logout(ctx context.Context, token string) error
}

// CookieConfig controls the session cookie set on login.
type CookieConfig struct {
	MaxAge time.Duration
	Secure bool
}

type UserHandler struct {
	auth   AuthService
	cookie CookieConfig
}

func NewUserHandler(auth AuthService, cookie CookieConfig) *UserHandler {
	return &UserHandler{auth: auth, cookie: cookie}
}

// RegisterUserRoutes mounts the auth endpoints. credentialMiddleware only
// wraps sign-up and login.
func RegisterUserRoutes(g *echo.Group, h *UserHandler, credentialMiddleware ...echo.MiddlewareFunc) {
	g.POST("/sign-up", h.SignupHandler, credentialMiddleware...)
	g.POST("/login", h.LoginHandler, credentialMiddleware...)
	g.POST("/session", h.SessionHandler)
	g.POST("/logout", h.LogoutHandler)
}

func (h *UserHandler) SignupHandler(c echo.Context) error {
	var req user.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if _, err := h.auth.Signup(c.Request().Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			msg := fmt.Sprintf("The email %s already exists in the system, please provide a unique email or navigate to the login page.", req.Email)
			return apperrors.NewAppError(http.StatusConflict, msg, err)
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User successfully created",
	})
}

func (h *UserHandler) LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	result, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(result.SessionID, int(h.cookie.MaxAge.Seconds())))
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "Login successful",
		"sessionId": result.SessionID,
		"user":      result.User,
	})
}

type sessionUser struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionHandler reports whether the request carries a live session. It
// answers from the login-time snapshot and never reads the user table. Every
// candidate token is tried, as the session middleware does.
func (h *UserHandler) SessionHandler(c echo.Context) error {
	var failure error
	for _, token := range middleware.ExtractSessionTokens(c) {
		snapshot, err := h.auth.ResolveSession(c.Request().Context(), token)
		if err != nil {
			if failure == nil {
				failure = err
			}
			continue
		}
		if snapshot != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"loggedIn": true,
				"message":  "Active session available",
				"user": sessionUser{
					Username:  snapshot.Username,
					Email:     snapshot.Email,
					CreatedAt: snapshot.CreatedAt,
				},
			})
		}
	}
	if failure != nil {
		return failure
	}

	return c.JSON(http.StatusOK, echo.Map{
		"loggedIn": false,
		"message":  "No active session available",
	})
}

// LogoutHandler revokes every live session among the request's tokens.
func (h *UserHandler) LogoutHandler(c echo.Context) error {
	var failure error
	revoked := false
	for _, token := range middleware.ExtractSessionTokens(c) {
		err := h.auth.Logout(c.Request().Context(), token)
		switch {
		case err == nil:
			revoked = true
		case errors.Is(err, apperrors.ErrSessionNotFound):
		case failure == nil:
			failure = err
		}
	}
	if failure != nil {
		return failure
	}
	if !revoked {
		return apperrors.ErrSessionNotFound
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *UserHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
