package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/user"
)

const (
	SessionCookieName = "session_id"
	SessionHeader     = "sessionid"
	UserContextKey    = "user"

	resolveFailureKey = "session_resolve_failure"
)

// Tokens are accepted as a bearer header, the legacy sessionid header, the
// session cookie or the sessionId field of a JSON body.
const sessionTokenLookup = "header:" + echo.HeaderAuthorization + ":Bearer ,header:" + SessionHeader + ",cookie:" + SessionCookieName

var errBodyTokenMissing = errors.New("missing sessionId in request body")

// UserResolver resolves a session token to the live user row.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

// SetupSessionMiddleware rejects requests without a live session using
// noSessionStatus and stores the resolved *user.User under UserContextKey.
// A storage failure on any candidate token fails the request with that error,
// even if a later candidate is merely unknown.
func SetupSessionMiddleware(resolver UserResolver, noSessionStatus int) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       UserContextKey,
		TokenLookup:      sessionTokenLookup,
		TokenLookupFuncs: []echomw.ValuesExtractor{bodyTokenExtractor},
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			u, err := resolver.CurrentUser(c.Request().Context(), auth)
			if err != nil {
				if isResolveFailure(err) && c.Get(resolveFailureKey) == nil {
					c.Set(resolveFailureKey, err)
				}
				return nil, err
			}
			return u, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if failure, ok := c.Get(resolveFailureKey).(error); ok {
				return failure
			}
			return c.JSON(noSessionStatus, echo.Map{
				"loggedIn": false,
				"message":  "No active session",
			})
		},
	})
}

// isResolveFailure reports errors that mean the session could not be checked,
// as opposed to there being no session.
func isResolveFailure(err error) bool {
	var appErr *apperrors.AppError
	return !errors.As(err, &appErr) || appErr.Code >= http.StatusInternalServerError
}

// CurrentUser returns the user stored by the session middleware.
func CurrentUser(c echo.Context) *user.User {
	u, _ := c.Get(UserContextKey).(*user.User)
	return u
}

// ExtractSessionTokens returns every distinct session token found in the
// request, in the order the session middleware tries them.
func ExtractSessionTokens(c echo.Context) []string {
	extractors, err := echomw.CreateExtractors(sessionTokenLookup)
	if err != nil {
		return nil
	}
	extractors = append([]echomw.ValuesExtractor{bodyTokenExtractor}, extractors...)

	var tokens []string
	seen := make(map[string]struct{})
	for _, extract := range extractors {
		values, err := extract(c)
		if err != nil {
			continue
		}
		for _, v := range values {
			if _, dup := seen[v]; v == "" || dup {
				continue
			}
			seen[v] = struct{}{}
			tokens = append(tokens, v)
		}
	}
	return tokens
}

// bodyTokenExtractor reads sessionId from a JSON body and puts the body back
// so handlers can still bind it.
func bodyTokenExtractor(c echo.Context) ([]string, error) {
	req := c.Request()
	if req.Body == nil || !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil, errBodyTokenMissing
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.SessionID == "" {
		return nil, errBodyTokenMissing
	}
	return []string{body.SessionID}, nil
}
