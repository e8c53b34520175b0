package v1

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/TypingSite/api/middleware"
	"github.com/thesrcielos/TypingSite/internal/game"
	"github.com/thesrcielos/TypingSite/internal/user"
)

type GameService interface {
	RecordGame(ctx context.Context, owner *user.User, req game.GameRequest) (*game.Game, error)
	GetUserStats(ctx context.Context, owner *user.User) (*game.UserStatsResponse, error)
}

type GameHandler struct {
	games GameService
}

func NewGameHandler(games GameService) *GameHandler {
	return &GameHandler{games: games}
}

// RegisterGameRoutes mounts the endpoints that act on the session owner's
// games. Both resolve the live user before the handler runs.
func RegisterGameRoutes(g *echo.Group, h *GameHandler, resolver middleware.UserResolver) {
	g.GET("/user-stats", h.GetUserStatsHandler, middleware.SetupSessionMiddleware(resolver, http.StatusUnauthorized))
	g.POST("/game", h.RecordGameHandler, middleware.SetupSessionMiddleware(resolver, http.StatusBadRequest))
}

type recordGameRequest struct {
	SessionID string           `json:"sessionId"`
	Game      game.GameRequest `json:"game"`
}

func (h *GameHandler) RecordGameHandler(c echo.Context) error {
	var req recordGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	saved, err := h.games.RecordGame(c.Request().Context(), middleware.CurrentUser(c), req.Game)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Game successfully saved",
		"game":    saved,
	})
}

func (h *GameHandler) GetUserStatsHandler(c echo.Context) error {
	stats, err := h.games.GetUserStats(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
