package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the acting username resolved by the upstream
// auth layer. The lifecycle receives it as an explicit parameter;
// there is no implicit current-user state.
const ActorHeader = "Ax-Actor-Id"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func actorID(c echo.Context) string {
	return c.Request().Header.Get(ActorHeader)
}
