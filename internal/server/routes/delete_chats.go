package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/session"
)

// DeleteChatHandler clears the chat history of a graph's session. The
// filter, if any, stays in place.
func DeleteChatHandler(c echo.Context) error {
	type deleteChatParams struct {
		ID string `param:"id" validate:"required"`
	}

	params := new(deleteChatParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	app := c.(*middleware.AppContext).App
	if _, ok := app.Registry.UpdateSession(params.ID, func(s session.Session) session.Session {
		return s.WithoutHistory()
	}); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Graph not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Chat history deleted"})
}
