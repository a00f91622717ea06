package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
)

// DeleteGraphHandler discards a stored graph and its session.
func DeleteGraphHandler(c echo.Context) error {
	type deleteGraphParams struct {
		ID string `param:"id" validate:"required"`
	}

	params := new(deleteGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	app := c.(*middleware.AppContext).App
	if !app.Registry.Delete(params.ID) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Graph not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Graph deleted successfully"})
}
