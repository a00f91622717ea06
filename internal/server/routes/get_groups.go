package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/graph"
)

// GetGroupsHandler returns the group index of a graph: every node group with
// its members and their neighbor counts, for building selection UIs.
func GetGroupsHandler(c echo.Context) error {
	type getGroupsParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getGroupsResponse struct {
		Message string                        `json:"message"`
		Groups  map[string][]graph.GroupEntry `json:"groups,omitempty"`
	}

	params := new(getGroupsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGroupsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGroupsResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	entry, ok := app.Registry.Get(params.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, getGroupsResponse{
			Message: "Graph not found",
		})
	}

	return c.JSON(http.StatusOK, getGroupsResponse{
		Message: "Groups retrieved successfully",
		Groups:  graph.GroupIndex(entry.Graph),
	})
}
