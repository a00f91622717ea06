package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/graph"
)

// GetGraphHandler returns the annotated graph under the current session
// filter. Annotation runs on a materialized copy so the stored graph keeps
// its raw titles and sizes.
func GetGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getGraphResponse struct {
		Message      string        `json:"message"`
		Nodes        []*graph.Node `json:"nodes,omitempty"`
		Edges        []*graph.Edge `json:"edges,omitempty"`
		FilterActive bool          `json:"filter_active"`
		NodeGroup    string        `json:"node_group,omitempty"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getGraphResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	entry, ok := app.Registry.Get(params.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, getGraphResponse{
			Message: "Graph not found",
		})
	}

	view := graph.NewView(entry.Graph, entry.Session.FilterNode)
	sub := view.Materialize()
	graph.Annotate(sub)

	return c.JSON(http.StatusOK, getGraphResponse{
		Message:      "Graph retrieved successfully",
		Nodes:        sub.Nodes(),
		Edges:        sub.Edges(),
		FilterActive: entry.Session.FilterActive,
		NodeGroup:    entry.Session.NodeGroup,
	})
}
