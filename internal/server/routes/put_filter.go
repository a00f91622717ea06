package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/graph"
	"fundgraph/pkg/session"
)

// UpdateFilterHandler replaces the session's neighborhood filter. The filter
// set is the two-hop closure of the selected labels; an empty selection
// clears the filter.
func UpdateFilterHandler(c echo.Context) error {
	type updateFilterParams struct {
		ID string `param:"id" validate:"required"`
	}

	type updateFilterBody struct {
		Group  string   `json:"group"`
		Labels []string `json:"labels"`
	}

	type updateFilterResponse struct {
		Message      string `json:"message"`
		FilterActive bool   `json:"filter_active"`
		Visible      int    `json:"visible,omitempty"`
	}

	params := new(updateFilterParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateFilterResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateFilterResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateFilterBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateFilterResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	entry, ok := app.Registry.Get(params.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, updateFilterResponse{
			Message: "Graph not found",
		})
	}

	if len(data.Labels) == 0 {
		app.Registry.UpdateSession(params.ID, func(s session.Session) session.Session {
			return s.WithoutFilter()
		})
		return c.JSON(http.StatusOK, updateFilterResponse{
			Message:      "Filter cleared",
			FilterActive: false,
		})
	}

	set := graph.TwoHopClosure(entry.Graph, data.Labels)
	app.Registry.UpdateSession(params.ID, func(s session.Session) session.Session {
		return s.WithFilter(data.Group, data.Labels, set)
	})

	return c.JSON(http.StatusOK, updateFilterResponse{
		Message:      "Filter updated successfully",
		FilterActive: true,
		Visible:      len(set),
	})
}
