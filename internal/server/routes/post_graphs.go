package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/graph"
	"fundgraph/pkg/gtr"
	"fundgraph/pkg/logger"
)

// CreateGraphHandler runs the full acquisition pipeline for a search term
// and registers the resulting graph.
func CreateGraphHandler(c echo.Context) error {
	type createGraphBody struct {
		Term    string `json:"term" validate:"required"`
		Results int    `json:"results" validate:"omitempty,min=1"`
	}

	type createGraphResponse struct {
		Message string                        `json:"message"`
		ID      string                        `json:"id,omitempty"`
		Nodes   int                           `json:"nodes,omitempty"`
		Edges   int                           `json:"edges,omitempty"`
		Groups  map[string][]graph.GroupEntry `json:"groups,omitempty"`
	}

	data := new(createGraphBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createGraphResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createGraphResponse{
			Message: "Invalid request body",
		})
	}
	if data.Results == 0 {
		data.Results = gtr.PageSize
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	records, err := app.Gtr.Collect(ctx, data.Term, data.Results)
	if err != nil {
		if errors.Is(err, gtr.ErrNoResults) {
			return c.JSON(http.StatusBadGateway, createGraphResponse{
				Message: "request failed",
			})
		}
		logger.Error("[Graph] collect error", "term", data.Term, "err", err)
		return c.JSON(http.StatusInternalServerError, createGraphResponse{
			Message: "Internal server error",
		})
	}

	g := graph.Build(records)

	id, err := app.Registry.Put(g)
	if err != nil {
		logger.Error("[Graph] register error", "err", err)
		return c.JSON(http.StatusInternalServerError, createGraphResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createGraphResponse{
		Message: "Graph created successfully",
		ID:      id,
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
		Groups:  graph.GroupIndex(g),
	})
}
