package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/ai"
	"fundgraph/pkg/graph"
	"fundgraph/pkg/logger"
	"fundgraph/pkg/query"
	"fundgraph/pkg/session"
)

// QueryGraphHandler answers a question over the filtered graph view and
// appends the exchange to the session's chat history.
func QueryGraphHandler(c echo.Context) error {
	type queryGraphParams struct {
		ID string `param:"id" validate:"required"`
	}

	type queryGraphBody struct {
		Question string `json:"question" validate:"required"`
		Model    string `json:"model"`
	}

	type queryGraphResponse struct {
		Message string           `json:"message"`
		Answer  string           `json:"answer,omitempty"`
		Metrics *ai.ModelMetrics `json:"metrics,omitempty"`
	}

	params := new(queryGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request params",
		})
	}

	data := new(queryGraphBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	entry, ok := app.Registry.Get(params.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, queryGraphResponse{
			Message: "Graph not found",
		})
	}

	opts := []query.QueryOption{}
	if data.Model != "" {
		opts = append(opts, query.WithModel(data.Model))
	}

	view := graph.NewView(entry.Graph, entry.Session.FilterNode)
	queryClient := query.NewGraphQueryClient(app.AiClient, view, opts)

	ctx := c.Request().Context()
	answer, err := queryClient.Query(ctx, data.Question, entry.Session.History)
	if err != nil {
		logger.Error("[Query] graph error", "err", err)
		return c.JSON(http.StatusInternalServerError, queryGraphResponse{
			Message: "Internal server error",
		})
	}

	app.Registry.UpdateSession(params.ID, func(s session.Session) session.Session {
		return s.WithAnswer(data.Question, answer)
	})

	metrics := app.AiClient.GetMetrics()

	return c.JSON(http.StatusOK, queryGraphResponse{
		Message: "Query answered successfully",
		Answer:  answer,
		Metrics: &metrics,
	})
}
