package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"fundgraph/internal/server/middleware"
	"fundgraph/pkg/query"
)

// GetQuestionsHandler returns the sample question templates with the
// session's selected labels substituted in.
func GetQuestionsHandler(c echo.Context) error {
	type getQuestionsParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getQuestionsResponse struct {
		Message   string   `json:"message"`
		Questions []string `json:"questions,omitempty"`
	}

	params := new(getQuestionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getQuestionsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getQuestionsResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	entry, ok := app.Registry.Get(params.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, getQuestionsResponse{
			Message: "Graph not found",
		})
	}

	return c.JSON(http.StatusOK, getQuestionsResponse{
		Message:   "Questions retrieved successfully",
		Questions: query.SampleQuestions(entry.Session.SelectedLabels),
	})
}
