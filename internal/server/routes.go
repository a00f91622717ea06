package server

import (
	"fundgraph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Graph routes
	apiRoutes.POST("/graphs", routes.CreateGraphHandler)
	apiRoutes.GET("/graphs/:id", routes.GetGraphHandler)
	apiRoutes.DELETE("/graphs/:id", routes.DeleteGraphHandler)
	apiRoutes.GET("/graphs/:id/groups", routes.GetGroupsHandler)
	apiRoutes.PUT("/graphs/:id/filter", routes.UpdateFilterHandler)

	// Graph query routes
	apiRoutes.POST("/graphs/:id/query", routes.QueryGraphHandler)
	apiRoutes.GET("/graphs/:id/questions", routes.GetQuestionsHandler)
	apiRoutes.DELETE("/graphs/:id/chat", routes.DeleteChatHandler)
}
