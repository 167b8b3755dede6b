package routes

import (
	"net/http"

	"github.com/01moynul/todo-api-golang/internal/handlers"
	"github.com/01moynul/todo-api-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells browsers which origin may call the API.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		// Preflight requests never reach a handler.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter binds every route to its handler. Each request runs exactly one
// handler; anything unmatched gets a JSON 404.
func SetupRouter(h *handlers.Handlers, allowedOrigin string) *gin.Engine {
	router := gin.New()
	// /todos/ is not /todos; never redirect between them.
	router.RedirectTrailingSlash = false
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(CORSMiddleware(allowedOrigin))

	router.GET("/ping", h.Ping)

	router.GET("/todos", h.ListTodos)
	router.POST("/todos", h.CreateTodo)
	router.PUT("/todos/:id", h.MarkTodoComplete)
	router.DELETE("/todos/:id", h.DeleteTodo)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
