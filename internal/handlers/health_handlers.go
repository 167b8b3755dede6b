package handlers

import (
	"log"
	"net/http"

	"github.com/01moynul/todo-api-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Ping is the handler for GET /ping
// It reports 503 when the pool cannot reach the database.
func (h *Handlers) Ping(c *gin.Context) {
	if err := h.DB.PingContext(c.Request.Context()); err != nil {
		dbErr := &DatabaseError{Op: "ping", Err: err}
		_ = c.Error(dbErr)
		log.Printf("ERROR [%s] %v", middleware.GetRequestID(c), dbErr)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong!"})
}
