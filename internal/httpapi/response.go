package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError is the error body of a failed reply.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data, Timestamp: time.Now()})
}

func failure(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{
		Error:     &APIError{Code: code, Message: message},
		Timestamp: time.Now(),
	})
}

func notFound(c *gin.Context, what string) {
	failure(c, http.StatusNotFound, "not_found", what+" not found")
}
