package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/01moynul/todo-api-golang/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrTodoNotFound is only produced when StrictNotFound is enabled.
var ErrTodoNotFound = errors.New("todo not found")

// DatabaseError wraps any failure to run a statement: connection failures,
// execution errors and constraint violations alike.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// MalformedRequestError means the body or a path parameter could not be
// parsed into the shape the handler expects.
type MalformedRequestError struct {
	Field string
	Msg   string
	Err   error
}

func (e *MalformedRequestError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + " " + e.Msg
}

func (e *MalformedRequestError) Unwrap() error { return e.Err }

// bindError turns a ShouldBindJSON failure into a MalformedRequestError with
// a message a client can act on.
func bindError(err error) *MalformedRequestError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &MalformedRequestError{
			Field: strings.ToLower(fe.Field()),
			Msg:   "is " + fe.Tag(),
			Err:   err,
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &MalformedRequestError{Msg: "request body must be a JSON object", Err: err}
		}
		return &MalformedRequestError{
			Field: typeErr.Field,
			Msg:   "must be of type " + typeErr.Type.String(),
			Err:   err,
		}
	}

	return &MalformedRequestError{Msg: "request body must be valid JSON", Err: err}
}

// respondError writes the status and JSON body for err and records it on the
// gin context. Database details are logged, never sent to the client.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var malformed *MalformedRequestError
	var dbErr *DatabaseError

	switch {
	case errors.As(err, &malformed):
		c.JSON(http.StatusBadRequest, gin.H{"error": malformed.Error()})
	case errors.Is(err, ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case errors.As(err, &dbErr):
		log.Printf("ERROR [%s] %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	default:
		log.Printf("ERROR [%s] %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
