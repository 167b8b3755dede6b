package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/01moynul/todo-api-golang/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	insertTodoQuery   = "INSERT INTO todos (title, completed) VALUES (?, false)"
	selectTodosQuery  = "SELECT id, title, completed FROM todos"
	completeTodoQuery = "UPDATE todos SET completed = true WHERE id = ?"
	deleteTodoQuery   = "DELETE FROM todos WHERE id = ?"
)

// CreateTodo is the handler for POST /todos
// Any 'completed' value in the body is ignored; the row is always inserted incomplete.
func (h *Handlers) CreateTodo(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.CreateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	// 2. --- Save to Database ---
	result, err := h.DB.ExecContext(c.Request.Context(), insertTodoQuery, input.Title)
	if err != nil {
		respondError(c, &DatabaseError{Op: "insert todo", Err: err})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		respondError(c, &DatabaseError{Op: "read new todo id", Err: err})
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusCreated, models.Todo{
		ID:        uint64(id),
		Title:     input.Title,
		Completed: false,
	})
}

// ListTodos is the handler for GET /todos
// Rows come back in whatever order the database returns them.
func (h *Handlers) ListTodos(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(), selectTodosQuery)
	if err != nil {
		respondError(c, &DatabaseError{Op: "list todos", Err: err})
		return
	}
	defer rows.Close()

	// Start non-nil so an empty table encodes as [] rather than null.
	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Completed); err != nil {
			respondError(c, &DatabaseError{Op: "scan todo row", Err: err})
			return
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		respondError(c, &DatabaseError{Op: "iterate todo rows", Err: err})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// MarkTodoComplete is the handler for PUT /todos/:id
// Marking an already-complete or unknown todo still succeeds unless StrictNotFound is set.
func (h *Handlers) MarkTodoComplete(c *gin.Context) {
	h.execByID(c, "complete todo", completeTodoQuery)
}

// DeleteTodo is the handler for DELETE /todos/:id
func (h *Handlers) DeleteTodo(c *gin.Context) {
	h.execByID(c, "delete todo", deleteTodoQuery)
}

// execByID runs a single-row statement keyed by the :id path parameter.
func (h *Handlers) execByID(c *gin.Context, op, query string) {
	// 1. --- Parse ID ---
	id, err := parseTodoID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// 2. --- Execute Statement ---
	result, err := h.DB.ExecContext(c.Request.Context(), query, id)
	if err != nil {
		respondError(c, &DatabaseError{Op: op, Err: err})
		return
	}

	// 3. --- Check Rows Affected (strict mode only) ---
	if h.StrictNotFound {
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			respondError(c, &DatabaseError{Op: "check affected rows", Err: err})
			return
		}
		if rowsAffected == 0 {
			respondError(c, fmt.Errorf("%s %d: %w", op, id, ErrTodoNotFound))
			return
		}
	}

	c.Status(http.StatusOK)
}

// parseTodoID accepts ids up to the largest value a driver can bind as int64.
func parseTodoID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, &MalformedRequestError{Field: "id", Msg: "must be an unsigned integer", Err: err}
	}
	return id, nil
}
