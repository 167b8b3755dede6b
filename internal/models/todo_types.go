package models

// Todo defines the struct for the 'todos' table.
// The id is always assigned by the database, never by the API.
type Todo struct {
	ID        uint64 `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Completed bool   `json:"completed" db:"completed"`
}

// CreateTodoInput is the JSON body accepted by POST /todos.
// A 'completed' field may be sent but is ignored; new todos always start incomplete.
type CreateTodoInput struct {
	Title string `json:"title" binding:"required"`
}
