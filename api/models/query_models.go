// api/models/query_models.go
package models

// Fixed client-facing error messages. Details stay in the server log.
const (
	MsgInputRequired   = "User input is required."
	MsgNotSelect       = "Generated query is not a valid SELECT statement."
	MsgProcessFailed   = "Failed to process your request."
	MsgTooManyRequests = "Too many requests. Please wait."
)

// QueryRequest defines the structure for the natural-language query body
type QueryRequest struct {
	UserInput string `json:"userInput" binding:"required"`
}

// QueryResponse carries the generated SQL and the rows it returned
type QueryResponse struct {
	Query   string           `json:"query"`
	Results []map[string]any `json:"results"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
