// api/handlers/query_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/querygate/api/models"
	"github.com/Annany2002/querygate/internal/gateway"
	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// Asker answers a natural-language question with generated SQL and its rows.
type Asker interface {
	Ask(ctx context.Context, userInput string) (gateway.Result, error)
}

// QueryHandler holds dependencies for the query endpoint.
type QueryHandler struct {
	Gateway Asker
}

// NewQueryHandler creates a new QueryHandler with dependencies.
func NewQueryHandler(gw Asker) *QueryHandler {
	return &QueryHandler{Gateway: gw}
}

// Query handles POST /api/query.
func (h *QueryHandler) Query(c *gin.Context) {
	var req models.QueryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		customLog.Warnf("Query binding error: %v", err)
		_ = c.Error(fmt.Errorf("%w: %w", gateway.ErrInputRequired, err))
		return
	}

	result, err := h.Gateway.Ask(c.Request.Context(), req.UserInput)
	if err != nil {
		_ = c.Error(err) // ErrorHandler picks the status and message
		return
	}

	customLog.Printf("Query returned %d row(s)", len(result.Results))
	c.JSON(http.StatusOK, models.QueryResponse{
		Query:   result.Query,
		Results: result.Results,
	})
}
