package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	calc "github.com/smartcalc/calcd"
	"github.com/smartcalc/calcd/formatter"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Success    bool    `json:"success"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Success bool   `json:"success"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "calcd expression evaluation service",
		"version": calc.Version,
		"endpoints": gin.H{
			"/api/evaluate":  "POST - evaluate an expression",
			"/api/functions": "GET - list available functions",
			"/api/health":    "GET - health check",
		},
	})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.calc.Evaluate(req.Expression)
	if err != nil {
		var cerr *calc.Error
		if errors.As(err, &cerr) {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error: cerr.Msg,
				Kind:  cerr.Kind.String(),
			})
			return
		}
		// The engine only returns typed errors; anything else is a fault.
		s.logger.Error("evaluation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, evaluateResponse{
		Expression: req.Expression,
		Result:     formatter.Shape(result),
		Success:    true,
	})
}

func (s *Server) handleFunctions(c *gin.Context) {
	catalog := calc.Catalog()
	functions := make([]gin.H, 0, len(catalog))
	for _, f := range catalog {
		functions = append(functions, gin.H{
			"name":        f.Name,
			"arity":       f.Arity,
			"category":    f.Category,
			"description": f.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"functions": functions,
		"message":   "available mathematical functions",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "calcd",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleClearHistory exists for frontend integration; the backend stores
// nothing, so there is nothing to clear.
func (s *Server) handleClearHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "history cleared (state lives in the client)",
		"success": true,
	})
}
