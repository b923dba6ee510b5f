package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gpillon/ai-fraud-serverless-function/internal/prediction"
)

// welcomeMessage is the static root response
const welcomeMessage = "Welcome to Fraud Detection API. Visit /docs for the interactive documentation"

// ErrorResponse is the JSON body for failed requests. Details are only
// present for validation failures; server-side failures stay generic.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []prediction.FieldError `json:"details,omitempty"`
}

// handleRoot handles requests to the API root
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": welcomeMessage,
	})
}

// handleHealth handles health check requests. Deliberately shallow: it
// reports process liveness and does not probe the model backend.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handlePredict runs the prediction pipeline for one transaction
func (s *Server) handlePredict(c *gin.Context) {
	params := make(map[string]string, prediction.FeatureCount)
	for _, f := range prediction.Features {
		if value, ok := c.GetQuery(f.Name); ok {
			params[f.Name] = value
		}
	}

	result, err := s.service.Predict(c.Request.Context(), params)
	if err != nil {
		var validationErr *prediction.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid input parameters",
				Details: validationErr.Problems,
			})
			return
		}

		// Configuration and backend failures are logged with detail but
		// never exposed to the caller
		s.logger.Error("prediction failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
