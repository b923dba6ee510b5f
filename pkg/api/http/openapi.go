package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpillon/ai-fraud-serverless-function/internal/prediction"
)

// openAPIDocument builds the OpenAPI 3 description of the API from the
// feature metadata, so the documented parameters can never drift from the
// validated ones.
func openAPIDocument() gin.H {
	parameters := make([]gin.H, 0, len(prediction.Features))
	for _, f := range prediction.Features {
		var schema gin.H
		if f.Binary {
			schema = gin.H{"type": "integer", "enum": []int{0, 1}}
		} else {
			schema = gin.H{"type": "number"}
		}

		parameters = append(parameters, gin.H{
			"name":        f.Name,
			"in":          "query",
			"required":    true,
			"description": f.Description,
			"example":     f.Example,
			"schema":      schema,
		})
	}

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title": "Fraud Detection API",
			"description": "Fraud detection for credit card transactions. " +
				"A machine learning model predicts whether a transaction is fraudulent " +
				"based on five transaction features.",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/predict": gin.H{
				"get": gin.H{
					"summary": "Predict fraud probability for a transaction",
					"description": "Predicts the probability of fraud for a credit card transaction. " +
						"Example values - normal transaction: distance=0, ratio_to_median=1, pin=1, chip=1, online=0; " +
						"suspicious transaction: distance=100, ratio_to_median=1.2, pin=0, chip=0, online=1.",
					"parameters": parameters,
					"responses": gin.H{
						"200": gin.H{
							"description": "Prediction result",
							"content": gin.H{
								"application/json": gin.H{
									"schema": gin.H{
										"type": "object",
										"properties": gin.H{
											"is_fraud":          gin.H{"type": "boolean"},
											"fraud_probability": gin.H{"type": "number"},
										},
										"required": []string{"is_fraud", "fraud_probability"},
									},
								},
							},
						},
						"400": gin.H{
							"description": "Invalid input parameters",
							"content": gin.H{
								"application/json": gin.H{
									"schema": errorSchema(true),
								},
							},
						},
						"500": gin.H{
							"description": "Internal server error",
							"content": gin.H{
								"application/json": gin.H{
									"schema": errorSchema(false),
								},
							},
						},
					},
				},
			},
			"/health": gin.H{
				"get": gin.H{
					"summary":     "Health check endpoint",
					"description": "Returns the health status of the API",
					"responses": gin.H{
						"200": gin.H{
							"description": "Service is healthy",
							"content": gin.H{
								"application/json": gin.H{
									"schema": gin.H{
										"type": "object",
										"properties": gin.H{
											"status": gin.H{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
			"/": gin.H{
				"get": gin.H{
					"summary":     "API root",
					"description": "Returns a welcome message pointing at the documentation",
					"responses": gin.H{
						"200": gin.H{
							"description": "Welcome message",
							"content": gin.H{
								"application/json": gin.H{
									"schema": gin.H{
										"type": "object",
										"properties": gin.H{
											"message": gin.H{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// errorSchema describes the error response body, with or without the
// per-field details list
func errorSchema(withDetails bool) gin.H {
	properties := gin.H{
		"error": gin.H{"type": "string"},
	}
	if withDetails {
		properties["details"] = gin.H{
			"type": "array",
			"items": gin.H{
				"type": "object",
				"properties": gin.H{
					"field":  gin.H{"type": "string"},
					"reason": gin.H{"type": "string"},
				},
			},
		}
	}

	return gin.H{
		"type":       "object",
		"properties": properties,
	}
}

// docsPage is a minimal Swagger UI shell driven by the served OpenAPI
// document
const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Fraud Detection API - Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/openapi.json",
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>`

// handleOpenAPI serves the machine-readable API description
func (s *Server) handleOpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

// handleDocs serves the interactive documentation UI
func (s *Server) handleDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}
