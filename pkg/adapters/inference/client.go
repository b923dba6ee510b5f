package inference

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when a prediction is attempted without a
// model URL. Detected at call time: the service starts without a backend,
// it just cannot predict.
var ErrNotConfigured = errors.New("model URL is not configured")

// tensorName is the input name the fraud model expects
const tensorName = "dense_input"

// Metrics records backend call outcomes
type Metrics interface {
	RecordBackendCall(status string, duration time.Duration)
}

// Config holds inference client configuration
type Config struct {
	// URL of the model server's infer endpoint
	URL string

	// RequestTimeout bounds a single inference call
	RequestTimeout time.Duration

	// InsecureTLS skips certificate verification against the backend.
	// Only safe for a model server reachable exclusively on a private
	// network and presenting a self-signed certificate.
	InsecureTLS bool

	Metrics Metrics
	Logger  *zap.Logger
}

// Client calls the fraud model over the v2 inference protocol. Each
// prediction maps to exactly one backend call: no retries, no caching.
type Client struct {
	url        string
	httpClient *http.Client
	metrics    Metrics
	logger     *zap.Logger
}

// inferRequest is the v2 protocol request envelope
type inferRequest struct {
	Inputs []inferInput `json:"inputs"`
}

// inferInput is one named input tensor
type inferInput struct {
	Name     string    `json:"name"`
	Shape    []int     `json:"shape"`
	Datatype string    `json:"datatype"`
	Data     []float64 `json:"data"`
}

// inferResponse is the v2 protocol response envelope
type inferResponse struct {
	Outputs []inferOutput `json:"outputs"`
}

// inferOutput is one named output tensor; only the data is consumed
type inferOutput struct {
	Data []float64 `json:"data"`
}

// NewClient creates a new inference client
func NewClient(cfg *Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		cfg.Logger.Warn("model backend certificate verification is disabled",
			zap.String("url", cfg.URL))
	}

	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Infer sends a normalized feature vector to the model and returns the
// predicted fraud probability: the first scalar of the first output tensor.
// A malformed response is an error, never a default probability.
func (c *Client) Infer(ctx context.Context, features []float64) (float64, error) {
	if c.url == "" {
		return 0, ErrNotConfigured
	}

	envelope := inferRequest{
		Inputs: []inferInput{
			{
				Name:     tensorName,
				Shape:    []int{1, len(features)},
				Datatype: "FP32",
				Data:     features,
			},
		},
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return 0, fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordBackendCall("error", time.Since(start))
		c.logger.Error("model backend call failed", zap.Error(err))
		return 0, fmt.Errorf("model backend call failed: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RecordBackendCall(strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		c.logger.Error("model backend returned non-success status",
			zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("model backend returned status %d", resp.StatusCode)
	}

	var parsed inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode inference response: %w", err)
	}

	if len(parsed.Outputs) == 0 || len(parsed.Outputs[0].Data) == 0 {
		return 0, fmt.Errorf("inference response has no output data")
	}

	return parsed.Outputs[0].Data[0], nil
}
