package prediction

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ModelClient sends a normalized feature vector to the fraud model and
// returns the predicted fraud probability
type ModelClient interface {
	Infer(ctx context.Context, features []float64) (float64, error)
}

// Normalizer standardizes a raw feature vector into the distribution the
// model expects
type Normalizer interface {
	Transform(raw []float64) ([]float64, error)
}

// Metrics records prediction pipeline outcomes
type Metrics interface {
	RecordPrediction(outcome string, duration time.Duration)
	RecordValidationFailure(field string)
}

// Prediction outcomes reported to metrics
const (
	outcomeFraud      = "fraud"
	outcomeLegitimate = "legitimate"
	outcomeRejected   = "rejected"
	outcomeError      = "error"
)

// Service runs the prediction pipeline: validate, normalize, infer, decide.
// Each call is synchronous and independent; the only blocking stage is the
// model call, bounded by the client's timeout and the request context.
type Service struct {
	validator  *Validator
	normalizer Normalizer
	model      ModelClient
	metrics    Metrics
	logger     *zap.Logger
	threshold  float64
}

// NewService creates a new prediction service
func NewService(
	normalizer Normalizer,
	model ModelClient,
	metrics Metrics,
	logger *zap.Logger,
	threshold float64,
) *Service {
	return &Service{
		validator:  NewValidator(),
		normalizer: normalizer,
		model:      model,
		metrics:    metrics,
		logger:     logger,
		threshold:  threshold,
	}
}

// Predict validates raw query parameters and runs them through the pipeline.
// A *ValidationError is returned for client-side problems; any other error
// means normalization or the model call failed.
func (s *Service) Predict(ctx context.Context, params map[string]string) (Result, error) {
	start := time.Now()

	features, problems := s.validator.Validate(params)
	if len(problems) > 0 {
		for _, p := range problems {
			s.metrics.RecordValidationFailure(p.Field)
		}
		s.metrics.RecordPrediction(outcomeRejected, time.Since(start))
		return Result{}, &ValidationError{Problems: problems}
	}

	normalized, err := s.normalizer.Transform(features)
	if err != nil {
		s.metrics.RecordPrediction(outcomeError, time.Since(start))
		return Result{}, fmt.Errorf("failed to normalize features: %w", err)
	}

	probability, err := s.model.Infer(ctx, normalized)
	if err != nil {
		s.metrics.RecordPrediction(outcomeError, time.Since(start))
		return Result{}, fmt.Errorf("model inference failed: %w", err)
	}

	// The model is expected to return a probability, but values outside
	// [0,1] are passed through rather than rejected. Logged so a
	// miscalibrated model is visible server-side.
	if probability < 0 || probability > 1 {
		s.logger.Warn("model returned probability outside [0,1]",
			zap.Float64("probability", probability))
	}

	result := Decide(probability, s.threshold)

	outcome := outcomeLegitimate
	if result.IsFraud {
		outcome = outcomeFraud
	}
	s.metrics.RecordPrediction(outcome, time.Since(start))

	s.logger.Debug("prediction completed",
		zap.Bool("is_fraud", result.IsFraud),
		zap.Float64("fraud_probability", result.FraudProbability),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}
