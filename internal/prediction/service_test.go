package prediction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gpillon/ai-fraud-serverless-function/internal/prediction"
)

type stubNormalizer struct {
	out []float64
	err error

	received []float64
}

func (n *stubNormalizer) Transform(raw []float64) ([]float64, error) {
	n.received = raw
	if n.err != nil {
		return nil, n.err
	}
	return n.out, nil
}

type stubModel struct {
	probability float64
	err         error

	received []float64
}

func (m *stubModel) Infer(_ context.Context, features []float64) (float64, error) {
	m.received = features
	if m.err != nil {
		return 0, m.err
	}
	return m.probability, nil
}

type recordingMetrics struct {
	outcomes []string
	fields   []string
}

func (m *recordingMetrics) RecordPrediction(outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) RecordValidationFailure(field string) {
	m.fields = append(m.fields, field)
}

func TestService_PredictFraud(t *testing.T) {
	normalizer := &stubNormalizer{out: []float64{2.5, 0.4, 1, 1, -1}}
	model := &stubModel{probability: 0.97}
	metrics := &recordingMetrics{}
	svc := prediction.NewService(normalizer, model, metrics, zap.NewNop(), 0.95)

	result, err := svc.Predict(context.Background(), validParams())

	require.NoError(t, err)
	assert.True(t, result.IsFraud)
	assert.Equal(t, 0.97, result.FraudProbability)

	// Raw features reach the normalizer, normalized features reach the model
	assert.Equal(t, []float64{10, 1.2, 1, 1, 0}, normalizer.received)
	assert.Equal(t, []float64{2.5, 0.4, 1, 1, -1}, model.received)
	assert.Equal(t, []string{"fraud"}, metrics.outcomes)
}

func TestService_PredictLegitimate(t *testing.T) {
	normalizer := &stubNormalizer{out: []float64{0, 0, 0, 0, 0}}
	model := &stubModel{probability: 0.2}
	metrics := &recordingMetrics{}
	svc := prediction.NewService(normalizer, model, metrics, zap.NewNop(), 0.95)

	result, err := svc.Predict(context.Background(), validParams())

	require.NoError(t, err)
	assert.False(t, result.IsFraud)
	assert.Equal(t, []string{"legitimate"}, metrics.outcomes)
}

func TestService_ValidationFailureShortCircuits(t *testing.T) {
	normalizer := &stubNormalizer{out: []float64{0, 0, 0, 0, 0}}
	model := &stubModel{probability: 0.97}
	metrics := &recordingMetrics{}
	svc := prediction.NewService(normalizer, model, metrics, zap.NewNop(), 0.95)

	params := validParams()
	params["pin"] = "2"

	_, err := svc.Predict(context.Background(), params)

	var validationErr *prediction.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Problems, 1)
	assert.Equal(t, "pin", validationErr.Problems[0].Field)

	// The model must never be called for a rejected request
	assert.Nil(t, model.received)
	assert.Equal(t, []string{"pin"}, metrics.fields)
	assert.Equal(t, []string{"rejected"}, metrics.outcomes)
}

func TestService_ModelFailure(t *testing.T) {
	normalizer := &stubNormalizer{out: []float64{0, 0, 0, 0, 0}}
	model := &stubModel{err: errors.New("connection refused")}
	metrics := &recordingMetrics{}
	svc := prediction.NewService(normalizer, model, metrics, zap.NewNop(), 0.95)

	_, err := svc.Predict(context.Background(), validParams())

	require.Error(t, err)
	var validationErr *prediction.ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"error"}, metrics.outcomes)
}

func TestService_NormalizerFailure(t *testing.T) {
	normalizer := &stubNormalizer{err: errors.New("length mismatch")}
	model := &stubModel{probability: 0.97}
	metrics := &recordingMetrics{}
	svc := prediction.NewService(normalizer, model, metrics, zap.NewNop(), 0.95)

	_, err := svc.Predict(context.Background(), validParams())

	require.Error(t, err)
	assert.Nil(t, model.received)
	assert.Equal(t, []string{"error"}, metrics.outcomes)
}
