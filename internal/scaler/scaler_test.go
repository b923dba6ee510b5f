package scaler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpillon/ai-fraud-serverless-function/internal/scaler"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scaler.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeArtifact(t, `{"mean": [5, 1, 0.5, 0.5, 0.5], "scale": [2, 0.5, 0.5, 0.5, 0.5]}`)

	params, err := scaler.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 0.5, 0.5, 0.5}, params.Mean)
	assert.Equal(t, []float64{2, 0.5, 0.5, 0.5, 0.5}, params.Scale)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scaler.Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeArtifact(t, `{"mean": [`)

	_, err := scaler.Load(path)

	require.Error(t, err)
}

func TestLoad_ShortVectors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "short mean", content: `{"mean": [1, 2], "scale": [1, 1, 1, 1, 1]}`},
		{name: "short scale", content: `{"mean": [1, 2, 3, 4, 5], "scale": [1]}`},
		{name: "missing scale", content: `{"mean": [1, 2, 3, 4, 5]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scaler.Load(writeArtifact(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_ZeroScale(t *testing.T) {
	path := writeArtifact(t, `{"mean": [1, 2, 3, 4, 5], "scale": [1, 1, 0, 1, 1]}`)

	_, err := scaler.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale[2]")
}

func TestTransform(t *testing.T) {
	params := &scaler.Params{
		Mean:  []float64{5, 1, 0.5, 0.5, 0.5},
		Scale: []float64{2, 0.5, 0.5, 0.5, 0.5},
	}

	normalized, err := params.Transform([]float64{10, 1.2, 1, 1, 0})

	require.NoError(t, err)
	require.Len(t, normalized, 5)
	assert.InDelta(t, 2.5, normalized[0], 1e-9)
	assert.InDelta(t, 0.4, normalized[1], 1e-9)
	assert.InDelta(t, 1, normalized[2], 1e-9)
	assert.InDelta(t, 1, normalized[3], 1e-9)
	assert.InDelta(t, -1, normalized[4], 1e-9)
}

func TestTransform_RoundTrip(t *testing.T) {
	params := &scaler.Params{
		Mean:  []float64{5, 1, 0.5, 0.5, 0.5},
		Scale: []float64{2, 0.5, 0.5, 0.5, 0.5},
	}

	raw := []float64{10, 1.2, 1, 1, 0}
	normalized, err := params.Transform(raw)
	require.NoError(t, err)

	for i, y := range normalized {
		assert.InDelta(t, raw[i], y*params.Scale[i]+params.Mean[i], 1e-9)
	}
}

func TestTransform_LengthMismatch(t *testing.T) {
	params := &scaler.Params{
		Mean:  []float64{5, 1, 0.5, 0.5, 0.5},
		Scale: []float64{2, 0.5, 0.5, 0.5, 0.5},
	}

	_, err := params.Transform([]float64{1, 2})

	require.Error(t, err)
}
