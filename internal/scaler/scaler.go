package scaler

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/gpillon/ai-fraud-serverless-function/internal/prediction"
)

// Params holds the standardization parameters fitted alongside the fraud
// model: one mean and one scale per feature, positionally aligned with
// prediction.Features. Loaded once at startup and never mutated, so it is
// safe for concurrent readers.
type Params struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Load reads standardization parameters from a JSON artifact with the schema
// {"mean": number[5], "scale": number[5]}. Any structural problem is a
// startup failure: the service must not serve predictions with a broken
// scaler.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler artifact: %w", err)
	}

	p := &Params{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse scaler artifact %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scaler artifact %s: %w", path, err)
	}

	return p, nil
}

// Validate checks the parameter vectors are complete and usable
func (p *Params) Validate() error {
	if len(p.Mean) != prediction.FeatureCount {
		return fmt.Errorf("mean has %d elements, expected %d", len(p.Mean), prediction.FeatureCount)
	}
	if len(p.Scale) != prediction.FeatureCount {
		return fmt.Errorf("scale has %d elements, expected %d", len(p.Scale), prediction.FeatureCount)
	}

	for i := range p.Mean {
		if math.IsNaN(p.Mean[i]) || math.IsInf(p.Mean[i], 0) {
			return fmt.Errorf("mean[%d] is not finite", i)
		}
		if math.IsNaN(p.Scale[i]) || math.IsInf(p.Scale[i], 0) {
			return fmt.Errorf("scale[%d] is not finite", i)
		}
		if p.Scale[i] == 0 {
			return fmt.Errorf("scale[%d] is zero", i)
		}
	}

	return nil
}

// Transform standardizes a raw feature vector elementwise:
// normalized[i] = (raw[i] - mean[i]) / scale[i]
func (p *Params) Transform(raw []float64) ([]float64, error) {
	if len(raw) != len(p.Mean) {
		return nil, fmt.Errorf("feature vector has %d elements, scaler expects %d", len(raw), len(p.Mean))
	}

	normalized := make([]float64, len(raw))
	for i, v := range raw {
		normalized[i] = (v - p.Mean[i]) / p.Scale[i]
	}

	return normalized, nil
}
