package prediction

// Result is the outcome of a fraud prediction
type Result struct {
	IsFraud          bool    `json:"is_fraud"`
	FraudProbability float64 `json:"fraud_probability"`
}

// Decide classifies a fraud probability against the decision threshold.
// The comparison is strict: a probability exactly equal to the threshold is
// not fraud.
func Decide(probability, threshold float64) Result {
	return Result{
		IsFraud:          probability > threshold,
		FraudProbability: probability,
	}
}
