// Package prediction implements the fraud prediction pipeline.
//
// The service coordinates a prediction by:
//   - Validating the five transaction parameters against the feature metadata
//   - Standardizing the raw vector with the fitted scaler
//   - Calling the model backend for a fraud probability
//   - Classifying the probability against the decision threshold
//
// The validator reports every field problem at once so callers receive an
// itemized rejection rather than the first failure.
package prediction
