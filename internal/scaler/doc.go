// Package scaler loads and applies the standardization parameters the fraud
// model was trained with.
//
// The parameters come from a static JSON artifact holding a mean and a scale
// per feature. The artifact is read once at process start and treated as
// read-only for the process lifetime; a missing or malformed artifact
// prevents the service from starting.
package scaler
