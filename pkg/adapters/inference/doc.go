// Package inference provides the HTTP client for the fraud model backend.
//
// The backend speaks the v2 inference protocol: a named-tensor request with
// a single dense_input of shape [1,5], answered with named output tensors
// whose first scalar is the fraud probability.
package inference
