// Package normalisers provides implementations of the Normaliser interface
// for exported question documents. Each normaliser flattens one format into
// the paragraph sequence the question reconstructor consumes.
//
// Normalisers are registered with the Registry at startup.
package normalisers
