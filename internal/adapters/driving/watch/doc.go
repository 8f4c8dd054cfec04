// Package watch re-runs an action whenever a single file changes.
//
// The parent directory is watched rather than the file itself, so editors
// and exporters that replace the file through a rename are still seen.
// Bursts of events are debounced into one run.
package watch
