// Package progress defines the progress update type shared between the sweep
// backends that emit updates and the presentation layers that consume them.
// Keeping it in a leaf package avoids an import cycle between the two.
package progress

// ProgressUpdate reports the fractional completion of one backend sweep.
type ProgressUpdate struct {
	// BackendIndex identifies which backend sent the update.
	BackendIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}
