// Package buffer holds the rolling sample histories of a live session: a
// capped display history that keeps only the newest samples and an unbounded
// recording of everything produced since the last reset.
package buffer
