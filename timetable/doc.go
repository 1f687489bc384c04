// Package timetable runs the full feed-to-timetable pipeline and shapes the
// result for rendering.
//
// Build wires the gtfs package's phases together in their required order:
// calendar resolution, active-trip filtering, stop-time collection, direction
// classification. One progress string is emitted before each phase so a
// caller can drive a UI; the wording is advisory, only the count and order
// are fixed.
//
// The pipeline is single-threaded on purpose. Feed members are small enough
// to scan in memory, each phase needs the previous one's output, and all
// inputs are immutable snapshots for the duration of one Build call.
package timetable
