// Package realtime looks up live departure delays for corridor trips from a
// GTFS-Realtime TripUpdates feed.
//
// The lookup is optional and entirely separate from timetable generation: a
// static bundle plus a date is enough to print a timetable, and a realtime
// fetch failure never invalidates one. The CLI uses this package to annotate
// today's trips with their current delay.
package realtime
