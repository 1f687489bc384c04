package gtfs

import (
	"sort"
	"strconv"

	"github.com/transitprint/corredor/stations"
)

// StopEvent is one stop_times.txt row kept for a corridor trip.
type StopEvent struct {
	StopID    string
	Departure string // HH:MM:SS; hours may exceed 23 for post-midnight runs
	Sequence  int
}

// Trip is one train serving at least two corridor stations on the target
// date.
type Trip struct {
	ID        string
	Times     map[string]string // stop code -> HH:MM departure
	FirstPos  int               // corridor position of the first stop in sequence order
	LastPos   int               // corridor position of the last stop
	Departure string            // raw HH:MM:SS at the first corridor stop, used as sort key
}

// Outbound reports whether the trip runs toward increasing corridor
// position.
func (t Trip) Outbound() bool { return t.FirstPos < t.LastPos }

// ActiveTrips parses trips.txt and returns the IDs of trips whose service is
// in services.
func ActiveTrips(tripsText string, services ServiceSet) (map[string]struct{}, error) {
	t := parseTable(tripsText)
	tid, ok := t.column("trip_id")
	if !ok {
		return nil, &MalformedColumnError{File: FileTrips, Column: "trip_id"}
	}
	sid, ok := t.column("service_id")
	if !ok {
		return nil, &MalformedColumnError{File: FileTrips, Column: "service_id"}
	}
	trips := map[string]struct{}{}
	for _, row := range t.rows {
		if services.Contains(t.field(row, sid)) {
			trips[t.field(row, tid)] = struct{}{}
		}
	}
	return trips, nil
}

// CollectStopEvents scans stop_times.txt and groups the corridor stop events
// of active trips by trip ID, preserving file order within each group. Rows
// for other trips or stops outside the corridor are skipped; a stop_sequence
// that fails to parse aborts the scan.
func CollectStopEvents(stopTimesText string, trips map[string]struct{}, line stations.Line) (map[string][]StopEvent, error) {
	t := parseTable(stopTimesText)
	var idx [4]int
	for i, col := range []string{"trip_id", "departure_time", "stop_id", "stop_sequence"} {
		n, ok := t.column(col)
		if !ok {
			return nil, &MalformedColumnError{File: FileStopTimes, Column: col}
		}
		idx[i] = n
	}
	tid, dep, sid, seq := idx[0], idx[1], idx[2], idx[3]

	codes := line.Codes()
	groups := map[string][]StopEvent{}
	for _, row := range t.rows {
		tripID := t.field(row, tid)
		if _, ok := trips[tripID]; !ok {
			continue
		}
		stopID := t.field(row, sid)
		if _, ok := codes[stopID]; !ok {
			continue
		}
		seqStr := t.field(row, seq)
		n, err := strconv.Atoi(seqStr)
		if err != nil {
			return nil, &ParseError{File: FileStopTimes, Field: "stop_sequence", Value: seqStr, Err: err}
		}
		groups[tripID] = append(groups[tripID], StopEvent{
			StopID:    stopID,
			Departure: t.field(row, dep),
			Sequence:  n,
		})
	}
	return groups, nil
}

// Classify orders each trip's events by stop_sequence, drops trips touching
// fewer than two corridor stations, and splits the rest by direction of
// travel. Both lists come back ordered by first-stop departure time.
func Classify(groups map[string][]StopEvent, line stations.Line) (outbound, inbound []Trip) {
	for id, events := range groups {
		// Stable: duplicate sequence numbers keep file order.
		sort.SliceStable(events, func(i, j int) bool { return events[i].Sequence < events[j].Sequence })
		if len(events) < 2 {
			continue
		}
		first, okFirst := line.PositionByCode(events[0].StopID)
		last, okLast := line.PositionByCode(events[len(events)-1].StopID)
		if !okFirst || !okLast {
			// Collection already filtered on corridor codes; drop the trip
			// rather than misclassify it.
			continue
		}
		times := make(map[string]string, len(events))
		for _, ev := range events {
			// Later duplicates of a stop code win.
			times[ev.StopID] = shortTime(ev.Departure)
		}
		trip := Trip{
			ID:        id,
			Times:     times,
			FirstPos:  first,
			LastPos:   last,
			Departure: events[0].Departure,
		}
		if trip.Outbound() {
			outbound = append(outbound, trip)
		} else {
			inbound = append(inbound, trip)
		}
	}
	sortByDeparture(outbound)
	sortByDeparture(inbound)
	return outbound, inbound
}

// FilterTrips runs the three filtering phases in order: active trip lookup,
// corridor stop-event collection, direction classification.
func FilterTrips(services ServiceSet, tripsText, stopTimesText string, line stations.Line) (outbound, inbound []Trip, err error) {
	trips, err := ActiveTrips(tripsText, services)
	if err != nil {
		return nil, nil, err
	}
	groups, err := CollectStopEvents(stopTimesText, trips, line)
	if err != nil {
		return nil, nil, err
	}
	outbound, inbound = Classify(groups, line)
	return outbound, inbound, nil
}

func sortByDeparture(trips []Trip) {
	sort.SliceStable(trips, func(i, j int) bool { return trips[i].Departure < trips[j].Departure })
}

// shortTime truncates HH:MM:SS to HH:MM. Zero-padded times order correctly
// as strings, including hours past 24:00.
func shortTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
