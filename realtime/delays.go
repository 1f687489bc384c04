package realtime

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Delays decodes a TripUpdates feed and returns each trip's current delay in
// seconds. A trip-level delay wins when present; otherwise the first stop
// update carrying a departure or arrival delay is used. Trips without any
// delay information are absent from the map. Nil input yields a nil map.
func Delays(b []byte) (map[string]int32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode trip updates: %w", err)
	}

	delays := map[string]int32{}
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil || tu.Trip.TripId == nil {
			continue
		}
		tripID := *tu.Trip.TripId
		if tu.Delay != nil {
			delays[tripID] = *tu.Delay
			continue
		}
		for _, stu := range tu.StopTimeUpdate {
			if stu.Departure != nil && stu.Departure.Delay != nil {
				delays[tripID] = *stu.Departure.Delay
				break
			}
			if stu.Arrival != nil && stu.Arrival.Delay != nil {
				delays[tripID] = *stu.Arrival.Delay
				break
			}
		}
	}
	return delays, nil
}
