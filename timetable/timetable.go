package timetable

import (
	"github.com/transitprint/corredor/gtfs"
	"github.com/transitprint/corredor/stations"
)

// ProgressReporter receives one human-readable description at the start of
// each pipeline phase.
type ProgressReporter interface {
	Phase(description string)
}

// ProgressFunc adapts a plain function to ProgressReporter.
type ProgressFunc func(string)

func (f ProgressFunc) Phase(description string) { f(description) }

// Direction selects one of the two classified trip lists.
type Direction int

const (
	Outbound Direction = iota // toward increasing corridor position
	Inbound
)

func (d Direction) String() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

// Placeholder fills cells where a trip does not stop.
const Placeholder = "-"

// Timetable is the result of filtering one feed down to one service date.
type Timetable struct {
	Date     string // DD/MM/YYYY
	Line     stations.Line
	Outbound []gtfs.Trip
	Inbound  []gtfs.Trip
}

// Build runs the pipeline for one date. The mandatory members are read up
// front so a missing trips.txt or stop_times.txt surfaces regardless of what
// calendar resolution would have produced. progress may be nil.
func Build(feed *gtfs.Feed, date gtfs.ServiceDate, line stations.Line, progress ProgressReporter) (*Timetable, error) {
	report := func(msg string) {
		if progress != nil {
			progress.Phase(msg)
		}
	}

	calText, calOK, err := feed.ReadFile(gtfs.FileCalendar)
	if err != nil {
		return nil, err
	}
	excText, excOK, err := feed.ReadFile(gtfs.FileCalendarDates)
	if err != nil {
		return nil, err
	}
	tripsText, ok, err := feed.ReadFile(gtfs.FileTrips)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &gtfs.MissingFeedFileError{Name: gtfs.FileTrips}
	}
	stopTimesText, ok, err := feed.ReadFile(gtfs.FileStopTimes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &gtfs.MissingFeedFileError{Name: gtfs.FileStopTimes}
	}

	report("Resolving service calendar")
	services, err := gtfs.ActiveServices(calText, calOK, excText, excOK, date)
	if err != nil {
		return nil, err
	}

	report("Filtering active trips")
	trips, err := gtfs.ActiveTrips(tripsText, services)
	if err != nil {
		return nil, err
	}

	report("Reading stop times")
	groups, err := gtfs.CollectStopEvents(stopTimesText, trips, line)
	if err != nil {
		return nil, err
	}

	report("Classifying trip directions")
	outbound, inbound := gtfs.Classify(groups, line)

	return &Timetable{
		Date:     date.Display(),
		Line:     line,
		Outbound: outbound,
		Inbound:  inbound,
	}, nil
}

// Trips returns one direction's classified trips.
func (t *Timetable) Trips(d Direction) []gtfs.Trip {
	if d == Outbound {
		return t.Outbound
	}
	return t.Inbound
}

// Rows renders one direction as table cells: one row per trip, one cell per
// station in line order, Placeholder where the trip does not stop.
func (t *Timetable) Rows(d Direction) [][]string {
	trips := t.Trips(d)
	rows := make([][]string, 0, len(trips))
	for _, trip := range trips {
		row := make([]string, len(t.Line))
		for i, st := range t.Line {
			if hhmm, ok := trip.Times[st.Code]; ok {
				row[i] = hhmm
			} else {
				row[i] = Placeholder
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Label returns the printable heading for one direction.
func (t *Timetable) Label(d Direction) string {
	if d == Outbound {
		return "Towards " + t.Line.Last().Name
	}
	return "Towards " + t.Line.First().Name
}
