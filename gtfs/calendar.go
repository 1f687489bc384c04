package gtfs

// ServiceSet holds the service IDs active on one date.
type ServiceSet map[string]struct{}

// Contains reports whether a service ID is in the set.
func (s ServiceSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Exception types in calendar_dates.txt.
const (
	exceptionAdded   = "1"
	exceptionRemoved = "2"
)

// ActiveServices resolves the set of services running on date. Phase one
// collects candidates from the weekly rules of calendar.txt; phase two
// applies the calendar_dates.txt overrides in file order, strictly after the
// full base pass. An exception can therefore remove a service the weekly
// rules granted, or add one no rule mentions.
//
// Both sources are optional: pass ok=false for an absent file. A present
// file whose header lacks a required column contributes nothing, same as an
// absent file. An empty result returns NoActiveServiceError.
func ActiveServices(calendarText string, calendarOK bool, exceptionsText string, exceptionsOK bool, date ServiceDate) (ServiceSet, error) {
	active := ServiceSet{}
	target := date.Compact()

	if calendarOK {
		t := parseTable(calendarText)
		sid, okID := t.column("service_id")
		day, okDay := t.column(date.WeekdayName())
		start, okStart := t.column("start_date")
		end, okEnd := t.column("end_date")
		if okID && okDay && okStart && okEnd {
			for _, row := range t.rows {
				if t.field(row, day) != "1" {
					continue
				}
				// YYYYMMDD is fixed-width decimal, so string order is date order.
				if t.field(row, start) <= target && target <= t.field(row, end) {
					active[t.field(row, sid)] = struct{}{}
				}
			}
		}
	}

	if exceptionsOK {
		t := parseTable(exceptionsText)
		sid, okID := t.column("service_id")
		day, okDate := t.column("date")
		kind, okKind := t.column("exception_type")
		if okID && okDate && okKind {
			for _, row := range t.rows {
				if t.field(row, day) != target {
					continue
				}
				switch t.field(row, kind) {
				case exceptionAdded:
					active[t.field(row, sid)] = struct{}{}
				case exceptionRemoved:
					delete(active, t.field(row, sid))
				}
			}
		}
	}

	if len(active) == 0 {
		return nil, &NoActiveServiceError{Date: date.Display()}
	}
	return active, nil
}
