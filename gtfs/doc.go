/*
Package gtfs reads a GTFS static bundle and filters it down to the trips
running on one service date along a fixed station corridor.

This package is data-source agnostic for the heavy lifting: the calendar
resolver and trip filter operate on raw member text, so callers can source
the text from a zip on disk, from bytes held in memory, or from fixtures in
tests. Feed is the thin zip wrapper used by the CLI.

# Basic Usage

	feed, err := gtfs.OpenFeed("renfe.zip")
	if err != nil {
	    log.Fatal(err)
	}
	defer feed.Close()

	date, _ := gtfs.ParseServiceDate("2024-06-03")

	calText, calOK, _ := feed.ReadFile(gtfs.FileCalendar)
	excText, excOK, _ := feed.ReadFile(gtfs.FileCalendarDates)
	services, err := gtfs.ActiveServices(calText, calOK, excText, excOK, date)

	tripsText, _, _ := feed.ReadFile(gtfs.FileTrips)
	stText, _, _ := feed.ReadFile(gtfs.FileStopTimes)
	outbound, inbound, err := gtfs.FilterTrips(services, tripsText, stText, stations.Corridor())

# Service resolution

ActiveServices combines the weekly rules of calendar.txt with the per-date
overrides of calendar_dates.txt. Both files are optional; an exception can
activate a service that no weekly rule mentions. An empty result is an error
(NoActiveServiceError) because nothing downstream can run without it.

# Trip filtering

FilterTrips keeps trips whose service is active and which touch at least two
corridor stations, classifies each by direction of travel along the corridor,
and returns both direction lists ordered by first-stop departure time.
Departure times past midnight keep counting hours upward (25:10:00), so the
plain string ordering used here keeps late-night trains at the end of the day
they belong to.
*/
package gtfs
