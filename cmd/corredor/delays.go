package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitprint/corredor/gtfs"
	"github.com/transitprint/corredor/realtime"
	"github.com/transitprint/corredor/stations"
	"github.com/transitprint/corredor/timetable"
)

var tripUpdatesURL string

var delaysCmd = &cobra.Command{
	Use:   "delays",
	Short: "Show live delays for today's corridor trains",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := tripUpdatesURL
		if url == "" {
			url = cfg.Realtime.TripUpdatesURL
		}
		if url == "" {
			return fmt.Errorf("no TripUpdates URL: pass --trip-updates or set realtime.tripUpdatesURL in corredor.yml")
		}

		feed, err := openFeed()
		if err != nil {
			return err
		}
		defer feed.Close()

		tt, err := timetable.Build(feed, gtfs.Today(), stations.Corridor(), nil)
		if err != nil {
			return err
		}

		b, err := realtime.NewClient().Fetch(url)
		if err != nil {
			return err
		}
		delays, err := realtime.Delays(b)
		if err != nil {
			return err
		}

		reported := 0
		for _, d := range []timetable.Direction{timetable.Outbound, timetable.Inbound} {
			for _, trip := range tt.Trips(d) {
				delay, ok := delays[trip.ID]
				if !ok || delay == 0 {
					continue
				}
				fmt.Printf("%s  %s  %s  %+dm\n", trip.Departure, d, trip.ID, delay/60)
				reported++
			}
		}
		if reported == 0 {
			fmt.Println("no reported delays for corridor trains")
		}
		return nil
	},
}

func init() {
	delaysCmd.Flags().StringVar(&tripUpdatesURL, "trip-updates", "", "GTFS-RT TripUpdates URL (overrides config)")
	rootCmd.AddCommand(delaysCmd)
}
