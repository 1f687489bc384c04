package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/transitprint/corredor/render"
	"github.com/transitprint/corredor/stations"
	"github.com/transitprint/corredor/timetable"
)

var (
	dateFlag string
	outDir   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate PDF timetables for one service date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dateFlag)
		if err != nil {
			return err
		}

		feed, err := openFeed()
		if err != nil {
			return err
		}
		defer feed.Close()

		tt, err := timetable.Build(feed, date, stations.Corridor(), timetable.ProgressFunc(func(msg string) {
			log.Println(msg)
		}))
		if err != nil {
			return err
		}

		dir := outDir
		if dir == "" {
			dir = cfg.Output.Dir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		// Rendering failures are reported per direction and never discard
		// the computed trip lists.
		var renderErr error
		for _, d := range []timetable.Direction{timetable.Outbound, timetable.Inbound} {
			path := render.OutputPath(dir, tt, d)
			if err := render.WritePDF(tt, d, path); err != nil {
				log.Printf("render %s: %v", d, err)
				renderErr = errors.Join(renderErr, err)
				continue
			}
			fmt.Printf("wrote %s (%d trains)\n", path, len(tt.Trips(d)))
		}
		return renderErr
	},
}

func init() {
	generateCmd.Flags().StringVar(&dateFlag, "date", "", "service date as YYYY-MM-DD (default today)")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config, else .)")
	rootCmd.AddCommand(generateCmd)
}
