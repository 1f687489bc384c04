package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/transitprint/corredor/config"
	"github.com/transitprint/corredor/gtfs"
)

var (
	cfgPath string
	cfg     *config.AppConfig

	// flags shared by generate and delays
	feedPath string
	feedURL  string
)

var rootCmd = &cobra.Command{
	Use:   "corredor",
	Short: "Printable timetables for the Cádiz-Sevilla rail corridor",
	Long: `corredor filters a GTFS static bundle down to the trains running on one
calendar date along the Cádiz-Sevilla corridor and renders a printable PDF
timetable per direction.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to corredor.yml")
	rootCmd.PersistentFlags().StringVar(&feedPath, "feed", "", "path to a GTFS zip bundle")
	rootCmd.PersistentFlags().StringVar(&feedURL, "feed-url", "", "URL of a GTFS zip bundle")
}

// openFeed resolves the feed source with flags taking precedence over config.
func openFeed() (*gtfs.Feed, error) {
	switch {
	case feedPath != "":
		return gtfs.OpenFeed(feedPath)
	case feedURL != "":
		return gtfs.FetchFeed(feedURL)
	case cfg.Feed.ZipPath != "":
		return gtfs.OpenFeed(cfg.Feed.ZipPath)
	case cfg.Feed.StaticURL != "":
		return gtfs.FetchFeed(cfg.Feed.StaticURL)
	}
	return nil, fmt.Errorf("no feed source: pass --feed/--feed-url or set feed.zipPath in corredor.yml")
}

// resolveDate parses the --date flag, defaulting to today.
func resolveDate(s string) (gtfs.ServiceDate, error) {
	if s == "" {
		return gtfs.Today(), nil
	}
	return gtfs.ParseServiceDate(s)
}
